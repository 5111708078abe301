//go:build windows

package xdbgout

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var procOutputDebugStringW = kernel32.NewProc("OutputDebugStringW")

// traceSink 是调试器附加时的输出通道。Windows 下调试器通过
// OutputDebugStringW 事件接收字符串，与系统通道同一入口。
func traceSink(s string) {
	osDebugSink(s)
}

// osDebugSink 把字符串投递给 OutputDebugStringW，DbgView 等
// 捕获工具可见。转换失败直接丢弃。
func osDebugSink(s string) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return
	}
	_, _, _ = procOutputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
}
