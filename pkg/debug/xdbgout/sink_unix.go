//go:build !windows

package xdbgout

import "os"

// traceSink 是调试器附加时的输出通道。类 Unix 平台上 gdb/delve
// 直接接管进程的标准流，写 stderr 即出现在调试会话中。
func traceSink(s string) {
	osDebugSink(s)
}

// osDebugSink 写标准错误。没有 OutputDebugString 等价物的平台上
// stderr 是能力等价的系统级调试出口。写入失败被吞掉。
func osDebugSink(s string) {
	_, _ = os.Stderr.WriteString(s)
}
