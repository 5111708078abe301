//go:build windows

package xdbgout

import "golang.org/x/sys/windows"

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procIsDebuggerPresent = kernel32.NewProc("IsDebuggerPresent")
)

// debuggerPresent 调用 kernel32 IsDebuggerPresent 判断是否有
// 用户态调试器附加到当前进程。
func debuggerPresent() bool {
	r, _, _ := procIsDebuggerPresent.Call()
	return r != 0
}
