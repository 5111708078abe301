//go:build vldebug

package xdbgout

// rawWrite 在进程启动时解析一次，此后不再改变。
// var 而非 const 仅为测试可替换。
var rawWrite = resolveSink()

func resolveSink() func(string) {
	if debuggerPresent() {
		return traceSink
	}
	return osDebugSink
}

// WriteLine 向调试通道输出一行。fire-and-forget：不返回错误、
// 不 panic、不阻塞等待确认。
func WriteLine(format string, args ...any) {
	rawWrite(render(format, args...))
}
