//go:build !vldebug

package xdbgout

// WriteLine 在发布构建中是空操作，内联后调用点被编译器消除。
// 启用真实实现需携带 -tags vldebug 构建。
func WriteLine(format string, args ...any) {}
