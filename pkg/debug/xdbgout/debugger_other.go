//go:build !linux && !windows

package xdbgout

// debuggerPresent 在没有可靠探测手段的平台上保守地返回 false。
func debuggerPresent() bool {
	return false
}
