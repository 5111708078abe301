package xproc

import "sync"

// ResetIdentity 重置进程标识缓存（仅用于测试）。
//
// 此函数仅在 go test 期间可用，生产代码不可调用。
func ResetIdentity() {
	identityOnce = sync.Once{}
	exePathValue = ""
	logPathValue = ""
}

// SetOSExecutable 替换 osExecutable（仅用于测试），返回恢复函数。
func SetOSExecutable(fn func() (string, error)) func() {
	orig := osExecutable
	osExecutable = fn
	return func() { osExecutable = orig }
}
