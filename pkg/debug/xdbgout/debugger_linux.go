//go:build linux

package xdbgout

import (
	"bytes"
	"os"
	"strconv"
)

// statusPath 可注入，便于测试覆盖探测逻辑。
var statusPath = "/proc/self/status"

// debuggerPresent 通过 /proc/self/status 的 TracerPid 字段判断
// 当前进程是否被 ptrace 跟踪（gdb、delve 附加时非零）。
// 读取失败视为未附加。
func debuggerPresent() bool {
	data, err := os.ReadFile(statusPath)
	if err != nil {
		return false
	}
	for _, line := range bytes.Split(data, []byte("\n")) {
		rest, ok := bytes.CutPrefix(line, []byte("TracerPid:"))
		if !ok {
			continue
		}
		pid, err := strconv.Atoi(string(bytes.TrimSpace(rest)))
		return err == nil && pid != 0
	}
	return false
}
