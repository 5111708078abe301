//go:build vldebug

package xdbgout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// swapRawWrite 把输出通道替换为采集函数，返回恢复函数。
func swapRawWrite(lines *[]string) func() {
	old := rawWrite
	rawWrite = func(s string) { *lines = append(*lines, s) }
	return func() { rawWrite = old }
}

func TestWriteLine(t *testing.T) {
	var lines []string
	defer swapRawWrite(&lines)()

	WriteLine("first")
	WriteLine("item {0} of {1}", 3, 10)
	WriteLine("bad {9}", "x")

	assert.Equal(t, []string{
		"DEBUG: first\n",
		"DEBUG: item 3 of 10\n",
		"DEBUG: bad {9}\n",
	}, lines)
}

func TestResolveSinkReturnsCallable(t *testing.T) {
	assert.NotNil(t, resolveSink())
}
