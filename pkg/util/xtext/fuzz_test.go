package xtext

import (
	"strings"
	"testing"
)

// =============================================================================
// 模糊测试（Fuzz）
//
// 运行方式：go test -fuzz=FuzzBeautify -fuzztime=30s
// =============================================================================

// FuzzBeautify 模糊测试规范化不变量
//
// 测试目标：
//   - 任意输入不会导致 panic
//   - 输出不含制表符与 '\r'
//   - 输出任何一行没有行尾空格
//   - 输出没有连续空行、没有首尾空行
//   - 首行没有前导空格
func FuzzBeautify(f *testing.F) {
	f.Add("plain", false)
	f.Add("", true)
	f.Add("\t\t\n\n\n  x  \r\ny\t", false)
	f.Add("// all comment\ncontent", true)
	f.Add(strings.Repeat("line\n", 50), false)
	f.Add("中文\t消息\n\n\n结束  ", false)
	f.Add("mixed\rline\r\nendings", false)

	f.Fuzz(func(t *testing.T, input string, strip bool) {
		out := Beautify(input, strip)

		if strings.ContainsAny(out, "\t\r") {
			t.Errorf("输出含未展开的制表符或 '\\r': %q", out)
		}

		lines := strings.Split(out, "\n")
		if out != "" {
			if strings.HasPrefix(lines[0], " ") {
				t.Errorf("首行有前导空格: %q", out)
			}
			if lines[0] == "" || lines[len(lines)-1] == "" {
				t.Errorf("输出有首尾空行: %q", out)
			}
		}

		prevBlank := false
		for _, line := range lines {
			if strings.TrimRight(line, " ") != line {
				t.Errorf("行尾残留空白: %q", line)
			}
			blank := line == ""
			if blank && prevBlank {
				t.Errorf("连续空行未压缩: %q", out)
			}
			prevBlank = blank
		}
	})
}
