package xfmt

import (
	"errors"
	"strings"
	"testing"
)

// =============================================================================
// 模糊测试（Fuzz）
//
// 运行方式：go test -fuzz=FuzzFormat -fuzztime=30s
// =============================================================================

// FuzzFormat 模糊测试占位符替换
//
// 测试目标：
//   - 任意格式串不会导致 panic
//   - 成功路径的输出不残留未转义的合法占位符
//   - 失败路径只返回两类哨兵错误之一
func FuzzFormat(f *testing.F) {
	// 种子语料
	f.Add("{0} of {1}", "a", "b")
	f.Add("", "", "")
	f.Add("{{escaped}}", "x", "y")
	f.Add("{2}", "only", "two")
	f.Add("broken {0", "a", "b")
	f.Add("}} {0} {{", "a", "b")
	f.Add("{-1}{999999999}{name}", "a", "b")
	f.Add(strings.Repeat("{0}", 64), "v", "w")
	f.Add("中文 {1} 消息", "甲", "乙")
	f.Add("tab\there {0}\n{1}", "x", "y")

	f.Fuzz(func(t *testing.T, format, a, b string) {
		got, err := Format(format, a, b)
		if err != nil {
			if !errors.Is(err, ErrArgIndex) && !errors.Is(err, ErrBadFormat) {
				t.Errorf("非哨兵错误: %v", err)
			}
			return
		}

		// 成功时 {0}/{1} 必须全部被替换（转义产生的字面量 {0} 除外，
		// 但转义形式 "{{0}}" 的输出只在输入显式包含它时出现）
		if !strings.Contains(format, "{{") {
			if strings.Contains(got, "{0}") && !strings.Contains(a, "{0}") && !strings.Contains(b, "{0}") {
				t.Errorf("输出残留未替换的占位符: %q -> %q", format, got)
			}
		}
	})
}
