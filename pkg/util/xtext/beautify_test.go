package xtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Beautify 行为测试
// =============================================================================

// TestBeautify 测试规范化规则
func TestBeautify(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		strip bool
		want  string
	}{
		{
			name: "单行原样",
			in:   "plain",
			want: "plain",
		},
		{
			name: "空串",
			in:   "",
			want: "",
		},
		{
			name: "纯空白",
			in:   " \t \n  \n",
			want: "",
		},
		{
			name: "首行前导空白去除",
			in:   "   hello",
			want: "hello",
		},
		{
			name: "行尾空白去除",
			in:   "hello   \nworld  ",
			want: "hello\n    world",
		},
		{
			name: "制表符展开为两空格",
			in:   "a\tb",
			want: "a  b",
		},
		{
			name: "续行缩进四空格",
			in:   "line1\nline2\nline3",
			want: "line1\n    line2\n    line3",
		},
		{
			name: "连续空行压缩为一个",
			in:   "a\n\n\n\nb",
			want: "a\n\n    b",
		},
		{
			name: "首尾空行去除",
			in:   "\n\na\nb\n\n",
			want: "a\n    b",
		},
		{
			name: "CRLF 统一为 LF",
			in:   "a\r\nb\rc",
			want: "a\n    b\n    c",
		},
		{
			name: "续行自带缩进保留并叠加",
			in:   "head\n  tail",
			want: "head\n      tail",
		},
		{
			name:  "整行注释剥离",
			in:    "keep\n// gone\nalso",
			strip: true,
			want:  "keep\n    also",
		},
		{
			name:  "行尾注释截断",
			in:    "value = 1 // comment",
			strip: true,
			want:  "value = 1",
		},
		{
			name:  "不剥离时注释保留",
			in:    "see https://example.com/x",
			strip: false,
			want:  "see https://example.com/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Beautify(tt.in, tt.strip))
		})
	}
}

// TestBeautifyComposite 测试规则组合：制表符 + 行尾空白 + 连续空行
func TestBeautifyComposite(t *testing.T) {
	in := "\tfirst line  \nsecond\tline\n\n\n\nlast   "
	want := "first line\n    second  line\n\n    last"
	assert.Equal(t, want, Beautify(in, false))
}

// TestBeautifyIdempotentForSingleLine 单行输入规范化后再规范化不变
func TestBeautifyIdempotentForSingleLine(t *testing.T) {
	once := Beautify("  hello\tworld  ", false)
	assert.Equal(t, once, Beautify(once, false))
}

// TestBeautifyNoTrailingWhitespace 输出任何一行都没有行尾空白
func TestBeautifyNoTrailingWhitespace(t *testing.T) {
	out := Beautify("a  \n  b\t \n\n c ", false)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, strings.TrimRight(line, " \t"), line)
	}
}
