package xtext

import "strings"

const (
	// indent 续行的固定缩进
	indent = "    "

	// tabExpansion 制表符的展开形式
	tabExpansion = "  "
)

// Beautify 规范化多行文本。
//
// stripComments 为 true 时先剥离 "//" 行注释（整行注释删除该行，
// 行尾注释截断到注释前）。日志写入路径固定传 false，注释剥离
// 仅服务于其他复用此工具的调用方。
//
// 空串与纯空白输入返回空串。
func Beautify(s string, stripComments bool) string {
	if s == "" {
		return ""
	}

	if stripComments {
		s = stripLineComments(s)
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", tabExpansion)

	lines := strings.Split(s, "\n")

	// 行尾空白去除 + 空行压缩，一次遍历完成
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " ")
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	// 循环中 len(out)>0 的判断已丢弃首部空行；尾部空行因 blank 悬挂而自然丢弃

	if len(out) == 0 {
		return ""
	}

	// 统一缩进后去除首行缩进（含消息自带的前导空白），保证首行顶格
	for i := 1; i < len(out); i++ {
		if out[i] != "" {
			out[i] = indent + out[i]
		}
	}
	out[0] = strings.TrimLeft(out[0], " ")

	return strings.Join(out, "\n")
}

// stripLineComments 剥离 "//" 行注释。
//
// 不做字符串字面量感知：这是面向日志与配置片段的宽松实现，
// 调用方若携带 URL 等含 "//" 的内容应传 stripComments=false。
func stripLineComments(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
			if strings.TrimSpace(line) == "" {
				continue
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
