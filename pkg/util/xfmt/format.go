package xfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// maxArgIndex 占位符索引上限。
//
// 设计决策: 索引上限防止 "{999999999}" 这类输入在错误消息拼接时
// 产生误导性输出；正常日志调用的参数个数远小于此值。
const maxArgIndex = 255

// Format 将 args 按位置索引替换进 format 中的 {0}、{1}、… 占位符。
//
// 替换规则：
//   - {N} 替换为 args[N] 的默认字符串形式（fmt 的 %v 动词）
//   - "{{" 和 "}}" 分别转义为字面量 '{' 和 '}'
//   - 单独出现的 '}' 原样保留（宽松处理，不视为错误）
//
// args 为空时 format 原样返回（占位符不展开也不报错），
// 与历史行为一致：无参数调用允许消息本身包含大括号。
//
// 错误：
//   - 占位符索引 >= len(args) 时返回 [ErrArgIndex]
//   - '{' 未闭合或索引非数字时返回 [ErrBadFormat]
func Format(format string, args ...any) (string, error) {
	if len(args) == 0 || !strings.ContainsRune(format, '{') {
		return format, nil
	}

	var b strings.Builder
	b.Grow(len(format) + 16*len(args))

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated '{' at offset %d", ErrBadFormat, i)
			}
			token := format[i+1 : i+1+end]
			n, err := strconv.Atoi(token)
			if err != nil || n < 0 || n > maxArgIndex {
				return "", fmt.Errorf("%w: index %q", ErrBadFormat, token)
			}
			if n >= len(args) {
				return "", fmt.Errorf("%w: {%d} with %d argument(s)", ErrArgIndex, n, len(args))
			}
			b.WriteString(renderArg(args[n]))
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				i++
			}
			b.WriteByte('}')
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

// MustFormat 与 [Format] 相同，但失败时 panic。
// 适用于格式串为编译期字面量的内部调用。
func MustFormat(format string, args ...any) string {
	s, err := Format(format, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// renderArg 渲染单个参数为字符串。
// nil 渲染为空串而非 "<nil>"，避免日志中出现噪音标记。
func renderArg(a any) string {
	if a == nil {
		return ""
	}
	if s, ok := a.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", a)
}
