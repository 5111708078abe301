package xlogfile

import (
	"fmt"
	"strings"
)

// Severity 日志条目的严重级别。
//
// 封闭集合，同时用于文本前缀与 UI 显示配色。
// None 表示无级别：条目不带前缀，原样写入。
type Severity int

// 严重级别常量
const (
	SeverityNone Severity = iota
	SeveritySuccess
	SeverityError
	SeverityWarning
	SeverityInfo
	SeverityVerbose
)

// severityNames 级别到前缀名的映射，顺序与常量定义一致。
var severityNames = [...]string{
	"None",
	"Success",
	"Error",
	"Warning",
	"Info",
	"Verbose",
}

// String 返回级别的字符串表示，即日志行前缀使用的名称。
// 越界值委托给默认整数格式（如 "Severity(9)"）。
func (s Severity) String() string {
	if s >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// IsValid 检查是否为已定义的级别。
func (s Severity) IsValid() bool {
	return s >= SeverityNone && s <= SeverityVerbose
}

// MarshalText 实现 encoding.TextMarshaler 接口，
// 支持配置序列化场景（YAML/JSON）。
func (s Severity) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口，
// 支持从配置文件直接反序列化严重级别。
func (s *Severity) UnmarshalText(data []byte) error {
	parsed, err := ParseSeverity(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity 解析字符串为严重级别（大小写不敏感，自动 TrimSpace）。
func ParseSeverity(s string) (Severity, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for i, name := range severityNames {
		if strings.ToLower(name) == normalized {
			return Severity(i), nil
		}
	}
	return SeverityNone, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}
