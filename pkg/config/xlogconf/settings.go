package xlogconf

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/vaginessa/VideoLibrarian/pkg/observability/xlogfile"
)

// Settings 是配置文件 logging 段的强类型映射。
// 零值不可直接使用，应从 DefaultSettings 出发再覆盖。
type Settings struct {
	// Path 日志文件路径。为空时由 xlogfile 按可执行文件路径推导。
	Path string `koanf:"path"`

	// MaxSizeMB 滚动阈值（MiB）。超过后删除旧文件重新开始。
	MaxSizeMB int `koanf:"maxSizeMB"`

	// RedactErrors 为 true 时错误参数只渲染消息文本，不含详情。
	RedactErrors bool `koanf:"redactErrors"`

	// FileMode 日志文件权限，八进制字符串形式（如 "0600"）。
	// 配置文件里用字符串避免 YAML/JSON 对前导零的歧义。
	FileMode string `koanf:"fileMode"`
}

// DefaultSettings 返回与 xlogfile 默认行为一致的设置。
func DefaultSettings() Settings {
	return Settings{
		MaxSizeMB:    xlogfile.DefaultMaxSizeMB,
		RedactErrors: true,
		FileMode:     "0600",
	}
}

// Validate 校验设置的合法性。
// 范围校验交给 xlogfile.New 统一处理，这里只检查配置层
// 自身的表示问题（八进制权限字符串）。
func (s Settings) Validate() error {
	if s.FileMode != "" {
		if _, err := s.fileMode(); err != nil {
			return err
		}
	}
	return nil
}

// Options 把设置转换为 xlogfile 的构造选项。
// 需在 Validate 通过后调用，无法解析的权限字符串被跳过。
func (s Settings) Options() []xlogfile.Option {
	opts := []xlogfile.Option{
		xlogfile.WithPath(s.Path),
		xlogfile.WithMaxSizeMB(s.MaxSizeMB),
		xlogfile.WithRedactErrors(s.RedactErrors),
	}
	if s.FileMode != "" {
		if mode, err := s.fileMode(); err == nil {
			opts = append(opts, xlogfile.WithFileMode(mode))
		}
	}
	return opts
}

func (s Settings) fileMode() (fs.FileMode, error) {
	n, err := strconv.ParseUint(s.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: fileMode %q is not an octal permission: %w",
			ErrInvalidSettings, s.FileMode, err)
	}
	return fs.FileMode(n), nil
}
