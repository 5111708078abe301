package xlogfile

import "os"

// 默认配置值
const (
	// DefaultMaxSizeMB 默认滚动阈值（MiB），超过即在下次打开前删除整个文件
	DefaultMaxSizeMB = 100

	// DefaultFileMode 默认日志文件权限
	//
	// 0600 权限说明：仅 owner 可读写，符合 gosec G302 安全建议。
	// 需要其他进程读取日志时（文件以共享读方式打开），使用 WithFileMode(0644)。
	DefaultFileMode os.FileMode = 0600

	// maxSizeMB 滚动阈值上限（10 GiB）
	maxSizeMB = 10240
)

// config Writer 配置
type config struct {
	path         string
	maxSizeMB    int
	fileMode     os.FileMode
	redactErrors bool
}

// Option Writer 配置选项函数
type Option func(*config)

// WithPath 设置日志文件路径。
// 默认派生自可执行文件路径（扩展名替换为 ".log"）。空串视为未设置。
func WithPath(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithMaxSizeMB 设置滚动阈值（MiB）。
// 既有文件超过阈值时在下次打开前被整体删除，不保留备份。
func WithMaxSizeMB(mb int) Option {
	return func(c *config) {
		c.maxSizeMB = mb
	}
}

// WithFileMode 设置日志文件权限。
// 仅允许权限位（0000~0777）。
func WithFileMode(mode os.FileMode) Option {
	return func(c *config) {
		c.fileMode = mode
	}
}

// WithRedactErrors 设置 error 参数的格式化策略。
//
// 启用时（面向最终用户的发布形态），error 参数只渲染其 Error() 文本，
// 不携带包装链细节，保持日志对最终用户友好；
// 禁用时（诊断形态），error 参数以 %+v 渲染，保留完整细节。
//
// 设计决策: 策略是构造期运行时开关而非编译期条件，
// 两种行为可以在同一个二进制中测试。
func WithRedactErrors(redact bool) Option {
	return func(c *config) {
		c.redactErrors = redact
	}
}
