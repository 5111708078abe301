package xlogconf

type loaderOptions struct {
	delim   string
	tag     string
	section string
}

// Option 定义加载选项函数类型。
type Option func(*loaderOptions)

func defaultLoaderOptions() *loaderOptions {
	return &loaderOptions{
		delim:   ".",
		tag:     "koanf",
		section: "logging",
	}
}

// WithDelim 设置配置键分隔符，默认 "."。
func WithDelim(delim string) Option {
	return func(o *loaderOptions) {
		if delim != "" {
			o.delim = delim
		}
	}
}

// WithTag 设置 Unmarshal 使用的结构体标签名，默认 "koanf"。
func WithTag(tag string) Option {
	return func(o *loaderOptions) {
		if tag != "" {
			o.tag = tag
		}
	}
}

// WithSection 设置日志设置所在的配置段，默认 "logging"。
// 传空字符串表示整个配置树就是 logging 段。
func WithSection(section string) Option {
	return func(o *loaderOptions) {
		o.section = section
	}
}
