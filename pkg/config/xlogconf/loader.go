package xlogconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Loader 持有已解析的配置树并提供 Settings 提取与重载。
// 并发安全。
type Loader struct {
	mu        sync.RWMutex
	k         *koanf.Koanf
	path      string
	format    Format
	opts      *loaderOptions
	fromBytes bool
}

// Load 从文件路径创建 Loader。
// 根据扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string, opts ...Option) (*Loader, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	options := defaultLoaderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	k := koanf.New(options.delim)
	if err := loadData(k, data, format); err != nil {
		return nil, err
	}

	return &Loader{
		k:      k,
		path:   path,
		format: format,
		opts:   options,
	}, nil
}

// LoadBytes 从字节数据创建 Loader，需显式指定格式。
// 空数据创建空配置，Settings 返回全默认值。
func LoadBytes(data []byte, format Format, opts ...Option) (*Loader, error) {
	if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}

	options := defaultLoaderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	k := koanf.New(options.delim)
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
	}

	return &Loader{
		k:         k,
		format:    format,
		opts:      options,
		fromBytes: true,
	}, nil
}

// Settings 提取 logging 段并合并默认值。
// 配置中缺失的键保持 DefaultSettings 的取值。
func (l *Loader) Settings() (Settings, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := DefaultSettings()
	if err := l.k.UnmarshalWithConf(l.opts.section, &s, koanf.UnmarshalConf{
		Tag: l.opts.tag,
	}); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Unmarshal 将指定路径的配置反序列化到目标结构体。
// path 为空字符串时反序列化整个配置树。
func (l *Loader) Unmarshal(path string, target any) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		Tag: l.opts.tag,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// MustUnmarshal 与 Unmarshal 相同，但失败时 panic。
// 适用于程序启动时的必要配置加载。
func (l *Loader) MustUnmarshal(path string, target any) {
	if err := l.Unmarshal(path, target); err != nil {
		panic(err)
	}
}

// Client 返回底层的 koanf 实例，用于读取 logging 段之外的配置。
func (l *Loader) Client() *koanf.Koanf {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.k
}

// Reload 重新读取配置文件并原子替换配置树。
// 从字节数据创建的 Loader 不支持重载。
func (l *Loader) Reload() error {
	if l.fromBytes {
		return fmt.Errorf("%w: cannot reload config created from bytes", ErrLoadFailed)
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	newK := koanf.New(l.opts.delim)
	if err := loadData(newK, data, l.format); err != nil {
		return err
	}

	l.mu.Lock()
	l.k = newK
	l.mu.Unlock()
	return nil
}

// Path 返回配置文件路径，从字节数据创建的 Loader 返回空字符串。
func (l *Loader) Path() string {
	return l.path
}

// Format 返回配置格式。
func (l *Loader) Format() Format {
	return l.format
}

// =============================================================================
// 内部辅助函数
// =============================================================================

func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
