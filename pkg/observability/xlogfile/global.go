package xlogfile

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// =============================================================================
// 全局 Writer
//
// 定位：宿主应用的单日志文件场景（进程一个日志文件一个实例）。
// 库代码推荐依赖注入（显式持有 *Writer）。
// =============================================================================

// globalWriter 全局 Writer 实例（并发安全）
var globalWriter atomic.Pointer[Writer]

// globalMu 保护 globalOnce 及其 Do 执行（也用于 ResetDefault）
var globalMu sync.Mutex

// globalOnce 确保默认 Writer 只初始化一次
var globalOnce sync.Once

// fallbackPath 可执行文件路径不可解析时的兜底日志路径（当前工作目录）
const fallbackPath = "videolibrarian.log"

// defaultWriter 创建默认 Writer（惰性初始化）。
//
// 设计决策: 在持锁状态下执行 once.Do，确保 ResetDefault（重置 globalOnce）
// 与 once.Do 之间不会发生并发竞争。初始化后 Default() 走 atomic.Load
// 快速路径，不进入此函数。
func defaultWriter() *Writer {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalOnce.Do(func() {
		w, err := New()
		if err != nil {
			// 设计决策: 默认参数只会因可执行文件路径不可解析而失败，
			// 此时降级为当前目录下的固定文件名，避免库代码 panic
			// 终止宿主进程（项目约定：构造不 panic）。
			w, err = New(WithPath(fallbackPath))
			if err != nil {
				fmt.Fprintf(os.Stderr, "xlogfile: failed to build default writer: %v\n", err)
				w = &Writer{path: fallbackPath, maxSize: DefaultMaxSizeMB * 1024 * 1024, fileMode: DefaultFileMode}
			}
		}
		globalWriter.Store(w)
	})
	return globalWriter.Load()
}

// Default 返回全局默认 Writer。
//
// 懒初始化：首次调用时以默认配置创建（路径派生自可执行文件路径）。
// 并发安全：使用 sync.Once 和 atomic.Pointer。
func Default() *Writer {
	if w := globalWriter.Load(); w != nil {
		return w
	}
	return defaultWriter()
}

// SetDefault 替换全局默认 Writer。
//
// 用于测试或自定义配置场景。传入 nil 时操作被忽略。
// 注意：不关闭被替换的 Writer，资源释放由调用方负责。
func SetDefault(w *Writer) {
	if w == nil {
		return
	}
	globalWriter.Store(w)
}

// ResetDefault 重置全局 Writer 为未初始化状态（仅用于测试）。
// 调用后，下次 Default() 会重新初始化默认 Writer。不关闭旧 Writer。
func ResetDefault() {
	globalMu.Lock()
	globalWriter.Store(nil)
	globalOnce = sync.Once{}
	globalMu.Unlock()
}

// =============================================================================
// 便利函数：委托给全局 Writer
// =============================================================================

// Write 使用全局 Writer 写入一条日志。
func Write(sev Severity, format string, args ...any) error {
	return Default().Write(sev, format, args...)
}

// Close 关闭全局 Writer 的日志文件（幂等）。
// 进程退出前应调用一次，释放长生命周期的文件句柄。
func Close() error {
	return Default().Close()
}

// Subscribe 向全局 Writer 注册订阅回调。
func Subscribe(fn SubscriberFunc) uuid.UUID {
	return Default().Subscribe(fn)
}

// Unsubscribe 从全局 Writer 注销订阅。
func Unsubscribe(id uuid.UUID) bool {
	return Default().Unsubscribe(id)
}
