package xlogfile

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vaginessa/VideoLibrarian/pkg/debug/xdbgout"
	"github.com/vaginessa/VideoLibrarian/pkg/util/xfile"
	"github.com/vaginessa/VideoLibrarian/pkg/util/xfmt"
	"github.com/vaginessa/VideoLibrarian/pkg/util/xproc"
	"github.com/vaginessa/VideoLibrarian/pkg/util/xtext"
)

// 会话分隔行的固定格式：本地时间，人类可读布局
const (
	separatorPrefix     = "-------- "
	separatorSuffix     = " ------------------------------------------"
	separatorTimeLayout = "01/02/2006 03:04:05 PM"
)

// SubscriberFunc 订阅回调。
// 每条成功写入的日志以 (级别, 规范化后的消息) 同步回调，
// 回调运行在写入者的调用线程上且持有写入互斥锁，内部不得再调用同一 Writer。
type SubscriberFunc func(sev Severity, message string)

// subscription 一条订阅记录，按注册顺序保存。
type subscription struct {
	id uuid.UUID
	fn SubscriberFunc
}

// Writer 进程级滚动追加日志。
//
// 零值不可用，必须通过 [New] 创建。所有方法并发安全。
type Writer struct {
	// mu 是唯一的共享互斥资源：打开/滚动/追加/关闭/通知整个序列互斥执行
	mu sync.Mutex

	path         string
	maxSize      int64 // 滚动阈值（字节）
	fileMode     os.FileMode
	redactErrors bool

	// file 惰性打开的追加句柄；nil 表示当前处于关闭状态
	file *os.File

	subscribers []subscription

	// 可注入的系统调用与时钟（nil 时使用标准库），仅用于测试
	nowFn    func() time.Time
	statFn   func(string) (os.FileInfo, error)
	removeFn func(string) error
}

// New 创建 Writer。
//
// 不打开文件：文件在首次 [Writer.Write] 时惰性打开。
// 路径默认派生自可执行文件路径（xproc.LogPath），可用 [WithPath] 覆盖；
// 两者都不可用时返回 [ErrEmptyPath]。
func New(opts ...Option) (*Writer, error) {
	cfg := config{
		maxSizeMB: DefaultMaxSizeMB,
		fileMode:  DefaultFileMode,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.path == "" {
		cfg.path = xproc.LogPath()
	}
	if cfg.path == "" {
		return nil, ErrEmptyPath
	}

	if cfg.maxSizeMB <= 0 || cfg.maxSizeMB > maxSizeMB {
		return nil, fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, cfg.maxSizeMB, maxSizeMB)
	}
	// FileMode 仅允许权限位（低 9 位），拒绝文件类型位、setuid/setgid 等
	if cfg.fileMode&^os.FileMode(0o777) != 0 {
		return nil, fmt.Errorf("%w: got %04o, only permission bits (0000~0777) allowed",
			ErrInvalidFileMode, cfg.fileMode)
	}

	safePath, err := xfile.SanitizePath(cfg.path)
	if err != nil {
		return nil, err
	}
	if err := xfile.EnsureDir(safePath); err != nil {
		return nil, fmt.Errorf("%w: ensure log directory: %w", ErrIO, err)
	}

	return &Writer{
		path:         safePath,
		maxSize:      int64(cfg.maxSizeMB) * 1024 * 1024,
		fileMode:     cfg.fileMode,
		redactErrors: cfg.redactErrors,
	}, nil
}

// Path 返回日志文件路径。
func (w *Writer) Path() string {
	return w.path
}

// Write 格式化并追加一条日志，随后同步通知所有订阅者。
//
// 行为：
//   - sev 非 None 时，行首带 "<Severity>: " 前缀
//   - args 非空时按 {0}、{1} 位置占位符替换进 format；
//     error 参数按构造期 redactErrors 策略渲染（见 [WithRedactErrors]）
//   - 消息经 xtext.Beautify 规范化（不做注释剥离）
//   - 每次写入后强制落盘（Sync），持久性优先于吞吐
//   - 文件处于关闭状态时先执行滚动检查并重新打开，新会话写入分隔行
//
// 格式化失败（xfmt 哨兵错误）在触碰文件之前返回；
// 文件系统失败包装为 [ErrIO] 返回，无内部重试。
func (w *Writer) Write(sev Severity, format string, args ...any) error {
	// 格式化与规范化前置：格式化失败时不留下只有分隔行的空会话
	msg, err := w.render(format, args)
	if err != nil {
		return err
	}

	line := msg
	if sev != SeverityNone {
		line = sev.String() + ": " + msg
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.openLocked(); err != nil {
		return err
	}

	if _, err := w.file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("%w: append entry: %w", ErrIO, err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("%w: flush entry: %w", ErrIO, err)
	}

	w.notifyLocked(sev, msg)
	return nil
}

// Close 落盘并关闭日志文件。
//
// 幂等：文件未打开时为无操作，重复调用不报错。
// 不通知订阅者。之后的 Write 会重新检查滚动条件并重新打开文件。
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	f := w.file
	w.file = nil

	syncErr := f.Sync()
	closeErr := f.Close()
	if syncErr != nil {
		return fmt.Errorf("%w: flush log file: %w", ErrIO, syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close log file: %w", ErrIO, closeErr)
	}
	return nil
}

// Subscribe 注册订阅回调，返回用于注销的令牌。
// nil 回调被忽略并返回 uuid.Nil。
func (w *Writer) Subscribe(fn SubscriberFunc) uuid.UUID {
	if fn == nil {
		return uuid.Nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	id := uuid.New()
	w.subscribers = append(w.subscribers, subscription{id: id, fn: fn})
	return id
}

// Unsubscribe 注销订阅，返回是否找到对应令牌。
// 对正在进行的通知：已被调用的回调不受影响（通知与注销互斥执行）。
func (w *Writer) Unsubscribe(id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for i, sub := range w.subscribers {
		if sub.id == id {
			w.subscribers = append(w.subscribers[:i], w.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

// render 完成占位符替换与规范化。
func (w *Writer) render(format string, args []any) (string, error) {
	if len(args) > 0 {
		prepared := make([]any, len(args))
		for i, a := range args {
			if e, ok := a.(error); ok && e != nil {
				if w.redactErrors {
					// 只保留面向用户的错误文本，不携带包装链细节
					prepared[i] = e.Error()
				} else {
					prepared[i] = fmt.Sprintf("%+v", e)
				}
				continue
			}
			prepared[i] = a
		}
		formatted, err := xfmt.Format(format, prepared...)
		if err != nil {
			return "", err
		}
		format = formatted
	}
	return xtext.Beautify(format, false), nil
}

// openLocked 确保文件处于打开状态（调用方必须持有 w.mu）。
//
// 重新打开前先做滚动检查：既有文件超过阈值时整体删除，
// 历史不保留（刻意行为，滚动是删除而非归档）。
// 新会话以分隔行开头。
func (w *Writer) openLocked() error {
	if w.file != nil {
		return nil
	}

	stat := w.statFn
	if stat == nil {
		stat = os.Stat
	}
	if info, err := stat(w.path); err == nil {
		if info.Size() > w.maxSize {
			remove := w.removeFn
			if remove == nil {
				remove = os.Remove
			}
			if err := remove(w.path); err != nil {
				return fmt.Errorf("%w: roll over oversized log: %w", ErrIO, err)
			}
			xdbgout.WriteLine("log rolled over: removed {0} ({1} bytes)", w.path, info.Size())
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat log file: %w", ErrIO, err)
	}

	//#nosec G304 -- 路径在 New 中经 xfile.SanitizePath 规范化
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, w.fileMode)
	if err != nil {
		return fmt.Errorf("%w: open log file: %w", ErrIO, err)
	}

	nowFn := w.nowFn
	if nowFn == nil {
		nowFn = time.Now
	}
	sep := separatorPrefix + nowFn().Format(separatorTimeLayout) + separatorSuffix + "\n"
	if _, err := f.WriteString(sep); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write session separator: %w", ErrIO, err)
	}

	w.file = f
	return nil
}

// notifyLocked 按注册顺序同步通知订阅者（调用方必须持有 w.mu）。
func (w *Writer) notifyLocked(sev Severity, msg string) {
	for _, sub := range w.subscribers {
		notifyOne(sub.fn, sev, msg)
	}
}

// notifyOne 调用单个订阅回调，隔离 panic。
//
// 设计决策: 回调 panic 被 recover 吞掉，单个失败的订阅者不能中断
// 写入路径，也不能影响其后的订阅者。订阅回调的错误处理是调用方的责任。
func notifyOne(fn SubscriberFunc, sev Severity, msg string) {
	defer func() {
		if r := recover(); r != nil {
			xdbgout.WriteLine("log subscriber panic: {0}", r)
		}
	}()
	fn(sev, msg)
}
