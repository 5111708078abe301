package xlogconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCallback 在配置文件变更并重载后调用。
// 重载或解析失败时 err 非 nil，此时 s 为零值。
type WatchCallback func(s Settings, err error)

// Watcher 监视配置文件变更并自动重载日志设置。
type Watcher struct {
	loader   *Loader
	watcher  *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	running  bool
	timer    *time.Timer // debounce 定时器，Stop() 时需要取消
}

// WatchOption 监视器配置选项。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

func defaultWatchOptions() *watchOptions {
	return &watchOptions{
		debounce: 100 * time.Millisecond,
	}
}

// WithDebounce 设置防抖时间，窗口内的多次变更只触发一次重载。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// Watch 创建配置文件监视器。
//
// 文件变更防抖后调用 Reload 并提取最新 Settings 回调通知。
// 只支持从文件创建的 Loader。返回的 Watcher 需调用 Start 或
// StartAsync 开始监视，Stop 停止。
//
// 典型用法是在回调中重建 Writer 并替换全局实例:
//
//	w, _ := xlogconf.Watch(ld, func(s xlogconf.Settings, err error) {
//	    if err != nil {
//	        return
//	    }
//	    if nw, err := xlogfile.New(s.Options()...); err == nil {
//	        xlogfile.SetDefault(nw)
//	    }
//	})
//	w.StartAsync()
//	defer w.Stop()
func Watch(ld *Loader, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if ld == nil {
		return nil, fmt.Errorf("xlogconf: nil loader")
	}
	if ld.fromBytes {
		return nil, fmt.Errorf("xlogconf: cannot watch config created from bytes")
	}
	if ld.path == "" {
		return nil, ErrEmptyPath
	}

	options := defaultWatchOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xlogconf: failed to create watcher: %w", err)
	}

	// 监视配置文件所在目录而非文件本身，编辑器保存时可能
	// 先删除再创建，直接监视文件会丢失事件。
	dir := filepath.Dir(ld.path)
	if err := fsWatcher.Add(dir); err != nil {
		closeErr := fsWatcher.Close()
		return nil, errors.Join(
			fmt.Errorf("xlogconf: failed to watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		loader:   ld,
		watcher:  fsWatcher,
		callback: callback,
		debounce: options.debounce,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start 启动监视。此方法阻塞，通常在 goroutine 中调用。
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.run()
}

// StartAsync 在后台 goroutine 中启动监视，立即返回。
// 先设置 running 标志再启动 goroutine，避免与 Stop 竞态。
func (w *Watcher) StartAsync() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run()
}

// Stop 停止监视。幂等。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	// 停止 debounce 定时器，防止 Stop 后仍触发回调
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	w.cancel()
	w.running = false
	return w.watcher.Close()
}

func (w *Watcher) run() {
	filename := filepath.Base(w.loader.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.handleError(err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}

	// Write 直接修改，Create 新建文件，Rename 对应
	// vim/emacs 写临时文件后原子替换的模式。
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		if err := w.loader.Reload(); err != nil {
			w.notify(Settings{}, err)
			return
		}
		w.notify(w.loader.Settings())
	})
}

func (w *Watcher) handleError(err error) {
	w.notify(Settings{}, fmt.Errorf("xlogconf: watch error: %w", err))
}

func (w *Watcher) notify(s Settings, err error) {
	if w.callback != nil {
		w.callback(s, err)
	}
}
