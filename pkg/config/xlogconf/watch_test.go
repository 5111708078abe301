package xlogconf_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaginessa/VideoLibrarian/pkg/config/xlogconf"
)

func TestWatch(t *testing.T) {
	t.Run("文件变更触发回调", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "logging:\n  maxSizeMB: 10\n")
		ld, err := xlogconf.Load(path)
		require.NoError(t, err)

		ch := make(chan xlogconf.Settings, 8)
		w, err := xlogconf.Watch(ld, func(s xlogconf.Settings, err error) {
			if err == nil {
				ch <- s
			}
		}, xlogconf.WithDebounce(30*time.Millisecond))
		require.NoError(t, err)
		t.Cleanup(func() { _ = w.Stop() })

		w.StartAsync()
		// 给 watcher 一点时间进入事件循环
		time.Sleep(100 * time.Millisecond)

		require.NoError(t, os.WriteFile(path,
			[]byte("logging:\n  maxSizeMB: 77\n"), 0o600))

		select {
		case s := <-ch:
			assert.Equal(t, 77, s.MaxSizeMB)
		case <-time.After(5 * time.Second):
			t.Fatal("未在期限内收到配置变更回调")
		}
	})

	t.Run("重载失败传递错误", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "logging:\n  maxSizeMB: 10\n")
		ld, err := xlogconf.Load(path)
		require.NoError(t, err)

		errCh := make(chan error, 8)
		w, err := xlogconf.Watch(ld, func(_ xlogconf.Settings, err error) {
			if err != nil {
				errCh <- err
			}
		}, xlogconf.WithDebounce(30*time.Millisecond))
		require.NoError(t, err)
		t.Cleanup(func() { _ = w.Stop() })

		w.StartAsync()
		time.Sleep(100 * time.Millisecond)

		require.NoError(t, os.WriteFile(path, []byte("logging: [broken"), 0o600))

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, xlogconf.ErrParseFailed)
		case <-time.After(5 * time.Second):
			t.Fatal("未在期限内收到重载失败回调")
		}
	})

	t.Run("字节数据不支持监视", func(t *testing.T) {
		ld, err := xlogconf.LoadBytes([]byte("{}"), xlogconf.FormatJSON)
		require.NoError(t, err)
		_, err = xlogconf.Watch(ld, nil)
		assert.Error(t, err)
	})

	t.Run("nil loader", func(t *testing.T) {
		_, err := xlogconf.Watch(nil, nil)
		assert.Error(t, err)
	})

	t.Run("Stop 幂等", func(t *testing.T) {
		ld, err := xlogconf.Load(writeConfig(t, "config.yaml", "logging: {}\n"))
		require.NoError(t, err)

		w, err := xlogconf.Watch(ld, nil)
		require.NoError(t, err)

		w.StartAsync()
		assert.NoError(t, w.Stop())
		assert.NoError(t, w.Stop())
	})
}
