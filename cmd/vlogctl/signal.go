package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// setupSignalHandler 设置信号处理。
// 第一次信号优雅取消，第二次信号强制退出（130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
