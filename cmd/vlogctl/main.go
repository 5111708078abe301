// vlogctl 是 VideoLibrarian 日志子系统的命令行工具。
//
// 用法:
//
//	vlogctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     配置文件路径（YAML/JSON，读取 logging 段）
//	-p, --log-path   日志文件路径（覆盖配置文件与默认推导）
//
// 命令:
//
//	write -s <级别> <格式> [参数...]   向日志文件写入一行
//	path                               打印解析后的日志文件路径
//	settings                           打印生效的日志设置
//	clear                              删除日志文件（下次写入重新开始会话）
//	help                               显示帮助信息
//
// 路径解析优先级：--log-path > 配置文件 logging.path > 可执行文件
// 路径换 .log 扩展名。
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（I/O 错误等）
//	2: 参数错误（未知级别、格式错误、未知命令等）
//
// 示例:
//
//	vlogctl write -s info "scan complete: {0} files" 1234
//	vlogctl -c /etc/videolibrarian/config.yaml write -s error "mount failed"
//	vlogctl path
//	vlogctl clear
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "vlogctl",
		Usage:   "VideoLibrarian 日志子系统命令行工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（YAML/JSON）",
			},
			&cli.StringFlag{
				Name:    "log-path",
				Aliases: []string{"p"},
				Usage:   "日志文件路径（覆盖配置文件）",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"VideoLibrarian Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// isCLIUsageError 识别 urfave/cli 框架产生的参数解析错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for")
}
