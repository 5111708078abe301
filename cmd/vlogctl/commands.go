package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vaginessa/VideoLibrarian/pkg/config/xlogconf"
	"github.com/vaginessa/VideoLibrarian/pkg/observability/xlogfile"
	"github.com/vaginessa/VideoLibrarian/pkg/util/xproc"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createWriteCommand(),
		createPathCommand(),
		createSettingsCommand(),
		createClearCommand(),
	}
}

// createWriteCommand 创建 write 子命令。
func createWriteCommand() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Aliases:   []string{"w"},
		Usage:     "向日志文件写入一行",
		ArgsUsage: "<format> [args...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "severity",
				Aliases: []string{"s"},
				Usage:   "级别 (none/success/error/warning/info/verbose)",
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "同时把写入的条目镜像到标准输出",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return cmdWrite(ctx, s, cmd.String("severity"),
				cmd.Bool("echo"), cmd.Args().Slice())
		},
	}
}

// createPathCommand 创建 path 子命令。
func createPathCommand() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "打印解析后的日志文件路径",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			fmt.Println(resolvePath(s))
			return nil
		},
	}
}

// createSettingsCommand 创建 settings 子命令。
func createSettingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "打印生效的日志设置",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			fmt.Printf("path:         %s\n", resolvePath(s))
			fmt.Printf("maxSizeMB:    %d\n", s.MaxSizeMB)
			fmt.Printf("redactErrors: %t\n", s.RedactErrors)
			fmt.Printf("fileMode:     %s\n", s.FileMode)
			return nil
		},
	}
}

// createClearCommand 创建 clear 子命令。
func createClearCommand() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "删除日志文件（下次写入重新开始会话）",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return cmdClear(resolvePath(s))
		},
	}
}

// resolveSettings 合并配置文件与命令行覆盖。
// 优先级：--log-path > 配置文件 logging.path > 默认推导。
func resolveSettings(cmd *cli.Command) (xlogconf.Settings, error) {
	s := xlogconf.DefaultSettings()

	if cfgPath := cmd.String("config"); cfgPath != "" {
		ld, err := xlogconf.Load(cfgPath)
		if err != nil {
			return xlogconf.Settings{}, err
		}
		if s, err = ld.Settings(); err != nil {
			return xlogconf.Settings{}, err
		}
	}

	if p := cmd.String("log-path"); p != "" {
		s.Path = p
	}
	return s, nil
}

// resolvePath 返回最终的日志文件路径。
func resolvePath(s xlogconf.Settings) string {
	if s.Path != "" {
		return s.Path
	}
	return xproc.LogPath()
}

// cmdWrite 写入一行日志。
func cmdWrite(ctx context.Context, s xlogconf.Settings, severityName string, echo bool, args []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(args) == 0 {
		return &usageError{msg: "write 命令需要指定格式字符串"}
	}

	sev, err := xlogfile.ParseSeverity(severityName)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("未知级别 %q", severityName)}
	}

	w, err := xlogfile.New(s.Options()...)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if echo {
		w.Subscribe(func(_ xlogfile.Severity, message string) {
			fmt.Println(message)
		})
	}

	format := args[0]
	fmtArgs := make([]any, 0, len(args)-1)
	for _, a := range args[1:] {
		fmtArgs = append(fmtArgs, a)
	}
	return w.Write(sev, format, fmtArgs...)
}

// cmdClear 删除日志文件。文件不存在视为已清空。
func cmdClear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除日志文件失败: %w", err)
	}
	return nil
}
