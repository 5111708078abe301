package xlogfile

import "errors"

// 配置校验错误
var (
	// ErrEmptyPath 未显式指定日志路径且无法从可执行文件路径派生
	ErrEmptyPath = errors.New("xlogfile: log path is required")

	// ErrInvalidMaxSize MaxSizeMB 值无效（必须在 1~10240 范围内）
	ErrInvalidMaxSize = errors.New("xlogfile: invalid MaxSizeMB")

	// ErrInvalidFileMode FileMode 包含非权限位（仅允许低 9 位 0000~0777）
	ErrInvalidFileMode = errors.New("xlogfile: invalid FileMode")

	// ErrUnknownSeverity 未知的严重级别名称或数值
	ErrUnknownSeverity = errors.New("xlogfile: unknown severity")
)

// 运行时错误
var (
	// ErrIO 文件系统操作失败（打开/追加/落盘/删除被拒或磁盘满）。
	// 具体原因通过 errors.Unwrap 链获取，调用方不做重试——
	// 日志通常是尽力而为，是否视为致命由宿主应用决定。
	ErrIO = errors.New("xlogfile: file operation failed")
)
