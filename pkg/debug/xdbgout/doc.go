// Package xdbgout 提供最低层的调试输出通道（DebugChannel）。
//
// # 概述
//
// xdbgout 面向高频跟踪输出：不写滚动日志文件（避免 I/O 成本与文件争用）、
// 无订阅者、无外部可观测性，单向 fire-and-forget。
//
//	xdbgout.WriteLine("cache miss for {0}", key)
//
// 输出带固定 "DEBUG: " 前缀并保证以换行结尾，便于外部捕获工具过滤。
//
// # 编译期开关
//
// 仅在携带 vldebug 构建标签时编译进真实实现：
//
//	go build -tags vldebug ./...
//
// 不带标签的发布构建中 WriteLine 是空函数，调用被编译器整体消除，
// 零运行时开销（不是运行时开关）。
//
// # 输出策略
//
// 进程启动时一次性解析输出策略，此后不再改变：
//
//   - 检测到调试器（Linux: /proc/self/status 的 TracerPid；
//     Windows: kernel32 IsDebuggerPresent）时使用调试器跟踪通道
//   - 否则使用操作系统调试字符串通道（Windows: OutputDebugStringW；
//     其他平台: 标准错误）
//
// 两种通道能力等价，对调用方不可区分。
//
// # 错误处理
//
// 本包从不报错：底层写入失败被吞掉。这是尽力而为的诊断辅助，
// 不是事实记录（事实记录走 xlogfile）。
package xdbgout
