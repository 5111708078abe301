// Package xfile 提供日志路径相关的文件系统工具。
//
// # 路径净化
//
// SanitizePath 只做格式净化（空路径、空字节、相对路径穿越、目录路径），
// 不做目录隔离。日志路径来自可执行文件路径派生或运维配置，属于可信输入，
// 净化的目的是尽早暴露拼接错误而非对抗攻击者。
//
// 路径穿越检测使用精确的路径段匹配，只有 ".." 作为独立路径段时才被拒绝，
// 以 ".." 开头的合法文件名（如 "..config"）不会被误判。
//
// # 空字节防护
//
// 包含空字节（\x00）的路径被拒绝：Linux 内核在 VFS 层会在空字节处截断路径,
// 导致 Go 代码与操作系统实际操作的路径不一致。
//
// # 目录创建
//
// EnsureDir 确保文件的父目录存在（默认权限 0750，符合 gosec G301 建议）。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断。
package xfile
