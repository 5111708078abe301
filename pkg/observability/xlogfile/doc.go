// Package xlogfile 提供进程级滚动追加日志（LogWriter）。
//
// # 概述
//
// Writer 管理单个追加式日志文件的完整生命周期：
//
//   - 惰性打开：首次 Write 时才打开（或创建）文件，并写入一条带本地时间的
//     会话分隔行
//   - 按大小滚动：打开前若既有文件超过阈值（默认 100 MiB），整个文件被删除，
//     不保留历史（删除而非归档是刻意保留的行为）
//   - 严重级别前缀：非 None 级别的消息带 "Error: "、"Info: " 等前缀
//   - 多行规范化：消息经 xtext.Beautify 整理（制表符展开、行尾空白去除、
//     空行压缩、续行缩进）
//   - 立即落盘：每次写入后强制 Sync，宁可牺牲吞吐也保证持久性
//   - 订阅广播：每条成功写入的消息按注册顺序同步通知所有订阅者，
//     供 UI 等组件实时镜像日志输出
//
// # 并发模型
//
// 单个互斥锁串行化打开/滚动/写入/关闭/通知的完整序列，
// 文件中消息的顺序等于锁的获取顺序。订阅回调在持锁状态下同步执行，
// 回调内不得再调用同一 Writer 的任何方法。
//
// # 生命周期
//
// 文件句柄跨多次 Write 保持打开（摊销打开/关闭成本），直到显式 Close
// 或进程退出。Close 幂等：已关闭时为无操作，不通知订阅者。
// Close 之后的下一次 Write 会重新检查滚动条件并重新打开文件。
//
// # 错误
//
// 文件系统失败包装为 [ErrIO] 向调用方传播，不做内部重试，也不记录
// "日志失败的日志"（那会递归）。占位符替换失败传播 xfmt 的哨兵错误。
//
// # 全局 Writer
//
// 适用于宿主应用的单日志文件场景：[Default]、[SetDefault]、[ResetDefault]
// 以及包级 [Write]、[Close]、[Subscribe]、[Unsubscribe] 便利函数。
package xlogfile
