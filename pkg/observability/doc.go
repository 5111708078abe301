// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlogfile: 进程级追加日志文件，严重级别前缀、会话分隔符、
//     超限删除式滚动、同步有序订阅通知
//
// 设计原则：
//   - 日志文件是事实记录：每次写入后立即 flush
//   - 单一进程级互斥锁串行化打开、滚动、追加与通知
package observability
