// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件操作工具，路径净化、目录创建
//   - xfmt: 位置占位符格式化（{0}、{1} 风格）
//   - xproc: 进程身份查询，PID、可执行文件路径、日志路径推导
//   - xtext: 多行文本规整，缩进与空行折叠
//
// 设计原则：
//   - 无外部副作用的纯工具函数优先
//   - 安全处理路径遍历
//   - 跨平台兼容
package util
