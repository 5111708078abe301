// Package xfmt 提供按位置索引的占位符格式化（{0}、{1}、…）。
//
// # 概述
//
// 日志消息采用按位置索引的占位符语法，与历史日志文件的格式保持兼容：
//
//	msg, err := xfmt.Format("{0} of {1}", 3, 10) // "3 of 10"
//
// 转义规则：字面量大括号写作 "{{" 和 "}}"。
//
// # 错误
//
//   - [ErrArgIndex]: 占位符引用了不存在的参数索引
//   - [ErrBadFormat]: 占位符语法非法（未闭合、索引非数字）
//
// 两者都是哨兵错误，可通过 errors.Is 判断。
package xfmt
