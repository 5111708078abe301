package xfmt

import "errors"

// 格式化错误
var (
	// ErrArgIndex 占位符引用了不存在的参数索引
	ErrArgIndex = errors.New("xfmt: argument index out of range")

	// ErrBadFormat 占位符语法非法（未闭合的 '{'、索引非数字）
	ErrBadFormat = errors.New("xfmt: malformed placeholder")
)
