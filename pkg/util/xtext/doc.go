// Package xtext 提供多行文本的规范化（Beautify）。
//
// # 概述
//
// Beautify 将任意多行消息整理为适合追加到日志文件的形式：
//
//   - 可选剥离 "//" 行注释（日志写入方不启用，仅供其他调用方使用）
//   - 统一换行符为 '\n'
//   - 制表符展开为两个空格
//   - 去除每行行尾空白
//   - 连续空行压缩为一个
//   - 去除首尾空行
//   - 每行缩进 4 个空格，首行缩进再被去除，使严重级别前缀保持顶格
//
// 首行顶格、续行缩进的排版让一条多行日志在文件中呈现为一个视觉块，
// 便于人工阅读与外部工具按行首前缀切分条目。
package xtext
