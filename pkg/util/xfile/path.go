package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// containsNullByte 检测路径是否包含空字节。
func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 检测路径中是否包含 ".." 作为独立路径段。
// 同时将 '/' 和 '\' 视为分隔符，以检测 Windows 风格的穿越写法（即使在 Linux 上）。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}

// SanitizePath 对文件路径进行格式净化和规范化。
//
// 功能：
//   - 路径规范化（消除 "." 和冗余斜杠）
//   - 阻止相对路径穿越（如 "../etc/passwd"）
//   - 拒绝空路径、空字节和显式目录路径（尾随 "/" 或 "\"）
//
// 本函数接受绝对路径；绝对路径中的 ".." 会被 filepath.Clean 正常解析
// （如 "/var/log/../etc" -> "/etc"，这是合法路径而非穿越）。
//
// 返回规范化后的路径，或错误（路径格式无效时）。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}

	if containsNullByte(filename) {
		return "", fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}

	// 尾随分隔符表示目录，必须在 filepath.Clean 之前检查（Clean 会移除尾部斜杠）。
	// 同时拒绝尾部 '\'：Linux 上以反斜杠结尾的文件名理论上合法但几乎总是
	// 跨平台拼接错误。
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	cleaned := filepath.Clean(filename)

	// 不用 strings.Contains(cleaned, "..")：会误伤合法文件名（如 "app..2024.log"）。
	// 按路径段精确判断，只有某个 segment 恰好是 ".." 才拒绝。
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("path traversal in filename: %w", ErrPathTraversal)
	}

	base := filepath.Base(cleaned)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}

	return cleaned, nil
}
