package xproc

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// osExecutable 是 os.Executable 的包级变量，支持测试中 mock。
//
// 设计决策: 使用包级变量 mock 是 Go 生态中广泛使用的测试模式，
// 对于包规模极小的场景，此方案的简洁性优于依赖注入。
var osExecutable = os.Executable

// 缓存的进程标识信息，首次访问时解析一次，之后无系统调用开销。
var (
	identityOnce sync.Once
	exePathValue string
	logPathValue string
)

// ProcessID 返回当前进程 ID。
func ProcessID() int {
	return os.Getpid()
}

// baseName 提取路径的基础文件名。
// 对 [filepath.Base] 返回的特殊值（"."、".."、路径分隔符）返回空字符串。
func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// resolveExecutablePath 解析可执行文件的完整路径。
// 优先使用 [os.Executable]（不受 os.Args 修改影响），失败时回退到 os.Args[0]。
func resolveExecutablePath() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		return exe
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return ""
	}
	if abs, err := filepath.Abs(os.Args[0]); err == nil {
		return abs
	}
	return os.Args[0]
}

// replaceExt 将路径的扩展名替换为 newExt（含点，如 ".log"）。
// 无扩展名时直接追加。
func replaceExt(path, newExt string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + newExt
}

// resolveIdentity 执行实际的进程标识解析并填充缓存。
func resolveIdentity() {
	exePathValue = resolveExecutablePath()
	if exePathValue == "" {
		return
	}
	logPathValue = replaceExt(exePathValue, ".log")
}

// ExecutablePath 返回当前可执行文件的完整路径。
// 结果在首次调用时缓存（包括空字符串），后续调用直接返回缓存值。
//
// 设计决策: 返回 string 而非 (string, error)。典型用途是派生日志路径、
// 进程标识等"尽力获取"场景，空字符串本身已是充分的"失败"信号；
// 失败结果同样被永久缓存，不做重试——在标准 Go 进程中
// [os.Executable] 与 os.Args[0] 同时不可用的概率可以忽略。
func ExecutablePath() string {
	identityOnce.Do(resolveIdentity)
	return exePathValue
}

// ProcessName 返回当前进程名称（不含路径）。
// 解析来源与缓存策略同 [ExecutablePath]。
func ProcessName() string {
	return baseName(ExecutablePath())
}

// LogPath 返回与当前可执行文件同目录、同名、扩展名替换为 ".log" 的路径。
// 例如 /opt/app/videolibrarian → /opt/app/videolibrarian.log。
//
// 可执行文件路径不可解析时返回空字符串，由调用方决定回退策略。
func LogPath() string {
	identityOnce.Do(resolveIdentity)
	return logPathValue
}
