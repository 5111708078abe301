package xlogfile_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vaginessa/VideoLibrarian/pkg/observability/xlogfile"
)

func ExampleWriter_Write() {
	tmpDir, err := os.MkdirTemp("", "xlogfile-example-*")
	if err != nil {
		fmt.Println("创建临时目录失败:", err)
		return
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	w, err := xlogfile.New(
		xlogfile.WithPath(filepath.Join(tmpDir, "app.log")),
		xlogfile.WithMaxSizeMB(100), // 超过 100 MiB 时删除重建
	)
	if err != nil {
		fmt.Println("创建失败:", err)
		return
	}
	defer w.Close()

	if err := w.Write(xlogfile.SeverityInfo, "processed {0} of {1}", 3, 10); err != nil {
		fmt.Println("写入失败:", err)
		return
	}
	fmt.Println("写入成功")
	// Output: 写入成功
}

func ExampleWriter_Subscribe() {
	tmpDir, err := os.MkdirTemp("", "xlogfile-example-*")
	if err != nil {
		fmt.Println("创建临时目录失败:", err)
		return
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	w, err := xlogfile.New(xlogfile.WithPath(filepath.Join(tmpDir, "app.log")))
	if err != nil {
		fmt.Println("创建失败:", err)
		return
	}
	defer w.Close()

	// UI 等组件通过订阅实时镜像日志输出，无需重读文件
	w.Subscribe(func(sev xlogfile.Severity, msg string) {
		fmt.Printf("%s | %s\n", sev, msg)
	})

	_ = w.Write(xlogfile.SeverityError, "boom")
	_ = w.Write(xlogfile.SeverityNone, "plain")
	// Output:
	// Error | boom
	// None | plain
}
