package xdbgout

import (
	"strings"

	"github.com/vaginessa/VideoLibrarian/pkg/util/xfmt"
)

// prefix 是调试输出的固定标签，外部捕获工具（DbgView 等）按它过滤。
const prefix = "DEBUG: "

// render 生成最终输出字符串：前缀 + 位置占位符替换 + 保证换行结尾。
//
// 设计决策: render 独立于构建标签始终参与编译，格式化行为
// 无需 vldebug 标签即可测试；格式化失败时回退到原样输出而非报错，
// 调试通道从不向调用方传播任何失败。
func render(format string, args ...any) string {
	msg, err := xfmt.Format(format, args...)
	if err != nil {
		msg = format
	}
	var sb strings.Builder
	sb.Grow(len(prefix) + len(msg) + 1)
	sb.WriteString(prefix)
	sb.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		sb.WriteByte('\n')
	}
	return sb.String()
}
