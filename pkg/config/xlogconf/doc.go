// Package xlogconf 提供日志子系统的配置加载与热更新。
//
// # 概述
//
// xlogconf 基于 koanf 读取 YAML/JSON 配置文件中的 logging 段，
// 解析成强类型的 Settings，再桥接为 xlogfile 的构造选项：
//
//	ld, err := xlogconf.Load("/etc/videolibrarian/config.yaml")
//	if err != nil { ... }
//	s, err := ld.Settings()
//	if err != nil { ... }
//	w, err := xlogfile.New(s.Options()...)
//
// 配置文件示例:
//
//	logging:
//	  path: /var/log/videolibrarian.log
//	  maxSizeMB: 100
//	  redactErrors: true
//	  fileMode: "0600"
//
// 所有键都可省略，缺省值与 xlogfile 的默认行为一致。
//
// # 热更新
//
// Watch 基于 fsnotify 监视配置文件变更，防抖后重载并回调最新的
// Settings。注意 xlogfile.Writer 的参数在构造时固定，热更新的
// 典型用法是在回调中重建 Writer 并 SetDefault 替换全局实例。
package xlogconf
