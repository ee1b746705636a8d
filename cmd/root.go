// Package cmd 提供 cleancomment 的命令行入口与子命令编排。
package cmd

import (
	"cleancomment/internal/languages"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cleancomment",
		Short: "基于正则启发式的源码注释清理工具",
		Long: "cleancomment 按语言家族的注释模式清理源码文件，\n" +
			"默认只去掉代码后的行内注释，--all 模式额外清除整行与跨行块注释，\n" +
			"并提供目录转 Markdown 的汇总报告能力。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newCleanCmd(registry))
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}
