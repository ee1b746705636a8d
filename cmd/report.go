package cmd

import (
	"fmt"
	"strings"

	"cleancomment/internal/summary"

	"github.com/spf13/cobra"
)

// reportOptions 存放 report 命令的可配置参数。
type reportOptions struct {
	output string
	config string
}

// newReportCmd 创建 report 子命令。
// 示例：
//
//	cleancomment report ./project
//	cleancomment report ./project --output project.md --config filters.yaml
func newReportCmd() *cobra.Command {
	var options reportOptions

	reportCmd := &cobra.Command{
		Use:   "report [folder]",
		Short: "递归扫描目录并生成 Markdown 汇总报告",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summaryOptions := summary.DefaultOptions()

			configPath := strings.TrimSpace(options.config)
			if configPath != "" {
				loaded, err := summary.LoadOptionsFile(configPath)
				if err != nil {
					return err
				}
				summaryOptions = loaded
			}

			outputPath, err := summary.WriteReport(args[0], strings.TrimSpace(options.output), summaryOptions)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
			return nil
		},
	}

	reportCmd.Flags().StringVar(&options.output, "output", "", "报告输出路径，默认写到 <folder>.md")
	reportCmd.Flags().StringVar(&options.config, "config", "", "过滤配置 YAML 文件路径")

	return reportCmd
}
