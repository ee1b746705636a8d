package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"cleancomment/internal/cleaner"
	"cleancomment/internal/engine"
	"cleancomment/internal/languages"
	"cleancomment/internal/report"

	"github.com/spf13/cobra"
)

// cleanOptions 存放 clean 命令的可配置参数。
type cleanOptions struct {
	removeAll bool
	dryRun    bool
	format    string
	output    string
	workers   int
}

// newCleanCmd 创建 clean 子命令。
// 示例：
//
//	cleancomment clean main.py
//	cleancomment clean ./project --all --dry-run
//	cleancomment clean ./project --format json --output result.json
func newCleanCmd(registry *languages.Registry) *cobra.Command {
	options := cleanOptions{
		format:  "table",
		output:  "output.json",
		workers: runtime.NumCPU(),
	}

	cleanCmd := &cobra.Command{
		Use:   "clean [path]...",
		Short: "清理文件或目录中的源码注释",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			if options.workers <= 0 {
				return errors.New("workers must be greater than 0")
			}

			mode := engine.ModeInlineOnly
			if options.removeAll {
				mode = engine.ModeRemoveAll
			}

			service := cleaner.NewService(registry, options.workers)
			result, err := service.CleanPaths(args, cleaner.Options{
				Mode:   mode,
				DryRun: options.dryRun,
			})
			if err != nil {
				return err
			}

			switch format {
			case "table":
				return report.PrintTable(cmd.OutOrStdout(), result)
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "output.json"
				}
				if err := report.WriteJSONFile(outputPath, result); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
				return nil
			default:
				return errors.New("unsupported format")
			}
		},
	}

	cleanCmd.Flags().BoolVar(&options.removeAll, "all", false, "同时清除整行注释与跨行块注释，默认只清理行内注释")
	cleanCmd.Flags().BoolVar(&options.dryRun, "dry-run", false, "只报告会发生的改动，不写入文件")
	cleanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	cleanCmd.Flags().StringVar(&options.output, "output", options.output, "json 导出文件路径，默认 output.json")
	cleanCmd.Flags().IntVar(&options.workers, "workers", options.workers, "并发 worker 数量")

	return cleanCmd
}
