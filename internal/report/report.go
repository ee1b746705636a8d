// Package report 提供 cleancomment 的输出能力。
// 当前实现支持逐文件状态行的 table 控制台格式和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"cleancomment/internal/model"
)

// PrintTable 以表格展示逐文件处理状态与汇总计数。
func PrintTable(writer io.Writer, result model.CleanResult) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "FILE\tSTATUS"); err != nil {
		return err
	}
	for _, outcome := range result.Files {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", outcome.Path, statusText(outcome)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(tw, "\nFILES\tMODIFIED\tWOULD MODIFY\tUNCHANGED\tSKIPPED\tERRORS"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(
		tw,
		"%d\t%d\t%d\t%d\t%d\t%d\n",
		result.Total.Files,
		result.Total.Modified,
		result.Total.WouldModify,
		result.Total.Unchanged,
		result.Total.Skipped,
		result.Total.Errors,
	); err != nil {
		return err
	}

	return tw.Flush()
}

// statusText 组装单文件状态文案，错误状态附带具体信息。
func statusText(outcome model.FileOutcome) string {
	if outcome.Status == model.StatusError {
		return fmt.Sprintf("error: %s", outcome.Message)
	}
	return string(outcome.Status)
}

// PrintJSON 把处理结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.CleanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, result model.CleanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
