// Package model 定义 cleancomment 的核心数据模型。
// 这些结构会被清理服务、输出层和命令层共同使用。
package model

// Status 表示单文件处理结果状态。
type Status string

const (
	// StatusModified 文件已被改写。
	StatusModified Status = "modified"
	// StatusWouldModify dry-run 模式下文件本应被改写。
	StatusWouldModify Status = "would modify"
	// StatusUnchanged 清理后内容与原文一致，未写入。
	StatusUnchanged Status = "no changes needed"
	// StatusSkippedUnsupported 后缀不在注册表中，结构性跳过而非错误。
	StatusSkippedUnsupported Status = "skipped (unsupported type)"
	// StatusSkippedDecode 文件字节不是合法文本，原文保持不动。
	StatusSkippedDecode Status = "skipped (decode error)"
	// StatusError 处理或写入过程中出现其他故障，仅影响该文件。
	StatusError Status = "error"
)

// FileOutcome 表示单文件处理结果。
// Message 仅在 StatusError 时携带具体错误信息。
type FileOutcome struct {
	Path    string `json:"path"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// CleanTotals 表示本次运行的汇总计数。
type CleanTotals struct {
	Files       int64 `json:"files"`
	Modified    int64 `json:"modified"`
	WouldModify int64 `json:"would_modify"`
	Unchanged   int64 `json:"unchanged"`
	Skipped     int64 `json:"skipped"`
	Errors      int64 `json:"errors"`
}

// AddOutcome 将一个文件结果累加到汇总中。
func (t *CleanTotals) AddOutcome(outcome FileOutcome) {
	t.Files++

	switch outcome.Status {
	case StatusModified:
		t.Modified++
	case StatusWouldModify:
		t.WouldModify++
	case StatusUnchanged:
		t.Unchanged++
	case StatusSkippedUnsupported, StatusSkippedDecode:
		t.Skipped++
	case StatusError:
		t.Errors++
	}
}

// CleanResult 是 clean 命令的完整输出模型。
// 单文件失败只记录在自己的 FileOutcome 里，整批运行不会中断。
type CleanResult struct {
	Paths  []string      `json:"paths"`
	DryRun bool          `json:"dry_run"`
	Files  []FileOutcome `json:"files"`
	Total  CleanTotals   `json:"total"`
}
