// Package summary 提供“目录转 Markdown 报告”的生成能力。
// 该工具与注释清理管线相互独立，用于把一个目录内全部文本文件
// 汇总成单个 Markdown 文件，便于整体浏览或归档。
package summary

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// unreadablePlaceholder 在文件读取失败时写入报告的占位文案。
const unreadablePlaceholder = "Unable to read file content - might be a binary file."

// Options 表示报告生成的过滤与限制条件。
// 字段可通过 YAML 配置文件覆盖，零值字段回落到默认配置。
type Options struct {
	// BannedPrefixes 目录名前缀黑名单，命中整棵子树跳过。
	BannedPrefixes []string `yaml:"banned_prefixes"`
	// BannedExtensions 文件后缀黑名单（不含点号），命中静默跳过。
	BannedExtensions []string `yaml:"banned_extensions"`
	// MaxFileSizeKB 单文件大小上限，超限文件只记录在跳过清单。
	MaxFileSizeKB int64 `yaml:"max_file_size_kb"`
}

// DefaultOptions 返回默认过滤配置。
// 黑名单覆盖常见的图片、压缩包、二进制和多媒体后缀。
func DefaultOptions() Options {
	return Options{
		BannedPrefixes: []string{"."},
		BannedExtensions: []string{
			"jpg", "png", "jpeg", "webp", "ico", "gif", "bmp", "tiff", "svg",
			"pdf", "zip", "rar", "7z", "tar", "gz",
			"exe", "dll", "so", "dylib", "bin", "dat", "db", "sqlite",
			"mp3", "mp4", "avi", "mov", "wmv", "flv", "mkv", "wav", "aac", "ogg",
			"doc", "docx", "xls", "xlsx", "ppt", "pptx",
		},
		MaxFileSizeKB: 256,
	}
}

// LoadOptionsFile 从 YAML 文件加载配置，未设置的字段保持默认值。
func LoadOptionsFile(path string) (Options, error) {
	options := DefaultOptions()

	raw, err := os.ReadFile(path)
	if err != nil {
		return options, fmt.Errorf("read options file: %w", err)
	}

	var loaded Options
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return options, fmt.Errorf("parse options file: %w", err)
	}

	if len(loaded.BannedPrefixes) > 0 {
		options.BannedPrefixes = loaded.BannedPrefixes
	}
	if len(loaded.BannedExtensions) > 0 {
		options.BannedExtensions = loaded.BannedExtensions
	}
	if loaded.MaxFileSizeKB > 0 {
		options.MaxFileSizeKB = loaded.MaxFileSizeKB
	}

	return options, nil
}

// hasBannedPrefix 判定目录名是否命中前缀黑名单。
func hasBannedPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// isBannedExtension 判定文件后缀是否命中黑名单。
// 比较时去掉点号并不区分大小写。
func isBannedExtension(name string, banned []string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, item := range banned {
		if ext == item {
			return true
		}
	}
	return false
}

// Generate 递归扫描目录并生成 Markdown 报告内容。
// 每个保留文件输出相对路径和围栏代码块；
// 超限文件连同大小追加在报告末尾的跳过清单中。
func Generate(folder string, options Options) (string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return "", fmt.Errorf("stat folder: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", folder)
	}

	entries := make([]string, 0)
	skipped := make([]string, 0)

	walkErr := filepath.WalkDir(folder, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			if path != folder && hasBannedPrefix(entry.Name(), options.BannedPrefixes) {
				return fs.SkipDir
			}
			return nil
		}

		if isBannedExtension(entry.Name(), options.BannedExtensions) {
			return nil
		}

		relativePath, relErr := filepath.Rel(folder, path)
		if relErr != nil {
			relativePath = path
		}
		relativePath = filepath.ToSlash(relativePath)

		fileInfo, infoErr := entry.Info()
		if infoErr != nil {
			return infoErr
		}

		sizeKB := float64(fileInfo.Size()) / 1024
		if sizeKB > float64(options.MaxFileSizeKB) {
			skipped = append(skipped, fmt.Sprintf("%s (%.2f KB)", relativePath, sizeKB))
			return nil
		}

		entries = append(entries, fmt.Sprintf("%s\n```\n%s\n```\n", relativePath, readFileContent(path)))
		return nil
	})
	if walkErr != nil {
		return "", fmt.Errorf("walk folder: %w", walkErr)
	}

	if len(skipped) > 0 {
		entries = append(entries, fmt.Sprintf("\n## Files Skipped (Size > %dKB)\n", options.MaxFileSizeKB))
		for _, item := range skipped {
			entries = append(entries, fmt.Sprintf("- %s", item))
		}
	}

	return strings.Join(entries, "\n"), nil
}

// readFileContent 读取文件内容用于写入报告。
// 非法 UTF-8 字节按替换符降级，读取失败时返回占位文案。
func readFileContent(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return unreadablePlaceholder
	}
	return strings.ToValidUTF8(string(raw), "�")
}

// WriteReport 生成报告并写入目标文件。
// outputPath 为空时默认写到 <folder>.md，返回实际写入的路径。
func WriteReport(folder string, outputPath string, options Options) (string, error) {
	content, err := Generate(folder, options)
	if err != nil {
		return "", err
	}

	if outputPath == "" {
		outputPath = filepath.Clean(folder) + ".md"
	}

	if writeErr := os.WriteFile(outputPath, []byte(content), 0o644); writeErr != nil {
		return "", fmt.Errorf("write report file: %w", writeErr)
	}
	return outputPath, nil
}
