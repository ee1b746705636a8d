// Package engine 实现注释清理的纯文本转换管线。
// 管线不做任何 IO，输入输出都是完整文件内容字符串，
// 同一输入在任意模式下连续应用两次结果不变（幂等）。
package engine

import (
	"strings"

	"cleancomment/internal/languages"
)

// Mode 表示清理模式。
type Mode int

const (
	// ModeInlineOnly 只去掉代码之后的行内注释，整行注释保持不动。
	ModeInlineOnly Mode = iota
	// ModeRemoveAll 额外去掉整行注释和跨行块注释，并收敛空行。
	ModeRemoveAll
)

// Transform 对单个文件内容执行注释清理。
//
// 处理顺序：
// 1. remove-all 模式下先在未分行的完整缓冲区上删除跨行块注释，
//    分行之后无法再还原注释跨越的范围
// 2. 逐行执行整行注释判定（仅 remove-all）与行内注释剥离
// 3. remove-all 模式下收敛空行
// 4. 按原文恢复末尾换行约定
func Transform(content string, profile *languages.Profile, mode Mode) string {
	processed := content

	if mode == ModeRemoveAll && profile.HasBlock() {
		processed = profile.Block.ReplaceAllString(processed, "")
	}

	lines := strings.Split(processed, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		if mode == ModeRemoveAll && isFullLineComment(profile, line) {
			// 整行注释替换为空行而不是删除，保持此阶段的行号不变。
			result = append(result, "")
			continue
		}
		result = append(result, stripInline(profile, line, mode))
	}

	if mode == ModeRemoveAll {
		result = collapseBlankLines(result)
	}

	return restoreTrailingNewline(content, strings.Join(result, "\n"))
}

// isFullLineComment 判定去除首尾空白后的整行是否为注释。
func isFullLineComment(profile *languages.Profile, line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, pattern := range profile.FullLine {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// stripInline 迭代剥离行内注释直到不动点。
//
// 同一家族可能定义多种注释标记（如 PHP 的 //、# 与 /* */），
// 剥掉一种标记后可能暴露出另一种，因此需要反复扫描。
// 每次成功替换都会缩短行文本，无进展即终止，循环必然收敛。
func stripInline(profile *languages.Profile, line string, mode Mode) string {
	current := line
	previous := ""

	for previous != current {
		previous = current
		for _, pattern := range profile.Inline {
			match := pattern.FindStringSubmatch(current)
			if match == nil {
				continue
			}
			codePart := match[1]

			// inline-only 守卫：代码组去空白后为空说明该“行内注释”
			// 前面只有空白，实为整行注释，inline-only 模式绝不能删它，
			// 那是 remove-all 的职责。此规则必须显式保留，
			// 不能退化为循环退出条件的副作用。
			if mode == ModeRemoveAll || strings.TrimSpace(codePart) != "" {
				current = strings.TrimRight(codePart, " \t\n\r\f\v")
			}
		}
	}

	return current
}

// collapseBlankLines 在 remove-all 模式下做三段空行收敛。
// 收敛结果允许为空切片（文件只剩注释时），
// 末尾换行约定由 restoreTrailingNewline 统一恢复。
func collapseBlankLines(lines []string) []string {
	// 第一段：仅含空白字符的行归一化为真正的空串。
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			normalized = append(normalized, "")
			continue
		}
		normalized = append(normalized, line)
	}

	// 第二段：连续空行最多保留一个，绝不连续输出两个空行。
	collapsed := make([]string, 0, len(normalized))
	for _, line := range normalized {
		if line != "" {
			collapsed = append(collapsed, line)
			continue
		}
		if len(collapsed) == 0 || collapsed[len(collapsed)-1] != "" {
			collapsed = append(collapsed, "")
		}
	}

	// 第三段：去掉头部全部空行，再去掉尾部空行（至少保留一行）。
	for len(collapsed) > 0 && collapsed[0] == "" {
		collapsed = collapsed[1:]
	}
	for len(collapsed) > 1 && collapsed[len(collapsed)-1] == "" {
		collapsed = collapsed[:len(collapsed)-1]
	}

	return collapsed
}

// restoreTrailingNewline 按原文恢复输出的末尾换行约定。
//
// 规则：
// - 原文是空串或单个换行符时为退化不动点，原样返回
// - 输出非空时，末尾换行有无向原文对齐
// - 输出为空但原文以换行结尾时，返回单个换行符：
//   文件内容被清空但仍以行终止符收尾，与真正的零字节文件区分
func restoreTrailingNewline(original string, joined string) string {
	if original == "" || original == "\n" {
		return original
	}

	originalHadNewline := strings.HasSuffix(original, "\n")

	if joined != "" {
		if originalHadNewline && !strings.HasSuffix(joined, "\n") {
			return joined + "\n"
		}
		if !originalHadNewline && strings.HasSuffix(joined, "\n") {
			return strings.TrimRight(joined, "\n")
		}
		return joined
	}

	if originalHadNewline {
		return "\n"
	}
	return ""
}
