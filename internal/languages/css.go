package languages

import "regexp"

// newCSSProfile 构建 CSS 注释家族，仅支持 /* */。
func newCSSProfile() *Profile {
	return &Profile{
		Name:       "css-like",
		Extensions: []string{".css"},
		Inline: compilePatterns(
			`(^[^/\n]*)([ \t]+/\*.*?\*/[ \t]*$)`,
		),
		FullLine: compilePatterns(
			`^\s*/\*.*?\*/\s*$`,
		),
		Block: regexp.MustCompile(`(?s)/\*.*?\*/`),
	}
}
