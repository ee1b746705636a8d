package languages

// newCLikeLineProfile 构建仅含 // 行注释的 C 系家族。
// 适用于 Go 和 Rust；两者的块注释场景较少，按原定义不提供 Block 模式。
func newCLikeLineProfile() *Profile {
	return &Profile{
		Name:       "c-like-line-only",
		Extensions: []string{".go", ".rs"},
		Inline: compilePatterns(
			`(^[^/\n]*)([ \t]+//[^\n]*$)`,
		),
		FullLine: compilePatterns(
			`^\s*//.*$`,
		),
	}
}
