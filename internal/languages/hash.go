package languages

// newHashProfile 构建 hash 注释家族。
// 适用于 Python、Shell、Ruby、YAML 等只使用 # 行注释的语言。
// 该家族没有块注释语法；""" 或 ''' 可能是合法代码，因此不做处理。
func newHashProfile() *Profile {
	return &Profile{
		Name:       "hash-comment",
		Extensions: []string{".py", ".sh", ".rb", ".yml", ".yaml"},
		Inline: compilePatterns(
			`(^[^#\n]*)([ \t]+#[^\n]*$)`,
		),
		FullLine: compilePatterns(
			`^\s*#.*$`,
		),
	}
}
