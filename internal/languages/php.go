package languages

import "regexp"

// newPHPProfile 构建 PHP 注释家族。
// PHP 同时支持 //、# 和 /* */ 三种注释；行内模式的代码组排除
// / 和 # 两类起始字符，避免三种模式互相吞并。
// 只有 /* */ 会构成跨行块注释。
func newPHPProfile() *Profile {
	return &Profile{
		Name:       "php-like",
		Extensions: []string{".php"},
		Inline: compilePatterns(
			`(^[^/\n#]*)([ \t]+//[^\n]*$)`,
			`(^[^/\n#]*)([ \t]+#[^\n]*$)`,
			`(^[^/\n#]*)([ \t]+/\*.*?\*/[ \t]*$)`,
		),
		FullLine: compilePatterns(
			`^\s*//.*$`,
			`^\s*#.*$`,
			`^\s*/\*.*?\*/\s*$`,
		),
		Block: regexp.MustCompile(`(?s)/\*.*?\*/`),
	}
}
