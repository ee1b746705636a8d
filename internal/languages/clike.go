package languages

import "regexp"

// newCLikeProfile 构建完整 C 系注释家族。
// 适用于 JS、Java、C、C++、C#、Kotlin、Swift、TS、JSX/TSX 等，
// 同时覆盖允许注释的 JSONC/JSON5 风格 .json 文件。
//
// 行内 /* */ 模式要求块在行尾前闭合，未闭合的标记属于真正的
// 跨行块注释，只由 Block 模式在 remove-all 模式下处理。
func newCLikeProfile() *Profile {
	return &Profile{
		Name: "c-like",
		Extensions: []string{
			".js", ".java", ".c", ".cpp", ".cs",
			".kt", ".kts", ".swift", ".ts", ".jsx", ".tsx", ".json",
		},
		Inline: compilePatterns(
			`(^[^/\n]*)([ \t]+//[^\n]*$)`,
			`(^[^/\n]*)([ \t]+/\*.*?\*/[ \t]*$)`,
		),
		FullLine: compilePatterns(
			`^\s*//.*$`,
			`^\s*/\*.*?\*/\s*$`,
		),
		Block: regexp.MustCompile(`(?s)/\*.*?\*/`),
	}
}
