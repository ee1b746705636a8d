package languages

import "regexp"

// newXMLProfile 构建 XML/HTML 注释家族，只有 <!-- --> 一种语法。
func newXMLProfile() *Profile {
	return &Profile{
		Name:       "xml-like",
		Extensions: []string{".xml", ".html"},
		Inline: compilePatterns(
			`(^[^<\n]*)([ \t]+<!--.*?-->[ \t]*$)`,
		),
		FullLine: compilePatterns(
			`^\s*<!--.*?-->\s*$`,
		),
		Block: regexp.MustCompile(`(?s)<!--.*?-->`),
	}
}
