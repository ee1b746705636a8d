// Package languages 定义各注释家族的 Profile 与注册中心。
// Profile 是启动时一次性构建的只读数据，供清理引擎跨文件共享。
package languages

import "regexp"

// Profile 描述一个注释家族的全部模式。
//
// 约束说明：
// - Inline 模式必须携带两个捕获组：组 1 为代码部分（锚定行首），
//   组 2 为注释标记及其后内容（锚定行尾）
// - FullLine 模式用于判定整行注释，首尾均锚定
// - Block 模式以 (?s) 编译，用于跨行块注释，仅部分家族存在
// - 所有模式均为启发式文本匹配，不处理字符串字面量内的注释标记，
//   这是接受的近似行为而非缺陷
type Profile struct {
	Name       string
	Extensions []string
	Inline     []*regexp.Regexp
	FullLine   []*regexp.Regexp
	Block      *regexp.Regexp
}

// HasBlock 返回该家族是否定义了跨行块注释语法。
func (p *Profile) HasBlock() bool {
	return p.Block != nil
}

// compilePatterns 批量编译模式字符串。
// Profile 均在进程启动时构建，编译失败直接 panic 即可暴露问题。
func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, regexp.MustCompile(pattern))
	}
	return compiled
}
