package engine

import (
	"testing"

	"cleancomment/internal/languages"
)

// profileFor 是测试辅助函数，按后缀取出注释家族 Profile。
func profileFor(t *testing.T, extension string) *languages.Profile {
	t.Helper()

	profile, ok := languages.NewRegistry().ProfileForExtension(extension)
	if !ok {
		t.Fatalf("missing profile for extension %s", extension)
	}
	return profile
}

// TestHashInlineOnlyStripsTrailingComment 验证代码后的 # 注释被去掉。
func TestHashInlineOnlyStripsTrailingComment(t *testing.T) {
	profile := profileFor(t, ".py")

	got := Transform("x = 1  # note\n", profile, ModeInlineOnly)
	if got != "x = 1\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestHashInlineOnlyKeepsFullLineComment 验证 inline-only 模式绝不删除整行注释。
func TestHashInlineOnlyKeepsFullLineComment(t *testing.T) {
	profile := profileFor(t, ".py")

	got := Transform("# only a comment\n", profile, ModeInlineOnly)
	if got != "# only a comment\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestHashInlineOnlyGuardOnIndentedComment 验证缩进整行注释触发守卫规则：
// 模式虽然匹配，但代码组去空白后为空，该行必须原样保留。
func TestHashInlineOnlyGuardOnIndentedComment(t *testing.T) {
	profile := profileFor(t, ".py")

	got := Transform("    # note\n", profile, ModeInlineOnly)
	if got != "    # note\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestHashRemoveAllBlanksCommentOnlyFile 验证仅剩注释的文件收敛为单个换行。
func TestHashRemoveAllBlanksCommentOnlyFile(t *testing.T) {
	profile := profileFor(t, ".py")

	got := Transform("# only a comment\n", profile, ModeRemoveAll)
	if got != "\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestHashRemoveAllCollapsesBlankRuns 验证连续空行收敛为一个。
func TestHashRemoveAllCollapsesBlankRuns(t *testing.T) {
	profile := profileFor(t, ".py")

	got := Transform("x = 1\n\n\n\ny = 2\n", profile, ModeRemoveAll)
	if got != "x = 1\n\ny = 2\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestHashRemoveAllStripsLeadingAndTrailingBlanks 验证清理产生的
// 头尾空行全部去掉，中间空行最多保留一个。
func TestHashRemoveAllStripsLeadingAndTrailingBlanks(t *testing.T) {
	profile := profileFor(t, ".py")

	content := "# head\n\nx = 1\n\n\n# mid\n\ny = 2\n\n# tail\n"
	got := Transform(content, profile, ModeRemoveAll)
	if got != "x = 1\n\ny = 2\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestCBlockCommentSpansLines 验证跨行块注释在分行前一次性移除，
// 且不会额外引入空行。
func TestCBlockCommentSpansLines(t *testing.T) {
	profile := profileFor(t, ".c")

	got := Transform("int x = 1; /* hi\nthere */\nint y;\n", profile, ModeRemoveAll)
	if got != "int x = 1; \nint y;\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestCInlineBlockAfterCode 验证行尾前闭合的 /* */ 作为行内注释被去掉。
func TestCInlineBlockAfterCode(t *testing.T) {
	profile := profileFor(t, ".c")

	got := Transform("int x = 1; /* hi */\n", profile, ModeInlineOnly)
	if got != "int x = 1;\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestCInlineUnterminatedBlockLeftAlone 验证 inline-only 模式下
// 未在本行闭合的块注释起始标记保持不动。
func TestCInlineUnterminatedBlockLeftAlone(t *testing.T) {
	profile := profileFor(t, ".c")

	got := Transform("int x = 1; /* open\n", profile, ModeInlineOnly)
	if got != "int x = 1; /* open\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestGoInlineOnlyStripsLineComment 验证 // 行内注释被去掉。
func TestGoInlineOnlyStripsLineComment(t *testing.T) {
	profile := profileFor(t, ".go")

	got := Transform("x := 1 // note\n", profile, ModeInlineOnly)
	if got != "x := 1\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestGoRemoveAllIgnoresBlockSyntax 验证 line-only 家族没有块注释语法，
// /* */ 形态的文本在 remove-all 模式下也不被触碰。
func TestGoRemoveAllIgnoresBlockSyntax(t *testing.T) {
	profile := profileFor(t, ".go")

	content := "s := \"a/*b*/\"\n"
	got := Transform(content, profile, ModeRemoveAll)
	if got != content {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestPHPMultipleMarkerStyles 验证同一家族的三种注释标记各自生效。
func TestPHPMultipleMarkerStyles(t *testing.T) {
	profile := profileFor(t, ".php")

	content := "echo 1;  // c\n$x = 2;  # d\n$y = 3; /* e */\n"
	got := Transform(content, profile, ModeRemoveAll)
	if got != "echo 1;\n$x = 2;\n$y = 3; \n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestXMLInlineComment 验证文本后的 <!-- --> 行内注释被去掉。
func TestXMLInlineComment(t *testing.T) {
	profile := profileFor(t, ".html")

	got := Transform("hello <!-- note -->\n", profile, ModeInlineOnly)
	if got != "hello\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestXMLRemoveAllBlockAcrossLines 验证跨行 <!-- --> 块被整体移除。
func TestXMLRemoveAllBlockAcrossLines(t *testing.T) {
	profile := profileFor(t, ".xml")

	got := Transform("<a>\n<!-- c1\nc2 -->\n<b>\n", profile, ModeRemoveAll)
	if got != "<a>\n\n<b>\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestCSSInlineComment 验证 CSS 的 /* */ 行内注释被去掉。
func TestCSSInlineComment(t *testing.T) {
	profile := profileFor(t, ".css")

	got := Transform("body { color: red; } /* note */\n", profile, ModeInlineOnly)
	if got != "body { color: red; }\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestNewlineFidelity 验证末尾换行约定严格向原文对齐，
// 空串与单换行两个退化输入映射为自身。
func TestNewlineFidelity(t *testing.T) {
	profile := profileFor(t, ".py")

	cases := []struct {
		name    string
		content string
		mode    Mode
		want    string
	}{
		{"empty inline-only", "", ModeInlineOnly, ""},
		{"empty remove-all", "", ModeRemoveAll, ""},
		{"single newline inline-only", "\n", ModeInlineOnly, "\n"},
		{"single newline remove-all", "\n", ModeRemoveAll, "\n"},
		{"no trailing newline kept", "x = 1  # note", ModeInlineOnly, "x = 1"},
		{"comments only with newline", "# a\n# b\n", ModeRemoveAll, "\n"},
		{"comments only without newline", "# a", ModeRemoveAll, ""},
	}

	for _, item := range cases {
		got := Transform(item.content, profile, item.mode)
		if got != item.want {
			t.Fatalf("%s: unexpected output: %q", item.name, got)
		}
	}
}

// TestTransformIdempotent 验证任意输入与模式下两次变换结果与一次相同。
func TestTransformIdempotent(t *testing.T) {
	cases := []struct {
		extension string
		content   string
	}{
		{".py", "x = 1  # note\n"},
		{".py", "# only a comment\n"},
		{".py", "x = 1\n\n\n\ny = 2\n"},
		{".c", "int x = 1; /* hi\nthere */\nint y;\n"},
		{".php", "echo 1;  // c\n$x = 2;  # d\n$y = 3; /* e */\n"},
		{".go", "x := 1 // note\n"},
		{".html", "<a>\n<!-- c1\nc2 -->\n<b>\n"},
		{".css", "body { color: red; } /* note */"},
	}

	for _, item := range cases {
		profile := profileFor(t, item.extension)
		for _, mode := range []Mode{ModeInlineOnly, ModeRemoveAll} {
			once := Transform(item.content, profile, mode)
			twice := Transform(once, profile, mode)
			if once != twice {
				t.Fatalf("transform not idempotent for %s mode %d: %q vs %q", item.extension, mode, once, twice)
			}
		}
	}
}

// TestTransformNoCommentsUntouched 验证没有注释的文件内容保持不变。
func TestTransformNoCommentsUntouched(t *testing.T) {
	profile := profileFor(t, ".go")

	content := "package main\n\nfunc main() {\n\tx := 1\n\t_ = x\n}\n"
	if got := Transform(content, profile, ModeInlineOnly); got != content {
		t.Fatalf("inline-only changed clean file: %q", got)
	}
	if got := Transform(content, profile, ModeRemoveAll); got != content {
		t.Fatalf("remove-all changed clean file: %q", got)
	}
}
