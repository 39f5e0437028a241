package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanGeneratedHTMLPassesFragmentThrough(t *testing.T) {
	in := "<h2>Intro</h2>\n<p>Hello.</p>"
	assert.Equal(t, in, CleanGeneratedHTML(in))
}

func TestCleanGeneratedHTMLStripsCodeFence(t *testing.T) {
	in := "```html\n<p>Hello.</p>\n```"
	assert.Equal(t, "<p>Hello.</p>", CleanGeneratedHTML(in))
}

func TestCleanGeneratedHTMLStripsBareFence(t *testing.T) {
	in := "```\n<p>Hello.</p>\n```"
	assert.Equal(t, "<p>Hello.</p>", CleanGeneratedHTML(in))
}

func TestCleanGeneratedHTMLStripsDocumentShell(t *testing.T) {
	in := `<!DOCTYPE html>
<html>
<head><title>t</title></head>
<body>
<h2>Post</h2>
<p>Body text.</p>
</body>
</html>`
	out := CleanGeneratedHTML(in)
	assert.Equal(t, "<h2>Post</h2>\n<p>Body text.</p>", out)
	assert.NotContains(t, out, "<body>")
	assert.NotContains(t, out, "DOCTYPE")
	assert.NotContains(t, out, "<title>")
}

func TestCleanGeneratedHTMLEmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanGeneratedHTML("   \n"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "my-first-post", Slugify("My First Post"))
	assert.Equal(t, "go-1-23-generics", Slugify("Go 1.23: Generics!"))
	assert.Equal(t, "hello", Slugify("  hello  "))

	// 全部字符被剥离时退化为随机片段，但绝不为空
	assert.NotEmpty(t, Slugify("你好世界"))
	assert.NotEmpty(t, Slugify("!!!"))
}

func TestSplitTitleLines(t *testing.T) {
	raw := "1. Getting Started with Go Generics\n2) \"Generics in Practice\"\n- Why Generics Matter\n\n"
	titles := SplitTitleLines(raw)
	assert.Equal(t, []string{
		"Getting Started with Go Generics",
		"Generics in Practice",
		"Why Generics Matter",
	}, titles)
}

func TestSplitTitleLinesEmptyInput(t *testing.T) {
	assert.Empty(t, SplitTitleLines("  \n\n  "))
}

func TestPickCategoryMatchesCaseInsensitive(t *testing.T) {
	available := []string{"Golang", "DevOps", "Databases"}
	assert.Equal(t, "DevOps", PickCategory("devops", available))
	assert.Equal(t, "Golang", PickCategory("\"Golang\"\n", available))
}

func TestPickCategoryFallsBackToFirst(t *testing.T) {
	available := []string{"Golang", "DevOps"}
	assert.Equal(t, "Golang", PickCategory("Machine Learning", available))
}
