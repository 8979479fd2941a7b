package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func format(t *testing.T, md string) string {
	t.Helper()
	out, err := FormatRichText(md)
	require.NoError(t, err)
	return out
}

func TestFormatHeadingsAndParagraphs(t *testing.T) {
	out := format(t, "# Plan\n\n## Goals\n\nShip **fast**.")

	assert.Contains(t, out, "<h1>Plan</h1>")
	assert.Contains(t, out, "<h2>Goals</h2>")
	assert.Contains(t, out, "<p>Ship <strong>fast</strong>.</p>")
}

func TestFormatStripsMarkdownFence(t *testing.T) {
	out := format(t, "```markdown\n# Title\n\nBody\n```")

	assert.Contains(t, out, "<h1>Title</h1>")
	assert.NotContains(t, out, "<pre>")
	assert.NotContains(t, out, "```")
}

func TestFormatKeepsOtherCodeFences(t *testing.T) {
	out := format(t, "Run this:\n\n```go\nfmt.Println(1)\n```")

	assert.Contains(t, out, "<pre>")
	assert.Contains(t, out, `<code class="language-go">`)
}

func TestFormatBulletGlyphs(t *testing.T) {
	out := format(t, "• First point\n• Second point")

	assert.Contains(t, out, "<ul>")
	assert.Contains(t, out, "<li><p>First point</p></li>")
	assert.Contains(t, out, "<li><p>Second point</p></li>")
	assert.NotContains(t, out, "•")
}

func TestFormatOrderedList(t *testing.T) {
	out := format(t, "1. One\n2. Two")

	assert.Contains(t, out, "<ol>")
	assert.Contains(t, out, "<li><p>One</p></li>")
}

func TestFormatTaskList(t *testing.T) {
	out := format(t, "## Action items\n\n- [ ] Book venue\n- [x] Send invites")

	assert.Contains(t, out, `<ul data-type="taskList">`)
	assert.Contains(t, out, `<li data-type="taskItem" data-checked="false"><p>Book venue</p></li>`)
	assert.Contains(t, out, `<li data-type="taskItem" data-checked="true"><p>Send invites</p></li>`)
	assert.NotContains(t, out, "<input")
}

func TestFormatCheckboxGlyphs(t *testing.T) {
	out := format(t, "☐ Pack passport\n☑ Book hotel\n✅ Renew visa")

	assert.Contains(t, out, `<ul data-type="taskList">`)
	assert.Contains(t, out, `data-checked="false"><p>Pack passport</p>`)
	assert.Contains(t, out, `data-checked="true"><p>Book hotel</p>`)
	assert.Contains(t, out, `data-checked="true"><p>Renew visa</p>`)
}

func TestFormatCheckboxGlyphsAfterListMarker(t *testing.T) {
	out := format(t, "- ☐ Book flights\n- ☐ Pack bags\n- ✅ Renew passport")

	assert.Contains(t, out, `<ul data-type="taskList">`)
	assert.Contains(t, out, `<li data-type="taskItem" data-checked="false"><p>Book flights</p></li>`)
	assert.Contains(t, out, `<li data-type="taskItem" data-checked="false"><p>Pack bags</p></li>`)
	assert.Contains(t, out, `<li data-type="taskItem" data-checked="true"><p>Renew passport</p></li>`)
	assert.NotContains(t, out, "☐")
	assert.NotContains(t, out, "✅")
}

func TestFormatNumberedCheckboxesBecomeTaskList(t *testing.T) {
	out := format(t, "1. ☐ first\n2. ☑ second")

	assert.Contains(t, out, `<ul data-type="taskList">`)
	assert.Contains(t, out, `data-checked="false"><p>first</p>`)
	assert.Contains(t, out, `data-checked="true"><p>second</p>`)
	assert.NotContains(t, out, "<ol>")
}

func TestFormatBulletGlyphAfterListMarker(t *testing.T) {
	out := format(t, "* • Alpha\n* • Beta")

	assert.Contains(t, out, "<li><p>Alpha</p></li>")
	assert.NotContains(t, out, "•")
}

func TestFormatNestedList(t *testing.T) {
	out := format(t, "- Parent\n  - Child")

	assert.Contains(t, out, "<li><p>Parent</p>")
	assert.Contains(t, out, "<li><p>Child</p></li>")
	assert.NotContains(t, out, "<p><ul>")
}

func TestFormatLooseListNotDoubleWrapped(t *testing.T) {
	out := format(t, "- First\n\n- Second")

	assert.NotContains(t, out, "<p><p>")
	assert.Equal(t, 2, strings.Count(out, "<p>"))
}

func TestFormatBlockquote(t *testing.T) {
	out := format(t, "> Quote here")

	assert.Contains(t, out, "<blockquote>")
	assert.Contains(t, out, "Quote here")
}

func TestFormatSanitizes(t *testing.T) {
	out := format(t, "Hello <script>alert(1)</script>\n\n[site](javascript:alert(1))")

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
}

func TestNormalizeMarkdown(t *testing.T) {
	in := "```\n• a\n  ☐ b\n[x] c\n```"
	assert.Equal(t, "- a\n  - [ ] b\n- [x] c", normalizeMarkdown(in))
}
