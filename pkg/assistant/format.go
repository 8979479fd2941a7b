package assistant

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// fence matches a reply wrapped in a single ``` or ```markdown block.
	fence = regexp.MustCompile("(?s)^```(?:markdown|md)?[ \t]*\n(.*?)\n?```$")

	// symbolLine matches a line starting with a bullet or checkbox glyph, optionally behind a
	// bullet or ordered list marker.
	symbolLine = regexp.MustCompile(`^(\s*)(?:[-*+]\s+|\d+[.)]\s+)?(•|☐|☑|✅|✔️|✔|\[ \]|\[[xX]\])\s*(.*)$`)
)

// Formatter turns model Markdown into the HTML shape the rich-text editor loads.
type Formatter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewFormatter() *Formatter {
	return &Formatter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: richTextPolicy(),
	}
}

// richTextPolicy allows the tags and attributes the editor schema understands.
func richTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "hr", "strong", "b", "em", "i", "u", "s", "del", "code", "pre", "blockquote",
		"h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "li",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
	p.AllowAttrs("data-type").Matching(regexp.MustCompile(`^(taskList|taskItem)$`)).OnElements("ul", "li")
	p.AllowAttrs("data-checked").Matching(regexp.MustCompile(`^(true|false)$`)).OnElements("li")
	return p
}

// Format converts Markdown to rich-text HTML: headings, paragraphs, bullet and ordered lists,
// task lists, blockquotes, code and tables.
func (f *Formatter) Format(markdown string) (string, error) {
	src := normalizeMarkdown(markdown)

	var buf bytes.Buffer
	if err := f.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	shaped, err := reshape(buf.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(f.policy.Sanitize(shaped)), nil
}

// FormatRichText formats markdown with a default Formatter.
func FormatRichText(markdown string) (string, error) {
	return NewFormatter().Format(markdown)
}

// normalizeMarkdown strips an outer code fence and rewrites glyph bullets and checkboxes as
// Markdown list items. Numbered checkbox items become task items too; task lists are unordered.
func normalizeMarkdown(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if m := fence.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		m := symbolLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		indent, glyph, text := m[1], m[2], m[3]
		switch glyph {
		case "•":
			lines[i] = indent + "- " + text
		case "☐", "[ ]":
			lines[i] = indent + "- [ ] " + text
		default:
			lines[i] = indent + "- [x] " + text
		}
	}
	return strings.Join(lines, "\n")
}

var blockTags = map[string]bool{
	"p": true, "ul": true, "ol": true, "blockquote": true, "pre": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "hr": true,
}

// reshape rewrites goldmark's task lists into data-type task lists and makes every list item
// hold its text in a paragraph.
func reshape(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + fragment + "</body>"))
	if err != nil {
		return "", fmt.Errorf("parse rendered html: %w", err)
	}

	doc.Find("ul").Each(func(_ int, list *goquery.Selection) {
		items := list.ChildrenFiltered("li")
		isTaskList := false
		items.Each(func(_ int, li *goquery.Selection) {
			if checkbox(li).Length() > 0 {
				isTaskList = true
			}
		})
		if !isTaskList {
			return
		}

		list.SetAttr("data-type", "taskList")
		items.Each(func(_ int, li *goquery.Selection) {
			box := checkbox(li)
			_, checked := box.Attr("checked")
			li.SetAttr("data-type", "taskItem")
			li.SetAttr("data-checked", fmt.Sprintf("%t", checked))
			if box.Length() > 0 {
				trimAfter(box)
				box.Remove()
			}
		})
	})

	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		wrapInline(li)
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return out, nil
}

// checkbox returns the task checkbox that belongs to li itself, not to a nested item.
func checkbox(li *goquery.Selection) *goquery.Selection {
	return li.Find(`input[type="checkbox"]`).FilterFunction(func(_ int, box *goquery.Selection) bool {
		return box.Closest("li").IsSelection(li)
	}).First()
}

// trimAfter removes the space goldmark puts between a checkbox and the item text.
func trimAfter(box *goquery.Selection) {
	if len(box.Nodes) == 0 {
		return
	}
	if next := box.Nodes[0].NextSibling; next != nil && next.Type == nethtml.TextNode {
		next.Data = strings.TrimLeft(next.Data, " \t")
	}
}

// wrapInline wraps the leading inline content of li in a <p>. Items that already start with a
// block are left alone.
func wrapInline(li *goquery.Selection) {
	item := li.Nodes[0]

	var inline []*nethtml.Node
	hasText := false
	for n := item.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == nethtml.ElementNode && blockTags[n.Data] {
			break
		}
		if n.Type != nethtml.TextNode || strings.TrimSpace(n.Data) != "" {
			hasText = true
		}
		inline = append(inline, n)
	}
	if !hasText {
		return
	}

	if first := inline[0]; first.Type == nethtml.TextNode {
		first.Data = strings.TrimLeft(first.Data, " \t\n")
	}
	if last := inline[len(inline)-1]; last.Type == nethtml.TextNode {
		last.Data = strings.TrimRight(last.Data, " \t\n")
	}

	p := &nethtml.Node{Type: nethtml.ElementNode, Data: "p", DataAtom: atom.P}
	item.InsertBefore(p, inline[0])
	for _, n := range inline {
		item.RemoveChild(n)
		p.AppendChild(n)
	}
}
