package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
)

const editorTags = `p|br|h[1-6]|ul|ol|li|div|blockquote|strong|em|code|pre|table`

var (
	// leadingTag matches content that opens with one of the tags the editor emits.
	leadingTag = regexp.MustCompile(`(?i)^\s*<(` + editorTags + `)[\s>/]`)

	// closingTag matches a closing editor tag or a self-closed line break anywhere in content.
	closingTag = regexp.MustCompile(`(?i)</(` + editorTags + `)\s*>|<br\s*/>`)
)

// InputConverter turns editor HTML into Markdown before it is embedded in a prompt.
type InputConverter struct {
	policy    *bluemonday.Policy
	converter *converter.Converter
}

func NewInputConverter() *InputConverter {
	return &InputConverter{
		policy: bluemonday.UGCPolicy(),
		converter: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// IsHTML reports whether content looks like markup rather than plain text. A bare tag name in
// the middle of prose, such as "use <p> tags", is not enough.
func IsHTML(content string) bool {
	return leadingTag.MatchString(content) || closingTag.MatchString(content)
}

// ToMarkdown sanitises HTML content and converts it to Markdown. Plain text is returned
// unchanged.
func (c *InputConverter) ToMarkdown(content string) (string, error) {
	if !IsHTML(content) {
		return content, nil
	}

	clean := c.policy.Sanitize(content)
	md, err := c.converter.ConvertString(clean)
	if err != nil {
		return "", fmt.Errorf("convert html content: %w", err)
	}
	return strings.TrimSpace(md), nil
}
