package assistant

import "strings"

// Kind names the instruction selected for a prompt.
type Kind string

const (
	KindGrammar      Kind = "grammar"
	KindLinkedIn     Kind = "linkedin"
	KindBullets      Kind = "bullets"
	KindNumbered     Kind = "numbered"
	KindChecklist    Kind = "checklist"
	KindPlan         Kind = "plan"
	KindSurvey       Kind = "survey"
	KindBlogOutline  Kind = "blogoutline"
	KindMeetingNotes Kind = "meetingnotes"
	KindGeneral      Kind = "general"
)

var systemPrompts = map[Kind]string{
	KindGrammar:      "You are a professional editor. Fix grammar and improve clarity while maintaining the original meaning. Format your response with proper paragraphs.",
	KindLinkedIn:     "You are a LinkedIn content expert. Make the text more professional and engaging for a LinkedIn audience. Use proper paragraphs and formatting.",
	KindBullets:      "Convert the text into well-organized bullet points. Start each bullet point with '•' on a new line.",
	KindChecklist:    "Create a comprehensive checklist. Start each item with a checkbox on a new line and organize items logically.",
	KindPlan:         "Create a detailed plan. Use '# ' for main headings, '## ' for subheadings, and '•' for bullet points.",
	KindSurvey:       "Create a well-structured survey. Use '## ' for sections and numbered items (1., 2., etc.) for questions.",
	KindNumbered:     "Convert the text into well-organized numbered items.",
	KindBlogOutline:  "Create a detailed blog post outline with introduction, main sections with H2 headings, subsections with H3 headings, and a conclusion. Make it SEO-friendly and comprehensive.",
	KindMeetingNotes: "Create well-structured meeting notes with sections for attendees, key decisions, action items, and next steps. Use checkboxes for action items.",
	KindGeneral:      "You are a helpful writing assistant. Format your response in proper markdown with appropriate headings, lists, and emphasis where needed.",
}

// rules are checked in order; the first rule whose keywords all occur in the prompt wins.
var rules = []struct {
	kind     Kind
	keywords []string
}{
	{KindGrammar, []string{"grammar"}},
	{KindLinkedIn, []string{"linkedin"}},
	{KindBullets, []string{"bullet"}},
	{KindNumbered, []string{"numbered"}},
	{KindChecklist, []string{"checklist"}},
	{KindPlan, []string{"plan"}},
	{KindSurvey, []string{"survey"}},
	{KindBlogOutline, []string{"blog", "outline"}},
	{KindMeetingNotes, []string{"meeting", "notes"}},
}

// Classify returns the instruction kind for prompt. Matching is a case-insensitive substring
// test, so "explanation" selects KindPlan.
func Classify(prompt string) Kind {
	lower := strings.ToLower(prompt)
	for _, r := range rules {
		if containsAll(lower, r.keywords) {
			return r.kind
		}
	}
	return KindGeneral
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

// SystemPrompt returns the kind and system instruction selected for prompt.
func SystemPrompt(prompt string) (Kind, string) {
	kind := Classify(prompt)
	return kind, systemPrompts[kind]
}

// emptyContent stands in for content when the caller sent none.
const emptyContent = "Generate a professional example based on the prompt"

const formattingInstruction = "Modify the content according to the prompt. Use proper formatting as per markdown, where applicable, for headings, bullets, numbering and even checkboxes and blockquotes. Make it professional and engaging."

// UserMessage builds the user turn sent with the system instruction.
func UserMessage(content, prompt string) string {
	if content == "" {
		content = emptyContent
	}
	return "Content: " + content + "\n\nPrompt: " + prompt + "\n\n" + formattingInstruction
}
