package domain

import "time"

// PageType is the URL section a landing page is served under (/create, /tool, /vs).
type PageType string

const (
	PageTypeCreate PageType = "create"
	PageTypeTool   PageType = "tool"
	PageTypeVs     PageType = "vs"
)

// Valid reports whether t is one of the known page types.
func (t PageType) Valid() bool {
	switch t {
	case PageTypeCreate, PageTypeTool, PageTypeVs:
		return true
	}
	return false
}

// Example is a before/after pair shown on a landing page.
type Example struct {
	Title  string `json:"title" bson:"title" yaml:"title"`
	Before string `json:"before" bson:"before" yaml:"before"`
	After  string `json:"after" bson:"after" yaml:"after"`
}

// FAQ is a question/answer pair shown on a landing page.
type FAQ struct {
	Question string `json:"question" bson:"question" yaml:"question"`
	Answer   string `json:"answer" bson:"answer" yaml:"answer"`
}

// Page represents a programmatic SEO landing page stored in the seo_pages table.
//
// JSON names match the table columns, so a Page can be inserted as-is through the REST API.
type Page struct {
	Slug            string    `json:"slug" bson:"slug" yaml:"slug"`
	Type            PageType  `json:"type" bson:"type" yaml:"type"`
	Title           string    `json:"title" bson:"title" yaml:"title"`
	MetaDescription string    `json:"meta_description" bson:"meta_description" yaml:"meta_description"`
	H1              string    `json:"h1" bson:"h1" yaml:"h1"`
	Description     string    `json:"description" bson:"description" yaml:"description"`
	Keywords        []string  `json:"keywords" bson:"keywords" yaml:"keywords"`
	AIPrompt        *string   `json:"ai_prompt" bson:"ai_prompt" yaml:"ai_prompt"`
	Category        string    `json:"category" bson:"category" yaml:"category"`
	SearchVolume    int       `json:"search_volume" bson:"search_volume" yaml:"search_volume"`
	Difficulty      int       `json:"difficulty" bson:"difficulty" yaml:"difficulty"`
	Examples        []Example `json:"examples,omitempty" bson:"examples,omitempty" yaml:"examples,omitempty"`
	FAQs            []FAQ     `json:"faqs,omitempty" bson:"faqs,omitempty" yaml:"faqs,omitempty"`
	Benefits        []string  `json:"benefits" bson:"benefits" yaml:"benefits"`
	CTAText         string    `json:"cta_text" bson:"cta_text" yaml:"cta_text"`
	RelatedPages    []string  `json:"related_pages,omitempty" bson:"related_pages,omitempty" yaml:"related_pages,omitempty"`
}

// Path returns the site-relative path of the page, e.g. "/create/linkedin-post".
func (p Page) Path() string {
	return "/" + string(p.Type) + "/" + p.Slug
}

// StoredPage is the subset of a persisted page that readers of the store need.
type StoredPage struct {
	Slug      string    `json:"slug" bson:"slug"`
	Type      PageType  `json:"type" bson:"type"`
	Published bool      `json:"published" bson:"published"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Prompt returns a pointer to s, for filling Page.AIPrompt in literals.
func Prompt(s string) *string {
	return &s
}
