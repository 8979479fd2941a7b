package catalog

import (
	"fmt"

	"slate-seo/pkg/domain"
)

// span is a half-open integer range [Min, Min+Width).
type span struct {
	Min   int
	Width int
}

// family expands one source list into pages by template substitution.
type family struct {
	Name       string
	Items      []string
	Volume     span
	Difficulty span
	Page       func(item string) domain.Page
}

var (
	contentTypes = []string{
		"blog-post", "article", "newsletter", "case-study", "white-paper",
		"ebook", "guide", "tutorial", "how-to", "checklist",
		"template", "report", "proposal", "memo", "brief",
	}

	industries = []string{
		"saas", "ecommerce", "marketing", "healthcare", "finance",
		"education", "real-estate", "technology", "consulting", "agency",
		"startup", "nonprofit", "fitness", "food", "travel",
		"fashion", "legal", "hr", "sales", "customer-service",
	}

	// linkedin is covered by the hand-authored linkedin-post page.
	socialPlatforms = []string{
		"instagram", "twitter", "facebook", "tiktok", "pinterest",
		"youtube", "threads",
	}

	documentTypes = []string{
		"contract", "agreement", "policy", "terms", "privacy-policy",
		"invoice", "quote", "receipt", "statement", "letter",
	}

	travelDestinations = []string{
		"japan", "thailand", "bali", "australia", "new-zealand",
		"dubai", "paris", "london", "italy", "spain",
		"mexico", "canada", "usa", "south-africa", "egypt",
	}

	academicTypes = []string{
		"essay", "research-paper", "thesis", "dissertation", "literature-review",
		"lab-report", "case-analysis", "book-report", "annotated-bibliography", "abstract",
	}

	emailTypes = []string{
		"cold-email", "follow-up-email", "thank-you-email", "introduction-email",
		"networking-email", "sales-email", "outreach-email", "resignation-email",
		"complaint-email", "apology-email", "invitation-email", "reminder-email",
	}

	personalDocs = []string{
		"wedding-vows", "wedding-speech", "birthday-speech", "retirement-speech",
		"eulogy", "graduation-speech", "toast", "welcome-speech",
		"farewell-message", "anniversary-message", "sympathy-message",
	}

	productivityDocs = []string{
		"project-plan", "action-plan", "strategic-plan", "study-plan",
		"meal-plan", "workout-plan", "budget-plan", "content-calendar",
		"editorial-calendar", "event-plan", "lesson-plan", "training-plan",
	}

	marketingContent = []string{
		"meta-description", "seo-title", "ad-copy", "landing-page",
		"sales-page", "video-script", "podcast-script", "webinar-script",
		"instagram-bio", "twitter-bio", "company-bio", "author-bio",
	}

	specializedContent = []string{
		"user-story", "acceptance-criteria", "sprint-plan", "retrospective-notes",
		"standup-notes", "product-roadmap", "feature-spec", "technical-spec",
		"api-documentation", "user-manual", "help-article", "faq-page",
		"onboarding-guide", "training-manual", "sop", "policy-document",
		"performance-review", "feedback-form", "survey-questions", "interview-questions",
		"test-plan", "bug-report", "release-notes", "changelog",
		"grant-proposal", "funding-application", "scholarship-essay", "personal-statement",
		"recommendation-letter", "reference-letter", "character-reference", "linkedin-recommendation",
		"mission-statement", "vision-statement", "value-proposition", "elevator-pitch",
		"tagline", "slogan", "brand-name", "product-name",
		"domain-name-ideas", "company-name", "blog-name", "podcast-name",
		"course-outline", "syllabus", "assignment", "exam-questions",
		"discussion-questions", "study-guide", "flashcards", "summary-notes",
		"sermon", "prayer", "devotional", "meditation-script",
		"affirmations", "mantras", "journal-prompts", "reflection-questions",
		"book-outline", "chapter-outline", "scene-outline", "character-profile",
		"plot-summary", "book-blurb", "book-synopsis", "query-letter",
		"artist-statement", "exhibition-proposal", "gallery-description", "artwork-description",
		"recipe", "meal-prep-plan", "grocery-list", "menu-plan",
		"workout-routine", "exercise-plan", "fitness-goals", "training-schedule",
		"travel-itinerary", "trip-plan", "bucket-list", "adventure-plan",
		"event-agenda", "conference-schedule", "workshop-outline", "seminar-plan",
		"party-plan", "birthday-party-plan", "wedding-plan", "event-checklist",
		"home-renovation-plan", "room-design", "interior-design-brief", "landscape-plan",
		"financial-plan", "investment-strategy", "savings-plan", "debt-payoff-plan",
		"retirement-plan", "estate-plan", "will", "trust-document",
		"lease-agreement", "rental-agreement", "employment-contract", "nda",
	}
)

// industryFamilies returns one family per content type, each crossed with every industry.
func industryFamilies() []family {
	out := make([]family, 0, len(contentTypes))
	for _, contentType := range contentTypes {
		ct := contentType
		out = append(out, family{
			Name:       "industry/" + ct,
			Items:      industries,
			Volume:     span{1000, 5000},
			Difficulty: span{30, 30},
			Page: func(industry string) domain.Page {
				return domain.Page{
					Slug:            fmt.Sprintf("%s-for-%s", ct, industry),
					Type:            domain.PageTypeCreate,
					Title:           fmt.Sprintf("%s for %s - AI Generator | Slate", Humanize(ct), Capitalize(industry)),
					MetaDescription: fmt.Sprintf("Create %s for %s industry with AI. Free %s generator tailored for %s businesses.", Spaced(ct), industry, ct, industry),
					H1:              fmt.Sprintf("Create %s for %s", Humanize(ct), Capitalize(industry)),
					Description:     fmt.Sprintf("Generate industry-specific %s optimized for %s businesses. Our AI understands %s terminology and best practices.", Spaced(ct), industry, industry),
					Keywords: []string{
						ct + " " + industry,
						industry + " " + ct,
						ct + " generator",
						industry + " content",
					},
					AIPrompt: domain.Prompt(fmt.Sprintf("Write a %s for %s industry", Spaced(ct), industry)),
					Category: Capitalize(industry),
					Benefits: []string{
						Capitalize(industry) + "-specific terminology",
						"Industry best practices",
						"Compliance-aware content",
						"Audience-targeted messaging",
						"Professional formatting",
					},
					CTAText: "Create " + Humanize(ct),
				}
			},
		})
	}
	return out
}

func socialFamily() family {
	return family{
		Name:       "social",
		Items:      socialPlatforms,
		Volume:     span{5000, 15000},
		Difficulty: span{35, 25},
		Page: func(platform string) domain.Page {
			name := Capitalize(platform)
			return domain.Page{
				Slug:            platform + "-post",
				Type:            domain.PageTypeCreate,
				Title:           fmt.Sprintf("%s Post Generator - Create %s Posts with AI | Slate", name, name),
				MetaDescription: fmt.Sprintf("Generate engaging %s posts instantly with AI. Free %s post creator with hashtags, captions, and content ideas.", platform, platform),
				H1:              fmt.Sprintf("Create %s Posts with AI", name),
				Description:     fmt.Sprintf("Create viral-worthy %s content effortlessly. Our AI understands %s's algorithm, best posting times, and content formats.", platform, platform),
				Keywords: []string{
					platform + " post generator",
					platform + " caption generator",
					platform + " content creator",
					"ai " + platform,
				},
				AIPrompt: domain.Prompt("Create an engaging " + platform + " post"),
				Category: "Social Media",
				Benefits: []string{
					name + "-optimized format",
					"Trending hashtag suggestions",
					"Engagement optimization",
					"Character count management",
					"Platform-specific best practices",
				},
				CTAText: "Create " + name + " Post",
			}
		},
	}
}

func documentFamily() family {
	return family{
		Name:       "documents",
		Items:      documentTypes,
		Volume:     span{2000, 8000},
		Difficulty: span{40, 30},
		Page: func(doc string) domain.Page {
			name := Humanize(doc)
			return domain.Page{
				Slug:            doc + "-template",
				Type:            domain.PageTypeCreate,
				Title:           fmt.Sprintf("%s Template - Create %s with AI | Slate", name, name),
				MetaDescription: fmt.Sprintf("Generate professional %s templates instantly with AI. Free %s template generator with legal language.", Spaced(doc), doc),
				H1:              fmt.Sprintf("Create %s Templates", name),
				Description:     fmt.Sprintf("Generate legally sound %s templates tailored to your needs. Our AI creates professional, comprehensive documents.", Spaced(doc)),
				Keywords: []string{
					doc + " template",
					doc + " generator",
					"create " + doc,
					doc + " example",
				},
				AIPrompt: domain.Prompt(fmt.Sprintf("Create a professional %s template", Spaced(doc))),
				Category: "Legal & Business",
				Benefits: []string{
					"Legally sound language",
					"Customizable sections",
					"Professional formatting",
					"Industry-standard structure",
					"Easy to modify",
				},
				CTAText: "Create " + name,
			}
		},
	}
}

func destinationFamily() family {
	return family{
		Name:       "destinations",
		Items:      travelDestinations,
		Volume:     span{1500, 6000},
		Difficulty: span{25, 20},
		Page: func(dest string) domain.Page {
			name := Capitalize(dest)
			return domain.Page{
				Slug:            dest + "-travel-checklist",
				Type:            domain.PageTypeCreate,
				Title:           fmt.Sprintf("%s Travel Checklist - Complete %s Trip Planner | Slate", name, name),
				MetaDescription: fmt.Sprintf("Complete %s travel checklist with packing list, documents, and essentials. Plan your perfect %s trip with AI.", dest, dest),
				H1:              name + " Travel Checklist",
				Description:     fmt.Sprintf("Everything you need for an amazing %s trip. Our AI checklist includes country-specific requirements, packing tips, and local insights.", dest),
				Keywords: []string{
					dest + " travel checklist",
					dest + " packing list",
					"travel to " + dest,
					dest + " trip planner",
				},
				AIPrompt: domain.Prompt("Create a comprehensive travel checklist for " + dest),
				Category: "Travel",
				Benefits: []string{
					"Country-specific visa requirements",
					"Local customs and etiquette",
					"Weather-appropriate packing",
					"Essential phrases and tips",
					"Safety and health info",
				},
				CTAText: "Create " + name + " Checklist",
			}
		},
	}
}

func academicFamily() family {
	return family{
		Name:       "academic",
		Items:      academicTypes,
		Volume:     span{3000, 10000},
		Difficulty: span{35, 25},
		Page: func(kind string) domain.Page {
			name := Humanize(kind)
			return domain.Page{
				Slug:            kind + "-outline",
				Type:            domain.PageTypeCreate,
				Title:           name + " Outline Generator - Academic Writing | Slate",
				MetaDescription: fmt.Sprintf("Create %s outlines instantly with AI. Free academic %s outline generator for students.", Spaced(kind), kind),
				H1:              name + " Outline Generator",
				Description:     fmt.Sprintf("Structure your %s with AI-powered outlines. Follow academic standards and best practices effortlessly.", Spaced(kind)),
				Keywords: []string{
					kind + " outline",
					kind + " structure",
					kind + " template",
					"academic writing",
				},
				AIPrompt: domain.Prompt("Create an outline for a " + Spaced(kind)),
				Category: "Academic",
				Benefits: []string{
					"Academic citation formats",
					"Logical structure",
					"Research-backed frameworks",
					"Professor-approved outlines",
					"Save hours of planning",
				},
				CTAText: "Create " + name + " Outline",
			}
		},
	}
}

func emailFamily() family {
	return family{
		Name:       "email",
		Items:      emailTypes,
		Volume:     span{4000, 12000},
		Difficulty: span{30, 30},
		Page: func(kind string) domain.Page {
			name := Humanize(kind)
			return domain.Page{
				Slug:            kind,
				Type:            domain.PageTypeCreate,
				Title:           name + " Template - AI Email Generator | Slate",
				MetaDescription: fmt.Sprintf("Create perfect %s templates with AI. Free %s generator with professional examples and tips.", Spaced(kind), kind),
				H1:              name + " Generator",
				Description:     fmt.Sprintf("Write effective %ss that get responses. Our AI creates personalized, professional emails for any situation.", Spaced(kind)),
				Keywords: []string{
					kind,
					kind + " template",
					kind + " example",
					"how to write " + kind,
				},
				AIPrompt: domain.Prompt("Write a professional " + Spaced(kind)),
				Category: "Email",
				Benefits: []string{
					"Professional tone",
					"High response rates",
					"Personalization tips",
					"Subject line optimization",
					"Multiple variations",
				},
				CTAText: "Create " + name,
			}
		},
	}
}

func personalFamily() family {
	return family{
		Name:       "personal",
		Items:      personalDocs,
		Volume:     span{2000, 8000},
		Difficulty: span{25, 20},
		Page: func(doc string) domain.Page {
			name := Humanize(doc)
			return domain.Page{
				Slug:            doc,
				Type:            domain.PageTypeCreate,
				Title:           name + " Generator - AI Writing Helper | Slate",
				MetaDescription: fmt.Sprintf("Create heartfelt %s with AI. Free %s generator for meaningful, memorable moments.", Spaced(doc), doc),
				H1:              name + " Generator",
				Description:     fmt.Sprintf("Express your feelings perfectly with AI-powered %s generation. Create meaningful, personal content for important moments.", Spaced(doc)),
				Keywords: []string{
					doc,
					doc + " examples",
					"how to write " + doc,
					doc + " template",
				},
				AIPrompt: domain.Prompt("Write a heartfelt " + Spaced(doc)),
				Category: "Personal",
				Benefits: []string{
					"Emotionally resonant",
					"Personalization options",
					"Length customization",
					"Tone adjustment",
					"Memorable and meaningful",
				},
				CTAText: "Create " + name,
			}
		},
	}
}

func productivityFamily() family {
	return family{
		Name:       "productivity",
		Items:      productivityDocs,
		Volume:     span{3000, 10000},
		Difficulty: span{30, 25},
		Page: func(doc string) domain.Page {
			name := Humanize(doc)
			return domain.Page{
				Slug:            doc,
				Type:            domain.PageTypeCreate,
				Title:           name + " Generator - AI Planning Tool | Slate",
				MetaDescription: fmt.Sprintf("Create comprehensive %ss with AI. Free %s template generator for better organization.", Spaced(doc), doc),
				H1:              name + " Generator",
				Description:     fmt.Sprintf("Plan smarter with AI-generated %ss. Get organized, stay on track, and achieve your goals faster.", Spaced(doc)),
				Keywords: []string{
					doc,
					doc + " template",
					"create " + doc,
					doc + " example",
				},
				AIPrompt: domain.Prompt("Create a comprehensive " + Spaced(doc)),
				Category: "Planning",
				Benefits: []string{
					"Goal-oriented structure",
					"Actionable steps",
					"Timeline creation",
					"Resource allocation",
					"Progress tracking",
				},
				CTAText: "Create " + name,
			}
		},
	}
}

func marketingFamily() family {
	return family{
		Name:       "marketing",
		Items:      marketingContent,
		Volume:     span{5000, 15000},
		Difficulty: span{40, 30},
		Page: func(kind string) domain.Page {
			name := Humanize(kind)
			return domain.Page{
				Slug:            kind,
				Type:            domain.PageTypeCreate,
				Title:           name + " Generator - AI Marketing Tool | Slate",
				MetaDescription: fmt.Sprintf("Generate high-converting %ss with AI. Free %s creator for marketers and businesses.", Spaced(kind), kind),
				H1:              name + " Generator",
				Description:     fmt.Sprintf("Create %ss that convert. Our AI understands marketing psychology and SEO best practices.", Spaced(kind)),
				Keywords: []string{
					kind + " generator",
					kind + " creator",
					"create " + kind,
					kind + " examples",
				},
				AIPrompt: domain.Prompt("Write a compelling " + Spaced(kind)),
				Category: "Marketing",
				Benefits: []string{
					"Conversion-optimized",
					"SEO-friendly",
					"A/B test variations",
					"Character limits respected",
					"CTA optimization",
				},
				CTAText: "Create " + name,
			}
		},
	}
}

func specializedFamily() family {
	return family{
		Name:       "specialized",
		Items:      specializedContent,
		Volume:     span{1500, 8000},
		Difficulty: span{30, 25},
		Page: func(kind string) domain.Page {
			name := Humanize(kind)
			return domain.Page{
				Slug:            kind,
				Type:            domain.PageTypeCreate,
				Title:           name + " Generator - AI Content Creator | Slate",
				MetaDescription: fmt.Sprintf("Create professional %ss instantly with AI. Free %s generator for individuals and businesses.", Spaced(kind), kind),
				H1:              name + " Generator",
				Description:     fmt.Sprintf("Generate %ss effortlessly with AI. Get professional results in seconds, not hours.", Spaced(kind)),
				Keywords: []string{
					kind,
					kind + " template",
					"create " + kind,
					kind + " generator",
				},
				AIPrompt: domain.Prompt("Create a " + Spaced(kind)),
				Category: "Content Creation",
				Benefits: []string{
					"Professional quality",
					"Instant generation",
					"Fully customizable",
					"Time-saving",
					"Easy to use",
				},
				CTAText: "Create " + name,
			}
		},
	}
}

// families lists every programmatic family in generation order.
func families() []family {
	out := industryFamilies()
	return append(out,
		socialFamily(),
		documentFamily(),
		destinationFamily(),
		academicFamily(),
		emailFamily(),
		personalFamily(),
		productivityFamily(),
		marketingFamily(),
		specializedFamily(),
	)
}
