package catalog

import "slate-seo/pkg/domain"

// handAuthored lists the pages written by hand, in publishing order.
var handAuthored = []domain.Page{
	// /create pages: high intent, product-led
	{
		Slug:            "linkedin-post",
		Type:            domain.PageTypeCreate,
		Title:           "Create LinkedIn Post with AI - Free LinkedIn Post Generator | Slate",
		MetaDescription: "Generate engaging LinkedIn posts instantly with AI. Free LinkedIn post creator with professional templates. Write better, faster with Slate.",
		H1:              "Create LinkedIn Posts with AI",
		Description:     "Transform your thoughts into professional LinkedIn posts in seconds. Our AI-powered LinkedIn post generator helps you craft engaging content that resonates with your audience.",
		Keywords: []string{
			"linkedin post generator",
			"create linkedin post",
			"ai linkedin",
			"linkedin content creator",
			"linkedin writing tool",
		},
		AIPrompt:     domain.Prompt("Make it LinkedIn-friendly"),
		Category:     "Social Media",
		SearchVolume: 20000,
		Difficulty:   45,
		Examples: []domain.Example{
			{
				Title:  "Professional Update",
				Before: "Got a new job at tech company",
				After:  "Excited to announce that I'm starting a new chapter as a Software Engineer at TechCorp! Looking forward to contributing to innovative projects and growing with an amazing team. #NewBeginnings #CareerGrowth",
			},
			{
				Title:  "Thought Leadership",
				Before: "AI is changing how we work",
				After:  "The future of work isn't about replacing humans with AI—it's about empowering people with better tools. Here's what I've learned after implementing AI in our workflow... 🧵",
			},
		},
		FAQs: []domain.FAQ{
			{
				Question: "How does the LinkedIn post generator work?",
				Answer:   "Simply type or paste your idea, and our AI will transform it into a professional LinkedIn post with proper formatting, hashtags, and engaging language.",
			},
			{
				Question: "Is the LinkedIn post generator free?",
				Answer:   "Yes! You can create up to 10 LinkedIn posts per month for free. Pro users get unlimited access.",
			},
			{
				Question: "Can I customize the generated posts?",
				Answer:   "Absolutely! Every generated post is fully editable in Slate's editor. Adjust tone, length, and style to match your voice.",
			},
		},
		Benefits: []string{
			"Generate professional posts in seconds",
			"Optimized for LinkedIn algorithm",
			"Include relevant hashtags automatically",
			"Maintain your authentic voice",
			"Save hours of writing time",
		},
		CTAText:      "Create Your LinkedIn Post",
		RelatedPages: []string{"blog-outline", "meeting-notes", "grammar-checker"},
	},
	{
		Slug:            "blog-outline",
		Type:            domain.PageTypeCreate,
		Title:           "Blog Outline Generator - Create Blog Post Outlines with AI | Slate",
		MetaDescription: "Generate structured blog outlines instantly with AI. Free blog outline creator for writers, marketers, and content creators. Start writing better blogs today.",
		H1:              "Create Blog Outlines with AI",
		Description:     "Never stare at a blank page again. Our AI blog outline generator creates comprehensive, SEO-friendly blog structures in seconds. Perfect for writers who want to publish faster.",
		Keywords: []string{
			"blog outline generator",
			"blog post outline",
			"content outline",
			"blog structure",
			"ai blog writing",
		},
		AIPrompt:     domain.Prompt("Write a blog post outline"),
		Category:     "Content Writing",
		SearchVolume: 15000,
		Difficulty:   40,
		Examples: []domain.Example{
			{
				Title:  "How-To Guide",
				Before: "How to start a podcast",
				After:  "# How to Start a Successful Podcast in 2025\n\n## Introduction\n- Why podcasting is growing\n- What you'll learn in this guide\n\n## 1. Planning Your Podcast\n- Choose your niche\n- Define your target audience\n- Plan your content format\n\n## 2. Equipment You Need\n- Microphone recommendations\n- Recording software\n- Editing tools\n\n## 3. Recording Your First Episode\n- Script vs. freestyle\n- Audio tips\n- Common mistakes\n\n## 4. Publishing & Promotion\n- Hosting platforms\n- Distribution channels\n- Marketing strategies\n\n## Conclusion\n- Next steps\n- Resources",
			},
		},
		FAQs: []domain.FAQ{
			{
				Question: "What makes a good blog outline?",
				Answer:   "A good blog outline includes a clear structure with introduction, main points, subheadings, and conclusion. It should guide the reader logically through your content.",
			},
			{
				Question: "Can I use the outline for SEO?",
				Answer:   "Yes! Our AI generates outlines with SEO-friendly heading structures (H2, H3) that help search engines understand your content better.",
			},
		},
		Benefits: []string{
			"Overcome writer's block instantly",
			"SEO-optimized heading structure",
			"Comprehensive coverage of topics",
			"Save 2+ hours per blog post",
			"Professional formatting included",
		},
		CTAText:      "Generate Blog Outline",
		RelatedPages: []string{"linkedin-post", "meeting-notes", "ai-writing-assistant"},
	},
	{
		Slug:            "meeting-notes",
		Type:            domain.PageTypeCreate,
		Title:           "Meeting Notes Template Generator - Create Professional Meeting Notes | Slate",
		MetaDescription: "Generate organized meeting notes instantly. Free meeting notes template with action items, decisions, and summaries. Never miss important details again.",
		H1:              "Create Meeting Notes with AI",
		Description:     "Transform messy meeting notes into structured, actionable documents. Our AI helps you capture decisions, action items, and key discussion points automatically.",
		Keywords: []string{
			"meeting notes template",
			"meeting notes generator",
			"meeting minutes",
			"team meeting notes",
			"project meeting notes",
		},
		AIPrompt:     domain.Prompt("Create meeting notes template"),
		Category:     "Productivity",
		SearchVolume: 30000,
		Difficulty:   35,
		Examples: []domain.Example{
			{
				Title:  "Team Standup",
				Before: "Discussed project status, blockers, and next steps",
				After:  "# Team Standup - January 15, 2025\n\n## Attendees\n- Team members present\n\n## What We Accomplished\n- ✅ Completed user authentication\n- ✅ Fixed payment integration bug\n\n## Current Blockers\n- API rate limiting issues\n- Waiting for design approval\n\n## Action Items\n- [ ] @John - Investigate API limits (Due: Jan 17)\n- [ ] @Sarah - Follow up with design team (Due: Jan 16)\n\n## Next Meeting\nJanuary 16, 2025 at 10:00 AM",
			},
		},
		FAQs: []domain.FAQ{
			{
				Question: "What should meeting notes include?",
				Answer:   "Good meeting notes should include attendees, key decisions, action items with owners, discussion points, and next steps.",
			},
			{
				Question: "Can I customize the meeting notes template?",
				Answer:   "Yes! All templates are fully customizable. Add or remove sections to fit your team's meeting style.",
			},
		},
		Benefits: []string{
			"Never forget action items",
			"Structured format for clarity",
			"Easy to share with team",
			"Track decisions over time",
			"Reduce meeting follow-up time",
		},
		CTAText:      "Create Meeting Notes",
		RelatedPages: []string{"blog-outline", "linkedin-post", "ai-writing-assistant"},
	},

	// /tool pages
	{
		Slug:            "ai-writing-assistant",
		Type:            domain.PageTypeTool,
		Title:           "Free AI Writing Assistant - Write Better, Faster with AI | Slate",
		MetaDescription: "Your free AI writing assistant for grammar, tone, clarity, and style. Write professional content 10x faster with Slate's AI-powered editor.",
		H1:              "AI Writing Assistant",
		Description:     "Write with confidence using Slate's AI writing assistant. Get instant help with grammar, tone, clarity, and style. Perfect for professionals, students, and content creators.",
		Keywords: []string{
			"ai writing assistant",
			"ai writing tool",
			"writing helper",
			"ai editor",
			"content writing ai",
		},
		Category:     "AI Tools",
		SearchVolume: 60000,
		Difficulty:   75,
		Benefits: []string{
			"Grammar and spelling correction",
			"Tone and style suggestions",
			"Content rewriting",
			"Bullet point generation",
			"Professional formatting",
			"Local-first privacy",
			"100% free to use",
		},
		CTAText:      "Start Writing with AI",
		RelatedPages: []string{"grammar-checker", "linkedin-post", "blog-outline"},
	},
	{
		Slug:            "grammar-checker",
		Type:            domain.PageTypeTool,
		Title:           "Free AI Grammar Checker - Fix Writing Errors Instantly | Slate",
		MetaDescription: "Fix grammar, spelling, and punctuation errors instantly with AI. Free online grammar checker with intelligent suggestions. Write error-free content.",
		H1:              "AI Grammar Checker",
		Description:     "Eliminate grammar mistakes and write with confidence. Our AI grammar checker catches errors that traditional spell checkers miss and provides intelligent suggestions for improvement.",
		Keywords: []string{
			"grammar checker",
			"ai grammar",
			"spelling checker",
			"punctuation checker",
			"writing checker",
		},
		AIPrompt:     domain.Prompt("Fix grammar"),
		Category:     "AI Tools",
		SearchVolume: 90000,
		Difficulty:   80,
		Examples: []domain.Example{
			{
				Title:  "Common Grammar Fixes",
				Before: "Me and john went to the store yesterday and buys some milk",
				After:  "John and I went to the store yesterday and bought some milk.",
			},
		},
		Benefits: []string{
			"Catch grammar mistakes instantly",
			"Spelling and punctuation fixes",
			"Style and clarity improvements",
			"Contextual suggestions",
			"Privacy-focused (local processing)",
			"No word limits",
			"Completely free",
		},
		CTAText:      "Check Your Grammar",
		RelatedPages: []string{"ai-writing-assistant", "linkedin-post", "blog-outline"},
	},

	// /vs pages
	{
		Slug:            "notion-ai",
		Type:            domain.PageTypeVs,
		Title:           "Slate vs Notion AI - Free Alternative to Notion AI | Slate",
		MetaDescription: "Compare Slate and Notion AI. Get AI writing features without the $10/month fee. Local-first, privacy-focused, and completely free.",
		H1:              "Slate vs Notion AI",
		Description:     "Looking for a Notion AI alternative? Slate offers similar AI writing features with a focus on privacy, speed, and affordability. Best of all? It's completely free.",
		Keywords: []string{
			"notion ai alternative",
			"slate vs notion",
			"free notion ai",
			"notion ai comparison",
		},
		Category:     "Comparisons",
		SearchVolume: 5000,
		Difficulty:   50,
		Benefits: []string{
			"100% free (Notion AI is $10/month)",
			"Local-first storage",
			"No workspace required",
			"Instant AI responses",
			"Export to markdown/PDF",
			"No page limits",
			"Privacy-focused",
		},
		CTAText:      "Try Slate Free",
		RelatedPages: []string{"ai-writing-assistant", "grammar-checker", "linkedin-post"},
	},

	// Travel checklists
	{
		Slug:            "business-travel-checklist",
		Type:            domain.PageTypeCreate,
		Title:           "Business Travel Checklist - Free Travel Checklist Generator | Slate",
		MetaDescription: "Create comprehensive business travel checklists instantly. Free business travel checklist template with packing lists, documents, and essentials. Never forget anything.",
		H1:              "Create Business Travel Checklists",
		Description:     "Prepare for business trips with confidence. Our AI-powered business travel checklist generator helps you organize documents, packing lists, and travel essentials for professional trips.",
		Keywords: []string{
			"business travel checklist",
			"business trip checklist",
			"corporate travel checklist",
			"work travel packing list",
			"business travel essentials",
		},
		AIPrompt:     domain.Prompt("Create a business travel checklist"),
		Category:     "Travel",
		SearchVolume: 18000,
		Difficulty:   30,
		Examples: []domain.Example{
			{
				Title:  "International Business Trip",
				Before: "3 day trip to London for client meeting",
				After:  "# Business Travel Checklist - London Trip\n\n## Documents\n- [ ] Passport (check expiration)\n- [ ] Business visa\n- [ ] Travel insurance\n- [ ] Hotel confirmation\n- [ ] Meeting schedules\n- [ ] Client contact info\n\n## Professional Items\n- [ ] Laptop + charger\n- [ ] Business cards\n- [ ] Presentation materials\n- [ ] Portfolio/samples\n- [ ] Notebook & pens\n\n## Clothing\n- [ ] Business suits (2)\n- [ ] Dress shirts (3)\n- [ ] Ties\n- [ ] Dress shoes\n- [ ] Business casual outfit\n\n## Essentials\n- [ ] Phone + international adapter\n- [ ] Toiletries\n- [ ] Medications\n- [ ] Travel umbrella",
			},
		},
		Benefits: []string{
			"Never forget important documents",
			"Professional packing organization",
			"Customizable for any business trip",
			"Save time with pre-made templates",
			"Reduce travel stress",
		},
		CTAText:      "Create Business Travel Checklist",
		RelatedPages: []string{"international-travel-checklist", "meeting-notes"},
	},
	{
		Slug:            "international-travel-checklist",
		Type:            domain.PageTypeCreate,
		Title:           "International Travel Checklist - Free Travel Checklist Template | Slate",
		MetaDescription: "Generate comprehensive international travel checklists with AI. Free international travel checklist covering documents, packing, and essentials. Travel prepared.",
		H1:              "Create International Travel Checklists",
		Description:     "Make international travel stress-free with our comprehensive checklist generator. Cover all essential documents, packing needs, and travel preparations for overseas trips.",
		Keywords: []string{
			"international travel checklist",
			"overseas travel checklist",
			"international trip checklist",
			"travel abroad checklist",
			"passport checklist",
		},
		AIPrompt:     domain.Prompt("Create an international travel checklist"),
		Category:     "Travel",
		SearchVolume: 22000,
		Difficulty:   28,
		Benefits: []string{
			"Complete document preparation guide",
			"Country-specific requirements",
			"Packing optimization tips",
			"Pre-departure checklist",
			"Safety and health essentials",
		},
		CTAText:      "Create International Checklist",
		RelatedPages: []string{"business-travel-checklist", "europe-travel-checklist"},
	},
	{
		Slug:            "europe-travel-checklist",
		Type:            domain.PageTypeCreate,
		Title:           "Europe Travel Checklist - Free European Travel Checklist PDF | Slate",
		MetaDescription: "Create detailed Europe travel checklists instantly. Free Europe travel checklist PDF with packing tips, documents, and destination guides. Plan your European adventure.",
		H1:              "Create Europe Travel Checklists",
		Description:     "Plan the perfect European vacation with our AI travel checklist generator. Get customized packing lists, visa requirements, and travel essentials for your Europe trip.",
		Keywords: []string{
			"europe travel checklist",
			"european travel checklist",
			"europe trip checklist",
			"europe packing list",
			"travel to europe checklist",
		},
		AIPrompt:     domain.Prompt("Create a Europe travel checklist"),
		Category:     "Travel",
		SearchVolume: 15000,
		Difficulty:   32,
		Benefits: []string{
			"Schengen visa requirements",
			"Multi-country travel planning",
			"European power adapter reminders",
			"Currency and payment tips",
			"Export as PDF",
		},
		CTAText:      "Create Europe Travel Checklist",
		RelatedPages: []string{"international-travel-checklist", "vacation-packing-list"},
	},
	{
		Slug:            "vacation-packing-list",
		Type:            domain.PageTypeCreate,
		Title:           "Vacation Packing List Generator - Free Travel Packing Checklist | Slate",
		MetaDescription: "Generate perfect vacation packing lists with AI. Free vacation packing checklist for beach, mountain, city trips. Pack smarter, travel lighter.",
		H1:              "Create Vacation Packing Lists",
		Description:     "Never overpack or forget essentials again. Our AI packing list generator creates customized checklists based on your destination, duration, and activities.",
		Keywords: []string{
			"vacation packing list",
			"travel packing checklist",
			"holiday packing list",
			"vacation checklist",
			"packing list generator",
		},
		AIPrompt:     domain.Prompt("Create a vacation packing list"),
		Category:     "Travel",
		SearchVolume: 35000,
		Difficulty:   25,
		Benefits: []string{
			"Weather-appropriate suggestions",
			"Activity-based packing tips",
			"Minimize luggage weight",
			"TSA-friendly organization",
			"Print or save digitally",
		},
		CTAText: "Create Packing List",
	},

	// Resume and career
	{
		Slug:            "resume",
		Type:            domain.PageTypeCreate,
		Title:           "Free Resume Builder with AI - Create Professional Resume | Slate",
		MetaDescription: "Build professional resumes instantly with AI. Free resume builder with ATS-friendly templates. Create winning resumes in minutes, not hours.",
		H1:              "Create Professional Resumes with AI",
		Description:     "Land your dream job with AI-powered resume creation. Our resume builder helps you craft compelling, ATS-optimized resumes that get noticed by recruiters.",
		Keywords: []string{
			"resume builder",
			"create resume",
			"ai resume",
			"free resume builder",
			"resume maker",
			"resume template",
		},
		AIPrompt:     domain.Prompt("Help me write a professional resume"),
		Category:     "Career",
		SearchVolume: 50000,
		Difficulty:   65,
		Examples: []domain.Example{
			{
				Title:  "Software Engineer Resume",
				Before: "Built apps, worked with teams, 5 years experience",
				After:  "PROFESSIONAL SUMMARY\nResults-driven Software Engineer with 5+ years developing scalable web applications. Specialized in React, Node.js, and cloud architecture.\n\nKEY ACHIEVEMENTS\n• Led development of microservices platform serving 1M+ users\n• Reduced API response time by 60% through optimization\n• Mentored team of 4 junior developers\n\nTECHNICAL SKILLS\nFrontend: React, TypeScript, Vue.js\nBackend: Node.js, Python, PostgreSQL\nCloud: AWS, Docker, Kubernetes",
			},
		},
		Benefits: []string{
			"ATS-optimized formatting",
			"Industry-specific templates",
			"Action verb suggestions",
			"Quantifiable achievement tips",
			"Export to PDF/Word",
		},
		CTAText:      "Build Your Resume",
		RelatedPages: []string{"cover-letter", "linkedin-post"},
	},
	{
		Slug:            "cover-letter",
		Type:            domain.PageTypeCreate,
		Title:           "Cover Letter Generator - Create Cover Letter with AI | Slate",
		MetaDescription: "Generate compelling cover letters instantly with AI. Free cover letter builder that matches your resume and job description. Stand out from applicants.",
		H1:              "Create Cover Letters with AI",
		Description:     "Write cover letters that get interviews. Our AI cover letter generator creates personalized, professional cover letters tailored to each job application.",
		Keywords: []string{
			"cover letter generator",
			"cover letter builder",
			"create cover letter",
			"ai cover letter",
			"cover letter template",
		},
		AIPrompt:     domain.Prompt("Write a professional cover letter"),
		Category:     "Career",
		SearchVolume: 40000,
		Difficulty:   60,
		Benefits: []string{
			"Job-specific customization",
			"Professional tone and structure",
			"Highlight relevant skills",
			"Engaging opening paragraphs",
			"Multiple format options",
		},
		CTAText:      "Create Cover Letter",
		RelatedPages: []string{"resume", "job-description"},
	},

	// Business and marketing
	{
		Slug:            "email-template",
		Type:            domain.PageTypeCreate,
		Title:           "Email Template Generator - Create Professional Email Templates | Slate",
		MetaDescription: "Generate professional email templates instantly with AI. Free email template creator for business, marketing, and cold outreach. Save time, increase replies.",
		H1:              "Create Email Templates with AI",
		Description:     "Write better emails faster. Our AI email template generator creates professional, engaging email templates for any business scenario.",
		Keywords: []string{
			"email template",
			"email generator",
			"business email template",
			"professional email",
			"email creator",
		},
		AIPrompt:     domain.Prompt("Create a professional email template"),
		Category:     "Business Communication",
		SearchVolume: 30000,
		Difficulty:   35,
		Benefits: []string{
			"Professional tone and formatting",
			"Subject line suggestions",
			"Call-to-action optimization",
			"Mobile-friendly layouts",
			"Personalization variables",
		},
		CTAText:      "Create Email Template",
		RelatedPages: []string{"cold-email", "meeting-notes"},
	},
	{
		Slug:            "product-description",
		Type:            domain.PageTypeCreate,
		Title:           "Product Description Generator - Create Product Descriptions with AI | Slate",
		MetaDescription: "Generate compelling product descriptions instantly with AI. Free product description writer for ecommerce, marketing, and sales. Boost conversions.",
		H1:              "Create Product Descriptions with AI",
		Description:     "Sell more with better product descriptions. Our AI product description generator creates compelling, SEO-optimized descriptions that convert browsers into buyers.",
		Keywords: []string{
			"product description generator",
			"product description writer",
			"ecommerce product description",
			"ai product description",
		},
		AIPrompt:     domain.Prompt("Write a compelling product description"),
		Category:     "Ecommerce",
		SearchVolume: 25000,
		Difficulty:   40,
		Benefits: []string{
			"SEO-optimized descriptions",
			"Benefit-focused copy",
			"Emotional trigger words",
			"Feature highlighting",
			"Multiple length options",
		},
		CTAText:      "Create Product Description",
		RelatedPages: []string{"marketing-plan", "social-media-post"},
	},
	{
		Slug:            "social-media-post",
		Type:            domain.PageTypeCreate,
		Title:           "Social Media Post Generator - Create Social Media Posts with AI | Slate",
		MetaDescription: "Generate engaging social media posts instantly with AI. Free social media post creator for Instagram, Twitter, Facebook, LinkedIn. Post consistently.",
		H1:              "Create Social Media Posts with AI",
		Description:     "Never run out of social media content ideas. Our AI post generator creates engaging, platform-optimized posts for all major social networks.",
		Keywords: []string{
			"social media post generator",
			"social media content creator",
			"ai social media",
			"post generator",
			"instagram caption generator",
		},
		AIPrompt:     domain.Prompt("Create an engaging social media post"),
		Category:     "Social Media",
		SearchVolume: 20000,
		Difficulty:   42,
		Benefits: []string{
			"Platform-specific optimization",
			"Hashtag suggestions",
			"Engagement optimization",
			"Multiple post variations",
			"Emoji and formatting",
		},
		CTAText:      "Create Social Post",
		RelatedPages: []string{"linkedin-post", "content-calendar"},
	},
	{
		Slug:            "marketing-plan",
		Type:            domain.PageTypeCreate,
		Title:           "Marketing Plan Generator - Create Marketing Plans with AI | Slate",
		MetaDescription: "Generate comprehensive marketing plans instantly with AI. Free marketing plan template for startups, SMBs, and enterprises. Strategic planning made easy.",
		H1:              "Create Marketing Plans with AI",
		Description:     "Build winning marketing strategies faster. Our AI marketing plan generator creates detailed, actionable marketing plans tailored to your business goals.",
		Keywords: []string{
			"marketing plan generator",
			"marketing strategy template",
			"marketing plan template",
			"business marketing plan",
		},
		AIPrompt:     domain.Prompt("Create a comprehensive marketing plan"),
		Category:     "Marketing",
		SearchVolume: 18000,
		Difficulty:   45,
		Benefits: []string{
			"Market analysis frameworks",
			"Target audience definition",
			"Channel strategy recommendations",
			"Budget allocation guidance",
			"KPI tracking templates",
		},
		CTAText:      "Create Marketing Plan",
		RelatedPages: []string{"business-plan", "content-calendar"},
	},
	{
		Slug:            "press-release",
		Type:            domain.PageTypeCreate,
		Title:           "Press Release Generator - Create Press Releases with AI | Slate",
		MetaDescription: "Generate professional press releases instantly with AI. Free press release template for product launches, company news, and announcements. Get media attention.",
		H1:              "Create Press Releases with AI",
		Description:     "Get your news noticed. Our AI press release generator creates journalist-ready press releases following AP style and industry best practices.",
		Keywords: []string{
			"press release generator",
			"press release template",
			"create press release",
			"ai press release",
			"news release",
		},
		AIPrompt:     domain.Prompt("Write a professional press release"),
		Category:     "Public Relations",
		SearchVolume: 15000,
		Difficulty:   38,
		Benefits: []string{
			"AP style formatting",
			"Compelling headlines",
			"Quote integration",
			"Boilerplate generation",
			"Distribution-ready format",
		},
		CTAText:      "Create Press Release",
		RelatedPages: []string{"company-announcement", "blog-outline"},
	},
	{
		Slug:            "job-description",
		Type:            domain.PageTypeCreate,
		Title:           "Job Description Generator - Create Job Descriptions with AI | Slate",
		MetaDescription: "Generate professional job descriptions instantly with AI. Free job description template for recruiters and hiring managers. Attract top talent.",
		H1:              "Create Job Descriptions with AI",
		Description:     "Attract the right candidates faster. Our AI job description generator creates clear, inclusive, and compelling job postings that resonate with top talent.",
		Keywords: []string{
			"job description generator",
			"job posting template",
			"create job description",
			"job description template",
		},
		AIPrompt:     domain.Prompt("Write a compelling job description"),
		Category:     "Human Resources",
		SearchVolume: 12000,
		Difficulty:   35,
		Benefits: []string{
			"Inclusive language checking",
			"Skills and qualifications clarity",
			"Company culture integration",
			"Salary range guidance",
			"ATS-optimized format",
		},
		CTAText:      "Create Job Description",
		RelatedPages: []string{"resume", "cover-letter"},
	},
	{
		Slug:            "business-plan",
		Type:            domain.PageTypeCreate,
		Title:           "Business Plan Generator - Create Business Plans with AI | Slate",
		MetaDescription: "Generate comprehensive business plans instantly with AI. Free business plan template for startups and entrepreneurs. Investor-ready in minutes.",
		H1:              "Create Business Plans with AI",
		Description:     "Turn your business idea into a professional plan. Our AI business plan generator creates detailed, investor-ready business plans covering all essential sections.",
		Keywords: []string{
			"business plan generator",
			"business plan template",
			"startup business plan",
			"create business plan",
		},
		AIPrompt:     domain.Prompt("Create a comprehensive business plan"),
		Category:     "Business Planning",
		SearchVolume: 10000,
		Difficulty:   50,
		Benefits: []string{
			"Executive summary creation",
			"Financial projections templates",
			"Market analysis frameworks",
			"Competitive analysis",
			"Investor pitch-ready",
		},
		CTAText:      "Create Business Plan",
		RelatedPages: []string{"marketing-plan", "pitch-deck"},
	},
	{
		Slug:            "pitch-deck",
		Type:            domain.PageTypeCreate,
		Title:           "Pitch Deck Generator - Create Pitch Decks with AI | Slate",
		MetaDescription: "Generate compelling pitch decks instantly with AI. Free pitch deck template for startups raising funding. Create investor presentations that convert.",
		H1:              "Create Pitch Decks with AI",
		Description:     "Win over investors with powerful pitch decks. Our AI pitch deck generator creates structured, compelling presentations following proven frameworks.",
		Keywords: []string{
			"pitch deck generator",
			"pitch deck template",
			"investor pitch deck",
			"startup pitch deck",
		},
		AIPrompt:     domain.Prompt("Create a compelling pitch deck outline"),
		Category:     "Fundraising",
		SearchVolume: 8000,
		Difficulty:   48,
		Benefits: []string{
			"Proven slide structures",
			"Compelling narratives",
			"Data visualization tips",
			"Problem-solution framing",
			"Investor-focused messaging",
		},
		CTAText:      "Create Pitch Deck",
		RelatedPages: []string{"business-plan", "executive-summary"},
	},

	// Writing tools
	{
		Slug:            "content-rewriter",
		Type:            domain.PageTypeTool,
		Title:           "Free Content Rewriter - Rewrite Text with AI | Slate",
		MetaDescription: "Rewrite content instantly with AI. Free content rewriter tool for articles, paragraphs, and essays. Improve clarity and avoid plagiarism.",
		H1:              "Content Rewriter Tool",
		Description:     "Transform existing content into fresh, original text. Our AI content rewriter maintains meaning while improving clarity, tone, and uniqueness.",
		Keywords: []string{
			"content rewriter",
			"article rewriter",
			"text rewriter",
			"rewrite tool",
			"paraphrasing tool",
		},
		AIPrompt:     domain.Prompt("Rewrite this content"),
		Category:     "Writing Tools",
		SearchVolume: 35000,
		Difficulty:   55,
		Benefits: []string{
			"Preserve original meaning",
			"Improve readability",
			"Multiple rewrite variations",
			"Plagiarism avoidance",
			"Tone adjustment options",
		},
		CTAText: "Rewrite Content",
	},
	{
		Slug:            "paraphraser",
		Type:            domain.PageTypeTool,
		Title:           "Free Paraphrasing Tool - Paraphrase Text with AI | Slate",
		MetaDescription: "Paraphrase any text instantly with AI. Free paraphrasing tool for essays, articles, and academic writing. Avoid plagiarism effortlessly.",
		H1:              "AI Paraphrasing Tool",
		Description:     "Rephrase sentences and paragraphs while maintaining original meaning. Perfect for academic writing, content creation, and avoiding plagiarism.",
		Keywords: []string{
			"paraphrasing tool",
			"paraphrase generator",
			"rephrase tool",
			"sentence rephraser",
			"ai paraphraser",
		},
		AIPrompt:     domain.Prompt("Paraphrase this text"),
		Category:     "Writing Tools",
		SearchVolume: 25000,
		Difficulty:   52,
		Benefits: []string{
			"Academic-grade paraphrasing",
			"Citation-friendly outputs",
			"Multiple paraphrase options",
			"Maintain technical accuracy",
			"Completely free to use",
		},
		CTAText: "Paraphrase Text",
	},
	{
		Slug:            "summarizer",
		Type:            domain.PageTypeTool,
		Title:           "Free Text Summarizer - Summarize Text with AI | Slate",
		MetaDescription: "Summarize long texts instantly with AI. Free text summarizer for articles, research papers, and documents. Get key points in seconds.",
		H1:              "AI Text Summarizer",
		Description:     "Extract key insights from long documents instantly. Our AI summarizer creates concise summaries while preserving essential information.",
		Keywords: []string{
			"text summarizer",
			"article summarizer",
			"summary generator",
			"ai summarizer",
			"summarize tool",
		},
		AIPrompt:     domain.Prompt("Summarize this text"),
		Category:     "Writing Tools",
		SearchVolume: 15000,
		Difficulty:   48,
		Benefits: []string{
			"Customizable summary length",
			"Bullet point or paragraph format",
			"Key points extraction",
			"Save reading time",
			"Research-friendly",
		},
		CTAText: "Summarize Text",
	},
	{
		Slug:            "bullet-point-generator",
		Type:            domain.PageTypeTool,
		Title:           "Bullet Point Generator - Create Bullet Points with AI | Slate",
		MetaDescription: "Generate clear bullet points instantly with AI. Free bullet point creator for presentations, reports, and summaries. Improve readability.",
		H1:              "Bullet Point Generator",
		Description:     "Transform paragraphs into clear, concise bullet points. Perfect for presentations, resumes, and professional documents.",
		Keywords: []string{
			"bullet point generator",
			"bullet points creator",
			"list generator",
			"summary bullets",
			"ai bullet points",
		},
		AIPrompt:     domain.Prompt("Convert this to bullet points"),
		Category:     "Writing Tools",
		SearchVolume: 12000,
		Difficulty:   42,
		Benefits: []string{
			"Instant bullet point conversion",
			"Professional formatting",
			"Action-oriented language",
			"Hierarchical organization",
			"Presentation-ready",
		},
		CTAText: "Create Bullet Points",
	},
	{
		Slug:            "tone-changer",
		Type:            domain.PageTypeTool,
		Title:           "Free Tone Changer - Change Text Tone with AI | Slate",
		MetaDescription: "Change writing tone instantly with AI. Free tone changer for professional, casual, formal, or friendly text. Adapt your message.",
		H1:              "AI Tone Changer",
		Description:     "Adjust your writing tone for any audience. Transform text between professional, casual, formal, friendly, and more with AI.",
		Keywords: []string{
			"tone changer",
			"writing tone",
			"text tone",
			"formal tone",
			"casual tone",
		},
		AIPrompt:     domain.Prompt("Change the tone of this text"),
		Category:     "Writing Tools",
		SearchVolume: 8000,
		Difficulty:   38,
		Benefits: []string{
			"Multiple tone options",
			"Audience adaptation",
			"Maintain message meaning",
			"Professional to casual",
			"Context-aware changes",
		},
		CTAText: "Change Tone",
	},

	// More comparisons
	{
		Slug:            "grammarly",
		Type:            domain.PageTypeVs,
		Title:           "Slate vs Grammarly - Free Grammarly Alternative | Slate",
		MetaDescription: "Compare Slate and Grammarly. Get AI writing help without the subscription. Free Grammarly alternative with privacy-first approach.",
		H1:              "Slate vs Grammarly",
		Description:     "Looking for a free Grammarly alternative? Slate offers AI-powered grammar checking, writing suggestions, and content generation without the monthly fee.",
		Keywords: []string{
			"grammarly alternative",
			"free grammarly",
			"slate vs grammarly",
			"grammar checker alternative",
		},
		Category:     "Comparisons",
		SearchVolume: 8000,
		Difficulty:   68,
		Benefits: []string{
			"100% free (Grammarly Premium is $12/month)",
			"No browser extension required",
			"Local-first privacy",
			"AI content generation included",
			"No word limits",
			"Export to any format",
		},
		CTAText: "Try Slate Free",
	},
	{
		Slug:            "jasper",
		Type:            domain.PageTypeVs,
		Title:           "Slate vs Jasper AI - Free Jasper Alternative | Slate",
		MetaDescription: "Compare Slate and Jasper AI. Get AI writing features without the $49/month cost. Free Jasper AI alternative for content creators.",
		H1:              "Slate vs Jasper AI",
		Description:     "Need a Jasper AI alternative? Slate provides powerful AI writing capabilities, content generation, and editing tools completely free.",
		Keywords: []string{
			"jasper alternative",
			"free jasper ai",
			"slate vs jasper",
			"jasper ai alternative",
		},
		Category:     "Comparisons",
		SearchVolume: 5000,
		Difficulty:   62,
		Benefits: []string{
			"100% free (Jasper starts at $49/month)",
			"No usage limits",
			"Local storage control",
			"Simple, clean interface",
			"No credit card required",
			"Privacy-focused",
		},
		CTAText: "Try Slate Free",
	},
	{
		Slug:            "copy-ai",
		Type:            domain.PageTypeVs,
		Title:           "Slate vs Copy.ai - Free Copy.ai Alternative | Slate",
		MetaDescription: "Compare Slate and Copy.ai. Get AI copywriting without subscriptions. Free Copy.ai alternative for marketers and creators.",
		H1:              "Slate vs Copy.ai",
		Description:     "Searching for a Copy.ai alternative? Slate offers AI-powered copywriting, content generation, and editing without the monthly subscription.",
		Keywords: []string{
			"copy.ai alternative",
			"free copy.ai",
			"slate vs copy.ai",
			"copywriting tool alternative",
		},
		Category:     "Comparisons",
		SearchVolume: 3000,
		Difficulty:   58,
		Benefits: []string{
			"100% free (Copy.ai is $36/month)",
			"Unlimited generations",
			"No word count limits",
			"Privacy-focused",
			"Export anywhere",
			"Local-first storage",
		},
		CTAText: "Try Slate Free",
	},
	{
		Slug:            "chatgpt",
		Type:            domain.PageTypeVs,
		Title:           "Slate vs ChatGPT - AI Writing Tool Comparison | Slate",
		MetaDescription: "Compare Slate and ChatGPT for writing. Purpose-built editor vs chat interface. See which AI writing tool fits your workflow.",
		H1:              "Slate vs ChatGPT",
		Description:     "ChatGPT is powerful, but it's not built for writing. Slate combines AI capabilities with a professional editor designed specifically for content creation.",
		Keywords: []string{
			"chatgpt alternative",
			"slate vs chatgpt",
			"chatgpt for writing",
			"ai writing tool",
		},
		Category:     "Comparisons",
		SearchVolume: 15000,
		Difficulty:   72,
		Benefits: []string{
			"Purpose-built editor (not a chat)",
			"Local-first privacy",
			"Markdown formatting",
			"Version history",
			"Export to any format",
			"Completely free",
		},
		CTAText: "Try Slate",
	},
}

