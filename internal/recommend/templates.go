package recommend

import "github.com/eeatgrader/eeatgrader/internal/model"

// Paste-ready copy blocks with bracketed placeholders for the site
// owner to fill in.

func attorneyReviewBlock() string {
	return "Reviewed by [Attorney Name], [Title]. Licensed in [State]. " +
		"Last reviewed on [Date]."
}

func scopeJurisdictionBlock() string {
	return "This page covers general legal information in [State]. " +
		"Rules can change by county, court, and the specific facts of your case."
}

func noLegalAdviceBlock() string {
	return "This information is not legal advice and does not create an " +
		"attorney-client relationship. Talk with a lawyer about your specific facts."
}

func sourcesBlock() string {
	return "Sources: [State statute link], [court rule link], [agency guidance link]"
}

func howWeBuiltBlock() string {
	return "We built this guide from current statutes and court rules, " +
		"plus our case intake patterns. We update it when deadlines or rules change."
}

func editorialNoteBlock() string {
	return "Editorially reviewed by [Reviewer Name]. " +
		"Last reviewed on [Date]. We follow our editorial guidelines for accuracy."
}

func authorBioBlock() string {
	return "[Author Name] is a [Title/Role] with [X years] of experience in " +
		"[practice area / specialty]. [He/She/They] [is/are] licensed in [State] " +
		"and [has/have] handled [area of work]. Contact: [email / phone]."
}

func howWeTestedBlock() string {
	return "How we tested: We [tested/reviewed/evaluated] [X products/services] over " +
		"[time period]. We [describe methodology]. Our evaluation criteria included " +
		"[criteria list]."
}

func whoThisIsForBlock() string {
	return "Who this is for: This guide is designed for [target audience]. " +
		"If you [specific condition], you should consult a [professional type] instead."
}

// template is the fix blueprint for one missing rule signal
type template struct {
	title     string
	why       string
	copyBlock string
	effort    model.EffortLevel
	impact    model.ImpactLevel
	points    float64
	scope     model.FixScope
}

// signalTemplates maps rule-checker signal names to remediation
// blueprints. Legal pages swap in jurisdiction-aware copy blocks at
// lookup time.
func signalTemplates(isLegal bool) map[string]template {
	citationBlock := "Sources: [primary source link], [authoritative source link]"
	scopingBlock := whoThisIsForBlock()
	if isLegal {
		citationBlock = sourcesBlock()
		scopingBlock = scopeJurisdictionBlock() + "\n\n" + noLegalAdviceBlock()
	}

	return map[string]template{
		"Disclaimer / legal notice present": {
			title:     "Add a legal disclaimer",
			why:       "Legal content without disclaimers can mislead readers and create liability risk.",
			copyBlock: noLegalAdviceBlock(),
			effort:    model.EffortEasy,
			impact:    model.ImpactHigh,
			points:    4.0,
			scope:     model.ScopePageLevel,
		},
		"About page linked": {
			title:  "Add or link an About page",
			why:    "An About page establishes site identity and ownership, a baseline trust signal.",
			effort: model.EffortModerate,
			impact: model.ImpactHigh,
			points: 3.0,
			scope:  model.ScopeNewPage,
		},
		"Contact information present": {
			title:  "Add visible contact information",
			why:    "Readers and raters look for real contact paths (phone, email, address) to verify legitimacy.",
			effort: model.EffortEasy,
			impact: model.ImpactHigh,
			points: 3.0,
			scope:  model.ScopeGlobal,
		},
		"Privacy policy linked": {
			title:  "Add a privacy policy link",
			why:    "A privacy policy is a baseline expectation for any professional website.",
			effort: model.EffortEasy,
			impact: model.ImpactMedium,
			points: 1.5,
			scope:  model.ScopeGlobal,
		},
		"Terms of service linked": {
			title:  "Add terms of service link",
			why:    "Terms of service clarify the site-user relationship.",
			effort: model.EffortEasy,
			impact: model.ImpactLow,
			points: 1.0,
			scope:  model.ScopeGlobal,
		},
		"Editorial / review policy": {
			title:     "Add an editorial policy page",
			why:       "An editorial policy shows content goes through a review process, boosting Trust.",
			copyBlock: editorialNoteBlock(),
			effort:    model.EffortModerate,
			impact:    model.ImpactHigh,
			points:    3.5,
			scope:     model.ScopeNewPage,
		},
		"Dates shown (published / updated)": {
			title:     "Add publish and update dates",
			why:       "Visible dates let readers judge freshness. Undated content looks unmaintained.",
			copyBlock: "Published: [Date] | Last updated: [Date]",
			effort:    model.EffortEasy,
			impact:    model.ImpactHigh,
			points:    3.0,
			scope:     model.ScopePageLevel,
		},
		"Outbound citation count and quality": {
			title:     "Add authoritative citations to support claims",
			why:       "Unsupported claims weaken trust. Link to statutes, regulations, .gov/.edu sources.",
			copyBlock: citationBlock,
			effort:    model.EffortModerate,
			impact:    model.ImpactHigh,
			points:    4.0,
			scope:     model.ScopePageLevel,
		},
		"Affiliate / advertising disclosure": {
			title:     "Add an affiliate / advertising disclosure",
			why:       "FTC guidelines require disclosure when content is monetized through affiliate links or sponsorship.",
			copyBlock: "Disclosure: This page may contain affiliate links. We may earn a commission at no extra cost to you.",
			effort:    model.EffortEasy,
			impact:    model.ImpactMedium,
			points:    2.0,
			scope:     model.ScopePageLevel,
		},
		"Structured data (schema.org)": {
			title:  "Add schema.org structured data",
			why:    "Structured data helps search engines understand page purpose and display rich results.",
			effort: model.EffortModerate,
			impact: model.ImpactMedium,
			points: 2.0,
			scope:  model.ScopeGlobal,
		},
		"First-hand experience language": {
			title:     "Add first-hand experience details",
			why:       "Content reads as generic advice. Add specific details about what you tested, tried, or observed.",
			copyBlock: howWeTestedBlock(),
			effort:    model.EffortModerate,
			impact:    model.ImpactHigh,
			points:    3.5,
			scope:     model.ScopePageLevel,
		},
		"Procedural / step-by-step detail": {
			title:  "Add step-by-step procedural detail",
			why:    "Readers trust content that walks them through real steps, not just theory.",
			effort: model.EffortModerate,
			impact: model.ImpactMedium,
			points: 2.5,
			scope:  model.ScopePageLevel,
		},
		"Real-world caveats and limitations": {
			title:  "Add caveats and honest limitations",
			why:    "Content that acknowledges trade-offs and limitations reads as more credible.",
			effort: model.EffortEasy,
			impact: model.ImpactMedium,
			points: 2.0,
			scope:  model.ScopePageLevel,
		},
		"Original images / media": {
			title:  "Add original images or screenshots",
			why:    "Original visuals support experience claims and increase engagement.",
			effort: model.EffortModerate,
			impact: model.ImpactMedium,
			points: 2.0,
			scope:  model.ScopePageLevel,
		},
		"Domain-specific terminology": {
			title:  "Use more precise domain terminology",
			why:    "Generic language makes content look like it was written by a non-expert.",
			effort: model.EffortEasy,
			impact: model.ImpactMedium,
			points: 2.0,
			scope:  model.ScopePageLevel,
		},
		"Proper scoping and pro referrals": {
			title:     "Add audience scoping and professional referrals",
			why:       "Tell readers who this is for and when to consult a professional. Critical for YMYL topics.",
			copyBlock: scopingBlock,
			effort:    model.EffortEasy,
			impact:    model.ImpactHigh,
			points:    4.0,
			scope:     model.ScopePageLevel,
		},
		"Content depth (word count + structure)": {
			title:  "Deepen the content with more sections",
			why:    "The page is thin. Add sections that address edge cases, exceptions, and practical details.",
			effort: model.EffortHeavy,
			impact: model.ImpactMedium,
			points: 2.5,
			scope:  model.ScopePageLevel,
		},
		"Author name present": {
			title:  "Add a visible author name",
			why:    "Anonymous content on sensitive topics is a major trust red flag.",
			effort: model.EffortEasy,
			impact: model.ImpactHigh,
			points: 3.0,
			scope:  model.ScopePageLevel,
		},
		"Author bio with credentials": {
			title:     "Add an author bio with relevant credentials",
			why:       "A bio with specific, relevant background signals that the author is qualified to write this.",
			copyBlock: authorBioBlock(),
			effort:    model.EffortEasy,
			impact:    model.ImpactHigh,
			points:    4.0,
			scope:     model.ScopePageLevel,
		},
		"Dedicated author page": {
			title:  "Create a dedicated author profile page",
			why:    "A standalone author page lets readers (and Google) verify the author's identity and expertise.",
			effort: model.EffortModerate,
			impact: model.ImpactHigh,
			points: 3.5,
			scope:  model.ScopeNewPage,
		},
		"Professional credentials listed": {
			title:     "List professional credentials explicitly",
			why:       "Credentials like bar admissions, licenses, and certifications should be stated clearly.",
			copyBlock: "[Author Name], Esq. — Licensed in [State], [Bar Number]. [X] years practicing [area].",
			effort:    model.EffortEasy,
			impact:    model.ImpactHigh,
			points:    4.0,
			scope:     model.ScopePageLevel,
		},
		"Internal linking depth": {
			title:  "Add more internal links to related content",
			why:    "Strong internal linking demonstrates topical coverage depth and helps readers navigate related guides.",
			effort: model.EffortEasy,
			impact: model.ImpactMedium,
			points: 2.0,
			scope:  model.ScopePageLevel,
		},
		"Attorney roster / team page": {
			title:  "Add or link an attorney team page",
			why:    "A team page with attorney profiles establishes firm credibility and lets readers verify qualifications.",
			effort: model.EffortModerate,
			impact: model.ImpactHigh,
			points: 3.0,
			scope:  model.ScopeNewPage,
		},
	}
}
