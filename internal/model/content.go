package model

// Section is one heading-delimited block of the source document.
// Index is zero-based, stable, and unique within a document; every
// downstream location reference (claims, flags) joins on it.
type Section struct {
	Heading string `json:"heading,omitempty"`
	Text    string `json:"text"`
	Level   int    `json:"level,omitempty"` // Heading level (1-6), 0 for plain text
	Index   int    `json:"index"`
}

// Author holds whatever authorship metadata the extractor could find
type Author struct {
	Name          string `json:"name,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Credentials   string `json:"credentials,omitempty"`
	ProfileURL    string `json:"profile_url,omitempty"`
	HasAuthorPage bool   `json:"has_author_page"`
}

// Dates holds page freshness metadata as displayed on the page
type Dates struct {
	Published string `json:"published,omitempty"`
	Updated   string `json:"updated,omitempty"`
	Reviewed  string `json:"reviewed,omitempty"`
}

// Link is a single outbound or internal hyperlink, pre-classified by
// the extractor
type Link struct {
	URL           string `json:"url"`
	AnchorText    string `json:"anchor_text,omitempty"`
	IsExternal    bool   `json:"is_external"`
	Domain        string `json:"domain,omitempty"` // Registrable domain (example.co.uk)
	IsGovernment  bool   `json:"is_government"`
	IsEducational bool   `json:"is_educational"`
	IsBroken      bool   `json:"is_broken"`
}

// SiteSignals are site-level trust pages detected from on-page links
// or probed directly
type SiteSignals struct {
	HasAboutPage       bool     `json:"has_about_page"`
	HasContactPage     bool     `json:"has_contact_page"`
	HasPrivacyPolicy   bool     `json:"has_privacy_policy"`
	HasTerms           bool     `json:"has_terms"`
	HasEditorialPolicy bool     `json:"has_editorial_policy"`
	HasAttorneyRoster  bool     `json:"has_attorney_roster"`
	ContactPaths       []string `json:"contact_paths,omitempty"`
}

// Content is the normalized document every pipeline stage reads.
// It is never mutated after extraction; each analysis owns its copy.
type Content struct {
	Title           string      `json:"title,omitempty"`
	MetaDescription string      `json:"meta_description,omitempty"`
	URL             string      `json:"url,omitempty"`
	Domain          string      `json:"domain,omitempty"`
	RawHTML         string      `json:"raw_html,omitempty"` // Stripped before rendering
	PlainText       string      `json:"plain_text"`
	WordCount       int         `json:"word_count"`
	Sections        []Section   `json:"sections"`
	Author          Author      `json:"author"`
	Dates           Dates       `json:"dates"`
	OutboundLinks   []Link      `json:"outbound_links,omitempty"`
	InternalLinks   []Link      `json:"internal_links,omitempty"`
	Images          []string    `json:"images,omitempty"`
	SiteSignals     SiteSignals `json:"site_signals"`
	HasSchemaMarkup bool        `json:"has_schema_markup"`
	SchemaTypes     []string    `json:"schema_types,omitempty"`
	Disclaimers     []string    `json:"disclaimers,omitempty"`
	Disclosures     []string    `json:"disclosures,omitempty"`
}
