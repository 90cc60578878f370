package model

// RiskLevel is the YMYL ("Your Money or Your Life") topic-risk tier
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// ContentPreset selects the weight profile and required signals for a
// content type
type ContentPreset string

const (
	PresetGeneral          ContentPreset = "general"
	PresetLegalPractice    ContentPreset = "legal_practice_area"
	PresetLegalLocation    ContentPreset = "legal_location"
	PresetLegalFAQ         ContentPreset = "legal_faq"
	PresetLegalGuide       ContentPreset = "legal_guide"
	PresetLegalCaseResults ContentPreset = "legal_case_results"
	PresetMedical          ContentPreset = "medical"
	PresetFinance          ContentPreset = "finance"
	PresetProductReview    ContentPreset = "product_review"
	PresetDIYTutorial      ContentPreset = "diy_tutorial"
)

// IsLegal reports whether the preset is one of the legal content types
func (p ContentPreset) IsLegal() bool {
	switch p {
	case PresetLegalPractice, PresetLegalLocation, PresetLegalFAQ,
		PresetLegalGuide, PresetLegalCaseResults:
		return true
	}
	return false
}

// AllPresets lists every preset in declaration order
func AllPresets() []ContentPreset {
	return []ContentPreset{
		PresetGeneral,
		PresetLegalPractice,
		PresetLegalLocation,
		PresetLegalFAQ,
		PresetLegalGuide,
		PresetLegalCaseResults,
		PresetMedical,
		PresetFinance,
		PresetProductReview,
		PresetDIYTutorial,
	}
}

// SignalEvidence records one checker's verdict with transparent scoring
// data. Points are always zero when the signal was not found.
type SignalEvidence struct {
	Signal      string  `json:"signal"`
	Found       bool    `json:"found"`
	Points      float64 `json:"points"`
	Quote       string  `json:"quote,omitempty"`
	Location    string  `json:"location,omitempty"`
	Explanation string  `json:"explanation,omitempty"`
}

// DimensionScore is one E-E-A-T dimension's score on a 0-25 scale
type DimensionScore struct {
	Name     string           `json:"name"`
	Score    float64          `json:"score"`
	MaxScore float64          `json:"max_score"`
	Signals  []SignalEvidence `json:"signals"`
	Summary  string           `json:"summary,omitempty"`
}

// ComplianceFlag marks professional-conduct risk language found in a section
type ComplianceFlag struct {
	Rule        string `json:"rule"`
	Severity    string `json:"severity"` // "high" or "medium"
	Text        string `json:"text"`     // Match with surrounding context
	Location    string `json:"location"`
	Explanation string `json:"explanation"`
	Fix         string `json:"fix"`
}

// EEATScore is the composite result: four dimension scores plus the
// weighted 0-100 overall
type EEATScore struct {
	Overall           float64          `json:"overall"`
	Experience        DimensionScore   `json:"experience"`
	Expertise         DimensionScore   `json:"expertise"`
	Authoritativeness DimensionScore   `json:"authoritativeness"`
	Trust             DimensionScore   `json:"trust"`
	Risk              RiskLevel        `json:"ymyl_risk"`
	PresetUsed        ContentPreset    `json:"preset_used"`
	ComplianceFlags   []ComplianceFlag `json:"compliance_flags"`
}
