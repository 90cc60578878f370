package model

// EffortLevel estimates how much work a fix takes
type EffortLevel string

const (
	EffortEasy     EffortLevel = "easy"
	EffortModerate EffortLevel = "moderate"
	EffortHeavy    EffortLevel = "heavy"
)

// ImpactLevel estimates how much a fix moves the score
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

// Rank orders impact levels for sorting (HIGH first)
func (i ImpactLevel) Rank() int {
	switch i {
	case ImpactHigh:
		return 0
	case ImpactMedium:
		return 1
	default:
		return 2
	}
}

// FixScope says where the fix applies
type FixScope string

const (
	ScopeGlobal    FixScope = "global_fix"
	ScopeNewPage   FixScope = "new_page"
	ScopePageLevel FixScope = "page_level"
)

// Recommendation is one concrete, ranked remediation action.
// Title doubles as the deduplication identity.
type Recommendation struct {
	Title           string      `json:"title"`
	WhatToChange    string      `json:"what_to_change"`
	WhyItMatters    string      `json:"why_it_matters"`
	Where           string      `json:"where,omitempty"`
	CopyBlock       string      `json:"copy_block,omitempty"` // Paste-ready text
	Effort          EffortLevel `json:"effort"`
	Impact          ImpactLevel `json:"impact"`
	Dimension       string      `json:"dimension,omitempty"`
	PointsPotential float64     `json:"points_potential"`
	Scope           FixScope    `json:"scope"`
}
