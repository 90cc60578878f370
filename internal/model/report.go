package model

import "time"

// Report is the complete analysis result returned to callers
type Report struct {
	Score           EEATScore        `json:"score"`
	Extracted       Content          `json:"extracted"` // RawHTML stripped before transmission
	CitationAudit   CitationAudit    `json:"citation_audit"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}
