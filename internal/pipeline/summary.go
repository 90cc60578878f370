package pipeline

import (
	"fmt"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// buildSummary produces the plain-English one-paragraph digest shown
// at the top of every report
func buildSummary(score model.EEATScore, audit model.CitationAudit) string {
	var parts []string

	parts = append(parts, fmt.Sprintf(
		"Overall E-E-A-T score: %v/100 (Experience %v/25, Expertise %v/25, Authoritativeness %v/25, Trust %v/25).",
		score.Overall,
		score.Experience.Score,
		score.Expertise.Score,
		score.Authoritativeness.Score,
		score.Trust.Score,
	))
	parts = append(parts, fmt.Sprintf("YMYL risk: %s. Preset: %s.", score.Risk, score.PresetUsed))

	if audit.Unsupported > 0 {
		parts = append(parts, fmt.Sprintf("%d claim(s) lack citations.", audit.Unsupported))
	}
	if audit.NeedsQualification > 0 {
		parts = append(parts, fmt.Sprintf("%d claim(s) use overbroad language.", audit.NeedsQualification))
	}
	if len(score.ComplianceFlags) > 0 {
		parts = append(parts, fmt.Sprintf("%d compliance flag(s) detected.", len(score.ComplianceFlags)))
	}

	name, weakest := weakestDimension(score)
	parts = append(parts, fmt.Sprintf("Weakest dimension: %s (%v/25).", name, weakest))

	return strings.Join(parts, " ")
}

// weakestDimension returns the lowest-scoring dimension; ties resolve
// in Experience, Expertise, Authoritativeness, Trust order
func weakestDimension(score model.EEATScore) (string, float64) {
	dims := []struct {
		name  string
		score float64
	}{
		{"Experience", score.Experience.Score},
		{"Expertise", score.Expertise.Score},
		{"Authoritativeness", score.Authoritativeness.Score},
		{"Trust", score.Trust.Score},
	}
	name, min := dims[0].name, dims[0].score
	for _, d := range dims[1:] {
		if d.score < min {
			name, min = d.name, d.score
		}
	}
	return name, min
}
