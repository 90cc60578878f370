// Package score blends the deterministic rule scores with the
// advisory rater result and computes the weighted overall score.
package score

import (
	"math"

	"github.com/eeatgrader/eeatgrader/internal/model"
	"github.com/eeatgrader/eeatgrader/internal/preset"
	"github.com/eeatgrader/eeatgrader/internal/rater"
	"github.com/eeatgrader/eeatgrader/internal/rules"
)

// rulesWeight is the deterministic share of each blended dimension;
// the advisory rater carries the remainder
const rulesWeight = 0.6

// Merged holds the four blended dimension scores
type Merged struct {
	Experience        model.DimensionScore
	Expertise         model.DimensionScore
	Authoritativeness model.DimensionScore
	Trust             model.DimensionScore
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// mergeDimension blends one dimension. Rule evidence keeps its place
// ahead of advisory evidence, and the advisory summary wins when the
// model produced one.
func mergeDimension(r, m model.DimensionScore) model.DimensionScore {
	blended := round1(r.Score*rulesWeight + m.Score*(1.0-rulesWeight))

	signals := make([]model.SignalEvidence, 0, len(r.Signals)+len(m.Signals))
	signals = append(signals, r.Signals...)
	signals = append(signals, m.Signals...)

	summary := m.Summary
	if summary == "" {
		summary = r.Summary
	}

	return model.DimensionScore{
		Name:     r.Name,
		Score:    blended,
		MaxScore: 25.0,
		Signals:  signals,
		Summary:  summary,
	}
}

// Merge combines rule scores with an advisory result. A nil advisory
// passes the rule scores through untouched, so a failed or disabled
// rater never changes the deterministic baseline.
func Merge(r rules.Scores, advisory *rater.Result) Merged {
	if advisory == nil {
		return Merged{
			Experience:        r.Experience,
			Expertise:         r.Expertise,
			Authoritativeness: r.Authoritativeness,
			Trust:             r.Trust,
		}
	}
	return Merged{
		Experience:        mergeDimension(r.Experience, advisory.Experience),
		Expertise:         mergeDimension(r.Expertise, advisory.Expertise),
		Authoritativeness: mergeDimension(r.Authoritativeness, advisory.Authoritativeness),
		Trust:             mergeDimension(r.Trust, advisory.Trust),
	}
}

// Overall computes the weighted 0-100 score from the blended
// dimensions and the preset's weight profile
func Overall(m Merged, p model.ContentPreset) float64 {
	cfg := preset.Get(p)
	weighted := m.Experience.Score*(cfg.ExperienceWeight/25.0) +
		m.Expertise.Score*(cfg.ExpertiseWeight/25.0) +
		m.Authoritativeness.Score*(cfg.AuthoritativenessWeight/25.0) +
		m.Trust.Score*(cfg.TrustWeight/25.0)
	return round1(math.Min(100.0, math.Max(0.0, weighted)))
}
