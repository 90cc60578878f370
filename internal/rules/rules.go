// Package rules runs the deterministic E-E-A-T check batteries.
// Every check is a pure function of the normalized content and
// produces one SignalEvidence with points, a quote, and a location,
// so scores stay fully transparent.
package rules

import (
	"math"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// CheckFunc is the contract every checker implements
type CheckFunc func(*model.Content) model.SignalEvidence

// Point ceilings used to rescale each battery's raw sum to 0-25.
// Tuned constants, not derived from the checks.
const (
	trustCeiling             = 18.0
	experienceCeiling        = 13.0
	expertiseCeiling         = 12.0
	authoritativenessCeiling = 15.5
)

// signal builds a SignalEvidence, zeroing points when not found
func signal(name string, found bool, pts float64, quote, location, explanation string) model.SignalEvidence {
	if !found {
		pts = 0
	}
	return model.SignalEvidence{
		Signal:      name,
		Found:       found,
		Points:      pts,
		Quote:       truncate(quote, 300),
		Location:    location,
		Explanation: explanation,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// excerpt returns text around [start,end) with the given margins,
// clamped to the text bounds
func excerpt(text string, start, end, before, after int) string {
	s := start - before
	if s < 0 {
		s = 0
	}
	e := end + after
	if e > len(text) {
		e = len(text)
	}
	return text[s:e]
}

// Scores holds the four rules-only dimension scores
type Scores struct {
	Experience        model.DimensionScore
	Expertise         model.DimensionScore
	Authoritativeness model.DimensionScore
	Trust             model.DimensionScore
}

func runBattery(content *model.Content, name string, ceiling float64, checks []CheckFunc) model.DimensionScore {
	signals := make([]model.SignalEvidence, 0, len(checks))
	raw := 0.0
	for _, check := range checks {
		ev := check(content)
		signals = append(signals, ev)
		raw += ev.Points
	}

	score := 0.0
	if ceiling > 0 {
		score = math.Min(25, raw/ceiling*25)
	}

	return model.DimensionScore{
		Name:     name,
		Score:    round1(score),
		MaxScore: 25,
		Signals:  signals,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Run executes all four check batteries over the content
func Run(content *model.Content) Scores {
	return Scores{
		Trust:             runBattery(content, "Trust", trustCeiling, trustChecks),
		Experience:        runBattery(content, "Experience", experienceCeiling, experienceChecks),
		Expertise:         runBattery(content, "Expertise", expertiseCeiling, expertiseChecks),
		Authoritativeness: runBattery(content, "Authoritativeness", authoritativenessCeiling, authoritativenessChecks),
	}
}
