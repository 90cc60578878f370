// Package risk labels content by YMYL topic risk and detects the
// best-fitting content preset from page signals. Both are pure
// functions of the normalized content text.
package risk

import (
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

func countHits(text string, lexicon []string) int {
	hits := 0
	for _, kw := range lexicon {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}

func searchText(content *model.Content) string {
	return strings.ToLower(content.PlainText + " " + content.Title)
}

// Classify returns the YMYL risk tier for the content.
// Three or more high-risk lexicon hits mean HIGH; two medium hits or a
// single high hit mean MEDIUM; everything else is LOW.
func Classify(content *model.Content) model.RiskLevel {
	text := searchText(content)

	highHits := countHits(text, legalHigh) +
		countHits(text, medicalHigh) +
		countHits(text, financeHigh) +
		countHits(text, safetyHigh)

	if highHits >= 3 {
		return model.RiskHigh
	}

	mediumHits := countHits(text, mediumRisk)
	if mediumHits >= 2 || highHits >= 1 {
		return model.RiskMedium
	}

	return model.RiskLow
}

// DetectPreset picks a content preset from page signals. The cascade
// is a fixed priority: legal beats medical and finance, which beat the
// review and tutorial heuristics, which fall back to general.
func DetectPreset(content *model.Content) model.ContentPreset {
	text := searchText(content)

	if countHits(text, legalHigh) >= 2 {
		for _, entry := range legalPresetSignals {
			if strings.Contains(text, entry.signal) {
				return entry.preset
			}
		}
		return model.PresetLegalPractice
	}

	if countHits(text, medicalHigh) >= 3 {
		return model.PresetMedical
	}

	if countHits(text, financeHigh) >= 3 {
		return model.PresetFinance
	}

	if countHits(text, reviewWords) >= 2 {
		return model.PresetProductReview
	}

	if countHits(text, howToWords) >= 2 {
		return model.PresetDIYTutorial
	}

	return model.PresetGeneral
}
