// Package preset holds the per-content-type weight profiles.
// Each profile weights the four E-E-A-T dimensions (weights sum to
// 100) and names the signals that content type cannot score well
// without.
package preset

import "github.com/eeatgrader/eeatgrader/internal/model"

// Config is one content type's weight and required-signal profile
type Config struct {
	ExperienceWeight        float64
	ExpertiseWeight         float64
	AuthoritativenessWeight float64
	TrustWeight             float64
	RequiredSignals         []string
	Label                   string
}

// RequiresSignal reports whether the named signal is required for this preset
func (c Config) RequiresSignal(name string) bool {
	for _, s := range c.RequiredSignals {
		if s == name {
			return true
		}
	}
	return false
}

var configs = map[model.ContentPreset]Config{
	model.PresetGeneral: {
		ExperienceWeight:        20,
		ExpertiseWeight:         25,
		AuthoritativenessWeight: 25,
		TrustWeight:             30,
		Label:                   "General content",
	},
	model.PresetLegalPractice: {
		ExperienceWeight:        15,
		ExpertiseWeight:         25,
		AuthoritativenessWeight: 20,
		TrustWeight:             40,
		RequiredSignals: []string{
			"Disclaimer / legal notice present",
			"Author bio with credentials",
			"Professional credentials listed",
			"Dates shown (published / updated)",
			"Outbound citation count and quality",
			"Proper scoping and pro referrals",
		},
		Label: "Legal — Practice Area Page",
	},
	model.PresetLegalLocation: {
		ExperienceWeight:        10,
		ExpertiseWeight:         25,
		AuthoritativenessWeight: 25,
		TrustWeight:             40,
		RequiredSignals: []string{
			"Disclaimer / legal notice present",
			"Contact information present",
			"Author bio with credentials",
		},
		Label: "Legal — Location Page",
	},
	model.PresetLegalFAQ: {
		ExperienceWeight:        10,
		ExpertiseWeight:         30,
		AuthoritativenessWeight: 20,
		TrustWeight:             40,
		RequiredSignals: []string{
			"Disclaimer / legal notice present",
			"Proper scoping and pro referrals",
			"Dates shown (published / updated)",
		},
		Label: "Legal — FAQ",
	},
	model.PresetLegalGuide: {
		ExperienceWeight:        15,
		ExpertiseWeight:         25,
		AuthoritativenessWeight: 20,
		TrustWeight:             40,
		RequiredSignals: []string{
			"Disclaimer / legal notice present",
			"Outbound citation count and quality",
			"Author bio with credentials",
			"Dates shown (published / updated)",
			"Proper scoping and pro referrals",
		},
		Label: "Legal — Long Guide",
	},
	model.PresetLegalCaseResults: {
		ExperienceWeight:        10,
		ExpertiseWeight:         20,
		AuthoritativenessWeight: 25,
		TrustWeight:             45,
		RequiredSignals: []string{
			"Disclaimer / legal notice present",
			"Author bio with credentials",
		},
		Label: "Legal — Case Results / Testimonials",
	},
	model.PresetMedical: {
		ExperienceWeight:        15,
		ExpertiseWeight:         30,
		AuthoritativenessWeight: 15,
		TrustWeight:             40,
		RequiredSignals: []string{
			"Author bio with credentials",
			"Outbound citation count and quality",
			"Dates shown (published / updated)",
			"Proper scoping and pro referrals",
		},
		Label: "Medical content",
	},
	model.PresetFinance: {
		ExperienceWeight:        15,
		ExpertiseWeight:         30,
		AuthoritativenessWeight: 20,
		TrustWeight:             35,
		RequiredSignals: []string{
			"Author bio with credentials",
			"Outbound citation count and quality",
			"Dates shown (published / updated)",
		},
		Label: "Financial content",
	},
	model.PresetProductReview: {
		ExperienceWeight:        35,
		ExpertiseWeight:         20,
		AuthoritativenessWeight: 15,
		TrustWeight:             30,
		RequiredSignals: []string{
			"First-hand experience language",
			"Original images / media",
			"Affiliate / advertising disclosure",
		},
		Label: "Product Review",
	},
	model.PresetDIYTutorial: {
		ExperienceWeight:        35,
		ExpertiseWeight:         25,
		AuthoritativenessWeight: 10,
		TrustWeight:             30,
		RequiredSignals: []string{
			"First-hand experience language",
			"Procedural / step-by-step detail",
			"Original images / media",
		},
		Label: "DIY Tutorial",
	},
}

// Get returns the configuration for a preset, falling back to the
// general profile for unknown values.
func Get(p model.ContentPreset) Config {
	if cfg, ok := configs[p]; ok {
		return cfg
	}
	return configs[model.PresetGeneral]
}
