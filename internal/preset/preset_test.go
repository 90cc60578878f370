package preset

import (
	"testing"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

func TestWeightsSumToOneHundred(t *testing.T) {
	for _, p := range model.AllPresets() {
		cfg := Get(p)
		sum := cfg.ExperienceWeight + cfg.ExpertiseWeight +
			cfg.AuthoritativenessWeight + cfg.TrustWeight
		if sum != 100 {
			t.Errorf("preset %s: weights sum to %v, want 100", p, sum)
		}
	}
}

func TestGet_UnknownFallsBackToGeneral(t *testing.T) {
	got := Get(model.ContentPreset("no_such_preset"))
	want := Get(model.PresetGeneral)
	if got.Label != want.Label {
		t.Errorf("unknown preset returned %q, want general (%q)", got.Label, want.Label)
	}
}

func TestRequiresSignal(t *testing.T) {
	cfg := Get(model.PresetLegalPractice)
	if !cfg.RequiresSignal("Disclaimer / legal notice present") {
		t.Error("expected disclaimer to be required for legal practice pages")
	}
	if cfg.RequiresSignal("Original images / media") {
		t.Error("did not expect images to be required for legal practice pages")
	}
}

func TestProductReviewEmphasizesExperience(t *testing.T) {
	cfg := Get(model.PresetProductReview)
	if cfg.ExperienceWeight <= Get(model.PresetGeneral).ExperienceWeight {
		t.Error("product review preset should weight experience above general")
	}
	if !cfg.RequiresSignal("First-hand experience language") {
		t.Error("product review preset should require first-hand language")
	}
}
