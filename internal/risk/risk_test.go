package risk

import (
	"testing"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

func content(title, text string) *model.Content {
	return &model.Content{Title: title, PlainText: text}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  model.RiskLevel
	}{
		{
			name:  "three high-risk hits is high",
			title: "Personal injury claims",
			text:  "Talk to an attorney about negligence and liability before the statute of limitations runs.",
			want:  model.RiskHigh,
		},
		{
			name:  "single high-risk hit is medium",
			title: "",
			text:  "You may want to speak with a lawyer about this.",
			want:  model.RiskMedium,
		},
		{
			name:  "two medium-risk hits is medium",
			title: "Better living",
			text:  "Our wellness and nutrition tips for the new year.",
			want:  model.RiskMedium,
		},
		{
			name:  "no risky terms is low",
			title: "Garden tips",
			text:  "Plant tomatoes after the last frost and water them regularly in summer.",
			want:  model.RiskLow,
		},
		{
			name:  "empty content is low",
			title: "",
			text:  "",
			want:  model.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(content(tt.title, tt.text))
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_TitleCountsTowardHits(t *testing.T) {
	c := content("Divorce and custody in our state", "The court handles family law matters.")
	if got := Classify(c); got != model.RiskHigh {
		t.Errorf("expected high risk from title+body hits, got %v", got)
	}
}

func TestDetectPreset_LegalCascade(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.ContentPreset
	}{
		{
			name: "legal with faq signal",
			text: "Our attorney answers faq about your lawyer consultation.",
			want: model.PresetLegalFAQ,
		},
		{
			name: "legal with location signal",
			text: "An attorney and lawyer serving the greater metro area.",
			want: model.PresetLegalLocation,
		},
		{
			name: "legal without signal falls back to practice area",
			text: "An attorney or lawyer can review your situation.",
			want: model.PresetLegalPractice,
		},
		{
			name: "testimonial maps to case results",
			text: "Read a client testimonial about our attorney and lawyer team.",
			want: model.PresetLegalCaseResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectPreset(content("", tt.text))
			if got != tt.want {
				t.Errorf("DetectPreset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectPreset_SignalTableOrder(t *testing.T) {
	// "guide" appears before "location" in the signal table, so a page
	// carrying both resolves to the guide preset.
	c := content("", "Our attorney wrote this lawyer guide for every location we serve.")
	if got := DetectPreset(c); got != model.PresetLegalGuide {
		t.Errorf("expected guide preset to win by table order, got %v", got)
	}
}

func TestDetectPreset_NonLegal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.ContentPreset
	}{
		{
			name: "medical threshold",
			text: "Your diagnosis determines the treatment plan; discuss medication and side effects with your doctor.",
			want: model.PresetMedical,
		},
		{
			name: "finance threshold",
			text: "An investment strategy should weigh your mortgage against other debt.",
			want: model.PresetFinance,
		},
		{
			name: "product review words",
			text: "We tested the top blenders and rated each one in this review.",
			want: model.PresetProductReview,
		},
		{
			name: "diy tutorial words",
			text: "How to build a shelf, step by step, with simple instructions.",
			want: model.PresetDIYTutorial,
		},
		{
			name: "default general",
			text: "A short note about our neighborhood bakery's bread.",
			want: model.PresetGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectPreset(content("", tt.text))
			if got != tt.want {
				t.Errorf("DetectPreset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectPreset_LegalBeatsMedical(t *testing.T) {
	// Two legal hits outrank even a heavy medical text.
	c := content("", "A medical malpractice attorney explains diagnosis, treatment, medication and surgery claims.")
	got := DetectPreset(c)
	if !got.IsLegal() {
		t.Errorf("expected a legal preset, got %v", got)
	}
}
