package compliance

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

func section(heading, text string) model.Section {
	return model.Section{Heading: heading, Text: text, Index: 0}
}

func TestScan_GuaranteeLanguage(t *testing.T) {
	content := &model.Content{
		Sections: []model.Section{
			section("Why Choose Us", "We guarantee a careful review of the facts in every matter we accept for representation. After the investigation stage concludes, you will win your case."),
		},
	}
	flags := Scan(content)
	if len(flags) < 2 {
		t.Fatalf("expected guarantee and outcome-promise flags, got %d: %+v", len(flags), flags)
	}

	var guarantee, promise *model.ComplianceFlag
	for i := range flags {
		switch {
		case strings.Contains(flags[i].Explanation, "Guarantee language"):
			guarantee = &flags[i]
		case strings.Contains(flags[i].Explanation, "Promising specific outcomes"):
			promise = &flags[i]
		}
	}
	if guarantee == nil {
		t.Fatal("no guarantee flag raised")
	}
	if guarantee.Rule != "Rule 7.1(a)" || guarantee.Severity != "high" {
		t.Errorf("guarantee flag = %s/%s, want Rule 7.1(a)/high", guarantee.Rule, guarantee.Severity)
	}
	if guarantee.Location != "Why Choose Us" {
		t.Errorf("location = %q, want section heading", guarantee.Location)
	}
	if promise == nil {
		t.Error("no outcome-promise flag raised")
	}
}

func TestScan_DollarAmountsAndNoFee(t *testing.T) {
	content := &model.Content{
		Sections: []model.Section{
			section("Results", "We recovered a $2.5 million settlement. Free consultation available, no fee unless we win."),
		},
	}
	flags := Scan(content)

	var dollar, noFee bool
	for _, f := range flags {
		if f.Rule == "Rule 7.1(b)" && f.Severity == "high" {
			dollar = true
		}
		if f.Rule == "Rule 7.1(b)" && f.Severity == "medium" {
			noFee = true
		}
	}
	if !dollar {
		t.Error("dollar-amount case result not flagged")
	}
	if !noFee {
		t.Error("no-fee language not flagged")
	}
}

func TestScan_CourtConnections(t *testing.T) {
	content := &model.Content{
		Sections: []model.Section{
			section("", "Our connections to the court help us move cases quickly."),
		},
	}
	flags := Scan(content)
	if len(flags) != 1 {
		t.Fatalf("expected 1 flag, got %d", len(flags))
	}
	if flags[0].Rule != "Rule 7.1(a) / Rule 8.4" {
		t.Errorf("rule = %q", flags[0].Rule)
	}
	if flags[0].Location != "Section 1" {
		t.Errorf("headingless section should fall back to numbering, got %q", flags[0].Location)
	}
}

func TestScan_ContextSnippet(t *testing.T) {
	pad := strings.Repeat("x", 100)
	content := &model.Content{
		Sections: []model.Section{
			section("Body", pad+" we guarantee results "+pad),
		},
	}
	flags := Scan(content)
	if len(flags) == 0 {
		t.Fatal("expected a flag")
	}
	f := flags[0]
	if !strings.HasPrefix(f.Text, "...") || !strings.HasSuffix(f.Text, "...") {
		t.Errorf("context should be ellipsed: %q", f.Text)
	}
	if !strings.Contains(f.Text, "guarantee") {
		t.Errorf("context should contain the match: %q", f.Text)
	}
}

func TestScan_DeduplicatesRepeatedContexts(t *testing.T) {
	// Same phrase at the start of two sections produces identical
	// context snippets; only the first survives
	text := "We guarantee satisfaction for every client we represent here."
	content := &model.Content{
		Sections: []model.Section{
			{Heading: "A", Text: text, Index: 0},
			{Heading: "B", Text: text, Index: 1},
		},
	}
	flags := Scan(content)
	if len(flags) != 1 {
		t.Errorf("expected duplicate contexts to collapse to 1 flag, got %d", len(flags))
	}
	if len(flags) > 0 && flags[0].Location != "A" {
		t.Errorf("first occurrence should win, got location %q", flags[0].Location)
	}
}

func TestScan_CleanContent(t *testing.T) {
	content := &model.Content{
		Sections: []model.Section{
			section("Overview", "Our experienced attorneys focus on personal injury matters and explain your options."),
		},
	}
	if flags := Scan(content); len(flags) != 0 {
		t.Errorf("expected no flags for neutral copy, got %+v", flags)
	}
}

func TestScan_MultibyteContextStaysValid(t *testing.T) {
	pad := strings.Repeat("é", 60)
	content := &model.Content{
		Sections: []model.Section{
			{Index: 0, Heading: "Résumé", Text: pad + " We guarantee you will win your case. " + pad},
		},
	}
	flags := Scan(content)
	if len(flags) == 0 {
		t.Fatal("expected a guarantee flag")
	}
	for _, f := range flags {
		if !utf8.ValidString(f.Text) {
			t.Errorf("context is not valid UTF-8: %q", f.Text)
		}
	}
}
