package rules

import (
	"reflect"
	"strings"
	"testing"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

func emptyContent() *model.Content {
	return &model.Content{}
}

func richContent() *model.Content {
	text := "I tested the process myself over several weeks. " +
		"In my experience the setup took about an hour. " +
		"First, you file the form. Step 1 is the intake. " +
		"However, there is one downside worth noting. " +
		"This applies to residents only; consult an attorney for specifics. " +
		"The statute and jurisdiction questions around negligence and liability are complex."

	return &model.Content{
		Title:     "A complete guide",
		PlainText: text,
		WordCount: 1600,
		Sections: []model.Section{
			{Index: 0}, {Index: 1}, {Index: 2}, {Index: 3}, {Index: 4},
		},
		Author: model.Author{
			Name:          "Jane Roe",
			Bio:           "Jane Roe is a licensed practitioner with 12 years of experience.",
			Credentials:   "J.D.; Licensed",
			ProfileURL:    "https://example.com/author/jane",
			HasAuthorPage: true,
		},
		Dates: model.Dates{Published: "2024-01-10", Updated: "2024-06-01"},
		OutboundLinks: []model.Link{
			{URL: "https://cdc.gov/a", Domain: "cdc.gov", IsGovernment: true},
			{URL: "https://example.com/b", Domain: "example.com"},
		},
		InternalLinks: []model.Link{
			{URL: "/one"}, {URL: "/two"}, {URL: "/three"}, {URL: "/four"},
		},
		Images: []string{"a.jpg", "b.jpg"},
		SiteSignals: model.SiteSignals{
			HasAboutPage:       true,
			HasContactPage:     true,
			HasPrivacyPolicy:   true,
			HasTerms:           true,
			HasEditorialPolicy: true,
			HasAttorneyRoster:  true,
			ContactPaths:       []string{"/contact"},
		},
		HasSchemaMarkup: true,
		SchemaTypes:     []string{"Article", "FAQPage"},
		Disclaimers:     []string{"This is not legal advice."},
		Disclosures:     []string{"This page may contain affiliate links."},
	}
}

func TestRun_ScoresWithinBounds(t *testing.T) {
	for _, c := range []*model.Content{emptyContent(), richContent()} {
		scores := Run(c)
		for _, dim := range []model.DimensionScore{
			scores.Experience, scores.Expertise, scores.Authoritativeness, scores.Trust,
		} {
			if dim.Score < 0 || dim.Score > 25 {
				t.Errorf("%s score %v out of [0,25]", dim.Name, dim.Score)
			}
			if dim.MaxScore != 25 {
				t.Errorf("%s max score %v, want 25", dim.Name, dim.MaxScore)
			}
		}
	}
}

func TestRun_NotFoundMeansZeroPoints(t *testing.T) {
	scores := Run(emptyContent())
	for _, dim := range []model.DimensionScore{
		scores.Experience, scores.Expertise, scores.Authoritativeness, scores.Trust,
	} {
		for _, sig := range dim.Signals {
			if !sig.Found && sig.Points != 0 {
				t.Errorf("%s/%s: found=false but points=%v", dim.Name, sig.Signal, sig.Points)
			}
		}
	}
}

func TestRun_RichContentScoresHigh(t *testing.T) {
	scores := Run(richContent())

	if scores.Trust.Score < 15 {
		t.Errorf("trust score %v unexpectedly low for fully signaled content", scores.Trust.Score)
	}
	if scores.Authoritativeness.Score < 15 {
		t.Errorf("authoritativeness score %v unexpectedly low", scores.Authoritativeness.Score)
	}

	for _, sig := range scores.Experience.Signals {
		if sig.Signal == "First-hand experience language" && !sig.Found {
			t.Error("expected first-hand language to be detected")
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	c := richContent()
	first := Run(c)
	second := Run(c)
	if !reflect.DeepEqual(first, second) {
		t.Error("two rules runs over identical content differ")
	}
}

func TestCheckDepth_Tiers(t *testing.T) {
	tests := []struct {
		name      string
		words     int
		sections  int
		wantFound bool
		wantPts   float64
	}{
		{"thin page", 300, 2, false, 0},
		{"good depth", 900, 3, true, 1},
		{"great depth", 1600, 6, true, 2},
		{"long but flat", 1600, 2, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &model.Content{WordCount: tt.words, Sections: make([]model.Section, tt.sections)}
			for i := range c.Sections {
				c.Sections[i].Index = i
			}
			ev := checkDepth(c)
			if ev.Found != tt.wantFound || ev.Points != tt.wantPts {
				t.Errorf("checkDepth(%d words, %d sections) = found %v pts %v, want %v %v",
					tt.words, tt.sections, ev.Found, ev.Points, tt.wantFound, tt.wantPts)
			}
		})
	}
}

func TestCheckTerminology_RequiresTwoDistinctHits(t *testing.T) {
	one := &model.Content{PlainText: "The statute was amended last year."}
	if ev := checkTerminology(one); ev.Found {
		t.Error("one terminology hit should not count as found")
	}

	two := &model.Content{PlainText: "The statute defines jurisdiction for these claims."}
	ev := checkTerminology(two)
	if !ev.Found {
		t.Error("two terminology hits should count as found")
	}
	if ev.Points != 1.0 {
		t.Errorf("expected 1.0 points for two hits, got %v", ev.Points)
	}
}

func TestCheckCitations_AuthorityWeighting(t *testing.T) {
	plain := &model.Content{OutboundLinks: []model.Link{{URL: "https://example.com"}}}
	gov := &model.Content{OutboundLinks: []model.Link{{URL: "https://cdc.gov", IsGovernment: true}}}

	p := checkCitations(plain)
	g := checkCitations(gov)
	if g.Points <= p.Points {
		t.Errorf("government link should score higher: gov %v, plain %v", g.Points, p.Points)
	}
}

func TestCheckFirsthandLanguage_CapsPoints(t *testing.T) {
	c := &model.Content{PlainText: strings.Repeat(
		"I tested it. In my experience it held up. What surprised me was the weight. "+
			"What I'd do differently next time. After 3 weeks of using it daily. ", 3)}
	ev := checkFirsthandLanguage(c)
	if !ev.Found {
		t.Fatal("expected first-hand language to be found")
	}
	if ev.Points > 4.0 {
		t.Errorf("points %v exceed the 4.0 cap", ev.Points)
	}
}

func TestQuotesBounded(t *testing.T) {
	c := richContent()
	c.Author.Bio = strings.Repeat("x", 5000)
	scores := Run(c)
	for _, sig := range scores.Authoritativeness.Signals {
		if len(sig.Quote) > 300 {
			t.Errorf("%s quote length %d exceeds 300", sig.Signal, len(sig.Quote))
		}
	}
}
