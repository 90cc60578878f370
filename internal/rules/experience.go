package rules

import (
	"fmt"
	"math"
	"regexp"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// experienceChecks is the Experience battery in fixed order
var experienceChecks = []CheckFunc{
	checkFirsthandLanguage,
	checkProceduralDetail,
	checkCaveats,
	checkOriginalMedia,
}

var firsthandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(I|we)\s+(tested|tried|used|measured|compared|built|installed|configured)\b`),
	regexp.MustCompile(`(?i)\b(in\s+my|in\s+our)\s+experience\b`),
	regexp.MustCompile(`(?i)\bwhat\s+(surprised|failed|worked|broke)\b`),
	regexp.MustCompile(`(?i)\bwhat\s+I('d| would)\s+do\s+differently\b`),
	regexp.MustCompile(`(?i)\bafter\s+\d+\s+(hours?|days?|weeks?|months?|years?)\s+of\s+(using|testing)\b`),
}

var proceduralDetailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bstep\s+\d\b`),
	regexp.MustCompile(`(?i)\b(first|then|next|finally),?\s+(I|we|you)\b`),
	regexp.MustCompile(`(?i)\b(setup|configuration|install)\s+(took|required|involved)\b`),
}

var caveatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(caveat|downside|limitation|drawback|trade.?off)\b`),
	regexp.MustCompile(`(?i)\b(however|but|on the other hand|that said)\b`),
	regexp.MustCompile(`(?i)\b(didn't work|wasn't ideal|could be better)\b`),
}

func checkFirsthandLanguage(c *model.Content) model.SignalEvidence {
	text := c.PlainText
	hits := 0
	quote := ""
	for _, pat := range firsthandPatterns {
		if loc := pat.FindStringIndex(text); loc != nil {
			hits++
			if quote == "" {
				quote = excerpt(text, loc[0], loc[1], 30, 30)
			}
		}
	}
	pts := math.Min(4.0, float64(hits))
	return signal(
		"First-hand experience language",
		hits > 0,
		pts,
		quote, "Body text",
		"First-person procedural language signals real experience.",
	)
}

func checkProceduralDetail(c *model.Content) model.SignalEvidence {
	text := c.PlainText
	hits := 0
	sample := ""
	for _, pat := range proceduralDetailPatterns {
		if loc := pat.FindStringIndex(text); loc != nil {
			hits++
			if sample == "" {
				sample = excerpt(text, loc[0], loc[1], 30, 50)
			}
		}
	}
	return signal(
		"Procedural / step-by-step detail",
		hits > 0,
		math.Min(3.0, float64(hits)),
		sample, "",
		"Step-by-step detail suggests the author has performed the process.",
	)
}

func checkCaveats(c *model.Content) model.SignalEvidence {
	text := c.PlainText
	hits := 0
	sample := ""
	for _, pat := range caveatPatterns {
		if loc := pat.FindStringIndex(text); loc != nil {
			hits++
			if sample == "" {
				sample = excerpt(text, loc[0], loc[1], 40, 60)
			}
		}
	}
	return signal(
		"Real-world caveats and limitations",
		hits > 0,
		math.Min(3.0, float64(hits)*0.75),
		sample, "",
		"Acknowledging limitations signals honest, real-world experience.",
	)
}

func checkOriginalMedia(c *model.Content) model.SignalEvidence {
	count := len(c.Images)
	return signal(
		"Original images / media",
		count > 0,
		math.Min(3.0, float64(count)*0.5),
		fmt.Sprintf("%d images found", count), "",
		"Original photos or screenshots support first-hand experience.",
	)
}
