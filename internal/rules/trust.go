package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// trustChecks is the Trust battery in fixed order
var trustChecks = []CheckFunc{
	checkAboutPage,
	checkContactPage,
	checkPrivacyPolicy,
	checkTerms,
	checkEditorialPolicy,
	checkDates,
	checkCitations,
	checkDisclaimers,
	checkDisclosures,
	checkSchema,
}

func checkAboutPage(c *model.Content) model.SignalEvidence {
	return signal(
		"About page linked",
		c.SiteSignals.HasAboutPage,
		2.0,
		"", "",
		"An 'About' page establishes site identity and ownership.",
	)
}

func checkContactPage(c *model.Content) model.SignalEvidence {
	paths := c.SiteSignals.ContactPaths
	if len(paths) > 3 {
		paths = paths[:3]
	}
	return signal(
		"Contact information present",
		c.SiteSignals.HasContactPage || len(c.SiteSignals.ContactPaths) > 0,
		2.0,
		strings.Join(paths, ", "), "",
		"Reachable contact info builds reader trust.",
	)
}

func checkPrivacyPolicy(c *model.Content) model.SignalEvidence {
	return signal(
		"Privacy policy linked",
		c.SiteSignals.HasPrivacyPolicy,
		1.0,
		"", "",
		"A privacy policy is a baseline trust signal for any website.",
	)
}

func checkTerms(c *model.Content) model.SignalEvidence {
	return signal(
		"Terms of service linked",
		c.SiteSignals.HasTerms,
		1.0,
		"", "",
		"Terms of service clarify the relationship between site and user.",
	)
}

func checkEditorialPolicy(c *model.Content) model.SignalEvidence {
	return signal(
		"Editorial / review policy",
		c.SiteSignals.HasEditorialPolicy,
		2.0,
		"", "",
		"An editorial policy signals content review processes.",
	)
}

func checkDates(c *model.Content) model.SignalEvidence {
	var detail []string
	if c.Dates.Published != "" {
		detail = append(detail, "Published: "+c.Dates.Published)
	}
	if c.Dates.Updated != "" {
		detail = append(detail, "Updated: "+c.Dates.Updated)
	}
	return signal(
		"Dates shown (published / updated)",
		len(detail) > 0,
		2.0,
		strings.Join(detail, "; "), "",
		"Visible dates let readers judge freshness and maintenance.",
	)
}

func checkCitations(c *model.Content) model.SignalEvidence {
	count := len(c.OutboundLinks)
	quality := 0
	for _, l := range c.OutboundLinks {
		if l.IsGovernment || l.IsEducational {
			quality++
		}
	}
	pts := math.Min(3.0, float64(count)*0.3+float64(quality)*0.5)
	return signal(
		"Outbound citation count and quality",
		count > 0,
		pts,
		fmt.Sprintf("%d outbound links, %d high-authority", count, quality), "",
		"Credible outbound citations support claims and build trust.",
	)
}

func checkDisclaimers(c *model.Content) model.SignalEvidence {
	quote := ""
	if len(c.Disclaimers) > 0 {
		quote = truncate(c.Disclaimers[0], 200)
	}
	return signal(
		"Disclaimer / legal notice present",
		len(c.Disclaimers) > 0,
		2.0,
		quote, "",
		"Disclaimers set expectations and reduce misleading impressions.",
	)
}

func checkDisclosures(c *model.Content) model.SignalEvidence {
	quote := ""
	if len(c.Disclosures) > 0 {
		quote = truncate(c.Disclosures[0], 200)
	}
	return signal(
		"Affiliate / advertising disclosure",
		len(c.Disclosures) > 0,
		1.5,
		quote, "",
		"Disclosures are required when content is monetized.",
	)
}

func checkSchema(c *model.Content) model.SignalEvidence {
	types := c.SchemaTypes
	if len(types) > 5 {
		types = types[:5]
	}
	return signal(
		"Structured data (schema.org)",
		c.HasSchemaMarkup,
		1.5,
		strings.Join(types, ", "), "",
		"Schema markup helps search engines understand the page's purpose.",
	)
}
