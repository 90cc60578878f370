package rules

import (
	"fmt"
	"math"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// authoritativenessChecks is the Authoritativeness battery in fixed order
var authoritativenessChecks = []CheckFunc{
	checkAuthorPresent,
	checkAuthorBio,
	checkAuthorPage,
	checkCredentials,
	checkInternalLinking,
	checkAttorneyRoster,
}

func checkAuthorPresent(c *model.Content) model.SignalEvidence {
	return signal(
		"Author name present",
		c.Author.Name != "",
		2.0,
		c.Author.Name, "",
		"Named authorship establishes accountability.",
	)
}

func checkAuthorBio(c *model.Content) model.SignalEvidence {
	return signal(
		"Author bio with credentials",
		c.Author.Bio != "",
		3.0,
		truncate(c.Author.Bio, 200), "",
		"A bio with relevant background signals authority on the topic.",
	)
}

func checkAuthorPage(c *model.Content) model.SignalEvidence {
	return signal(
		"Dedicated author page",
		c.Author.HasAuthorPage,
		2.5,
		c.Author.ProfileURL, "",
		"A dedicated author page lets readers verify credentials.",
	)
}

func checkCredentials(c *model.Content) model.SignalEvidence {
	return signal(
		"Professional credentials listed",
		c.Author.Credentials != "",
		3.0,
		c.Author.Credentials, "",
		"Explicit credentials (bar admissions, degrees, certifications) strengthen authority.",
	)
}

func checkInternalLinking(c *model.Content) model.SignalEvidence {
	count := len(c.InternalLinks)
	return signal(
		"Internal linking depth",
		count >= 3,
		math.Min(3.0, float64(count)*0.3),
		fmt.Sprintf("%d internal links", count), "",
		"Strong internal linking to related content shows topical ownership.",
	)
}

func checkAttorneyRoster(c *model.Content) model.SignalEvidence {
	return signal(
		"Attorney roster / team page",
		c.SiteSignals.HasAttorneyRoster,
		2.0,
		"", "",
		"An attorney roster with profile pages establishes firm credibility.",
	)
}
