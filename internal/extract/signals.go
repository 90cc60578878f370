package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
	"golang.org/x/net/html"
)

var disclaimerKeywords = []string{
	"not legal advice",
	"not a substitute",
	"does not create",
	"attorney-client",
	"consult a",
	"consult an",
	"seek professional",
	"general information",
	"informational purposes",
	"no guarantee",
	"disclaimer",
}

var disclosureKeywords = []string{
	"affiliate",
	"commission",
	"sponsored",
	"paid partnership",
	"advertising",
	"compensation",
	"material connection",
	"ftc",
}

var textContainers = map[string]bool{
	"p": true, "div": true, "span": true, "small": true, "aside": true,
}

var phoneRe = regexp.MustCompile(`(\(?\d{3}\)?[\s\-.]\d{3}[\s\-.]\d{4})`)

// findKeywordTexts collects the text of small content containers that
// mention any of the keywords, capped at 10 matches
func findKeywordTexts(doc *html.Node, keywords []string) []string {
	var found []string
	walkAll(doc, func(n *html.Node) {
		if len(found) >= 10 {
			return
		}
		if n.Type != html.ElementNode || !textContainers[n.Data] {
			return
		}
		text := clean(textContent(n))
		lower := strings.ToLower(text)
		if len(lower) >= 2000 {
			return
		}
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found = append(found, text)
				break
			}
		}
	})
	return found
}

var (
	aboutKeys     = []string{"about", "about us", "our firm", "our story", "who we are"}
	contactKeys   = []string{"contact", "contact us", "get in touch"}
	privacyKeys   = []string{"privacy", "privacy policy"}
	termsKeys     = []string{"terms", "terms of service", "terms of use", "terms & conditions"}
	editorialKeys = []string{"editorial policy", "editorial guidelines", "editorial standards"}
	attorneyKeys  = []string{"attorneys", "our attorneys", "our team", "our lawyers", "team"}
)

func matchesAny(text string, keys []string) bool {
	for _, k := range keys {
		if k == text {
			return true
		}
	}
	return false
}

// detectSiteSignals infers trust pages from footer and nav link text
// without extra HTTP calls. A phone number anywhere on the page also
// counts as a contact path.
func detectSiteSignals(doc *html.Node) model.SiteSignals {
	var signals model.SiteSignals

	// Anchor text to href, insertion-ordered, last href wins
	var order []string
	hrefs := make(map[string]string)
	walkAll(doc, func(n *html.Node) {
		if !isElement(n, "a") || attr(n, "href") == "" {
			return
		}
		text := strings.ToLower(clean(textContent(n)))
		if _, ok := hrefs[text]; !ok {
			order = append(order, text)
		}
		hrefs[text] = attr(n, "href")
	})

	for _, text := range order {
		if matchesAny(text, aboutKeys) {
			signals.HasAboutPage = true
		}
		if matchesAny(text, contactKeys) {
			signals.HasContactPage = true
			signals.ContactPaths = append(signals.ContactPaths, hrefs[text])
		}
		if matchesAny(text, privacyKeys) {
			signals.HasPrivacyPolicy = true
		}
		if matchesAny(text, termsKeys) {
			signals.HasTerms = true
		}
		if matchesAny(text, editorialKeys) {
			signals.HasEditorialPolicy = true
		}
		if matchesAny(text, attorneyKeys) {
			signals.HasAttorneyRoster = true
		}
	}

	if m := phoneRe.FindString(textContent(doc)); m != "" {
		signals.ContactPaths = append(signals.ContactPaths, fmt.Sprintf("phone: %s", m))
	}

	return signals
}
