package extract

import (
	"regexp"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
	"golang.org/x/net/html"
)

var (
	ldAuthorRe = regexp.MustCompile(`"author"\s*:\s*\{[^}]*"name"\s*:\s*"([^"]+)"`)
	bioClassRe = regexp.MustCompile(`(?i)author.?bio|about.?author`)

	bylineClassRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)author`),
		regexp.MustCompile(`(?i)byline`),
		regexp.MustCompile(`(?i)writer`),
		regexp.MustCompile(`(?i)contributor`),
		regexp.MustCompile(`(?i)author-name`),
	}

	credentialRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(J\.?D\.?|Esq\.?|Attorney|Lawyer|Licensed|Bar\s+\w+)`),
		regexp.MustCompile(`(?i)(M\.?D\.?|Ph\.?D\.?|CPA|CFP|RN|LPN)`),
		regexp.MustCompile(`(?i)(\d+\s+years?\s+(?:of\s+)?experience)`),
	}
)

// extractAuthor tries meta tags, ld+json, byline classes, and bio
// blocks in that order; earlier sources win for the name
func extractAuthor(doc *html.Node) model.Author {
	var author model.Author

	if meta := findMeta(doc, "author"); meta != "" {
		author.Name = meta
	}

	if author.Name == "" {
		walkAll(doc, func(n *html.Node) {
			if author.Name != "" {
				return
			}
			if isElement(n, "script") && attr(n, "type") == "application/ld+json" {
				if m := ldAuthorRe.FindStringSubmatch(textContent(n)); m != nil {
					author.Name = m[1]
				}
			}
		})
	}

	for _, re := range bylineClassRes {
		el := findFirst(doc, func(n *html.Node) bool { return classMatches(n, re) })
		if el == nil {
			continue
		}
		if author.Name == "" {
			author.Name = clean(textContent(el))
		}
		if link := findFirst(el, func(n *html.Node) bool {
			return isElement(n, "a") && attr(n, "href") != ""
		}); link != nil {
			author.ProfileURL = attr(link, "href")
			author.HasAuthorPage = true
		}
		break
	}

	if bioEl := findFirst(doc, func(n *html.Node) bool { return classMatches(n, bioClassRe) }); bioEl != nil {
		bio := clean(textContent(bioEl))
		if len(bio) > 1000 {
			bio = bio[:1000]
		}
		author.Bio = bio
	}

	if author.Bio != "" {
		var creds []string
		for _, re := range credentialRes {
			if m := re.FindStringSubmatch(author.Bio); m != nil {
				creds = append(creds, m[1])
			}
		}
		author.Credentials = strings.Join(creds, "; ")
	}

	return author
}
