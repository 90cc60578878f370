package extract

import (
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/model"
	"golang.org/x/net/html"
)

// extractDates pulls publish, update, and review dates from <time>
// elements (classified by the text around them) and falls back to
// article meta tags
func extractDates(doc *html.Node) model.Dates {
	var dates model.Dates

	walkAll(doc, func(n *html.Node) {
		if !isElement(n, "time") {
			return
		}
		dt := attr(n, "datetime")
		if dt == "" {
			dt = clean(textContent(n))
		}
		parentText := ""
		if n.Parent != nil {
			parentText = strings.ToLower(clean(textContent(n.Parent)))
		}
		switch {
		case strings.Contains(parentText, "publish") || strings.Contains(parentText, "posted"):
			if dates.Published == "" {
				dates.Published = dt
			}
		case strings.Contains(parentText, "update") || strings.Contains(parentText, "modif"):
			if dates.Updated == "" {
				dates.Updated = dt
			}
		case strings.Contains(parentText, "review"):
			if dates.Reviewed == "" {
				dates.Reviewed = dt
			}
		default:
			if dates.Published == "" {
				dates.Published = dt
			}
		}
	})

	for _, key := range []string{"article:published_time", "datePublished"} {
		if dates.Published != "" {
			break
		}
		dates.Published = findMeta(doc, key)
	}
	for _, key := range []string{"article:modified_time", "dateModified"} {
		if dates.Updated != "" {
			break
		}
		dates.Updated = findMeta(doc, key)
	}

	return dates
}
