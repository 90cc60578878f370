// Package extract parses HTML (or pasted plain text) into the
// normalized content model every analysis stage reads: sections,
// authorship, dates, links, images, schema types, and site signals.
package extract

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/eeatgrader/eeatgrader/internal/authority"
	"github.com/eeatgrader/eeatgrader/internal/model"
	"golang.org/x/net/html"
)

var schemaTypeRe = regexp.MustCompile(`"@type"\s*:\s*"([^"]+)"`)

// FromHTML parses HTML and pulls out every signal the scoring engine
// needs. sourceURL may be empty for local files; link classification
// then treats every link as outbound.
func FromHTML(htmlContent, sourceURL string) (*model.Content, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var base *url.URL
	baseDomain := ""
	if sourceURL != "" {
		base, err = url.Parse(sourceURL)
		if err != nil {
			return nil, fmt.Errorf("parse source url: %w", err)
		}
		baseDomain = authority.RegistrableDomain(sourceURL)
	}

	content := &model.Content{
		URL:     sourceURL,
		Domain:  baseDomain,
		RawHTML: htmlContent,
	}

	content.Title = extractTitle(doc)
	content.MetaDescription = findMeta(doc, "description")

	body := findBody(doc)
	content.Sections, content.PlainText = extractSections(body)
	content.WordCount = len(strings.Fields(content.PlainText))

	content.Author = extractAuthor(doc)
	content.Dates = extractDates(doc)

	linkRoot := body
	if linkRoot == nil {
		linkRoot = doc
	}
	content.OutboundLinks, content.InternalLinks = extractLinks(linkRoot, base, baseDomain)
	content.Images = extractImages(linkRoot, base)

	content.SchemaTypes = extractSchemaTypes(doc)
	content.HasSchemaMarkup = len(content.SchemaTypes) > 0

	content.Disclaimers = findKeywordTexts(doc, disclaimerKeywords)
	content.Disclosures = findKeywordTexts(doc, disclosureKeywords)

	content.SiteSignals = detectSiteSignals(doc)

	return content, nil
}

// FromText does minimal extraction for pasted plain text: paragraphs
// become headingless sections
func FromText(text string) *model.Content {
	var sections []model.Section
	idx := 0
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sections = append(sections, model.Section{Text: p, Index: idx})
		idx++
	}
	return &model.Content{
		PlainText: text,
		WordCount: len(strings.Fields(text)),
		Sections:  sections,
	}
}

func extractTitle(doc *html.Node) string {
	if og := findMeta(doc, "og:title"); og != "" {
		return clean(og)
	}
	if t := findFirst(doc, func(n *html.Node) bool { return isElement(n, "title") }); t != nil {
		return clean(textContent(t))
	}
	return ""
}

// findBody prefers article over main over body, matching how most
// publishing templates wrap the actual content
func findBody(doc *html.Node) *html.Node {
	for _, tag := range []string{"article", "main", "body"} {
		tag := tag
		if n := findFirst(doc, func(n *html.Node) bool { return isElement(n, tag) }); n != nil {
			return n
		}
	}
	return nil
}

// extractSections splits the body on headings. Each section is one
// heading plus the sibling elements up to the next heading. A body
// with no headings becomes a single headingless section.
func extractSections(body *html.Node) ([]model.Section, string) {
	if body == nil {
		return nil, ""
	}

	var headings []*html.Node
	walkAll(body, func(n *html.Node) {
		if isHeading(n) {
			headings = append(headings, n)
		}
	})

	if len(headings) == 0 {
		text := clean(textContent(body))
		return []model.Section{{Text: text, Index: 0}}, text
	}

	var sections []model.Section
	var plainParts []string
	for idx, h := range headings {
		headingText := clean(textContent(h))
		var parts []string
		for sib := h.NextSibling; sib != nil; sib = sib.NextSibling {
			if isHeading(sib) {
				break
			}
			if sib.Type != html.ElementNode {
				continue
			}
			parts = append(parts, clean(textContent(sib)))
		}
		sectionText := strings.Join(parts, " ")
		sections = append(sections, model.Section{
			Heading: headingText,
			Text:    sectionText,
			Level:   headingLevel(h),
			Index:   idx,
		})
		plainParts = append(plainParts, headingText+" "+sectionText)
	}
	return sections, strings.Join(plainParts, " ")
}

// extractLinks classifies every anchor under root as outbound or
// internal relative to the page's registrable domain
func extractLinks(root *html.Node, base *url.URL, baseDomain string) (outbound, internal []model.Link) {
	walkAll(root, func(n *html.Node) {
		if !isElement(n, "a") {
			return
		}
		href := strings.TrimSpace(attr(n, "href"))
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}

		fullURL := href
		if base != nil {
			if parsed, err := url.Parse(href); err == nil {
				fullURL = base.ResolveReference(parsed).String()
			}
		}

		domain := ""
		if strings.HasPrefix(fullURL, "http") {
			domain = authority.RegistrableDomain(fullURL)
		}

		isExternal := true
		if baseDomain != "" {
			isExternal = domain != baseDomain
		}

		link := model.Link{
			URL:           fullURL,
			AnchorText:    clean(textContent(n)),
			IsExternal:    isExternal,
			Domain:        domain,
			IsGovernment:  authority.IsGovernment(domain),
			IsEducational: authority.IsEducational(domain),
		}
		if isExternal {
			outbound = append(outbound, link)
		} else {
			internal = append(internal, link)
		}
	})
	return outbound, internal
}

func extractImages(root *html.Node, base *url.URL) []string {
	var images []string
	walkAll(root, func(n *html.Node) {
		if !isElement(n, "img") {
			return
		}
		src := attr(n, "src")
		if src == "" {
			src = attr(n, "data-src")
		}
		if src == "" {
			return
		}
		if base != nil {
			if parsed, err := url.Parse(src); err == nil {
				src = base.ResolveReference(parsed).String()
			}
		}
		images = append(images, src)
	})
	return images
}

// extractSchemaTypes pulls @type values out of ld+json blocks with a
// regex scan rather than full JSON decoding, which tolerates the
// malformed markup common in the wild
func extractSchemaTypes(doc *html.Node) []string {
	var types []string
	walkAll(doc, func(n *html.Node) {
		if !isElement(n, "script") || attr(n, "type") != "application/ld+json" {
			return
		}
		for _, m := range schemaTypeRe.FindAllStringSubmatch(textContent(n), -1) {
			types = append(types, m[1])
		}
	})
	return types
}
