package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespace = regexp.MustCompile(`\s+`)

// clean collapses runs of whitespace to single spaces
func clean(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// attr returns the value of the named attribute, or ""
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// isElement reports whether n is an element with the given tag name
func isElement(n *html.Node, name string) bool {
	return n.Type == html.ElementNode && n.Data == name
}

// isHeading reports whether n is an h1-h6 element
func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode || len(n.Data) != 2 {
		return false
	}
	return n.Data[0] == 'h' && n.Data[1] >= '1' && n.Data[1] <= '6'
}

// headingLevel returns 1-6 for heading elements, 0 otherwise
func headingLevel(n *html.Node) int {
	if !isHeading(n) {
		return 0
	}
	return int(n.Data[1] - '0')
}

// textContent concatenates all descendant text nodes, skipping
// nested script and style bodies. Calling it on a script node itself
// returns the script body, which is how ld+json blocks are read.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			return
		}
		if c != n && c.Type == html.ElementNode && (c.Data == "script" || c.Data == "style") {
			return
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// findFirst returns the first node in document order matching pred
func findFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if pred(n) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// walkAll visits every node in document order
func walkAll(root *html.Node, visit func(*html.Node)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		visit(n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}

// findMeta locates a meta tag by property or name attribute
func findMeta(root *html.Node, key string) string {
	n := findFirst(root, func(n *html.Node) bool {
		return isElement(n, "meta") && (attr(n, "property") == key || attr(n, "name") == key)
	})
	if n == nil {
		return ""
	}
	return attr(n, "content")
}

// classMatches reports whether the node's class attribute matches re
func classMatches(n *html.Node, re *regexp.Regexp) bool {
	if n.Type != html.ElementNode {
		return false
	}
	cls := attr(n, "class")
	return cls != "" && re.MatchString(cls)
}
