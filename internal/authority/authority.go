// Package authority classifies link targets by institutional authority.
// A domain is government or educational when its registrable suffix
// matches a fixed allow-list; everything else is unclassified.
package authority

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var govSuffixes = []string{".gov", ".mil", ".gc.ca", ".gov.uk", ".gov.au"}

var eduSuffixes = []string{".edu", ".ac.uk", ".edu.au"}

// IsGovernment reports whether the domain belongs to a government body
func IsGovernment(domain string) bool {
	return hasAnySuffix(domain, govSuffixes)
}

// IsEducational reports whether the domain belongs to an academic institution
func IsEducational(domain string) bool {
	return hasAnySuffix(domain, eduSuffixes)
}

func hasAnySuffix(domain string, suffixes []string) bool {
	d := strings.ToLower(domain)
	for _, s := range suffixes {
		if strings.HasSuffix(d, s) {
			return true
		}
	}
	return false
}

// RegistrableDomain resolves a URL to its registrable domain
// (eTLD+1, e.g. "example.co.uk"). Returns "" when the URL has no
// usable host.
func RegistrableDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Hosts like "localhost" or bare TLDs have no eTLD+1
		return host
	}
	return domain
}
