package urlhandler

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/aleister1102/ecverify/internal/models"
	"golang.org/x/net/publicsuffix"
)

// Stray percent signs that do not start a valid escape sequence.
var strayPercentRegex = regexp.MustCompile(`%([^0-9A-Fa-f]|[0-9A-Fa-f][^0-9A-Fa-f]|[0-9A-Fa-f]?$)`)

// Parse turns a raw access URL into a ParsedURL.
// A missing scheme defaults to http, a bare path ("/a/b") is accepted with an empty
// hostname, the path is percent-decoded and the query keeps its parameter order.
func Parse(rawURL string) (*models.ParsedURL, error) {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return nil, &models.URLValidationError{URL: rawURL, Message: "URL is empty or only whitespace"}
	}

	candidate := trimmedURL
	if !strings.HasPrefix(candidate, "/") && !strings.Contains(candidate, "://") {
		candidate = "http://" + candidate
	}

	parsedURL, err := url.Parse(candidate)
	if err != nil {
		// Keep undecodable escapes literally instead of rejecting the URL.
		parsedURL, err = url.Parse(escapeStrayPercents(candidate))
		if err != nil {
			return nil, &models.URLValidationError{URL: rawURL, Message: "could not parse URL", Err: err}
		}
	}

	path := parsedURL.Path
	if path == "" && parsedURL.Host != "" {
		path = "/"
	}

	return &models.ParsedURL{
		Raw:      rawURL,
		Path:     path,
		Hostname: strings.ToLower(parsedURL.Hostname()),
		Query:    ParseQuery(parsedURL.RawQuery),
	}, nil
}

// ParseQuery decodes a raw query string, keeping parameter order.
// Only "&" separates parameters; values that cannot be unescaped are kept raw.
func ParseQuery(rawQuery string) models.Query {
	query := models.NewQuery()
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		query.Add(unescapeQueryComponent(key), unescapeQueryComponent(value))
	}
	return query
}

// unescapeQueryComponent decodes "+" and percent escapes, falling back to the raw text
func unescapeQueryComponent(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// escapeStrayPercents rewrites "%" signs that do not begin an escape into "%25"
func escapeStrayPercents(s string) string {
	for strayPercentRegex.MatchString(s) {
		s = strayPercentRegex.ReplaceAllString(s, "%25$1")
	}
	return s
}

// RegistrableDomain returns the eTLD+1 of hostname ("www.emeraldinsight.com" -> "emeraldinsight.com").
// Hosts that have no registrable part (IPs, "localhost", bare suffixes) are returned lower-cased.
func RegistrableDomain(hostname string) string {
	host := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(hostname)), ".")
	if host == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

// DomainMatch grades how closely a hostname matches a platform domain.
type DomainMatch int

const (
	// MatchNone means the hostname is unrelated to the domain.
	MatchNone DomainMatch = iota
	// MatchRegistrable means both share the same registrable domain.
	MatchRegistrable
	// MatchSubdomain means the hostname is a subdomain of the domain.
	MatchSubdomain
	// MatchExact means the hostname equals the domain.
	MatchExact
)

// MatchDomain grades hostname against a single platform domain.
func MatchDomain(hostname, domain string) DomainMatch {
	host := strings.ToLower(strings.TrimSpace(hostname))
	d := strings.ToLower(strings.TrimSpace(domain))
	if host == "" || d == "" {
		return MatchNone
	}

	switch {
	case host == d:
		return MatchExact
	case strings.HasSuffix(host, "."+d):
		return MatchSubdomain
	case RegistrableDomain(host) == RegistrableDomain(d):
		return MatchRegistrable
	default:
		return MatchNone
	}
}

// BestDomainMatch returns the best grade of hostname against any of domains.
func BestDomainMatch(hostname string, domains []string) DomainMatch {
	best := MatchNone
	for _, d := range domains {
		if m := MatchDomain(hostname, d); m > best {
			best = m
		}
	}
	return best
}
