// Package requestmeta inspects request origin metadata for mutation guards.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// TrustForwardedProto must be enabled explicitly before X-Forwarded-Proto is
// honored. The header is client-controlled unless a proxy strips it.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// HasSameOriginProof reports whether Origin or Referer proves the request
// came from one of this site's own pages.
func HasSameOriginProof(r *http.Request) bool {
	return HasSameOriginProofWithPolicy(r, SchemePolicy{})
}

// HasSameOriginProofWithPolicy reports same-origin proof under the provided
// scheme policy. Origin is consulted first; Referer only when Origin is absent.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	want, ok := requestOrigin(r, policy)
	if !ok {
		return false
	}
	if raw := strings.TrimSpace(r.Header.Get("Origin")); raw != "" {
		return claimMatches(raw, want)
	}
	if raw := strings.TrimSpace(r.Header.Get("Referer")); raw != "" {
		return claimMatches(raw, want)
	}
	return false
}

// originParts is a normalized scheme, host, and port triple.
type originParts struct {
	scheme string
	host   string
	port   string
}

// claimMatches parses a header-supplied URL and compares it against the
// request's own origin. Unknown schemes have no default port and never match.
func claimMatches(raw string, want originParts) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	got := originParts{
		scheme: normalize(parsed.Scheme),
		host:   normalize(parsed.Hostname()),
		port:   strings.TrimSpace(parsed.Port()),
	}
	if got.scheme == "" || got.host == "" {
		return false
	}
	if got.port == "" {
		got.port = defaultPort(got.scheme)
	}
	if got.port == "" || want.port == "" {
		return false
	}
	return got.scheme == want.scheme && got.host == want.host && got.port == want.port
}

func requestOrigin(r *http.Request, policy SchemePolicy) (originParts, bool) {
	if r == nil {
		return originParts{}, false
	}
	parts := originParts{scheme: requestScheme(r, policy)}
	parts.host, parts.port = splitHostPort(r.Host)
	if parts.host == "" && r.URL != nil {
		parts.host, parts.port = splitHostPort(r.URL.Host)
	}
	if parts.host == "" {
		return originParts{}, false
	}
	if parts.port == "" {
		parts.port = defaultPort(parts.scheme)
	}
	return parts, true
}

func requestScheme(r *http.Request, policy SchemePolicy) string {
	if policy.TrustForwardedProto {
		if forwarded := normalize(r.Header.Get("X-Forwarded-Proto")); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := normalize(r.URL.Scheme); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "http":
		return "80"
	case "https":
		return "443"
	}
	return ""
}

func splitHostPort(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return normalize(parsed.Hostname()), strings.TrimSpace(parsed.Port())
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
