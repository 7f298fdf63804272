// Internal/collector/url.go.

package collector

import (
	"net/url"
	"strings"
)

const (
	prefixHTTP  = "http://"
	prefixHTTPS = "https://"
)

// IsValidURL reports whether s is a well-formed absolute http or https URL
// with a non-empty host. The scheme match is case-sensitive, so HTTP://x is
// rejected; url.Parse lowercases the scheme, hence the raw prefix check.
func IsValidURL(s string) bool {
	if !strings.HasPrefix(s, prefixHTTP) && !strings.HasPrefix(s, prefixHTTPS) {
		return false
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return parsed.Host != ""
}
