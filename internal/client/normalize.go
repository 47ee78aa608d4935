package client

import "strings"

const (
	panduitCDNPrefix  = "panduit-h.assetsadobe.com/is/image/content/dam/panduit/en/products/assets/"
	panduitSitePrefix = "www.panduit.com/content/dam/panduit/en/products/assets/"
)

// Rewrite maps a CDN host+path prefix onto the canonical site prefix
type Rewrite struct {
	From string
	To   string
}

// Normalizer canonicalizes image URLs: the first matching prefix rewrite is
// applied and any query string is dropped
type Normalizer struct {
	rewrites []Rewrite
}

// NewNormalizer always carries the Panduit CDN rewrite; extra rewrites are
// tried after it
func NewNormalizer(extra ...Rewrite) *Normalizer {
	rewrites := make([]Rewrite, 0, len(extra)+1)
	rewrites = append(rewrites, Rewrite{From: panduitCDNPrefix, To: panduitSitePrefix})
	rewrites = append(rewrites, extra...)

	return &Normalizer{rewrites: rewrites}
}

var defaultNormalizer = NewNormalizer()

// NormalizeImageURL normalizes with the Panduit rewrite only
func NormalizeImageURL(url string) string {
	return defaultNormalizer.Normalize(url)
}

func (n *Normalizer) Normalize(url string) string {
	scheme, rest := splitScheme(url)
	for _, rw := range n.rewrites {
		if strings.HasPrefix(rest, rw.From) {
			rest = rw.To + strings.TrimPrefix(rest, rw.From)
			break
		}
	}
	url = scheme + rest

	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return url
}

// splitScheme separates "https://", "http://" or a protocol-relative "//"
// from the host+path part
func splitScheme(url string) (string, string) {
	for _, scheme := range []string{"https://", "http://", "//"} {
		if strings.HasPrefix(url, scheme) {
			return scheme, url[len(scheme):]
		}
	}
	return "", url
}
