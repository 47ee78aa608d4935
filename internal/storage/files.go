package storage

import (
	"net/url"
	"path"
	"strings"
)

var filenameReplacer = strings.NewReplacer(
	`\`, "_",
	"/", "_",
	"*", "_",
	"?", "_",
	":", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeFilename replaces characters that are not allowed in file names on
// common filesystems with "_". Length and Unicode form are left untouched.
func SanitizeFilename(name string) string {
	return filenameReplacer.Replace(name)
}

// ImageExtension returns the text after the last "." of the URL's final path
// segment, or "" when that segment has no dot
func ImageExtension(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	if p == "" {
		return ""
	}

	base := path.Base(p)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i+1:]
	}
	return ""
}
