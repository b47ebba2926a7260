package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage returns the entry of available that best fits the
// Accept-Language header. Requested tags are tried in quality order; for each
// one an exact match wins over a base-language match ("en" matches "en-us"
// and vice versa). Without any match the first available entry is returned.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en-us", "de"]
// Returns: "en-us"
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}

	header = strings.TrimSpace(header)
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, quality, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return available[0]
	}

	for i, tag := range tags {
		if quality[i] <= 0 || tag == language.Und {
			continue
		}
		requested := normalizeName(tag.String())

		for _, avail := range available {
			if normalizeName(avail) == requested {
				return avail
			}
		}
		for _, avail := range available {
			if matchesLanguage(requested, avail) {
				return avail
			}
		}
	}

	return available[0]
}

// MatchLanguage picks the configured language that best fits an
// Accept-Language header.
func (l *Loader) MatchLanguage(header string) string {
	return MatchAcceptLanguage(header, l.languages)
}

// matchesLanguage checks if a requested language matches an available language.
// Supports partial matching: "en" matches "en-us" and vice versa.
func matchesLanguage(requested, available string) bool {
	requested = normalizeName(requested)
	available = normalizeName(available)

	if requested == available {
		return true
	}

	reqBase, _, _ := strings.Cut(requested, "-")
	availBase, _, _ := strings.Cut(available, "-")
	return reqBase != "" && reqBase == availBase
}
