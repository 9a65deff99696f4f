package handle

import (
	"regexp"
	"strings"
)

const productsSegment = "/products/"

// barcodePattern matches raw 13-14 digit ids which the shop resolves like handles.
var barcodePattern = regexp.MustCompile(`^\d{13,14}$`)

// Parse returns product handles from free text with one product URL or barcode per line.
// Lines which can't be parsed are dropped. Duplicates are kept.
func Parse(input string) []string {
	handles, _ := ParseReport(input)
	return handles
}

// ParseReport works like Parse, but also returns non-empty lines which were dropped.
func ParseReport(input string) (handles []string, dropped []string) {
	handles = []string{}

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if h, ok := fromLine(line); ok {
			handles = append(handles, h)
			continue
		}

		dropped = append(dropped, line)
	}

	return handles, dropped
}

// FromHref returns handle from URL or href containing /products/ path segment.
func FromHref(href string) (string, bool) {
	_, rest, found := strings.Cut(href, productsSegment)
	if !found {
		return "", false
	}

	// only the segment between the first and the next /products/ counts
	rest, _, _ = strings.Cut(rest, productsSegment)
	h := TrimSuffix(rest)

	return h, h != ""
}

// TrimSuffix cuts path segment at first '?', '#' or '&'.
func TrimSuffix(segment string) string {
	if ix := strings.IndexAny(segment, "?#&"); ix >= 0 {
		return segment[:ix]
	}
	return segment
}

func fromLine(line string) (string, bool) {
	if strings.Contains(line, productsSegment) {
		return FromHref(line)
	}

	if barcodePattern.MatchString(line) {
		return line, true
	}

	return "", false
}
