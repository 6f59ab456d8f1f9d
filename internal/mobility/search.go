package mobility

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldName normalizes s to NFC and applies Unicode case folding so that
// "JOSÉ", "josé" and a decomposed "josé" all compare equal.
func foldName(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// nameContains reports whether fragment occurs in name, ignoring case.
func nameContains(name, fragment string) bool {
	return strings.Contains(foldName(name), foldName(fragment))
}
