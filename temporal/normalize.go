package temporal

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize folds compatibility characters (full-width digits, non-breaking
// spaces), lower-cases and collapses whitespace.
func normalize(phrase string) string {
	folded := norm.NFKC.String(phrase)
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
