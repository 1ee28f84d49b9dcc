package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name canonicalizes a user-entered name or handle for lookup: trimmed
// and case-folded.
func Name(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
