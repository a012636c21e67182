package domain

import (
	"strings"
	"unicode"
)

// CanonicalKey reduces a free-text area title to its canonical lookup key by
// lowercasing and removing hyphens, underscores and whitespace. "ID Template",
// "id-template" and "ID_Template" all produce "idtemplate".
//
// Every grant lookup goes through this function so that area titles authored
// anywhere in the system (role management screens, seed data, API payloads)
// resolve consistently.
func CanonicalKey(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	for _, r := range title {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
