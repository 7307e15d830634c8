package site

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var slugReplacer = strings.NewReplacer(
	"(", "",
	")", "",
	"'", "",
	"/", "-",
	" ", "-",
)

// Slug converts a display name to a URL-safe anchor token: parentheses and
// apostrophes removed, slashes and spaces become hyphens, everything
// lower-cased. Total over all strings, including empty.
func Slug(name string) string {
	return strings.ToLower(slugReplacer.Replace(name))
}

var titleCaser = cases.Title(language.English)

// MuscleLabel derives a display label from a muscle id: hyphens become spaces
// and each word is title-cased. Labels are derived from the id itself, never
// resolved against the taxonomy, so unknown ids still produce a link.
func MuscleLabel(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "-", " "))
}
