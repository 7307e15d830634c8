package site

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hautu-waka/wakabuild/internal/config"
)

// Placeholder tokens the template document must carry, one per generated
// output. Substitution is global: every occurrence of a token is replaced.
const (
	PlaceholderIntro     = "{{INTRO_SECTION}}"
	PlaceholderTools     = "{{TOOLS_SECTION}}"
	PlaceholderMuscles   = "{{MUSCLES_SECTION}}"
	PlaceholderSources   = "{{SOURCES_SECTION}}"
	PlaceholderStageData = "{{STAGE_DATA}}"
)

// ErrMissingPlaceholder marks a template lacking a required placeholder token.
var ErrMissingPlaceholder = errors.New("template missing placeholder")

// Fragments carries the five generated outputs in assembly form.
type Fragments struct {
	Intro     string
	Tools     string
	Muscles   string
	Sources   string
	StageData string
}

// Assemble substitutes the five placeholder tokens in the template document.
// Under the strict policy a missing token aborts with ErrMissingPlaceholder
// naming every absent token; under the lenient policy it is only logged and
// that section is silently absent from output.
func Assemble(tmpl string, fr Fragments, policy config.PlaceholderPolicy) (string, error) {
	pairs := []struct {
		token   string
		content string
	}{
		{PlaceholderIntro, fr.Intro},
		{PlaceholderTools, fr.Tools},
		{PlaceholderMuscles, fr.Muscles},
		{PlaceholderSources, fr.Sources},
		{PlaceholderStageData, fr.StageData},
	}

	var missing []string
	for _, p := range pairs {
		if !strings.Contains(tmpl, p.token) {
			missing = append(missing, p.token)
		}
	}
	if len(missing) > 0 {
		if policy == config.PlaceholdersStrict {
			return "", fmt.Errorf("%w: %s", ErrMissingPlaceholder, strings.Join(missing, ", "))
		}
		for _, token := range missing {
			slog.Warn("Template placeholder missing, section will be absent from output", "token", token)
		}
	}

	out := tmpl
	for _, p := range pairs {
		out = strings.ReplaceAll(out, p.token, p.content)
	}
	return out, nil
}
