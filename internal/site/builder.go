package site

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hautu-waka/wakabuild/internal/config"
	"github.com/hautu-waka/wakabuild/internal/content"
	"github.com/hautu-waka/wakabuild/internal/lint"
)

// ErrDanglingReferences aborts a build under the strict reference policy.
var ErrDanglingReferences = errors.New("dangling cross-references")

// Section names used in reports and metrics.
const (
	SectionIntro   = "intro"
	SectionTools   = "tools"
	SectionMuscles = "muscles"
	SectionSources = "sources"
	SectionOverlay = "stage_overlay"
)

// Options selects the build policies.
type Options struct {
	Markdown     bool
	References   config.ReferencePolicy
	Placeholders config.PlaceholderPolicy
}

// OptionsFromConfig extracts the render options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Markdown:     cfg.Render.Markdown,
		References:   cfg.Render.References,
		Placeholders: cfg.Render.Placeholders,
	}
}

// Result is a completed in-memory build.
type Result struct {
	Page   string
	Report *BuildReport
}

// Build assembles the page from loaded records and the template document.
// Pure with respect to its inputs: identical inputs produce byte-identical
// output. All file I/O stays with the caller.
func Build(recs *content.Records, tmpl string, opts Options) (*Result, error) {
	report := newBuildReport()

	lookups, err := NewLookups(recs.Stages, recs.Tools)
	if err != nil {
		return nil, err
	}

	if opts.References == config.ReferencesStrict {
		if findings := lint.Dangling(recs); len(findings) > 0 {
			msgs := make([]string, len(findings))
			for i, f := range findings {
				msgs[i] = f.Message
			}
			return nil, fmt.Errorf("%w: %s", ErrDanglingReferences, strings.Join(msgs, "; "))
		}
	}

	prose := NewProse(opts.Markdown)

	intro, err := RenderIntro(recs.Intro, prose)
	if err != nil {
		return nil, err
	}
	tools, err := RenderTools(recs.Tools, lookups, prose)
	if err != nil {
		return nil, err
	}
	muscles, err := RenderMuscles(recs.Muscles, lookups, prose)
	if err != nil {
		return nil, err
	}
	sources, err := RenderSources(recs.Sources)
	if err != nil {
		return nil, err
	}
	overlay, err := ProjectStageOverlay(recs.Stages, lookups)
	if err != nil {
		return nil, err
	}

	page, err := Assemble(tmpl, Fragments{
		Intro:     intro.HTML,
		Tools:     tools.HTML,
		Muscles:   muscles.HTML,
		Sources:   sources.HTML,
		StageData: overlay.HTML,
	}, opts.Placeholders)
	if err != nil {
		return nil, err
	}

	report.SectionEntries[SectionIntro] = intro.Entries
	report.SectionEntries[SectionTools] = tools.Entries
	report.SectionEntries[SectionMuscles] = muscles.Entries
	report.SectionEntries[SectionSources] = sources.Entries
	report.SectionEntries[SectionOverlay] = overlay.Entries
	report.DroppedReferences = intro.Dropped + tools.Dropped + muscles.Dropped + sources.Dropped + overlay.Dropped
	report.OutputBytes = len(page)
	report.finish(OutcomeSuccess)

	return &Result{Page: page, Report: report}, nil
}
