package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hautu-waka/wakabuild/internal/config"
	"github.com/hautu-waka/wakabuild/internal/content"
	"github.com/hautu-waka/wakabuild/internal/logfields"
	"github.com/hautu-waka/wakabuild/internal/metrics"
)

// Run performs a full build invocation: load records, read the template,
// assemble, write the output file and persist the build report. This is the
// I/O shell around Build shared by the build command and the preview server.
func Run(cfg *config.Config, rec metrics.Recorder) (*BuildReport, error) {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	start := time.Now()

	recs, err := content.LoadDir(cfg.Data.Directory)
	if err != nil {
		rec.IncBuildOutcome(string(OutcomeFailed))
		return nil, err
	}

	tmpl, err := os.ReadFile(cfg.Template) // #nosec G304 -- operator-supplied path
	if err != nil {
		rec.IncBuildOutcome(string(OutcomeFailed))
		return nil, fmt.Errorf("read template %s: %w", cfg.Template, err)
	}

	result, err := Build(recs, string(tmpl), OptionsFromConfig(cfg))
	if err != nil {
		rec.IncBuildOutcome(string(OutcomeFailed))
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output.File), 0o750); err != nil {
		rec.IncBuildOutcome(string(OutcomeFailed))
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	// #nosec G306 -- the page is public content
	if err := os.WriteFile(cfg.Output.File, []byte(result.Page), 0o644); err != nil {
		rec.IncBuildOutcome(string(OutcomeFailed))
		return nil, fmt.Errorf("write output %s: %w", cfg.Output.File, err)
	}

	if err := result.Report.Persist(cfg.Output.File); err != nil {
		slog.Warn("Failed to persist build report", logfields.Error(err))
	}

	rec.ObserveBuildDuration(time.Since(start))
	rec.IncBuildOutcome(string(OutcomeSuccess))
	for section, n := range result.Report.SectionEntries {
		rec.ObserveSectionEntries(section, n)
	}
	rec.IncDroppedReferences(result.Report.DroppedReferences)

	slog.Info("Page built",
		logfields.BuildID(result.Report.BuildID),
		logfields.Path(cfg.Output.File),
		slog.Int("bytes", result.Report.OutputBytes),
		slog.Int("dropped_references", result.Report.DroppedReferences),
		slog.Int64("duration_ms", result.Report.DurationMS))
	return result.Report, nil
}
