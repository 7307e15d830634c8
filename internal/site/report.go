package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BuildOutcome classifies a finished build for the report and metrics.
type BuildOutcome string

const (
	OutcomeSuccess BuildOutcome = "success"
	OutcomeFailed  BuildOutcome = "failed"
)

// BuildReport captures one build invocation for operators and the preview
// server's metrics. Persisted as build-report.json next to the output file.
type BuildReport struct {
	BuildID           string         `json:"build_id"`
	Start             time.Time      `json:"start"`
	End               time.Time      `json:"end"`
	DurationMS        int64          `json:"duration_ms"`
	SectionEntries    map[string]int `json:"section_entries"`
	DroppedReferences int            `json:"dropped_references"`
	OutputBytes       int            `json:"output_bytes"`
	Outcome           BuildOutcome   `json:"outcome"`
}

func newBuildReport() *BuildReport {
	return &BuildReport{
		BuildID:        uuid.NewString(),
		Start:          time.Now(),
		SectionEntries: make(map[string]int),
	}
}

func (r *BuildReport) finish(outcome BuildOutcome) {
	r.End = time.Now()
	r.DurationMS = r.End.Sub(r.Start).Milliseconds()
	r.Outcome = outcome
}

// Persist writes the report next to the output file (best effort by callers).
func (r *BuildReport) Persist(outputFile string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal build report: %w", err)
	}
	path := filepath.Join(filepath.Dir(outputFile), "build-report.json")
	// #nosec G306 -- report is public build metadata
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write build report: %w", err)
	}
	return nil
}
