package metrics

import "time"

// Recorder defines observability hooks for page builds. Implementations may
// forward to Prometheus; the NoopRecorder makes injection optional.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // outcome: success|failed
	ObserveSectionEntries(section string, n int)
	IncDroppedReferences(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(string)             {}
func (NoopRecorder) ObserveSectionEntries(string, int)  {}
func (NoopRecorder) IncDroppedReferences(int)           {}
