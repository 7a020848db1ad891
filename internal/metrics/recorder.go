package metrics

import "time"

// ResultLabel enumerates generation outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultInvalid ResultLabel = "invalid"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for settings generation.
type Recorder interface {
	ObserveGeneration(d time.Duration, result ResultLabel)
	SetBuildTypes(project string, n int)
	AddValidationProblems(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGeneration(time.Duration, ResultLabel) {}
func (NoopRecorder) SetBuildTypes(string, int)                     {}
func (NoopRecorder) AddValidationProblems(int)                     {}
