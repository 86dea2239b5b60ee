package services

// MetricsRecorder abstracts the metrics backend so the bank service can be
// exercised in tests without touching a prometheus registry.
type MetricsRecorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
	ObserveHistogram(name string, value float64)
}

// noopMetrics discards all recordings.
type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards everything.
func NewNoopMetrics() MetricsRecorder {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)       {}
func (noopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
func (noopMetrics) ObserveHistogram(name string, value float64)                {}
