package mocks

import (
	"github.com/maksimkurb/fios-stats/internal/influx"
)

// MockMetricWriter is a mock implementation of the MetricWriter interface.
//
// It allows tests to provide custom behavior through function fields.
// If a function field is nil, a sensible default implementation is used.
type MockMetricWriter struct {
	// PushFunc is called by Push if not nil
	PushFunc func(metrics []influx.Metric) error
}

// Push submits metrics to the sink.
//
// If PushFunc is set, it calls that function.
// Otherwise, accepts the metrics silently.
func (m *MockMetricWriter) Push(metrics []influx.Metric) error {
	if m.PushFunc != nil {
		return m.PushFunc(metrics)
	}
	return nil
}

// NewMockMetricWriter creates a new mock writer with default behavior.
func NewMockMetricWriter() *MockMetricWriter {
	return &MockMetricWriter{}
}
