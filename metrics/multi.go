package metrics

// MultiSink fans analysis records out to multiple sinks.
type MultiSink struct {
	Sinks []AnalysisSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...AnalysisSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAnalysis forwards the record to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordAnalysis(rec AnalysisRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordAnalysis(rec); err != nil {
			return err
		}
	}
	return nil
}
