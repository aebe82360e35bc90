package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordParse(_ *ParseEvent) error    { return nil }
func (n *NoopRecorder) Recent(_ int) ([]ParseEvent, error) { return nil, nil }
func (n *NoopRecorder) Close() error                       { return nil }
