package recorder

import "time"

// ParseEvent describes one parse of a CML document.
type ParseEvent struct {
	Timestamp  time.Time // set by the recorder when zero
	Path       string
	Hash       string // sha256 of the document bytes, hex
	Trigger    string // "cli" or "watch"
	Title      string
	Symbol     string
	Bars       int
	Drawings   int
	Indicators int
	Duration   time.Duration
	Error      string // empty on success
}

// Recorder persists parse history for later inspection.
type Recorder interface {
	RecordParse(evt *ParseEvent) error
	Recent(limit int) ([]ParseEvent, error)
	Close() error
}
