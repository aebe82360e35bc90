package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("cml format error")
	// ErrFileAccess matches every *FileAccessError.
	ErrFileAccess = errors.New("cml file access error")
)

// FormatError reports a value the grammar requires to be well formed, such
// as a timestamp or a bar price, that could not be parsed.
type FormatError struct {
	Line   int // 1-based, 0 when unknown
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s %q", e.Line, e.Reason, e.Input)
	}
	return fmt.Sprintf("%s %q", e.Reason, e.Input)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// FileAccessError wraps a failure to read a CML document from disk.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read cml file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

func (e *FileAccessError) Is(target error) bool { return target == ErrFileAccess }

func formatError(input, reason string) *FormatError {
	return &FormatError{Input: input, Reason: reason}
}

// atLine stamps a line number on a FormatError that does not have one yet.
func atLine(err error, line int) error {
	var fe *FormatError
	if errors.As(err, &fe) && fe.Line == 0 {
		fe.Line = line
	}
	return err
}
