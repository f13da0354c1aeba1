package gtfs

import "fmt"

// MalformedFeedError reports a feed that cannot be loaded: a missing table,
// an undecodable row, or a dangling cross-reference. Row is 1-based counting
// the header line, 0 when the failure is not tied to a specific row.
type MalformedFeedError struct {
	File string
	Row  int
	Err  error
}

func (e *MalformedFeedError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("gtfs: malformed feed: %s row %d: %v", e.File, e.Row, e.Err)
	}
	return fmt.Sprintf("gtfs: malformed feed: %s: %v", e.File, e.Err)
}

func (e *MalformedFeedError) Unwrap() error { return e.Err }

func malformed(file string, row int, format string, args ...any) *MalformedFeedError {
	return &MalformedFeedError{File: file, Row: row, Err: fmt.Errorf(format, args...)}
}
