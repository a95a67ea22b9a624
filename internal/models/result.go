package models

import "fmt"

// FileStatus classifies the outcome of processing one file
type FileStatus int

const (
	StatusOK FileStatus = iota
	StatusNeedsUpdate
	StatusUpdated
	StatusUnsupported
	StatusEmpty
	StatusReadError
	StatusWriteError
)

// FileResult is the per-file outcome reported by a scan
type FileResult struct {
	Path   string
	Status FileStatus
	Err    error
}

// IsError returns true for read or write failures
func (r FileResult) IsError() bool {
	return r.Status == StatusReadError || r.Status == StatusWriteError
}

// Changed returns true if the file was updated or needs updating
func (r FileResult) Changed() bool {
	return r.Status == StatusNeedsUpdate || r.Status == StatusUpdated
}

// Message returns the human-readable status line for this result
func (r FileResult) Message() string {
	switch r.Status {
	case StatusOK:
		return fmt.Sprintf("OK: %s", r.Path)
	case StatusNeedsUpdate:
		return fmt.Sprintf("Needs update: %s", r.Path)
	case StatusUpdated:
		return fmt.Sprintf("Updated: %s", r.Path)
	case StatusUnsupported:
		return fmt.Sprintf("Unsupported file type: %s", r.Path)
	case StatusEmpty:
		return fmt.Sprintf("Empty file: %s", r.Path)
	case StatusReadError:
		return fmt.Sprintf("Error reading %s: %v", r.Path, r.Err)
	case StatusWriteError:
		return fmt.Sprintf("Error writing %s: %v", r.Path, r.Err)
	}
	return fmt.Sprintf("Unknown status: %s", r.Path)
}

// Summary aggregates the counts of a completed scan
type Summary struct {
	Total   int // files considered after ignore filtering
	Updated int // files updated (fix) or needing update (check)
	Errors  int // read/write failures
}
