// Package history records run outcomes in a BoltDB database.
package history

import (
	"time"
)

// Operation represents the type of package operation.
type Operation string

const (
	OpInstall Operation = "install"
	OpRemove  Operation = "remove"
)

// Entry represents a single run in the history.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation Operation `json:"operation"`
	Backend   string    `json:"backend"` // deb, rpm, apk
	Package   string    `json:"package"`
	URL       string    `json:"url,omitempty"`
	Result    string    `json:"result,omitempty"` // installed, skipped, removed, noop
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewEntry creates a new history entry for a run that is about to start.
func NewEntry(op Operation, backend, pkg string) *Entry {
	return &Entry{
		ID:        generateID(),
		Timestamp: time.Now(),
		Operation: op,
		Backend:   backend,
		Package:   pkg,
	}
}

// MarkSuccess marks the entry as successful with its terminal result.
func (e *Entry) MarkSuccess(result string) {
	e.Success = true
	e.Result = result
}

// MarkFailed marks the entry as failed with an error message.
func (e *Entry) MarkFailed(err error) {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
}

// generateID generates a unique ID for the entry.
func generateID() string {
	return time.Now().Format("20060102150405.000000")
}

// FormatTime returns a human-readable timestamp.
func (e *Entry) FormatTime() string {
	return e.Timestamp.Format("2006-01-02 15:04:05")
}

// Summary returns a brief summary of the run.
func (e *Entry) Summary() string {
	status := e.Result
	if !e.Success {
		status = "failed"
	}

	pkg := e.Package
	if pkg == "" {
		pkg = "(unresolved)"
	}

	return e.FormatTime() + " " + string(e.Operation) + " " +
		pkg + " [" + e.Backend + "] (" + status + ")"
}
