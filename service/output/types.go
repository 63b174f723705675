package output

import (
	"io"

	"github.com/thirukguru/cloudwaf-origin-detector/model"
)

// Format represents the output format type
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Progress is paused around every write so terminal progress output does
// not interleave with results.
type Progress interface {
	Pause()
	Resume()
}

type noProgress struct{}

func (noProgress) Pause()  {}
func (noProgress) Resume() {}

// service is the internal implementation
type service struct {
	format   Format
	w        io.Writer
	progress Progress
	rows     []model.MatchResult
}

// Service defines the interface for output operations
type Service interface {
	// Report emits one match. Text and JSON write immediately; table buffers.
	Report(m model.MatchResult) error
	// Flush writes anything buffered. It is a no-op for streamed formats.
	Flush() error
}
