// Package output renders audit matches on the primary output stream.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/thirukguru/cloudwaf-origin-detector/model"
)

// NewService creates a new output service with the specified format.
// Unknown formats fall back to text. A nil progress is allowed.
func NewService(format string, w io.Writer, progress Progress) Service {
	f := FormatText
	switch format {
	case "json":
		f = FormatJSON
	case "table":
		f = FormatTable
	}
	if progress == nil {
		progress = noProgress{}
	}

	return &service{
		format:   f,
		w:        w,
		progress: progress,
	}
}

func (s *service) Report(m model.MatchResult) error {
	switch s.format {
	case FormatTable:
		s.rows = append(s.rows, m)
		return nil
	case FormatJSON:
		return s.write(func() error {
			return json.NewEncoder(s.w).Encode(m)
		})
	default:
		return s.write(func() error {
			_, err := fmt.Fprintf(s.w, "%s, %s\n", m.CustomerID, m.ServiceID)
			return err
		})
	}
}

func (s *service) Flush() error {
	if s.format != FormatTable || len(s.rows) == 0 {
		return nil
	}
	return s.write(func() error {
		DrawMatchTable(s.w, s.rows)
		return nil
	})
}

func (s *service) write(fn func() error) error {
	s.progress.Pause()
	defer s.progress.Resume()
	return fn()
}

// DrawMatchTable prints matches as a rounded table.
func DrawMatchTable(w io.Writer, rows []model.MatchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Customer", "Service", "Version", "Backend", "Address"})
	for _, m := range rows {
		t.AppendRow(table.Row{m.CustomerID, m.ServiceID, m.Version, m.BackendHostname, m.BackendAddress})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
