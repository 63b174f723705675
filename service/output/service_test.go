package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/cloudwaf-origin-detector/model"
)

type recordingProgress struct {
	events []string
}

func (p *recordingProgress) Pause()  { p.events = append(p.events, "pause") }
func (p *recordingProgress) Resume() { p.events = append(p.events, "resume") }

var sampleMatches = []model.MatchResult{
	{CustomerID: "1000", ServiceID: "SVC1", Version: 3, BackendHostname: "b", BackendAddress: "origin.sigscicloudwaf.com"},
	{CustomerID: "2000", ServiceID: "SVC9", Version: 1, BackendHostname: "w", BackendAddress: "w.sigscicloudwaf.com"},
}

func TestTextFormatMatchesReferenceLines(t *testing.T) {
	var buf bytes.Buffer
	progress := &recordingProgress{}
	svc := NewService("text", &buf, progress)

	for _, m := range sampleMatches {
		require.NoError(t, svc.Report(m))
	}
	require.NoError(t, svc.Flush())

	assert.Equal(t, "1000, SVC1\n2000, SVC9\n", buf.String())
	assert.Equal(t, []string{"pause", "resume", "pause", "resume"}, progress.events)
}

func TestUnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("", &buf, nil)
	require.NoError(t, svc.Report(sampleMatches[0]))
	assert.Equal(t, "1000, SVC1\n", buf.String())
}

func TestJSONFormatStreamsOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("json", &buf, nil)
	for _, m := range sampleMatches {
		require.NoError(t, svc.Report(m))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "1000", first["customer_id"])
	assert.Equal(t, "SVC1", first["service_id"])
	assert.Equal(t, float64(3), first["version"])
	assert.Equal(t, "origin.sigscicloudwaf.com", first["backend_address"])
}

func TestTableFormatBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("table", &buf, nil)
	for _, m := range sampleMatches {
		require.NoError(t, svc.Report(m))
	}
	assert.Empty(t, buf.String())

	require.NoError(t, svc.Flush())
	out := buf.String()
	assert.Contains(t, out, "CUSTOMER")
	assert.Contains(t, out, "SVC1")
	assert.Contains(t, out, "w.sigscicloudwaf.com")
}

func TestTableFormatEmptyRunPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewService("table", &buf, nil).Flush())
	assert.Empty(t, buf.String())
}
