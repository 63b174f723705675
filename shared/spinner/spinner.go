// Package spinner shows audit progress on the diagnostic stream.
package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

var (
	loader *spinner.Spinner
	paused bool
)

// StartSpinner starts the CLI loading spinner on f. The spinner stays
// silent when f is not a terminal.
func StartSpinner(f *os.File) {
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriterFile(f))
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " Auditing Fastly services for WAF origin backends..."
	loader.Start()
}

// SetSuffix replaces the text shown after the spinner.
func SetSuffix(suffix string) {
	if loader == nil {
		return
	}
	loader.Lock()
	loader.Suffix = " " + suffix
	loader.Unlock()
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
	}
	paused = false
}

// Progress pauses the spinner while results are written.
type Progress struct{}

// Pause clears the spinner line if it is running.
func (Progress) Pause() {
	if loader != nil && loader.Active() {
		loader.Stop()
		paused = true
	}
}

// Resume restarts a spinner stopped by Pause.
func (Progress) Resume() {
	if loader != nil && paused {
		paused = false
		loader.Start()
	}
}
