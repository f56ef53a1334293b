package cli

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RunWithSpinner runs fn with a progress spinner unless quiet mode is
// enabled. On failure the spinner is replaced with a red failure
// message; success output is left to the caller.
func RunWithSpinner(quiet bool, message, failureMessage string, fn func() error) error {
	if quiet {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()
	defer s.Stop()

	if err := fn(); err != nil {
		s.FinalMSG = text.FgRed.Sprint(failureMessage) + "\n"
		return err
	}
	return nil
}
