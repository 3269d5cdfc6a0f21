package scenario

import (
	"fmt"
	"io"
	"strings"
)

// Write prints the report, one line per step.
func (r Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "scenario %q (%s)\n", r.Name, r.Mode); err != nil {
		return err
	}

	for i, step := range r.Steps {
		line := fmt.Sprintf("%d. tap %q: [%s]", i+1, step.Step.Name, strings.Join(step.Order, " "))
		if step.RegisterErr != nil {
			line += fmt.Sprintf(" (rejected: %v)", step.RegisterErr)
		}
		if step.CallErr != nil {
			line += fmt.Sprintf(" (failed: %v)", step.CallErr)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// Failed reports whether any call failed.
func (r Report) Failed() bool {
	for _, step := range r.Steps {
		if step.CallErr != nil {
			return true
		}
	}
	return false
}
