package generate

import (
	"fmt"
	"strings"
)

// Pipeline steps reported by StepError.
const (
	StepValidate = "validate"
	StepCounters = "counters"
	StepPayload  = "payload"
	StepWrite    = "write"
)

// StepError wraps an error with the step where it occurred.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ValidationError lists every problem found in a request. Nothing is
// generated when it is returned.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid request:\n- " + strings.Join(e.Problems, "\n- ")
}
