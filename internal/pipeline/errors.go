package pipeline

import "fmt"

// Kind is the error taxonomy for pipeline failures. Each stage failure is
// tagged with the kind that describes which part of the run broke.
type Kind string

const (
	KindSpec       Kind = "spec"       // plan extraction
	KindPrompt     Kind = "prompt"     // prompt construction
	KindGeneration Kind = "generation" // content generation, quality, conflicts, review
	KindValidation Kind = "validation" // validation stage
	KindWrite      Kind = "write"      // output writing
)

// Error tags a stage failure with its kind and a human-readable stage
// name. Any stage failure aborts the remainder of the run; no partial
// result is returned.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func stageErr(kind Kind, stage string, err error) *Error {
	return &Error{Kind: kind, Stage: stage, Err: err}
}
