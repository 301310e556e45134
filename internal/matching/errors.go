package matching

import (
	"errors"
	"fmt"
)

// Pipeline stages, in execution order. Failed is not a stage: any stage
// can fail and the failure carries the stage it originated in.
type Stage string

const (
	StageValidating Stage = "validating"
	StageExtracting Stage = "extracting"
	StageScoring    Stage = "scoring"
	StageAnalyzing  Stage = "analyzing"
	StageAssembling Stage = "assembling"
)

var (
	// ErrNotFound means an input identifier did not resolve to a document.
	ErrNotFound = errors.New("document not found")

	// ErrEmptyDocument means a document is structurally empty (no skills,
	// no experience, no education) and scoring it is not meaningful.
	ErrEmptyDocument = errors.New("document is structurally empty")

	// ErrTimeout means a storage lookup exceeded the configured bound.
	ErrTimeout = errors.New("document lookup timed out")

	// ErrInvariant means the engine produced an out-of-range score or the
	// catalog is corrupt. Fatal, never retried.
	ErrInvariant = errors.New("internal invariant violated")
)

// StageError tags a failure with the pipeline stage it originated in.
// This is the only error shape the engine returns.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("match %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
