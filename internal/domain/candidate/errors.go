package candidate

import "errors"

var (
	// ErrInvalidStage indicates an unknown pipeline stage.
	ErrInvalidStage = errors.New("invalid stage")
	// ErrCandidateNotFound indicates the candidate doesn't exist.
	ErrCandidateNotFound = errors.New("candidate not found")
)
