package assessment

import "errors"

var (
	// ErrTitleRequired indicates a save without a usable title.
	ErrTitleRequired = errors.New("title is required")
	// ErrSectionTitleRequired indicates a section without a heading.
	ErrSectionTitleRequired = errors.New("section title is required")
	// ErrPromptRequired indicates a question without prompt text.
	ErrPromptRequired = errors.New("question prompt is required")
	// ErrNotEnoughOptions indicates an mcq question with fewer than two options.
	ErrNotEnoughOptions = errors.New("mcq question needs at least two options")
	// ErrCorrectOutOfRange indicates an mcq answer index outside its options.
	ErrCorrectOutOfRange = errors.New("correct option index out of range")
	// ErrNumericBounds indicates a numeric question with min above max.
	ErrNumericBounds = errors.New("numeric min must not exceed max")
	// ErrTextMaxLength indicates a non-positive text length limit.
	ErrTextMaxLength = errors.New("text max length must be positive")
	// ErrUnknownQuestionType indicates an unrecognized question type.
	ErrUnknownQuestionType = errors.New("unknown question type")
	// ErrAssessmentNotFound indicates the assessment doesn't exist.
	ErrAssessmentNotFound = errors.New("assessment not found")
)
