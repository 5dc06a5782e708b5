package assessment

import (
	"fmt"
	"strings"
)

// QuestionType discriminates question shapes.
type QuestionType string

const (
	QuestionMCQ     QuestionType = "mcq"
	QuestionNumeric QuestionType = "numeric"
	QuestionText    QuestionType = "text"
)

// Status is the publication state of an assessment.
type Status string

const (
	StatusLive     Status = "live"
	StatusUpcoming Status = "upcoming"
	StatusExpired  Status = "expired"
)

// Question is a single assessment question. Correct holds the answer key:
// an option index for mcq, a number for numeric, a string for text. It is
// kept loosely typed because the three variants share one wire field.
type Question struct {
	ID        string       `json:"id"`
	Type      QuestionType `json:"type"`
	Prompt    string       `json:"prompt"`
	Options   []string     `json:"options,omitempty"`
	Correct   any          `json:"correct,omitempty"`
	Min       *float64     `json:"min,omitempty"`
	Max       *float64     `json:"max,omitempty"`
	MaxLength *int         `json:"maxLength,omitempty"`
}

// Section groups questions under a heading.
type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Assessment is an authored question set. LocalID carries the legacy
// identifier assigned when a record was first saved offline; removal has to
// consider both ids so nothing lingers in the store.
type Assessment struct {
	ID          string    `json:"id"`
	LocalID     string    `json:"_localId,omitempty"`
	Title       string    `json:"title"`
	JobTitle    string    `json:"jobTitle"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	Status      Status    `json:"status"`
	CreatedAt   int64     `json:"createdAt"`
}

// Validate checks an assessment at the API boundary.
func (a Assessment) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrTitleRequired
	}
	for si, sec := range a.Sections {
		if strings.TrimSpace(sec.Title) == "" {
			return fmt.Errorf("section %d: %w", si+1, ErrSectionTitleRequired)
		}
		for qi, q := range sec.Questions {
			if err := q.validate(); err != nil {
				return fmt.Errorf("section %d question %d: %w", si+1, qi+1, err)
			}
		}
	}
	return nil
}

func (q Question) validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return ErrPromptRequired
	}
	switch q.Type {
	case QuestionMCQ:
		if len(q.Options) < 2 {
			return ErrNotEnoughOptions
		}
		if idx, ok := correctIndex(q.Correct); ok && (idx < 0 || idx >= len(q.Options)) {
			return ErrCorrectOutOfRange
		}
	case QuestionNumeric:
		if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
			return ErrNumericBounds
		}
	case QuestionText:
		if q.MaxLength != nil && *q.MaxLength <= 0 {
			return ErrTextMaxLength
		}
	default:
		return ErrUnknownQuestionType
	}
	return nil
}

// correctIndex extracts an option index from the loosely typed answer key.
// JSON decoding yields float64 for numbers.
func correctIndex(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
