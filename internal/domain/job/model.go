package job

// Status is the lifecycle state of a job posting.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// ValidStatus reports whether s is a known job status.
func ValidStatus(s Status) bool {
	return s == StatusActive || s == StatusArchived
}

// Job is a job posting. Identity is ID; Slug is a secondary identity and must
// be unique across jobs. Order is the list sort key; a missing order sorts
// last. Salary bounds are optional.
type Job struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Status           Status   `json:"status"`
	Department       string   `json:"department"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Level            string   `json:"level"`
	Candidates       int      `json:"candidates"`
	CandidateAvatars []string `json:"candidateAvatars,omitempty"`
	MinSalary        *int     `json:"minSalary,omitempty"`
	MaxSalary        *int     `json:"maxSalary,omitempty"`
	Requirements     []string `json:"requirements"`
	Tags             []string `json:"tags"`
	Order            *int     `json:"order,omitempty"`
}

// OrderKey returns the sort key for list ordering. Jobs without an explicit
// order sort after everything else.
func (j Job) OrderKey() int {
	if j.Order == nil {
		return int(^uint(0) >> 1)
	}
	return *j.Order
}
