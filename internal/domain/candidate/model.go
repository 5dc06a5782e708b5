package candidate

// Stage is a candidate's pipeline stage. Transitions are free-form: any stage
// may move to any other stage.
type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageTechnical Stage = "technical"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

// Stages lists every pipeline stage in board order.
var Stages = []Stage{StageApplied, StageScreening, StageTechnical, StageOffer, StageHired, StageRejected}

// ValidStage reports whether s is a known pipeline stage.
func ValidStage(s Stage) bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

// Candidate is an applicant in a job's pipeline. AppliedAtTS and UpdatedAtTS
// are epoch milliseconds; AppliedAt keeps the display form the seed produced.
type Candidate struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Location        string   `json:"location"`
	Initials        string   `json:"initials"`
	Stage           Stage    `json:"stage"`
	AppliedAt       string   `json:"appliedAt"`
	AppliedAtTS     int64    `json:"appliedAtTS"`
	UpdatedAtTS     int64    `json:"updatedAtTS,omitempty"`
	JobID           string   `json:"jobId"`
	JobTitle        string   `json:"jobTitle"`
	ExperienceYears int      `json:"experienceYears"`
	Skills          []string `json:"skills"`
	ResumeURL       string   `json:"resumeUrl"`
	Notes           string   `json:"notes"`
}

// StageCounts is the pipeline summary: candidates per stage.
type StageCounts map[Stage]int
