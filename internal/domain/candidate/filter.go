package candidate

import "strings"

// Filter is the active candidates list filter. Job matches either the job
// title or the job id; the UI's "All Jobs" / "All Stages" sentinels match
// everything.
type Filter struct {
	Search string
	Stage  string
	Job    string
}

// Matches re-applies the filter to a candidate after a server fetch, so a
// page stays consistent even when the server selected it with stale data.
func (f Filter) Matches(c Candidate) bool {
	stage := strings.ToLower(strings.TrimSpace(f.Stage))
	if stage != "" && stage != "all stages" {
		if strings.ToLower(string(c.Stage)) != stage {
			return false
		}
	}

	if f.Job != "" && f.Job != "All Jobs" {
		if c.JobTitle != f.Job && c.JobID != f.Job {
			return false
		}
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	parts := []string{c.Name, c.Email, c.Phone, c.Location, c.JobTitle}
	parts = append(parts, c.Skills...)
	return strings.Contains(strings.ToLower(strings.Join(parts, " ")), q)
}
