package job

import "strings"

// Filter is the active jobs list filter: a case-insensitive search substring
// and an optional status. An empty status (or the UI's "all" sentinel)
// matches every job.
type Filter struct {
	Search string
	Status string
}

// Matches applies the filter to a single job. The search term matches against
// title, slug, department and tags.
func (f Filter) Matches(j Job) bool {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	if status != "" && status != "all" && status != "all status" {
		if strings.ToLower(string(j.Status)) != status {
			return false
		}
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	hay := strings.ToLower(j.Title + " " + j.Slug + " " + j.Department + " " + strings.Join(j.Tags, " "))
	return strings.Contains(hay, q)
}
