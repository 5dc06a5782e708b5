package mockapi

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ganot/talentflow/internal/domain/assessment"
	"github.com/ganot/talentflow/internal/domain/candidate"
	"github.com/ganot/talentflow/internal/domain/job"
)

// Data is the mock server's in-memory state. It is seeded at startup and
// lost on shutdown; durability is the local document store's job, not ours.
type Data struct {
	mu          sync.RWMutex
	jobs        []job.Job
	candidates  []candidate.Candidate
	assessments []assessment.Assessment
}

// NewData creates an empty dataset. Use Seed to populate it.
func NewData() *Data {
	return &Data{}
}

func (d *Data) findJob(id string) (int, bool) {
	for i := range d.jobs {
		if d.jobs[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (d *Data) findJobBySlug(slug, excludeID string) bool {
	for i := range d.jobs {
		if d.jobs[i].Slug == slug && d.jobs[i].ID != excludeID {
			return true
		}
	}
	return false
}

func (d *Data) findCandidate(id string) (int, bool) {
	for i := range d.candidates {
		if d.candidates[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (d *Data) findAssessment(id string) (int, bool) {
	for i := range d.assessments {
		if d.assessments[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// uniqueSlug suffixes base with -2, -3, ... until no other job claims it.
func (d *Data) uniqueSlug(base, excludeID string) string {
	slug := base
	for n := 2; d.findJobBySlug(slug, excludeID); n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return slug
}

// minOrder returns the smallest explicit order among all jobs, or 1 when none
// carries one. New jobs get minOrder-1 so they sort to the front.
func (d *Data) minOrder() int {
	min, found := 0, false
	for i := range d.jobs {
		if d.jobs[i].Order == nil {
			continue
		}
		if !found || *d.jobs[i].Order < min {
			min = *d.jobs[i].Order
			found = true
		}
	}
	if !found {
		return 1
	}
	return min
}

// patchRecord applies a loose JSON patch onto a typed record via a map round
// trip, replicating the object-spread merge the original handlers did.
func patchRecord[T any](rec T, attrs map[string]any) (T, error) {
	var zero T
	base, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("encode record: %w", err)
	}
	merged := map[string]any{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return zero, fmt.Errorf("decode record: %w", err)
	}
	for k, v := range attrs {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return zero, fmt.Errorf("encode merged record: %w", err)
	}
	var result T
	if err := json.Unmarshal(out, &result); err != nil {
		return zero, fmt.Errorf("decode merged record: %w", err)
	}
	return result, nil
}

func paginate[T any](list []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(list) || start < 0 {
		return nil
	}
	end := start + limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
