package store

import (
	"context"
	"fmt"

	"github.com/ganot/talentflow/internal/domain/job"
)

// SaveJob persists a full job record the user created or edited, so it can
// overlay the server copy on later fetches.
func (s *Store) SaveJob(ctx context.Context, j job.Job) error {
	if j.ID == "" {
		return fmt.Errorf("save job: %w", ErrMissingID)
	}
	return s.put(ctx, collectionJobs, j.ID, j)
}

// Job loads a single saved job. Returns ErrNotFound when absent.
func (s *Store) Job(ctx context.Context, id string) (job.Job, error) {
	var j job.Job
	if err := s.get(ctx, collectionJobs, id, &j); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

// SavedJobs loads every locally saved job, keyed by id.
func (s *Store) SavedJobs(ctx context.Context) (map[string]job.Job, error) {
	out := make(map[string]job.Job)
	err := s.all(ctx, collectionJobs, func(id string, raw []byte) error {
		var j job.Job
		if err := decode(raw, &j); err != nil {
			return err
		}
		out[id] = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveJob deletes a saved job record.
func (s *Store) RemoveJob(ctx context.Context, id string) error {
	return s.delete(ctx, collectionJobs, id)
}

// ClearJobs drops every saved job. Manual reset only.
func (s *Store) ClearJobs(ctx context.Context) error {
	return s.clear(ctx, collectionJobs)
}

// statusOverride is the tiny per-job record the server doesn't remember:
// the status a drag-and-drop move landed on.
type statusOverride struct {
	Status job.Status `json:"status"`
}

// SetJobStatusOverride records a status the UI moved a job into.
func (s *Store) SetJobStatusOverride(ctx context.Context, id string, status job.Status) error {
	if id == "" {
		return fmt.Errorf("set job status override: %w", ErrMissingID)
	}
	return s.put(ctx, collectionJobOverrides, id, statusOverride{Status: status})
}

// ClearJobStatusOverride removes a job's status override.
func (s *Store) ClearJobStatusOverride(ctx context.Context, id string) error {
	return s.delete(ctx, collectionJobOverrides, id)
}

// JobStatusOverrides loads every status override, keyed by job id.
func (s *Store) JobStatusOverrides(ctx context.Context) (map[string]job.Status, error) {
	out := make(map[string]job.Status)
	err := s.all(ctx, collectionJobOverrides, func(id string, raw []byte) error {
		var o statusOverride
		if err := decode(raw, &o); err != nil {
			return err
		}
		if o.Status != "" {
			out[id] = o.Status
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
