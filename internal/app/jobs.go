// Package app holds the application services behind the view API: each one
// reproduces what a frontend page computed, combining remote fetches, the
// local document store and the reconciliation rules into one operation.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ganot/talentflow/internal/client"
	"github.com/ganot/talentflow/internal/domain/job"
	"github.com/ganot/talentflow/internal/store"
)

const jobsPageSize = 10

// JobsService drives the jobs list: reconciled pages, creation, edits and
// kanban status moves.
type JobsService struct {
	api    *client.Client
	store  *store.Store
	logger *slog.Logger
}

// NewJobsService creates the jobs service.
func NewJobsService(api *client.Client, st *store.Store, logger *slog.Logger) *JobsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsService{api: api, store: st, logger: logger}
}

type jobListResponse struct {
	Jobs []job.Job `json:"jobs"`
	Meta struct {
		Total int `json:"total"`
		Page  int `json:"page"`
		Limit int `json:"limit"`
	} `json:"meta"`
}

// Page fetches a server page and reconciles it with local overlays. Network
// failures on this read path degrade to an empty page instead of erroring;
// a cancelled context still aborts the fetch.
func (s *JobsService) Page(ctx context.Context, f job.Filter, page int) (job.Page, error) {
	if page < 1 {
		page = 1
	}

	params := map[string]string{
		"page":     strconv.Itoa(page),
		"pageSize": strconv.Itoa(jobsPageSize),
		"limit":    strconv.Itoa(jobsPageSize),
		"search":   strings.TrimSpace(f.Search),
	}
	if st := strings.ToLower(strings.TrimSpace(f.Status)); st != "" && st != "all" && st != "all status" {
		params["status"] = st
	}

	var resp jobListResponse
	if err := s.api.Get(ctx, "/jobs", params, &resp); err != nil {
		if ctx.Err() != nil {
			return job.Page{}, ctx.Err()
		}
		s.logger.Warn("jobs fetch failed, serving empty page", "error", err)
		resp = jobListResponse{}
	}

	saved, err := s.store.SavedJobs(ctx)
	if err != nil {
		return job.Page{}, fmt.Errorf("loading saved jobs: %w", err)
	}
	overrides, err := s.store.JobStatusOverrides(ctx)
	if err != nil {
		return job.Page{}, fmt.Errorf("loading status overrides: %w", err)
	}

	return job.ReconcilePage(resp.Jobs, resp.Meta.Total, saved, overrides, f, page, jobsPageSize), nil
}

// Create validates and writes a new job through to the server, then persists
// the returned record locally so it survives the mock server's next reseed.
func (s *JobsService) Create(ctx context.Context, input job.Job) (job.Job, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return job.Job{}, job.ErrTitleRequired
	}
	if input.Status != "" && !job.ValidStatus(input.Status) {
		return job.Job{}, job.ErrInvalidStatus
	}
	input.Slug = job.Slugify(input.Title)

	var created job.Job
	if err := s.api.Post(ctx, "/jobs", input, &created); err != nil {
		return job.Job{}, err
	}
	if err := s.store.SaveJob(ctx, created); err != nil {
		return job.Job{}, fmt.Errorf("persisting created job: %w", err)
	}

	s.logger.Info("job created", "id", created.ID, "slug", created.Slug)
	return created, nil
}

// UpdateResult reports how an edit landed: on the server, or only in the
// local store because the ephemeral server no longer knows the id.
type UpdateResult struct {
	Job           job.Job `json:"job"`
	StoredLocally bool    `json:"storedLocally"`
}

// Update patches a job on the server and persists the result locally. When
// the server answers 404 the edit is applied to the locally saved copy
// instead, so it stays durable across reloads.
func (s *JobsService) Update(ctx context.Context, id string, patch map[string]any) (UpdateResult, error) {
	delete(patch, "id")

	var updated job.Job
	err := s.api.Patch(ctx, "/jobs/"+id, patch, &updated)
	if err == nil {
		if err := s.store.SaveJob(ctx, updated); err != nil {
			return UpdateResult{}, fmt.Errorf("persisting updated job: %w", err)
		}
		return UpdateResult{Job: updated}, nil
	}

	if !client.IsNotFound(err) {
		return UpdateResult{}, err
	}

	base, storeErr := s.store.Job(ctx, id)
	if storeErr != nil {
		if !errors.Is(storeErr, store.ErrNotFound) {
			return UpdateResult{}, storeErr
		}
		base = job.Job{ID: id}
	}
	merged, mergeErr := applyPatch(base, patch)
	if mergeErr != nil {
		return UpdateResult{}, mergeErr
	}
	merged.ID = id
	if err := s.store.SaveJob(ctx, merged); err != nil {
		return UpdateResult{}, fmt.Errorf("persisting local edit: %w", err)
	}

	s.logger.Info("job updated locally, unknown to server", "id", id)
	return UpdateResult{Job: merged, StoredLocally: true}, nil
}

// MoveResult reports a kanban status move.
type MoveResult struct {
	ID            string     `json:"id"`
	Status        job.Status `json:"status"`
	StoredLocally bool       `json:"storedLocally"`
}

// MoveStatus performs the drag-and-drop status flip. The server PATCH is
// attempted first; a 404 means the job only exists locally, so the override
// and the saved copy take the change instead. Any other failure propagates
// so the caller can roll back its optimistic state.
func (s *JobsService) MoveStatus(ctx context.Context, id string, next job.Status) (MoveResult, error) {
	if !job.ValidStatus(next) {
		return MoveResult{}, job.ErrInvalidStatus
	}

	var updated job.Job
	err := s.api.Patch(ctx, "/jobs/"+id, map[string]any{"status": next}, &updated)
	switch {
	case err == nil:
		// Server took it; the override keeps the view consistent after the
		// server reseeds.
		if err := s.store.SetJobStatusOverride(ctx, id, next); err != nil {
			return MoveResult{}, err
		}
		return MoveResult{ID: id, Status: next}, nil

	case client.IsNotFound(err):
		if err := s.store.SetJobStatusOverride(ctx, id, next); err != nil {
			return MoveResult{}, err
		}
		if saved, storeErr := s.store.Job(ctx, id); storeErr == nil {
			saved.Status = next
			if err := s.store.SaveJob(ctx, saved); err != nil {
				return MoveResult{}, err
			}
		} else if !errors.Is(storeErr, store.ErrNotFound) {
			return MoveResult{}, storeErr
		}
		s.logger.Info("job status stored locally, unknown to server", "id", id, "status", next)
		return MoveResult{ID: id, Status: next, StoredLocally: true}, nil

	default:
		return MoveResult{}, err
	}
}

// applyPatch merges a loose JSON patch onto a typed record, the same shallow
// object-spread the frontend applied when falling back to local storage.
func applyPatch[T any](rec T, attrs map[string]any) (T, error) {
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
