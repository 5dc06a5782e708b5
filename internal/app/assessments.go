package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ganot/talentflow/internal/client"
	"github.com/ganot/talentflow/internal/domain/assessment"
	"github.com/ganot/talentflow/internal/store"
)

// AssessmentsService drives the assessments catalog: the merged
// remote/local/tombstone view, write-through saves and the three-step
// destructive delete.
type AssessmentsService struct {
	api    *client.Client
	store  *store.Store
	logger *slog.Logger
}

// NewAssessmentsService creates the assessments service.
func NewAssessmentsService(api *client.Client, st *store.Store, logger *slog.Logger) *AssessmentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessmentsService{api: api, store: st, logger: logger}
}

type assessmentListResponse struct {
	Assessments []assessment.Assessment `json:"assessments"`
}

// List returns the merged assessment collection, newest first. A failed
// remote fetch degrades to the local-only view; tombstoned ids never appear
// regardless of what the server still carries.
func (s *AssessmentsService) List(ctx context.Context, search string) ([]assessment.Assessment, error) {
	var resp assessmentListResponse
	if err := s.api.Get(ctx, "/assessments", map[string]string{"limit": "1000"}, &resp); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("assessments fetch failed, serving local view", "error", err)
		resp = assessmentListResponse{}
	}

	local, err := s.store.SavedAssessments(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading saved assessments: %w", err)
	}
	deleted, err := s.store.DeletedAssessmentIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tombstones: %w", err)
	}

	merged := assessment.Merge(resp.Assessments, local, deleted)

	if q := strings.ToLower(strings.TrimSpace(search)); q != "" {
		filtered := merged[:0:0]
		for _, a := range merged {
			hay := strings.ToLower(a.Title + " " + a.JobTitle + " " + a.Description)
			if strings.Contains(hay, q) {
				filtered = append(filtered, a)
			}
		}
		merged = filtered
	}

	assessment.SortByCreated(merged)
	return merged, nil
}

// SaveResult reports how a save landed.
type SaveResult struct {
	Assessment    assessment.Assessment `json:"assessment"`
	StoredLocally bool                  `json:"storedLocally"`
}

// Save validates and writes an assessment through to the server, then
// persists the server's copy (which carries the authoritative id) locally.
// Updating a record the ephemeral server has forgotten falls back to a
// local-only save.
func (s *AssessmentsService) Save(ctx context.Context, a assessment.Assessment) (SaveResult, error) {
	if err := a.Validate(); err != nil {
		return SaveResult{}, err
	}

	if a.ID == "" {
		var created assessment.Assessment
		if err := s.api.Post(ctx, "/assessments", a, &created); err != nil {
			return SaveResult{}, err
		}
		stored, err := s.store.SaveAssessment(ctx, created)
		if err != nil {
			return SaveResult{}, fmt.Errorf("persisting created assessment: %w", err)
		}
		s.logger.Info("assessment created", "id", stored.ID, "title", stored.Title)
		return SaveResult{Assessment: stored}, nil
	}

	var updated assessment.Assessment
	err := s.api.Patch(ctx, "/assessments/"+a.ID, a, &updated)
	if err == nil {
		stored, saveErr := s.store.SaveAssessment(ctx, updated)
		if saveErr != nil {
			return SaveResult{}, fmt.Errorf("persisting updated assessment: %w", saveErr)
		}
		return SaveResult{Assessment: stored}, nil
	}
	if !client.IsNotFound(err) {
		return SaveResult{}, err
	}

	stored, saveErr := s.store.SaveAssessment(ctx, a)
	if saveErr != nil {
		return SaveResult{}, fmt.Errorf("persisting local assessment: %w", saveErr)
	}
	s.logger.Info("assessment updated locally, unknown to server", "id", stored.ID)
	return SaveResult{Assessment: stored, StoredLocally: true}, nil
}

// Delete permanently removes an assessment: a best-effort server DELETE, the
// local saved record (by id and legacy local id), and a tombstone so a
// reseeded server copy never resurrects it. Local steps always run.
func (s *AssessmentsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return assessment.ErrAssessmentNotFound
	}

	localID := ""
	if saved, err := s.store.Assessment(ctx, id); err == nil {
		localID = saved.LocalID
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if err := s.api.Delete(ctx, "/assessments/"+id); err != nil {
		// Best effort; the server may never have had it.
		s.logger.Debug("server delete failed", "id", id, "error", err)
	}

	if err := s.store.RemoveAssessment(ctx, id, localID); err != nil {
		return fmt.Errorf("removing saved assessment: %w", err)
	}
	if err := s.store.MarkAssessmentDeleted(ctx, id); err != nil {
		return fmt.Errorf("tombstoning assessment: %w", err)
	}

	s.logger.Info("assessment deleted", "id", id)
	return nil
}
