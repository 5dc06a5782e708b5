package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ganot/talentflow/internal/domain/assessment"
)

// SaveAssessment persists an assessment. Records that never reached the
// server get a local id so they survive until a real id exists; CreatedAt is
// stamped when missing. The stored copy is returned.
func (s *Store) SaveAssessment(ctx context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	if a.ID == "" {
		if a.LocalID == "" {
			a.LocalID = "local-" + uuid.NewString()
		}
		a.ID = a.LocalID
	}
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().UnixMilli()
	}
	if err := s.put(ctx, collectionAssessments, a.ID, a); err != nil {
		return assessment.Assessment{}, err
	}
	return a, nil
}

// Assessment loads a single saved assessment. Returns ErrNotFound when absent.
func (s *Store) Assessment(ctx context.Context, id string) (assessment.Assessment, error) {
	var a assessment.Assessment
	if err := s.get(ctx, collectionAssessments, id, &a); err != nil {
		return assessment.Assessment{}, err
	}
	return a, nil
}

// SavedAssessments loads every locally saved assessment, newest first.
func (s *Store) SavedAssessments(ctx context.Context) ([]assessment.Assessment, error) {
	var out []assessment.Assessment
	err := s.all(ctx, collectionAssessments, func(_ string, raw []byte) error {
		var a assessment.Assessment
		if err := decode(raw, &a); err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	assessment.SortByCreated(out)
	return out, nil
}

// RemoveAssessment deletes a saved assessment by id and, when it differs, by
// its legacy local id, so records created offline don't linger under the old
// key.
func (s *Store) RemoveAssessment(ctx context.Context, id, localID string) error {
	if id != "" {
		if err := s.delete(ctx, collectionAssessments, id); err != nil {
			return err
		}
	}
	if localID != "" && localID != id {
		if err := s.delete(ctx, collectionAssessments, localID); err != nil {
			return err
		}
	}
	return nil
}

// ClearAssessments drops every saved assessment. Manual reset only.
func (s *Store) ClearAssessments(ctx context.Context) error {
	return s.clear(ctx, collectionAssessments)
}

// MarkAssessmentDeleted tombstones an id so a reseeded server copy never
// resurrects it.
func (s *Store) MarkAssessmentDeleted(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return s.put(ctx, collectionTombstones, id, true)
}

// IsAssessmentDeleted reports whether an id is tombstoned.
func (s *Store) IsAssessmentDeleted(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := s.get(ctx, collectionTombstones, id, &deleted)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// DeletedAssessmentIDs loads the tombstone set.
func (s *Store) DeletedAssessmentIDs(ctx context.Context) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	err := s.all(ctx, collectionTombstones, func(id string, raw []byte) error {
		var deleted bool
		if err := decode(raw, &deleted); err != nil {
			return err
		}
		if deleted {
			out[id] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
