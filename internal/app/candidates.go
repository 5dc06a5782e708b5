package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ganot/talentflow/internal/client"
	"github.com/ganot/talentflow/internal/domain/candidate"
)

const candidatesPageSize = 12

// CandidatesService drives the candidates list and kanban board. Candidates
// have no local overlay; the only client-side work is re-filtering the
// server page and the optimistic stage moves.
type CandidatesService struct {
	api    *client.Client
	logger *slog.Logger
}

// NewCandidatesService creates the candidates service.
func NewCandidatesService(api *client.Client, logger *slog.Logger) *CandidatesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CandidatesService{api: api, logger: logger}
}

// CandidatePage is a filtered page of candidates.
type CandidatePage struct {
	Candidates []candidate.Candidate
	Total      int
	TotalPages int
}

type candidateListResponse struct {
	Candidates []candidate.Candidate `json:"candidates"`
	Meta       struct {
		Total int `json:"total"`
		Page  int `json:"page"`
		Limit int `json:"limit"`
	} `json:"meta"`
}

// Page fetches a page of candidates. In kanban mode the stage filter is left
// off the request so every column fills; the filter is re-applied
// client-side either way so the page stays consistent.
func (s *CandidatesService) Page(ctx context.Context, f candidate.Filter, page int, kanban bool) (CandidatePage, error) {
	if page < 1 {
		page = 1
	}

	params := map[string]string{
		"page":   strconv.Itoa(page),
		"limit":  strconv.Itoa(candidatesPageSize),
		"search": strings.TrimSpace(f.Search),
	}
	if !kanban {
		if st := strings.ToLower(strings.TrimSpace(f.Stage)); st != "" && st != "all stages" {
			params["stage"] = st
		}
	}
	if f.Job != "" && f.Job != "All Jobs" {
		params["job"] = f.Job
	}

	var resp candidateListResponse
	if err := s.api.Get(ctx, "/candidates", params, &resp); err != nil {
		if ctx.Err() != nil {
			return CandidatePage{}, ctx.Err()
		}
		s.logger.Warn("candidates fetch failed, serving empty page", "error", err)
		return CandidatePage{TotalPages: 1}, nil
	}

	effective := f
	if kanban {
		effective.Stage = ""
	}
	list := make([]candidate.Candidate, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		if effective.Matches(c) {
			list = append(list, c)
		}
	}

	total := resp.Meta.Total
	if total == 0 {
		total = len(list)
	}
	totalPages := (total + candidatesPageSize - 1) / candidatesPageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return CandidatePage{Candidates: list, Total: total, TotalPages: totalPages}, nil
}

// MoveStage moves a candidate to another pipeline stage. Errors propagate so
// the caller can roll back its optimistic board state.
func (s *CandidatesService) MoveStage(ctx context.Context, id string, next candidate.Stage) (candidate.Candidate, error) {
	if !candidate.ValidStage(next) {
		return candidate.Candidate{}, candidate.ErrInvalidStage
	}

	var updated candidate.Candidate
	if err := s.api.Patch(ctx, "/candidates/"+id, map[string]any{"stage": next}, &updated); err != nil {
		return candidate.Candidate{}, err
	}
	return updated, nil
}

// StageCounts returns the pipeline summary. When the stats endpoint fails it
// falls back to aggregating one oversized page client-side, like the
// frontend did.
func (s *CandidatesService) StageCounts(ctx context.Context) (candidate.StageCounts, error) {
	raw := map[string]int{}
	if err := s.api.Get(ctx, "/candidates/stats", nil, &raw); err == nil {
		return stageCountsFrom(raw), nil
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var resp candidateListResponse
	if err := s.api.Get(ctx, "/candidates", map[string]string{"limit": "5000"}, &resp); err != nil {
		return nil, fmt.Errorf("aggregating stage counts: %w", err)
	}
	counts := make(candidate.StageCounts, len(candidate.Stages))
	for _, st := range candidate.Stages {
		counts[st] = 0
	}
	for _, c := range resp.Candidates {
		st := candidate.Stage(strings.ToLower(string(c.Stage)))
		if _, ok := counts[st]; ok {
			counts[st]++
		}
	}
	return counts, nil
}

// JobOptions returns the distinct job titles for the filter dropdown.
func (s *CandidatesService) JobOptions(ctx context.Context) ([]string, error) {
	var resp jobListResponse
	if err := s.api.Get(ctx, "/jobs", map[string]string{"limit": "5000"}, &resp); err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		title := j.Title
		if title == "" {
			title = j.Slug
		}
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}
	return out, nil
}

func stageCountsFrom(raw map[string]int) candidate.StageCounts {
	counts := make(candidate.StageCounts, len(candidate.Stages))
	for _, st := range candidate.Stages {
		counts[st] = raw[string(st)]
	}
	return counts
}
