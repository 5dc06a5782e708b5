package app

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/ganot/talentflow/internal/client"
)

// Counts is the sidebar's live badge row.
type Counts struct {
	Jobs        int `json:"jobs"`
	Candidates  int `json:"candidates"`
	Assessments int `json:"assessments"`
}

// CountsService computes the live counts: server totals for jobs and
// candidates, the merged collection length for assessments so local
// creations and tombstones are reflected.
type CountsService struct {
	api         *client.Client
	assessments *AssessmentsService
	logger      *slog.Logger
}

// NewCountsService creates the counts service.
func NewCountsService(api *client.Client, assessments *AssessmentsService, logger *slog.Logger) *CountsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CountsService{api: api, assessments: assessments, logger: logger}
}

// Counts fetches a fresh snapshot.
func (s *CountsService) Counts(ctx context.Context) (Counts, error) {
	out := Counts{}

	var jobs jobListResponse
	if err := s.api.Get(ctx, "/jobs", map[string]string{"page": "1", "limit": strconv.Itoa(1)}, &jobs); err != nil {
		if ctx.Err() != nil {
			return Counts{}, ctx.Err()
		}
		s.logger.Warn("jobs count fetch failed", "error", err)
	} else {
		out.Jobs = jobs.Meta.Total
	}

	var candidates candidateListResponse
	if err := s.api.Get(ctx, "/candidates", map[string]string{"page": "1", "limit": strconv.Itoa(1)}, &candidates); err != nil {
		if ctx.Err() != nil {
			return Counts{}, ctx.Err()
		}
		s.logger.Warn("candidates count fetch failed", "error", err)
	} else {
		out.Candidates = candidates.Meta.Total
	}

	merged, err := s.assessments.List(ctx, "")
	if err != nil {
		if ctx.Err() != nil {
			return Counts{}, ctx.Err()
		}
		s.logger.Warn("assessments count failed", "error", err)
	} else {
		out.Assessments = len(merged)
	}

	return out, nil
}

// CountsPoller keeps a cached snapshot fresh on a fixed interval, the way
// the sidebar polled every ten seconds and refetched on tab refocus.
type CountsPoller struct {
	service  *CountsService
	interval time.Duration
	logger   *slog.Logger

	mu        sync.RWMutex
	snapshot  Counts
	updatedAt time.Time
}

// NewCountsPoller creates a poller; interval <= 0 defaults to 10s.
func NewCountsPoller(service *CountsService, interval time.Duration, logger *slog.Logger) *CountsPoller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CountsPoller{service: service, interval: interval, logger: logger}
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
func (p *CountsPoller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh forces a fetch and updates the snapshot. Fetch failures keep the
// previous snapshot.
func (p *CountsPoller) Refresh(ctx context.Context) Counts {
	counts, err := p.service.Counts(ctx)
	if err != nil {
		p.logger.Warn("counts refresh failed", "error", err)
		return p.Snapshot()
	}

	p.mu.Lock()
	p.snapshot = counts
	p.updatedAt = time.Now()
	p.mu.Unlock()
	return counts
}

// Snapshot returns the last known counts.
func (p *CountsPoller) Snapshot() Counts {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// UpdatedAt returns when the snapshot was last refreshed; zero when never.
func (p *CountsPoller) UpdatedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.updatedAt
}
