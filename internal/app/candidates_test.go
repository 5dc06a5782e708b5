package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/app"
	"github.com/ganot/talentflow/internal/domain/candidate"
	"github.com/ganot/talentflow/internal/mockapi"
)

func seededEnv(t *testing.T) *env {
	t.Helper()
	return newEnv(t, &mockapi.SeedConfig{Jobs: 5, Candidates: 30, Seed: 42})
}

func TestCandidatesPage_List(t *testing.T) {
	e := seededEnv(t)
	svc := app.NewCandidatesService(e.api, nil)

	page, err := svc.Page(context.Background(), candidate.Filter{}, 1, false)
	require.NoError(t, err)
	require.Len(t, page.Candidates, 12)
	require.Equal(t, 30, page.Total)
	require.Equal(t, 3, page.TotalPages)
}

func TestCandidatesPage_StageFilterReapplied(t *testing.T) {
	e := seededEnv(t)
	svc := app.NewCandidatesService(e.api, nil)

	page, err := svc.Page(context.Background(), candidate.Filter{Stage: "applied"}, 1, false)
	require.NoError(t, err)
	for _, c := range page.Candidates {
		require.Equal(t, candidate.StageApplied, c.Stage)
	}
}

func TestCandidatesPage_KanbanDropsStageFromRequest(t *testing.T) {
	e := seededEnv(t)
	svc := app.NewCandidatesService(e.api, nil)

	page, err := svc.Page(context.Background(), candidate.Filter{Stage: "applied"}, 1, true)
	require.NoError(t, err)
	require.Equal(t, 30, page.Total)
	require.Len(t, page.Candidates, 12)
}

func TestCandidatesMoveStage(t *testing.T) {
	ctx := context.Background()
	e := seededEnv(t)
	svc := app.NewCandidatesService(e.api, nil)

	updated, err := svc.MoveStage(ctx, "1", candidate.StageOffer)
	require.NoError(t, err)
	require.Equal(t, candidate.StageOffer, updated.Stage)
	require.NotZero(t, updated.UpdatedAtTS)

	_, err = svc.MoveStage(ctx, "1", "limbo")
	require.ErrorIs(t, err, candidate.ErrInvalidStage)

	_, err = svc.MoveStage(ctx, "no-such-candidate", candidate.StageHired)
	require.Error(t, err)
}

func TestCandidatesStageCounts(t *testing.T) {
	e := seededEnv(t)
	svc := app.NewCandidatesService(e.api, nil)

	counts, err := svc.StageCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, len(candidate.Stages))

	total := 0
	for _, n := range counts {
		total += n
	}
	require.Equal(t, 30, total)
}

func TestCandidatesJobOptions(t *testing.T) {
	e := seededEnv(t)
	svc := app.NewCandidatesService(e.api, nil)

	options, err := svc.JobOptions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, options)

	seen := map[string]struct{}{}
	for _, opt := range options {
		require.NotEmpty(t, opt)
		_, dup := seen[opt]
		require.False(t, dup, "duplicate option %q", opt)
		seen[opt] = struct{}{}
	}
}

func TestCandidatesPage_DegradesToEmptyOnNetworkFailure(t *testing.T) {
	e := deadEnv(t)
	svc := app.NewCandidatesService(e.api, nil)

	page, err := svc.Page(context.Background(), candidate.Filter{}, 1, false)
	require.NoError(t, err)
	require.Empty(t, page.Candidates)
	require.Equal(t, 1, page.TotalPages)
}
