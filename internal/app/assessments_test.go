package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/app"
	"github.com/ganot/talentflow/internal/domain/assessment"
	"github.com/ganot/talentflow/internal/store"
)

func TestAssessmentsSave_CreateWritesThrough(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	svc := app.NewAssessmentsService(e.api, e.store, nil)

	result, err := svc.Save(ctx, assessment.Assessment{Title: "Backend Screen"})
	require.NoError(t, err)
	require.False(t, result.StoredLocally)
	require.NotEmpty(t, result.Assessment.ID)

	// persisted locally under the server-assigned id
	saved, err := e.store.Assessment(ctx, result.Assessment.ID)
	require.NoError(t, err)
	require.Equal(t, "Backend Screen", saved.Title)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestAssessmentsSave_RejectsInvalid(t *testing.T) {
	e := newEnv(t, nil)
	svc := app.NewAssessmentsService(e.api, e.store, nil)

	_, err := svc.Save(context.Background(), assessment.Assessment{Title: ""})
	require.ErrorIs(t, err, assessment.ErrTitleRequired)
}

func TestAssessmentsSave_UpdateFallsBackToLocalOn404(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	svc := app.NewAssessmentsService(e.api, e.store, nil)

	result, err := svc.Save(ctx, assessment.Assessment{ID: "ghost", Title: "Forgotten Screen"})
	require.NoError(t, err)
	require.True(t, result.StoredLocally)

	saved, err := e.store.Assessment(ctx, "ghost")
	require.NoError(t, err)
	require.Equal(t, "Forgotten Screen", saved.Title)
}

func TestAssessmentsList_MergesLocalAndRemote(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	svc := app.NewAssessmentsService(e.api, e.store, nil)

	remote, err := svc.Save(ctx, assessment.Assessment{Title: "Server Screen"})
	require.NoError(t, err)

	_, err = e.store.SaveAssessment(ctx, assessment.Assessment{Title: "Local Draft"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// search filters the merged view
	list, err = svc.List(ctx, "draft")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Local Draft", list[0].Title)

	list, err = svc.List(ctx, "server")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, remote.Assessment.ID, list[0].ID)
}

func TestAssessmentsDelete_RemovesAndTombstones(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	svc := app.NewAssessmentsService(e.api, e.store, nil)

	result, err := svc.Save(ctx, assessment.Assessment{Title: "Doomed Screen"})
	require.NoError(t, err)
	id := result.Assessment.ID

	require.NoError(t, svc.Delete(ctx, id))

	_, err = e.store.Assessment(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	deleted, err := e.store.IsAssessmentDeleted(ctx, id)
	require.NoError(t, err)
	require.True(t, deleted)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAssessmentsDelete_LocalOnlyRecord(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	svc := app.NewAssessmentsService(e.api, e.store, nil)

	stored, err := e.store.SaveAssessment(ctx, assessment.Assessment{Title: "Never Synced"})
	require.NoError(t, err)

	// server delete 404s; the local steps still run
	require.NoError(t, svc.Delete(ctx, stored.ID))

	_, err = e.store.Assessment(ctx, stored.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	deleted, err := e.store.IsAssessmentDeleted(ctx, stored.ID)
	require.NoError(t, err)
	require.True(t, deleted)
}

func TestAssessmentsList_TombstoneSuppressesServerCopy(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	svc := app.NewAssessmentsService(e.api, e.store, nil)

	// server still carries the record, but the user already deleted it
	result, err := svc.Save(ctx, assessment.Assessment{Title: "Zombie Screen"})
	require.NoError(t, err)
	id := result.Assessment.ID

	require.NoError(t, e.store.RemoveAssessment(ctx, id, ""))
	require.NoError(t, e.store.MarkAssessmentDeleted(ctx, id))

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAssessmentsList_DegradesToLocalOnNetworkFailure(t *testing.T) {
	ctx := context.Background()
	e := deadEnv(t)
	svc := app.NewAssessmentsService(e.api, e.store, nil)

	_, err := e.store.SaveAssessment(ctx, assessment.Assessment{Title: "Offline Draft"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Offline Draft", list[0].Title)
}
