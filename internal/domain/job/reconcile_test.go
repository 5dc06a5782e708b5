package job_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/domain/job"
)

func intPtr(n int) *int { return &n }

func serverPage(n int) []job.Job {
	jobs := make([]job.Job, 0, n)
	for i := 1; i <= n; i++ {
		jobs = append(jobs, job.Job{
			ID:     fmt.Sprintf("job-%d", i),
			Title:  fmt.Sprintf("Job %d", i),
			Slug:   fmt.Sprintf("job-%d", i),
			Status: job.StatusActive,
			Order:  intPtr(i),
		})
	}
	return jobs
}

func TestOverlay_SavedFieldsWin(t *testing.T) {
	remote := job.Job{ID: "1", Title: "Old Title", Status: job.StatusActive, Location: "Remote"}
	saved := job.Job{ID: "1", Title: "New Title"}

	merged := job.Overlay(remote, &saved, "")
	require.Equal(t, "New Title", merged.Title)
	require.Equal(t, "Remote", merged.Location)
	require.Equal(t, job.StatusActive, merged.Status)
}

func TestOverlay_OverrideBeatsSavedStatus(t *testing.T) {
	remote := job.Job{ID: "1", Status: job.StatusActive}
	saved := job.Job{ID: "1", Status: job.StatusActive}

	merged := job.Overlay(remote, &saved, job.StatusArchived)
	require.Equal(t, job.StatusArchived, merged.Status)
}

func TestReconcilePage_NoLocalState(t *testing.T) {
	remote := serverPage(10)
	page := job.ReconcilePage(remote, 25, nil, nil, job.Filter{}, 1, 10)

	require.Len(t, page.Jobs, 10)
	require.Equal(t, 25, page.Total)
	require.Equal(t, 3, page.TotalPages)
}

func TestReconcilePage_OverrideExcludesFromFilteredPage(t *testing.T) {
	remote := serverPage(10)
	overrides := map[string]job.Status{"job-5": job.StatusArchived}
	f := job.Filter{Status: "active"}

	page := job.ReconcilePage(remote, 25, nil, overrides, f, 1, 10)

	require.Len(t, page.Jobs, 9)
	for _, j := range page.Jobs {
		require.NotEqual(t, "job-5", j.ID)
		require.Equal(t, job.StatusActive, j.Status)
	}
	require.Equal(t, 24, page.Total)
	require.Equal(t, 3, page.TotalPages)
}

func TestReconcilePage_OverrideKeptWhenFilterStillMatches(t *testing.T) {
	remote := serverPage(3)
	overrides := map[string]job.Status{"job-2": job.StatusArchived}

	page := job.ReconcilePage(remote, 3, nil, overrides, job.Filter{}, 1, 10)

	require.Len(t, page.Jobs, 3)
	require.Equal(t, job.StatusArchived, page.Jobs[1].Status)
	require.Equal(t, 3, page.Total)
}

func TestReconcilePage_CreatedOnlyJobOnFirstPage(t *testing.T) {
	remote := serverPage(3)
	saved := map[string]job.Job{
		"local-1": {ID: "local-1", Title: "Locally Created", Status: job.StatusActive, Order: intPtr(0)},
	}

	page := job.ReconcilePage(remote, 3, saved, nil, job.Filter{}, 1, 10)

	require.Len(t, page.Jobs, 4)
	require.Equal(t, "local-1", page.Jobs[0].ID)
	require.Equal(t, 4, page.Total)
	require.Equal(t, 1, page.TotalPages)
}

func TestReconcilePage_CreatedOnlyNotInjectedBeyondFirstPage(t *testing.T) {
	remote := serverPage(5)
	saved := map[string]job.Job{
		"local-1": {ID: "local-1", Title: "Locally Created", Status: job.StatusActive, Order: intPtr(0)},
	}

	page := job.ReconcilePage(remote, 15, saved, nil, job.Filter{}, 2, 10)

	require.Len(t, page.Jobs, 5)
	for _, j := range page.Jobs {
		require.NotEqual(t, "local-1", j.ID)
	}
	require.Equal(t, 15, page.Total)
}

func TestReconcilePage_CreatedOnlyRespectsFilter(t *testing.T) {
	remote := serverPage(2)
	saved := map[string]job.Job{
		"local-1": {ID: "local-1", Title: "Archived Local", Status: job.StatusArchived},
	}

	page := job.ReconcilePage(remote, 2, saved, nil, job.Filter{Status: "active"}, 1, 10)

	require.Len(t, page.Jobs, 2)
	require.Equal(t, 2, page.Total)
}

func TestReconcilePage_CreatedOnlyHonorsOverride(t *testing.T) {
	remote := serverPage(2)
	saved := map[string]job.Job{
		"local-1": {ID: "local-1", Title: "Local", Status: job.StatusActive, Order: intPtr(0)},
	}
	overrides := map[string]job.Status{"local-1": job.StatusArchived}

	page := job.ReconcilePage(remote, 2, saved, overrides, job.Filter{Status: "archived"}, 1, 10)

	require.Len(t, page.Jobs, 1)
	require.Equal(t, "local-1", page.Jobs[0].ID)
	require.Equal(t, job.StatusArchived, page.Jobs[0].Status)
}

func TestReconcilePage_TruncatesToPageSize(t *testing.T) {
	remote := serverPage(10)
	saved := map[string]job.Job{
		"local-1": {ID: "local-1", Title: "Local A", Status: job.StatusActive, Order: intPtr(-1)},
		"local-2": {ID: "local-2", Title: "Local B", Status: job.StatusActive, Order: intPtr(-2)},
	}

	page := job.ReconcilePage(remote, 10, saved, nil, job.Filter{}, 1, 10)

	require.Len(t, page.Jobs, 10)
	require.Equal(t, "local-2", page.Jobs[0].ID)
	require.Equal(t, "local-1", page.Jobs[1].ID)
	require.Equal(t, 12, page.Total)
	require.Equal(t, 2, page.TotalPages)
}

func TestReconcilePage_EmptyPageStillReportsOnePage(t *testing.T) {
	page := job.ReconcilePage(nil, 0, nil, nil, job.Filter{}, 1, 10)

	require.Empty(t, page.Jobs)
	require.Equal(t, 0, page.Total)
	require.Equal(t, 1, page.TotalPages)
}

func TestReconcilePage_TotalNeverNegative(t *testing.T) {
	remote := serverPage(2)
	overrides := map[string]job.Status{
		"job-1": job.StatusArchived,
		"job-2": job.StatusArchived,
	}

	page := job.ReconcilePage(remote, 1, nil, overrides, job.Filter{Status: "active"}, 1, 10)

	require.Empty(t, page.Jobs)
	require.Equal(t, 0, page.Total)
	require.Equal(t, 1, page.TotalPages)
}

func TestSortByOrder_MissingOrderSortsLast(t *testing.T) {
	jobs := []job.Job{
		{ID: "a"},
		{ID: "b", Order: intPtr(2)},
		{ID: "c", Order: intPtr(1)},
	}
	job.SortByOrder(jobs)

	require.Equal(t, "c", jobs[0].ID)
	require.Equal(t, "b", jobs[1].ID)
	require.Equal(t, "a", jobs[2].ID)
}
