package job_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/domain/job"
)

func TestFilterMatches_Status(t *testing.T) {
	j := job.Job{Title: "Backend Engineer", Status: job.StatusActive}

	require.True(t, job.Filter{}.Matches(j))
	require.True(t, job.Filter{Status: "all"}.Matches(j))
	require.True(t, job.Filter{Status: "All Status"}.Matches(j))
	require.True(t, job.Filter{Status: "active"}.Matches(j))
	require.True(t, job.Filter{Status: "Active"}.Matches(j))
	require.False(t, job.Filter{Status: "archived"}.Matches(j))
}

func TestFilterMatches_Search(t *testing.T) {
	j := job.Job{
		Title:      "Backend Engineer",
		Slug:       "backend-engineer",
		Department: "Engineering",
		Tags:       []string{"remote", "golang"},
		Status:     job.StatusActive,
	}

	require.True(t, job.Filter{Search: "backend"}.Matches(j))
	require.True(t, job.Filter{Search: "  ENGINEER  "}.Matches(j))
	require.True(t, job.Filter{Search: "golang"}.Matches(j))
	require.True(t, job.Filter{Search: "engineering"}.Matches(j))
	require.False(t, job.Filter{Search: "designer"}.Matches(j))
}

func TestFilterMatches_SearchAndStatus(t *testing.T) {
	j := job.Job{Title: "Backend Engineer", Status: job.StatusArchived}

	require.True(t, job.Filter{Search: "backend", Status: "archived"}.Matches(j))
	require.False(t, job.Filter{Search: "backend", Status: "active"}.Matches(j))
}
