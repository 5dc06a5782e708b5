package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/domain/candidate"
)

func TestValidStage(t *testing.T) {
	for _, st := range candidate.Stages {
		require.True(t, candidate.ValidStage(st))
	}
	require.False(t, candidate.ValidStage("interviewing"))
	require.False(t, candidate.ValidStage(""))
}

func TestFilterMatches(t *testing.T) {
	c := candidate.Candidate{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Location: "London",
		Stage:    candidate.StageScreening,
		JobID:    "job-1",
		JobTitle: "Backend Engineer",
		Skills:   []string{"Go", "SQL"},
	}

	require.True(t, candidate.Filter{}.Matches(c))
	require.True(t, candidate.Filter{Stage: "screening"}.Matches(c))
	require.True(t, candidate.Filter{Stage: "All Stages"}.Matches(c))
	require.False(t, candidate.Filter{Stage: "hired"}.Matches(c))

	require.True(t, candidate.Filter{Job: "Backend Engineer"}.Matches(c))
	require.True(t, candidate.Filter{Job: "job-1"}.Matches(c))
	require.True(t, candidate.Filter{Job: "All Jobs"}.Matches(c))
	require.False(t, candidate.Filter{Job: "Designer"}.Matches(c))

	require.True(t, candidate.Filter{Search: "ada"}.Matches(c))
	require.True(t, candidate.Filter{Search: "sql"}.Matches(c))
	require.True(t, candidate.Filter{Search: "backend"}.Matches(c))
	require.False(t, candidate.Filter{Search: "python"}.Matches(c))
}
