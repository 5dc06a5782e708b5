package mockapi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/domain/candidate"
)

func TestSeed_Sizes(t *testing.T) {
	d := NewData()
	d.Seed(SeedConfig{Jobs: 20, Candidates: 80, Seed: 42})

	require.Len(t, d.jobs, 20)
	require.Len(t, d.candidates, 80)
	require.Len(t, d.assessments, 3)
}

func TestSeed_JobsHaveUniqueSlugs(t *testing.T) {
	d := NewData()
	d.Seed(SeedConfig{Jobs: 50, Candidates: 1, Seed: 42})

	seen := map[string]struct{}{}
	for _, j := range d.jobs {
		require.NotEmpty(t, j.ID)
		require.NotEmpty(t, j.Slug)
		_, dup := seen[j.Slug]
		require.False(t, dup, "duplicate slug %q", j.Slug)
		seen[j.Slug] = struct{}{}
		require.NotNil(t, j.Order)
	}
}

func TestSeed_CandidatesReferenceSeededJobs(t *testing.T) {
	d := NewData()
	d.Seed(SeedConfig{Jobs: 5, Candidates: 40, Seed: 7})

	jobIDs := map[string]string{}
	for _, j := range d.jobs {
		jobIDs[j.ID] = j.Title
	}
	for _, c := range d.candidates {
		require.True(t, candidate.ValidStage(c.Stage), "stage %q", c.Stage)
		title, ok := jobIDs[c.JobID]
		require.True(t, ok, "candidate %s references unknown job %s", c.ID, c.JobID)
		require.Equal(t, title, c.JobTitle)
		require.NotZero(t, c.AppliedAtTS)
	}
}

func TestSeed_Deterministic(t *testing.T) {
	a := NewData()
	a.Seed(SeedConfig{Jobs: 10, Candidates: 10, Seed: 99})
	b := NewData()
	b.Seed(SeedConfig{Jobs: 10, Candidates: 10, Seed: 99})

	require.Equal(t, len(a.jobs), len(b.jobs))
	for i := range a.jobs {
		require.Equal(t, a.jobs[i].Title, b.jobs[i].Title)
		require.Equal(t, a.jobs[i].Slug, b.jobs[i].Slug)
	}
	for i := range a.candidates {
		require.Equal(t, a.candidates[i].Name, b.candidates[i].Name)
		require.Equal(t, a.candidates[i].Stage, b.candidates[i].Stage)
	}
}

func TestSeed_AssessmentsValidate(t *testing.T) {
	d := NewData()
	d.Seed(SeedConfig{Jobs: 1, Candidates: 1, Seed: 1})

	for _, a := range d.assessments {
		require.NoError(t, a.Validate())
		questions := 0
		for _, sec := range a.Sections {
			questions += len(sec.Questions)
		}
		require.Greater(t, questions, 0)
	}
}
