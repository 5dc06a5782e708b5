package job_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/domain/job"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Senior Backend Engineer", "senior-backend-engineer"},
		{"  C++ / Go Developer!  ", "c-go-developer"},
		{"---Already--Dashed---", "already-dashed"},
		{"ALLCAPS", "allcaps"},
		{"123 Numbers 456", "123-numbers-456"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, job.Slugify(tc.in), "input %q", tc.in)
	}
}
