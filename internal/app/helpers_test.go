package app_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/client"
	"github.com/ganot/talentflow/internal/mockapi"
	"github.com/ganot/talentflow/internal/store"
)

type env struct {
	api   *client.Client
	store *store.Store
}

// newEnv stands up a real mock API over httptest plus an in-memory store,
// the same pair the services run against in production.
func newEnv(t *testing.T, seed *mockapi.SeedConfig) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data := mockapi.NewData()
	if seed != nil {
		data.Seed(*seed)
	}
	r := gin.New()
	mockapi.NewServer(data, nil).Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return &env{api: client.New(ts.URL), store: st}
}

// deadEnv returns a client pointed at a server that is already gone, for
// exercising the degraded read paths.
func deadEnv(t *testing.T) *env {
	t.Helper()
	ts := httptest.NewServer(nil)
	url := ts.URL
	ts.Close()

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return &env{api: client.New(url), store: st}
}
