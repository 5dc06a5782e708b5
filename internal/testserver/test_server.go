// Package testserver stands up the full stack for end-to-end tests: a
// seeded mock API, a document store, the application services and the view
// router, all behind real HTTP listeners. Reopening a harness on the same
// store path simulates a process restart: the mock data reseeds, the store
// does not.
package testserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/app"
	"github.com/ganot/talentflow/internal/client"
	"github.com/ganot/talentflow/internal/mockapi"
	"github.com/ganot/talentflow/internal/store"
	"github.com/ganot/talentflow/internal/transport"
)

type TestServer struct {
	Server   *httptest.Server
	Upstream *httptest.Server
	Store    *store.Store

	t *testing.T
}

func New(t *testing.T, storePath string, seed mockapi.SeedConfig) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data := mockapi.NewData()
	data.Seed(seed)
	mock := mockapi.NewServer(data, nil)

	upstreamRouter := gin.New()
	mock.Register(upstreamRouter)
	upstream := httptest.NewServer(upstreamRouter)

	st, err := store.Open(storePath)
	require.NoError(t, err)

	api := client.New(upstream.URL)
	assessments := app.NewAssessmentsService(api, st, nil)
	counts := app.NewCountsService(api, assessments, nil)

	router := transport.NewRouter(transport.Services{
		Jobs:        app.NewJobsService(api, st, nil),
		Candidates:  app.NewCandidatesService(api, nil),
		Assessments: assessments,
		Counts:      app.NewCountsPoller(counts, time.Minute, nil),
	}, mock, nil, nil)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		Upstream: upstream,
		Store:    st,
		t:        t,
	}
	t.Cleanup(ts.Close)
	return ts
}

// Close shuts the harness down. Safe to call twice; the test cleanup does.
func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.Upstream.Close()
	_ = ts.Store.Close()
}

// Do issues a JSON request against the view server and decodes the response
// into out when it is non-nil. Returns the status code.
func (ts *TestServer) Do(method, path string, body, out any) int {
	ts.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	require.NoError(ts.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(ts.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (ts *TestServer) Get(path string, out any) int {
	ts.t.Helper()
	return ts.Do(http.MethodGet, path, nil, out)
}

func (ts *TestServer) Post(path string, body, out any) int {
	ts.t.Helper()
	return ts.Do(http.MethodPost, path, body, out)
}

func (ts *TestServer) Patch(path string, body, out any) int {
	ts.t.Helper()
	return ts.Do(http.MethodPatch, path, body, out)
}

func (ts *TestServer) Delete(path string) int {
	ts.t.Helper()
	return ts.Do(http.MethodDelete, path, nil, nil)
}
