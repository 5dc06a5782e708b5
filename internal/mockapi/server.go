// Package mockapi is the simulated TalentFlow REST API: an in-memory,
// seeded collection of jobs, candidates and assessments behind the same
// endpoints the production API would expose. Data resets on every restart;
// local edits survive it through the document store, not through us.
package mockapi

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Server holds the handlers for the mock API.
type Server struct {
	data   *Data
	logger *slog.Logger
}

// NewServer creates a mock API server over the given dataset.
func NewServer(data *Data, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{data: data, logger: logger}
}

// Register mounts the API routes on r, typically an /api group.
func (s *Server) Register(r gin.IRouter) {
	r.GET("/jobs", s.listJobs)
	r.POST("/jobs", s.createJob)
	r.GET("/jobs/:id", s.getJob)
	r.PATCH("/jobs/:id", s.patchJob)

	// stats before :id so the literal route wins
	r.GET("/candidates", s.listCandidates)
	r.GET("/candidates/stats", s.candidateStats)
	r.GET("/candidates/:id", s.getCandidate)
	r.PATCH("/candidates/:id", s.patchCandidate)

	r.GET("/assessments", s.listAssessments)
	r.POST("/assessments", s.createAssessment)
	r.GET("/assessments/:id", s.getAssessment)
	r.PATCH("/assessments/:id", s.patchAssessment)
	r.DELETE("/assessments/:id", s.deleteAssessment)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func queryInt(c *gin.Context, def int, keys ...string) int {
	for _, k := range keys {
		if raw := c.Query(k); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				return n
			}
		}
	}
	return def
}

type meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
