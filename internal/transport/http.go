// Package transport exposes the reconciled views and their mutations over
// HTTP. It is the boundary the original page components sat on: what they
// rendered, the /views endpoints return; what their buttons did, the
// mutation endpoints do.
package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ganot/talentflow/internal/app"
	"github.com/ganot/talentflow/internal/client"
	"github.com/ganot/talentflow/internal/domain/assessment"
	"github.com/ganot/talentflow/internal/domain/candidate"
	"github.com/ganot/talentflow/internal/domain/job"
	"github.com/ganot/talentflow/internal/mockapi"
)

// Services bundles the application services the view API fronts.
type Services struct {
	Jobs        *app.JobsService
	Candidates  *app.CandidatesService
	Assessments *app.AssessmentsService
	Counts      *app.CountsPoller
}

// Server holds the view API handlers.
type Server struct {
	services Services
	logger   *slog.Logger
}

// NewRouter builds the gin engine: middleware, the optional mock API under
// /api, and the view API under /views.
func NewRouter(services Services, mock *mockapi.Server, logger *slog.Logger, allowOrigins []string) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	if len(allowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: allowOrigins,
			AllowMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	if mock != nil {
		mock.Register(r.Group("/api"))
	}

	srv := &Server{services: services, logger: logger}
	views := r.Group("/views")
	{
		views.GET("/jobs", srv.listJobs)
		views.POST("/jobs", srv.createJob)
		views.PATCH("/jobs/:id", srv.updateJob)
		views.POST("/jobs/:id/move", srv.moveJob)

		views.GET("/candidates", srv.listCandidates)
		views.GET("/candidates/stats", srv.candidateStats)
		views.GET("/candidates/job-options", srv.candidateJobOptions)
		views.POST("/candidates/:id/stage", srv.moveCandidate)

		views.GET("/assessments", srv.listAssessments)
		views.POST("/assessments", srv.createAssessment)
		views.PATCH("/assessments/:id", srv.updateAssessment)
		views.DELETE("/assessments/:id", srv.deleteAssessment)

		views.GET("/counts", srv.counts)
		views.POST("/counts/refresh", srv.refreshCounts)
	}

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

var validationErrs = []error{
	job.ErrTitleRequired,
	job.ErrInvalidStatus,
	candidate.ErrInvalidStage,
	assessment.ErrTitleRequired,
	assessment.ErrSectionTitleRequired,
	assessment.ErrPromptRequired,
	assessment.ErrNotEnoughOptions,
	assessment.ErrCorrectOutOfRange,
	assessment.ErrNumericBounds,
	assessment.ErrTextMaxLength,
	assessment.ErrUnknownQuestionType,
}

// writeError maps service failures onto the wire: upstream API errors pass
// their status and message through, validation failures are 400s, anything
// else is a bad gateway since write paths depend on the upstream server.
func writeError(c *gin.Context, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
		return
	}
	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}
	if errors.Is(err, assessment.ErrAssessmentNotFound) || errors.Is(err, job.ErrJobNotFound) || errors.Is(err, candidate.ErrCandidateNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"message": "upstream request failed"})
}
