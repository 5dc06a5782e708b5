package transport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ganot/talentflow/internal/domain/candidate"
)

func (s *Server) listCandidates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	kanban := c.Query("view") == "kanban"
	f := candidate.Filter{
		Search: c.Query("search"),
		Stage:  c.Query("stage"),
		Job:    c.Query("job"),
	}

	result, err := s.services.Candidates.Page(c.Request.Context(), f, page, kanban)
	if err != nil {
		writeError(c, err)
		return
	}
	if result.Candidates == nil {
		result.Candidates = []candidate.Candidate{}
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": result.Candidates,
		"page":       page,
		"total":      result.Total,
		"totalPages": result.TotalPages,
	})
}

func (s *Server) moveCandidate(c *gin.Context) {
	var body struct {
		Stage candidate.Stage `json:"stage"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updated, err := s.services.Candidates.MoveStage(c.Request.Context(), c.Param("id"), body.Stage)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) candidateStats(c *gin.Context) {
	counts, err := s.services.Candidates.StageCounts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (s *Server) candidateJobOptions(c *gin.Context) {
	options, err := s.services.Candidates.JobOptions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if options == nil {
		options = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}
