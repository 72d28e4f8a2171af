package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/server/models"
	"github.com/gin-gonic/gin"
)

type recommendationRequest struct {
	N           string `json:"N"`
	P           string `json:"P"`
	K           string `json:"K"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	PH          string `json:"ph"`
	Rainfall    string `json:"rainfall"`
}

func recommendationJSON(r *models.Recommendation) gin.H {
	return gin.H{
		"id":          r.ID,
		"N":           r.N,
		"P":           r.P,
		"K":           r.K,
		"temperature": r.Temperature,
		"humidity":    r.Humidity,
		"ph":          r.PH,
		"rainfall":    r.Rainfall,
	}
}

func (s *Server) listRecommendations(c *gin.Context) {
	recs, err := s.recs.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "error listing recommendations", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	out := make([]gin.H, 0, len(recs))
	for _, r := range recs {
		out = append(out, recommendationJSON(r))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getRecommendation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid id"})
		return
	}

	r, err := s.recs.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Data not Found"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "error getting recommendation", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		c.JSON(http.StatusOK, recommendationJSON(r))
	}
}

func (s *Server) createRecommendation(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid request body"})
		return
	}

	rec := &models.Recommendation{
		N:           req.N,
		P:           req.P,
		K:           req.K,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		PH:          req.PH,
		Rainfall:    req.Rainfall,
	}
	if _, err := s.recs.Create(c.Request.Context(), rec); err != nil {
		s.logger.Error(c.Request.Context(), "error creating recommendation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "msg": "Created Success"})
}

func (s *Server) deleteRecommendation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid id"})
		return
	}

	err = s.recs.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Data not Found"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "error deleting recommendation", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		c.JSON(http.StatusOK, gin.H{"status": true, "msg": "Data was deleted"})
	}
}
