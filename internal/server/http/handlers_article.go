package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/server/models"
	"github.com/gin-gonic/gin"
)

func articleJSON(a *models.Article) gin.H {
	return gin.H{
		"id":          a.ID,
		"title":       a.Title,
		"description": a.Description,
		"photo":       a.Photo,
	}
}

func (s *Server) listArticles(c *gin.Context) {
	items, err := s.articles.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "error listing articles", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, a := range items {
		out = append(out, articleJSON(a))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid id"})
		return
	}

	a, err := s.articles.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Article not Found"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "error getting article", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		c.JSON(http.StatusOK, articleJSON(a))
	}
}

func (s *Server) createArticle(c *gin.Context) {
	up, closeUpload, err := formUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Photo is required"})
		return
	}
	defer closeUpload()

	title := c.PostForm("title")
	description := c.PostForm("description")

	if _, err := s.articles.Create(c.Request.Context(), title, description, up); err != nil {
		s.logger.Error(c.Request.Context(), "error creating article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "msg": "Created Success"})
}

func (s *Server) deleteArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid id"})
		return
	}

	err = s.articles.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Article not Found"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "error deleting article", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		c.JSON(http.StatusOK, gin.H{"status": true, "msg": "Article was deleted"})
	}
}
