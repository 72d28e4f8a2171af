package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/server/models"
	"github.com/agroclima/agroclima-server/internal/server/services"
	"github.com/gin-gonic/gin"
)

func productJSON(p *models.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"description": p.Description,
		"photo":       p.Photo,
	}
}

// formUpload extracts the "photo" part of a multipart request as an Upload.
// The returned closer must be closed by the caller.
func formUpload(c *gin.Context) (*services.Upload, func(), error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	up := &services.Upload{
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}
	return up, func() { f.Close() }, nil
}

func (s *Server) listProducts(c *gin.Context) {
	items, err := s.products.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "error listing products", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, p := range items {
		out = append(out, productJSON(p))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid id"})
		return
	}

	p, err := s.products.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Product not Found"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "error getting product", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		c.JSON(http.StatusOK, productJSON(p))
	}
}

func (s *Server) createProduct(c *gin.Context) {
	up, closeUpload, err := formUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Photo is required"})
		return
	}
	defer closeUpload()

	name := c.PostForm("name")
	price := c.PostForm("price")
	description := c.PostForm("description")

	if _, err := s.products.Create(c.Request.Context(), name, price, description, up); err != nil {
		s.logger.Error(c.Request.Context(), "error creating product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "msg": "Created Success"})
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid id"})
		return
	}

	err = s.products.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Product not Found"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "error deleting product", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		c.JSON(http.StatusOK, gin.H{"status": true, "msg": "Product was deleted"})
	}
}
