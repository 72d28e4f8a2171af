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

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"no_hp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// publicUser is the profile shape returned to clients. The password hash and
// refresh token never leave the service layer.
func publicUser(u *models.User) gin.H {
	return gin.H{
		"name":  u.Name,
		"email": u.Email,
		"no_hp": u.Phone,
	}
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid request body"})
		return
	}

	u, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password, req.ConfirmPassword)
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Password do not match"})
	case errors.Is(err, services.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Password must be at least 6 characters"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Email already registered"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Try again"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status": true,
			"msg":    "Registered successfully",
			"data":   publicUser(u),
		})
	}
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid request body"})
		return
	}

	u, pair, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Email not Found!"})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Wrong Password"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Login Failed!"})
	default:
		s.setRefreshCookie(c, pair.RefreshToken)
		c.JSON(http.StatusOK, gin.H{
			"status":      true,
			"msg":         "Login Success",
			"data":        publicUser(u),
			"accessToken": pair.AccessToken,
		})
	}
}

func (s *Server) refresh(c *gin.Context) {
	token, err := c.Cookie(refreshCookieName)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	pair, err := s.users.Refresh(c.Request.Context(), token)
	switch {
	case errors.Is(err, common.ErrorForbidden):
		c.AbortWithStatus(http.StatusForbidden)
	case err != nil:
		s.logger.Error(c.Request.Context(), "token refresh failed", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		s.setRefreshCookie(c, pair.RefreshToken)
		c.JSON(http.StatusOK, gin.H{"accessToken": pair.AccessToken})
	}
}

// logout clears the stored refresh token and the cookie. Always 204: logging
// out without a session is not an error.
func (s *Server) logout(c *gin.Context) {
	if token, err := c.Cookie(refreshCookieName); err == nil {
		if err := s.users.Logout(c.Request.Context(), token); err != nil {
			s.logger.Error(c.Request.Context(), "logout failed", "error", err)
		}
	}
	s.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "error listing users", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, publicUser(u))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid id"})
		return
	}

	u, err := s.users.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "User not Found"})
	case err != nil:
		s.logger.Error(c.Request.Context(), "error getting user", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		c.JSON(http.StatusOK, publicUser(u))
	}
}
