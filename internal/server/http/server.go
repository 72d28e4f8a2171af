// Package http exposes the REST API: the auth flow, protected user listings
// and the public recommendation/product/article resources.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agroclima/agroclima-server/internal/logging"
	"github.com/agroclima/agroclima-server/internal/server/config"
	"github.com/agroclima/agroclima-server/internal/server/services"
	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refreshToken"

type Server struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	recs         *services.RecommendationService
	products     *services.ProductService
	articles     *services.ArticleService
	accessSecret []byte
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, rs *services.RecommendationService,
	ps *services.ProductService, as *services.ArticleService) *Server {
	return &Server{
		address:      cfg.EndpointAddrHTTP,
		logger:       l.With("module", "http_server"),
		users:        us,
		recs:         rs,
		products:     ps,
		articles:     as,
		accessSecret: []byte(cfg.AccessSecretKey),
	}
}

// router builds the gin engine with all routes registered. Split from Run so
// tests can drive the handlers through httptest without binding a port.
func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/register", s.register)
	r.POST("/login", s.login)
	r.GET("/login/token", s.refresh)
	r.DELETE("/logout", s.logout)

	protected := r.Group("/login/user")
	protected.Use(s.verifyAccess())
	protected.GET("", s.listUsers)
	protected.GET("/:id", s.getUser)

	r.GET("/Recommendation/data", s.listRecommendations)
	r.GET("/Recommendation/data/:id", s.getRecommendation)
	r.POST("/Recommendation/new", s.createRecommendation)
	r.DELETE("/Recommendation/data/:id", s.deleteRecommendation)

	r.GET("/Product", s.listProducts)
	r.GET("/Product/:id", s.getProduct)
	r.POST("/Product", s.createProduct)
	r.DELETE("/Product/:id", s.deleteProduct)

	r.GET("/Article", s.listArticles)
	r.GET("/Article/:id", s.getArticle)
	r.POST("/Article", s.createArticle)
	r.DELETE("/Article/:id", s.deleteArticle)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// setRefreshCookie stores the refresh token in an HttpOnly cookie whose
// Max-Age matches the token validity.
func (s *Server) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(refreshCookieName, token, int(s.users.RefreshTokenValidity().Seconds()), "/", "", false, true)
}

func (s *Server) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(refreshCookieName, "", -1, "/", "", false, true)
}
