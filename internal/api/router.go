// Package api wires the HTTP routes to the services.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapi "github.com/zahira986-id/Cat-Galery/internal/api/auth"
	"github.com/zahira986-id/Cat-Galery/internal/api/cats"
	"github.com/zahira986-id/Cat-Galery/internal/pkg/token"
	"github.com/zahira986-id/Cat-Galery/internal/service"
)

// Deps carries the constructed collaborators the routes need
type Deps struct {
	Catalog *service.Catalog
	Auth    *service.Auth
	Tokens  *token.Manager
	Limiter service.Limiter
	// StaticDir is the public gallery directory; empty disables
	// static serving (tests).
	StaticDir string
}

// SetupRouter configures all routes
func SetupRouter(r *gin.Engine, d Deps) {
	r.Use(CORSMiddleware())

	catsHandler := cats.NewHandler(d.Catalog)
	r.GET("/cats", catsHandler.List)
	r.GET("/cats/:id", catsHandler.GetByID)
	r.POST("/cats", catsHandler.Create)
	r.PUT("/cats/:id", catsHandler.Update)
	r.DELETE("/cats/:id", catsHandler.Delete)
	r.GET("/tags", catsHandler.Tags)

	authHandler := authapi.NewHandler(d.Auth, d.Tokens, d.Limiter)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/api/me", authHandler.Middleware(), authHandler.Me)

	if d.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(d.StaticDir))
		r.NoRoute(gin.WrapH(fileServer))
	}
}

// CORSMiddleware provides CORS support for the gallery client
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
