package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chromalyze-backend/internal/analyses"
	"chromalyze-backend/internal/shared/config"
	"chromalyze-backend/internal/shared/server/middleware"
	"chromalyze-backend/internal/shared/server/respond"
)

const apiVersion = "1.0.0"

// RouterDeps carries the handlers and middleware state the router wires up.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	UploadLimiter   *middleware.SlidingWindowLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"name":    "Chromalyze API",
			"version": apiVersion,
			"endpoints": gin.H{
				"upload":  "POST /api/upload",
				"results": "GET /api/results/:id",
				"health":  "GET /api/health",
			},
		})
	})

	api := r.Group("/api")
	var uploadMiddleware []gin.HandlerFunc
	if deps.UploadLimiter != nil {
		uploadMiddleware = append(uploadMiddleware, middleware.RateLimit(deps.UploadLimiter))
	}
	deps.AnalysisHandler.RegisterRoutes(api, uploadMiddleware...)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
