package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/resource-crud-api/internal/config"
	"github.com/resource-crud-api/internal/httperr"
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/service"
	"github.com/resource-crud-api/pkg/logger"
	"github.com/rs/zerolog"
)

// NotFoundMessage is the error message for requests no stage handled
const NotFoundMessage = "Resource Not Found"

// NewRouter creates and configures the Gin router. The order of the Use
// calls below is the order every request passes through.
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.New()
	// "/api/users/" is the same route as "/api/users", not a redirect to it
	router.RedirectTrailingSlash = false

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(errorMiddleware(log))
	router.Use(recoveryMiddleware(log))
	router.Use(bodyParserMiddleware(cfg.Server.MaxBodyBytes))
	router.Use(requestTraceMiddleware(log))

	// Handlers
	userHandler := NewUserHandler(services, log)
	postHandler := NewPostHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	fileHandler := NewFileHandler(cfg.Data.Dir, log)
	exportHandler := NewExportHandler(services, log)

	// Discovery
	router.GET("/", rootLinks)
	route(router, http.MethodGet, "/api", apiLinks)

	// Resource routers
	api := router.Group("/api")
	{
		users := api.Group("/" + models.ResourceUsers)
		{
			route(users, http.MethodGet, "", userHandler.List)
			route(users, http.MethodPost, "", userHandler.Create)
		}

		posts := api.Group("/" + models.ResourcePosts)
		{
			route(posts, http.MethodGet, "", postHandler.List)
			route(posts, http.MethodPost, "", postHandler.Create)
		}

		comments := api.Group("/" + models.ResourceComments)
		{
			route(comments, http.MethodGet, "", commentHandler.List)
			route(comments, http.MethodPost, "", commentHandler.Create)
		}
	}

	// HTML forms
	route(router, http.MethodGet, "/users/new", newUserForm)
	route(router, http.MethodGet, "/comments/new", newCommentForm)
	route(router, http.MethodGet, "/get-data", downloadPicker)

	// Files
	route(router, http.MethodGet, "/download/:filename", fileHandler.Download)
	route(router, http.MethodGet, "/export/:resource", exportHandler.StreamExport)

	// Health check
	route(router, http.MethodGet, "/health", healthCheck)
	route(router, http.MethodGet, "/metrics", metricsHandler(services))

	// Anything unmatched is tried as a static file, then becomes a 404
	router.NoRoute(fileHandler.Static, notFound)

	return router
}

// route registers h for path with and without a trailing slash
func route(r gin.IRoutes, method, path string, h gin.HandlerFunc) {
	r.Handle(method, path, h)
	r.Handle(method, path+"/", h)
}

// notFound is the last stage for unmatched requests
func notFound(c *gin.Context) {
	abortWithError(c, httperr.New(http.StatusNotFound, NotFoundMessage))
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   logger.ServiceName,
	})
}

// metricsHandler returns per-resource record counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		counts := gin.H{}
		for _, resource := range models.Resources {
			n, err := services.Export.GetCount(ctx, resource)
			if err != nil {
				abortWithError(c, err)
				return
			}
			counts[resource] = n
		}

		c.JSON(http.StatusOK, gin.H{
			"resources": counts,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
