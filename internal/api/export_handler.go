package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resource-crud-api/internal/httperr"
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/service"
	"github.com/rs/zerolog"
)

// ExportHandler handles export endpoints
type ExportHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(services *service.Services, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		services: services,
		log:      log.With().Str("handler", "export").Logger(),
	}
}

// StreamExport handles GET /export/:resource?format=...
// Streams the collection directly to the response
func (h *ExportHandler) StreamExport(c *gin.Context) {
	resource := c.Param("resource")
	if !models.IsResource(resource) {
		abortWithError(c, httperr.New(http.StatusNotFound, NotFoundMessage))
		return
	}

	format := c.DefaultQuery("format", service.FormatJSON)
	if !service.ValidFormat(format) {
		abortWithError(c, httperr.New(http.StatusBadRequest, "format must be one of: json, ndjson, csv"))
		return
	}

	c.Header("Content-Type", service.ContentType(format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.%s", resource, format))
	c.Status(http.StatusOK)

	if err := h.services.Export.Stream(c.Request.Context(), c.Writer, resource, format); err != nil {
		h.log.Error().Err(err).Str("resource", resource).Msg("Export failed")
		// Can't return error JSON after streaming has started
		if !c.Writer.Written() {
			c.Writer.Header().Del("Content-Type")
			c.Writer.Header().Del("Content-Disposition")
			abortWithError(c, err)
		}
	}
}
