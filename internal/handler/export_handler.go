package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-planner-api/internal/service"
	"github.com/noah-isme/study-planner-api/pkg/response"
)

type exporter interface {
	Export(ctx context.Context, planID, format string) (*service.ExportFile, error)
}

// ExportHandler serves schedule downloads in the supported formats.
type ExportHandler struct {
	service exporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Export godoc
// @Summary Export a plan schedule
// @Description Renders the schedule as json, csv, ical or pdf and streams it as a download.
// @Tags Exports
// @Produce octet-stream
// @Param id path string true "Plan ID"
// @Param format query string false "Export format (default json)"
// @Success 200 {file} binary
// @Router /plans/{id}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	file, err := h.service.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
