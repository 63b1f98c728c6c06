package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	"github.com/reqtrackhq/reqtrack-api/internal/service"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
	"github.com/reqtrackhq/reqtrack-api/pkg/response"
)

type exportService interface {
	Document(ctx context.Context, docNo string) (*service.Artifact, error)
	Register(ctx context.Context, filter dto.ListFilter) (*service.Artifact, error)
}

// ExportHandler streams rendered PDF and CSV artifacts.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Document godoc
// @Summary Export one document as a printable PDF
// @Tags Exports
// @Produce application/pdf
// @Param docNo path string true "Document number"
// @Success 200 {file} binary
// @Router /requests/{docNo}/export [get]
func (h *ExportHandler) Document(c *gin.Context) {
	artifact, err := h.service.Document(c.Request.Context(), c.Param("docNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	streamArtifact(c, artifact)
}

// Register godoc
// @Summary Export a filtered register as CSV
// @Tags Exports
// @Produce text/csv
// @Param kind query string true "Document kind (QR or PR)"
// @Param q query string false "Search query"
// @Success 200 {file} binary
// @Router /requests/export [get]
func (h *ExportHandler) Register(c *gin.Context) {
	var filter dto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter"))
		return
	}
	artifact, err := h.service.Register(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	streamArtifact(c, artifact)
}

func streamArtifact(c *gin.Context, artifact *service.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Content)
}
