package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqtrackhq/reqtrack-api/pkg/response"
)

type resetService interface {
	Reset(ctx context.Context) error
}

// AdminHandler exposes maintenance endpoints.
type AdminHandler struct {
	service resetService
}

// NewAdminHandler builds a new handler.
func NewAdminHandler(service resetService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Reset godoc
// @Summary Discard persisted state and reinstall the fixture store
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "reset"})
}
