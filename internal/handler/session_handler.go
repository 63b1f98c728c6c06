package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
	"github.com/reqtrackhq/reqtrack-api/pkg/response"
)

type sessionService interface {
	IsAdmin(ctx context.Context) (bool, error)
	SetAdmin(ctx context.Context, admin bool) error
}

// SessionHandler exposes the shared session role flag.
type SessionHandler struct {
	service sessionService
}

// NewSessionHandler builds a new handler.
func NewSessionHandler(service sessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// GetRole godoc
// @Summary Get the current session role
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session/role [get]
func (h *SessionHandler) GetRole(c *gin.Context) {
	admin, err := h.service.IsAdmin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.RoleResponse{Admin: admin})
}

// SetRole godoc
// @Summary Toggle the session between admin and requester mode
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.SetRoleRequest true "Role payload"
// @Success 200 {object} response.Envelope
// @Router /session/role [put]
func (h *SessionHandler) SetRole(c *gin.Context) {
	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid role payload"))
		return
	}
	if err := h.service.SetAdmin(c.Request.Context(), req.Admin); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.RoleResponse{Admin: req.Admin})
}
