package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	"github.com/reqtrackhq/reqtrack-api/internal/models"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
	"github.com/reqtrackhq/reqtrack-api/pkg/response"
)

type workflowService interface {
	ApplyEvent(ctx context.Context, docNo string, req dto.ApplyEventRequest) (*models.Request, error)
	AddAttachment(ctx context.Context, docNo string, req dto.AddAttachmentRequest) (*models.Request, error)
	RemoveAttachment(ctx context.Context, docNo, bucket, id string) (*models.Request, error)
	UpdateShipping(ctx context.Context, docNo string, req dto.UpdateShippingRequest) (*models.Request, error)
}

type roleChecker interface {
	IsAdmin(ctx context.Context) (bool, error)
}

// WorkflowHandler exposes event, attachment and shipping endpoints.
type WorkflowHandler struct {
	service workflowService
	session roleChecker
}

// NewWorkflowHandler builds a new handler.
func NewWorkflowHandler(service workflowService, session roleChecker) *WorkflowHandler {
	return &WorkflowHandler{service: service, session: session}
}

// ApplyEvent godoc
// @Summary Apply a workflow event to a document
// @Tags Workflow
// @Accept json
// @Produce json
// @Param docNo path string true "Document number"
// @Param payload body dto.ApplyEventRequest true "Event payload"
// @Success 200 {object} response.Envelope
// @Router /requests/{docNo}/events [post]
func (h *WorkflowHandler) ApplyEvent(c *gin.Context) {
	var req dto.ApplyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}

	// REQUEST_EDIT is the one event a requester may fire; everything else
	// needs the admin role.
	if models.Event(strings.ToUpper(req.Event)) != models.EventRequestEdit {
		admin, err := h.session.IsAdmin(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		if !admin {
			response.Error(c, appErrors.ErrForbidden)
			return
		}
	}

	doc, err := h.service.ApplyEvent(c.Request.Context(), c.Param("docNo"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// AddAttachment godoc
// @Summary Record an attachment in a document bucket
// @Tags Workflow
// @Accept json
// @Produce json
// @Param docNo path string true "Document number"
// @Param payload body dto.AddAttachmentRequest true "Attachment payload"
// @Success 200 {object} response.Envelope
// @Router /requests/{docNo}/attachments [post]
func (h *WorkflowHandler) AddAttachment(c *gin.Context) {
	var req dto.AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attachment payload"))
		return
	}
	doc, err := h.service.AddAttachment(c.Request.Context(), c.Param("docNo"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// RemoveAttachment godoc
// @Summary Remove an attachment record from a bucket
// @Tags Workflow
// @Produce json
// @Param docNo path string true "Document number"
// @Param bucket path string true "Bucket name"
// @Param id path string true "Attachment id"
// @Success 200 {object} response.Envelope
// @Router /requests/{docNo}/attachments/{bucket}/{id} [delete]
func (h *WorkflowHandler) RemoveAttachment(c *gin.Context) {
	doc, err := h.service.RemoveAttachment(c.Request.Context(), c.Param("docNo"), c.Param("bucket"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// UpdateShipping godoc
// @Summary Replace the shipping record of a QR document
// @Tags Workflow
// @Accept json
// @Produce json
// @Param docNo path string true "Document number"
// @Param payload body dto.UpdateShippingRequest true "Shipping payload"
// @Success 200 {object} response.Envelope
// @Router /requests/{docNo}/shipping [put]
func (h *WorkflowHandler) UpdateShipping(c *gin.Context) {
	var req dto.UpdateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid shipping payload"))
		return
	}
	doc, err := h.service.UpdateShipping(c.Request.Context(), c.Param("docNo"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}
