package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	"github.com/reqtrackhq/reqtrack-api/internal/models"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
	"github.com/reqtrackhq/reqtrack-api/pkg/response"
)

type requestService interface {
	Create(ctx context.Context, req dto.CreateRequestRequest) (*models.Request, error)
	Get(ctx context.Context, docNo string) (*models.Request, error)
	List(ctx context.Context, filter dto.ListFilter) ([]models.Request, error)
	Hits(ctx context.Context, docNo, query string) (*dto.HitsResponse, error)
}

// RequestHandler exposes document submission and register endpoints.
type RequestHandler struct {
	service requestService
}

// NewRequestHandler builds a new handler.
func NewRequestHandler(service requestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create godoc
// @Summary Submit a new QR or PR document
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.CreateRequestRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid submission payload"))
		return
	}
	doc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// List godoc
// @Summary List the register for one document kind
// @Tags Requests
// @Produce json
// @Param kind query string true "Document kind (QR or PR)"
// @Param q query string false "Search query"
// @Success 200 {object} response.Envelope
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	var filter dto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter"))
		return
	}
	requests, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, map[string]interface{}{"count": len(requests)})
}

// Get godoc
// @Summary Get one document by number
// @Tags Requests
// @Produce json
// @Param docNo path string true "Document number"
// @Success 200 {object} response.Envelope
// @Router /requests/{docNo} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context(), c.Param("docNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// Hits godoc
// @Summary Count search hits inside one document
// @Tags Requests
// @Produce json
// @Param docNo path string true "Document number"
// @Param q query string false "Search query"
// @Success 200 {object} response.Envelope
// @Router /requests/{docNo}/hits [get]
func (h *RequestHandler) Hits(c *gin.Context) {
	hits, err := h.service.Hits(c.Request.Context(), c.Param("docNo"), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, hits)
}
