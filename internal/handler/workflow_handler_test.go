package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrackhq/reqtrack-api/internal/dto"
	"github.com/reqtrackhq/reqtrack-api/internal/models"
	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
)

type workflowServiceMock struct {
	doc *models.Request
	err error

	appliedEvent string
}

func (m *workflowServiceMock) ApplyEvent(ctx context.Context, docNo string, req dto.ApplyEventRequest) (*models.Request, error) {
	m.appliedEvent = req.Event
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

func (m *workflowServiceMock) AddAttachment(ctx context.Context, docNo string, req dto.AddAttachmentRequest) (*models.Request, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

func (m *workflowServiceMock) RemoveAttachment(ctx context.Context, docNo, bucket, id string) (*models.Request, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

func (m *workflowServiceMock) UpdateShipping(ctx context.Context, docNo string, req dto.UpdateShippingRequest) (*models.Request, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

type roleCheckerMock struct {
	admin bool
}

func (m *roleCheckerMock) IsAdmin(ctx context.Context) (bool, error) {
	return m.admin, nil
}

func eventRequest(t *testing.T, event string) *http.Request {
	t.Helper()
	body, _ := json.Marshal(dto.ApplyEventRequest{Event: event})
	req, _ := http.NewRequest(http.MethodPost, "/requests/QR26-01.001/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestWorkflowHandlerEventRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &workflowServiceMock{doc: &models.Request{DocNo: "QR26-01.001"}}
	handler := NewWorkflowHandler(mock, &roleCheckerMock{admin: false})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = eventRequest(t, "ADD_PO")
	c.Params = gin.Params{{Key: "docNo", Value: "QR26-01.001"}}

	handler.ApplyEvent(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, mock.appliedEvent)
}

func TestWorkflowHandlerRequestEditOpenToRequesters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &workflowServiceMock{doc: &models.Request{DocNo: "QR26-01.001", Status: models.StatusEditRequested}}
	handler := NewWorkflowHandler(mock, &roleCheckerMock{admin: false})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = eventRequest(t, "request_edit")
	c.Params = gin.Params{{Key: "docNo", Value: "QR26-01.001"}}

	handler.ApplyEvent(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "request_edit", mock.appliedEvent)
}

func TestWorkflowHandlerEventAsAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &workflowServiceMock{doc: &models.Request{DocNo: "QR26-01.001", Status: models.StatusClosed}}
	handler := NewWorkflowHandler(mock, &roleCheckerMock{admin: true})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = eventRequest(t, "CLOSE")
	c.Params = gin.Params{{Key: "docNo", Value: "QR26-01.001"}}

	handler.ApplyEvent(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(models.StatusClosed))
}

func TestWorkflowHandlerEventInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewWorkflowHandler(&workflowServiceMock{}, &roleCheckerMock{admin: true})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/requests/QR26-01.001/events", bytes.NewReader([]byte(`oops`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.ApplyEvent(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorkflowHandlerAddAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &workflowServiceMock{doc: &models.Request{DocNo: "QR26-01.001", Status: models.StatusQuoted}}
	handler := NewWorkflowHandler(mock, &roleCheckerMock{admin: true})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.AddAttachmentRequest{Bucket: models.BucketQuotation, Filename: "quote.pdf"})
	req, _ := http.NewRequest(http.MethodPost, "/requests/QR26-01.001/attachments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "docNo", Value: "QR26-01.001"}}

	handler.AddAttachment(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestWorkflowHandlerAddAttachmentInvalidBucket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &workflowServiceMock{err: appErrors.ErrInvalidBucket}
	handler := NewWorkflowHandler(mock, &roleCheckerMock{admin: true})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.AddAttachmentRequest{Bucket: "receipts", Filename: "r.pdf"})
	req, _ := http.NewRequest(http.MethodPost, "/requests/QR26-01.001/attachments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.AddAttachment(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), appErrors.ErrInvalidBucket.Code)
}

func TestWorkflowHandlerUpdateShipping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &workflowServiceMock{doc: &models.Request{DocNo: "QR26-01.001", Status: models.StatusShipping}}
	handler := NewWorkflowHandler(mock, &roleCheckerMock{admin: true})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.UpdateShippingRequest{Tracking: "TRK-889"})
	req, _ := http.NewRequest(http.MethodPut, "/requests/QR26-01.001/shipping", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "docNo", Value: "QR26-01.001"}}

	handler.UpdateShipping(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(models.StatusShipping))
}

func TestWorkflowHandlerRemoveAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &workflowServiceMock{doc: &models.Request{DocNo: "QR26-01.001"}}
	handler := NewWorkflowHandler(mock, &roleCheckerMock{admin: true})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/requests/QR26-01.001/attachments/quotation/a1b2c3d4e5", nil)
	c.Request = req
	c.Params = gin.Params{
		{Key: "docNo", Value: "QR26-01.001"},
		{Key: "bucket", Value: "quotation"},
		{Key: "id", Value: "a1b2c3d4e5"},
	}

	handler.RemoveAttachment(c)
	require.Equal(t, http.StatusOK, w.Code)
}
