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
)

type sessionServiceMock struct {
	admin bool
}

func (m *sessionServiceMock) IsAdmin(ctx context.Context) (bool, error) {
	return m.admin, nil
}

func (m *sessionServiceMock) SetAdmin(ctx context.Context, admin bool) error {
	m.admin = admin
	return nil
}

func TestSessionHandlerGetRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler(&sessionServiceMock{admin: true})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/session/role", nil)
	c.Request = req

	handler.GetRole(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin":true`)
}

func TestSessionHandlerSetRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &sessionServiceMock{}
	handler := NewSessionHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.SetRoleRequest{Admin: true})
	req, _ := http.NewRequest(http.MethodPut, "/session/role", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.SetRole(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mock.admin)
}

func TestSessionHandlerSetRoleInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler(&sessionServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/session/role", bytes.NewReader([]byte(`nope`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.SetRole(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
