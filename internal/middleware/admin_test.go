package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appErrors "github.com/reqtrackhq/reqtrack-api/pkg/errors"
)

type roleCheckerStub struct {
	admin bool
	err   error
}

func (s *roleCheckerStub) IsAdmin(ctx context.Context) (bool, error) {
	return s.admin, s.err
}

func adminRouter(session roleChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/reset", RequireAdmin(session), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "reset"})
	})
	return r
}

func TestRequireAdminRejectsRequesterMode(t *testing.T) {
	r := adminRouter(&roleCheckerStub{admin: false})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/reset", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), appErrors.ErrForbidden.Code)
}

func TestRequireAdminPassesAdminMode(t *testing.T) {
	r := adminRouter(&roleCheckerStub{admin: true})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/reset", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminSurfacesStoreError(t *testing.T) {
	r := adminRouter(&roleCheckerStub{err: appErrors.ErrStoreCorrupt})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/reset", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
