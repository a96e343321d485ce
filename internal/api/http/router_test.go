package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetdesk-backend/internal/security"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func testRouter() *mux.Router {
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", 15*time.Minute, time.Hour)
	return NewRouter(Services{}, tokens, nil, 10)
}

func TestRouter_FileDownloadRequiresAuth(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("GET", "/api/v1/files/drivers/3/license/abc.pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	router := testRouter()

	for _, path := range []string{"/api/v1/vehicles", "/api/v1/reports/dashboard", "/api/v1/users"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}
