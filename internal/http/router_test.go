package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shipcost/internal/modules/quote"
)

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(quote.NewService(nil, nil, 0))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/shipping/rate?postal_code=97201&weight=5", http.StatusOK},
		{http.MethodGet, "/api/shipping/zones/972", http.StatusOK},
		{http.MethodGet, "/api/shipping/tiers", http.StatusOK},
		{http.MethodGet, "/api/shipping/quotes?postal_code=97201", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != tt.want {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.want, w.Code)
		}
	}
}
