package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"menuverse/api-gateway/internal/gateway"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandlerAnswersPreflight(t *testing.T) {
	handler := newHandler(gateway.Config{}, http.DefaultClient, zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/api/restaurants", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlerProxiesToMenuService(t *testing.T) {
	backendPath := ""
	menu := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer menu.Close()

	handler := newHandler(gateway.Config{MenuSvcURL: menu.URL}, http.DefaultClient, zap.NewNop())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/restaurants/spice-palace", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/api/restaurants/spice-palace", backendPath)
}
