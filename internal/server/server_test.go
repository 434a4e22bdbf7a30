package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/handlers"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/metrics"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/repository"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 0},
		Rates:  invoice.DefaultRates(),
	}
	calc, err := invoice.NewCalculator(cfg.Rates)
	if err != nil {
		t.Fatalf("NewCalculator() error = %v", err)
	}

	reg := prometheus.NewRegistry()
	svc := service.NewInvoiceService(calc, repository.NewMemoryInvoiceRepository(), nil, nil, metrics.New(reg), cfg)
	return New(handlers.NewHandlers(svc, cfg), cfg, reg)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/live", "", http.StatusOK},
		{http.MethodGet, "/version", "", http.StatusOK},
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/api/v1/rates", "", http.StatusOK},
		{http.MethodPost, "/api/v1/quotes", `{"property_area": 1000}`, http.StatusOK},
		{http.MethodGet, "/api/v1/invoices", "", http.StatusOK},
		{http.MethodGet, "/api/v1/invoices/inv_missing", "", http.StatusNotFound},
		{http.MethodGet, "/does-not-exist", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Errorf("Expected status %d, got %d", tt.code, w.Code)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewBufferString(`{"property_area": 1000}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "lawncare_quotes_computed_total 1") {
		t.Errorf("Expected quote counter in metrics output")
	}
}
