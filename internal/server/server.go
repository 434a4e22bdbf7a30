package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/handlers"
)

type Server struct {
	config     *config.Config
	router     *gin.Engine
	handlers   *handlers.Handlers
	httpServer *http.Server
}

// New builds the router. gatherer backs the /metrics endpoint.
func New(h *handlers.Handlers, cfg *config.Config, gatherer prometheus.Gatherer) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(handlers.Templates())

	s := &Server{
		config:   cfg,
		router:   router,
		handlers: h,
	}

	s.setupRoutes(gatherer)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/ready", s.handlers.Ready)
	s.router.GET("/live", s.handlers.Live)
	s.router.GET("/version", s.handlers.Version)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	s.router.GET("/", s.handlers.InvoiceForm)
	s.router.POST("/invoice", s.handlers.SubmitInvoiceForm)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/quotes", s.handlers.CreateQuote)
		v1.POST("/invoices", s.handlers.CreateInvoice)
		v1.GET("/invoices", s.handlers.ListInvoices)
		v1.GET("/invoices/:id", s.handlers.GetInvoice)
		v1.GET("/rates", s.handlers.GetRates)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
