package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/williamhogman/kubedash/dashboard/internal/config"
	"github.com/williamhogman/kubedash/dashboard/internal/metrics"
	"github.com/williamhogman/kubedash/dashboard/internal/service"
	"github.com/williamhogman/kubedash/dashboard/internal/transport/rpc"
)

// Server represents the HTTP server
type Server struct {
	router    *mux.Router
	dashboard *service.DashboardService
	logger    *zap.Logger
	server    *http.Server
	cfg       config.ServerConfig
}

type serverParams struct {
	fx.In

	Config    *config.Config
	Dashboard *service.DashboardService
	RPC       *rpc.DashboardServer
	Logger    *zap.Logger
}

// NewServer creates the HTTP server with the REST routes and the Connect API
func NewServer(p serverParams) *Server {
	return newServer(p.Config.Server, p.Dashboard, p.RPC, p.Logger)
}

func newServer(cfg config.ServerConfig, dashboard *service.DashboardService, rpcServer *rpc.DashboardServer, logger *zap.Logger) *Server {
	router := mux.NewRouter()

	s := &Server{
		router:    router,
		dashboard: dashboard,
		logger:    logger.Named("http-server"),
		cfg:       cfg,
	}
	s.registerRoutes(rpcServer)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Content-Disposition"},
	})

	s.server = &http.Server{
		Addr: cfg.Addr(),
		// Use h2c so we can serve HTTP/2 without TLS
		Handler:      h2c.NewHandler(c.Handler(router), &http2.Server{}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// registerRoutes sets up all the HTTP routes
func (s *Server) registerRoutes(rpcServer *rpc.DashboardServer) {
	s.router.Use(recoverer(s.logger), requestLogger(s.logger))

	s.router.HandleFunc("/healthz", s.healthHandler).Methods("GET")
	s.router.HandleFunc("/ready", s.readyHandler).Methods("GET")
	s.router.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/summary", s.summaryHandler).Methods("GET")
	api.HandleFunc("/presets", s.presetsHandler).Methods("GET")
	api.HandleFunc("/workloads", s.workloadsHandler).Methods("GET")
	api.HandleFunc("/workloads/{id}", s.workloadHandler).Methods("GET")
	api.HandleFunc("/workloads/{id}/logs", s.logsHandler).Methods("POST")
	api.HandleFunc("/export", s.exportHandler).Methods("GET")

	if rpcServer != nil {
		path, handler := rpc.NewHandler(rpcServer)
		s.router.PathPrefix(path).Handler(handler).Methods("POST")
	}
}

// Handler is the full handler chain served on the listener
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.logger.Info("Starting dashboard server",
				zap.String("address", s.server.Addr),
				zap.Int("port", s.cfg.Port))

			go func() {
				if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.logger.Error("Server error", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.logger.Info("Stopping HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
			defer cancel()

			if err := s.server.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("Error during server shutdown", zap.Error(err))
				return err
			}

			s.logger.Info("HTTP server stopped")
			return nil
		},
	})
}

// Module exports the server module for fx
var Module = fx.Options(
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server, lc fx.Lifecycle) {
		s.Start(lc)
	}),
)
