package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	config "github.com/meetingmind/backend/config/web"
	geminiClient "github.com/meetingmind/backend/gateways/web/clients/gemini"
	meetingsClient "github.com/meetingmind/backend/gateways/web/clients/meetings"
	ssoClient "github.com/meetingmind/backend/gateways/web/clients/sso"
	"github.com/meetingmind/backend/gateways/web/controller"
	"github.com/meetingmind/backend/gateways/web/handler"
)

type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	gemini     *geminiClient.Client
	sso        *ssoClient.Client
	meetings   *meetingsClient.Client
	controller *controller.Controller
	handler    *handler.Handler
}

func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	log.Info("creating new web server")
	log.Debug("server config",
		slog.Int("port", cfg.Port),
		slog.Bool("gemini_api_key_set", cfg.Gemini.APIKey != ""),
		slog.String("gemini_model", cfg.Gemini.Model),
		slog.String("sso_service_url", cfg.SsoService.Url),
		slog.String("meetings_service_url", cfg.MeetingsService.Url))

	gemini := geminiClient.New(&cfg.Gemini)

	sso, err := ssoClient.New(&cfg.SsoService)
	if err != nil {
		return nil, fmt.Errorf("failed to create sso client: %w", err)
	}

	meetings, err := meetingsClient.New(&cfg.MeetingsService)
	if err != nil {
		return nil, fmt.Errorf("failed to create meetings client: %w", err)
	}

	ctrl := controller.New(gemini, meetings, sso, cfg.FreeTierLimit, log)
	h := handler.New(cfg, ctrl, sso, meetings, log)

	log.Info("web server instance created successfully")
	return &Server{
		cfg:        cfg,
		log:        log,
		gemini:     gemini,
		sso:        sso,
		meetings:   meetings,
		controller: ctrl,
		handler:    h,
	}, nil
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info("starting web server")

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s.handler.RegisterRoutes(router)
	s.log.Info("routes registered successfully")

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	// Analysis requests wait on the model API, hence the long write timeout.
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.log.Info("web gateway started", slog.String("address", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		s.log.Info("start shutdown", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			s.log.Error("graceful shutdown failed", slog.String("error", err.Error()))
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}

		s.closeClients()
		s.log.Info("shutdown complete")
	case <-ctx.Done():
		s.log.Info("context cancelled, stopping server")
		srv.Close()
		s.closeClients()
	}

	return nil
}

func (s *Server) closeClients() {
	if err := s.sso.Close(); err != nil {
		s.log.Warn("failed to close sso client", slog.String("error", err.Error()))
	}
	if err := s.meetings.Close(); err != nil {
		s.log.Warn("failed to close meetings client", slog.String("error", err.Error()))
	}
}
