package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	config "github.com/meetingmind/backend/config/web"
	"github.com/meetingmind/backend/gateways/web/clients/meetings"
	"github.com/meetingmind/backend/gateways/web/clients/sso"
	"github.com/meetingmind/backend/gateways/web/controller"
	"github.com/meetingmind/backend/pkg/json"
	"github.com/meetingmind/backend/pkg/jwt"
)

type Handler struct {
	cfg        *config.Config
	controller *controller.Controller
	sso        *sso.Client
	meetings   *meetings.Client
	log        *slog.Logger
}

func New(cfg *config.Config, ctrl *controller.Controller, ssoClient *sso.Client, meetingsClient *meetings.Client, log *slog.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		controller: ctrl,
		sso:        ssoClient,
		meetings:   meetingsClient,
		log:        log,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthHandler)

	router.Route("/api/v1", func(apiRouter chi.Router) {
		apiRouter.Route("/auth", func(authRouter chi.Router) {
			authRouter.Post("/register", h.RegisterHandler)
			authRouter.Post("/login", h.LoginHandler)
			authRouter.Post("/logout", h.LogoutHandler)
			authRouter.Get("/me", h.MeHandler)
		})
		apiRouter.Route("/session", func(sessionRouter chi.Router) {
			sessionRouter.Get("/", h.SessionHandler)
			sessionRouter.Post("/reset", h.ResetHandler)
			sessionRouter.Post("/pricing", h.PricingHandler)
		})
		apiRouter.Route("/meetings", func(meetingsRouter chi.Router) {
			meetingsRouter.Post("/analyze-audio", h.AnalyzeAudioHandler)
			meetingsRouter.Post("/analyze-text", h.AnalyzeTextHandler)
			meetingsRouter.Get("/{meeting_id}", h.GetMeetingHandler)
		})
		apiRouter.Route("/billing", func(billingRouter chi.Router) {
			billingRouter.Post("/upgrade", h.UpgradeHandler)
		})
	})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authenticate resolves the bearer token to a user id. Every route past the
// auth group requires it.
func (h *Handler) authenticate(r *http.Request) (string, error) {
	token, err := jwt.ParseTokenFromHeader(r)
	if err != nil {
		return "", fmt.Errorf("access denied")
	}

	userID, err := jwt.ParseUserID(r.Context(), token, h.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("access denied")
	}

	return userID, nil
}

// writeSubmissionError maps controller sentinels onto HTTP statuses.
func writeSubmissionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, controller.ErrInvalidInput):
		json.WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, controller.ErrQuotaExceeded):
		json.WriteError(w, http.StatusPaymentRequired, err)
	case errors.Is(err, controller.ErrSubmissionInFlight):
		json.WriteError(w, http.StatusConflict, err)
	default:
		json.WriteError(w, http.StatusInternalServerError, err)
	}
}
