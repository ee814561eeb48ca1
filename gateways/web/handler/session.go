package handler

import (
	"net/http"

	"github.com/meetingmind/backend/pkg/json"
)

func (h *Handler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, h.controller.Snapshot(r.Context(), userID))
}

func (h *Handler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, h.controller.Reset(r.Context(), userID))
}

func (h *Handler) PricingHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, h.controller.RequestPricing(r.Context(), userID))
}
