package handler

import (
	"net/http"

	"github.com/meetingmind/backend/pkg/json"
)

// UpgradeHandler runs the simulated checkout. There is no payment provider
// behind it yet, the profile flips to pro unconditionally.
func (h *Handler) UpgradeHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	snap, err := h.controller.Upgrade(r.Context(), userID)
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, snap)
}
