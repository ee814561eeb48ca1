package handler

import (
	"fmt"
	"net/http"

	"github.com/meetingmind/backend/pkg/json"
	"github.com/meetingmind/backend/pkg/jwt"
	pb "github.com/meetingmind/backend/specs/proto/sso"
)

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	req := &pb.RegisterReq{}
	if err := json.ParseProtoJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.sso.Register(r.Context(), req)
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	h.establishFromToken(r, res.Token)

	json.WriteProtoJSON(w, http.StatusOK, res)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := &pb.LoginReq{}
	if err := json.ParseProtoJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.sso.Login(r.Context(), req)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, fmt.Errorf("wrong password or email"))
		return
	}

	h.establishFromToken(r, res.Token)

	json.WriteProtoJSON(w, http.StatusOK, res)
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	h.controller.Drop(userID)

	json.WriteJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	res, err := h.sso.GetUser(r.Context(), &pb.GetUserReq{UserId: userID})
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}

// establishFromToken primes the session right after a credential is issued so
// the first session read already carries profile and usage.
func (h *Handler) establishFromToken(r *http.Request, token string) {
	userID, err := jwt.ParseUserID(r.Context(), token, h.cfg.JWTSecret)
	if err != nil {
		h.log.Warn("failed to parse freshly issued token", "error", err.Error())
		return
	}

	h.controller.Establish(r.Context(), userID)
}
