package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meetingmind/backend/gateways/web/controller"
	"github.com/meetingmind/backend/pkg/json"
	pb "github.com/meetingmind/backend/specs/proto/meetings"
)

// maxUploadBytes leaves headroom over the audio cap for the multipart
// envelope itself.
const maxUploadBytes = controller.MaxAudioBytes + 1024*1024

type analyzeTextReq struct {
	Text  string `json:"text"`
	Title string `json:"title"`
}

func (h *Handler) AnalyzeAudioHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}

	title := r.FormValue("title")
	declaredType := header.Header.Get("Content-Type")

	snap, err := h.controller.SubmitAudio(r.Context(), userID, header.Filename, declaredType, data, title)
	if err != nil {
		writeSubmissionError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) AnalyzeTextHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	var req analyzeTextReq
	if err := json.ParseJSON(r, &req); err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}

	snap, err := h.controller.SubmitText(r.Context(), userID, req.Text, req.Title)
	if err != nil {
		writeSubmissionError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) GetMeetingHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := h.authenticate(r); err != nil {
		json.WriteError(w, http.StatusForbidden, err)
		return
	}

	meetingID := chi.URLParam(r, "meeting_id")

	res, err := h.meetings.GetMeeting(r.Context(), &pb.GetMeetingReq{MeetingId: meetingID})
	if err != nil {
		json.WriteError(w, http.StatusNotFound, err)
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}
