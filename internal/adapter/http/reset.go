package httpadapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-wizard/internal/core/domain"
)

type resetRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type resetResponse struct {
	ID string `json:"id"`
	domain.OtpSession
}

// writeReset answers with the reset state. Rejected codes and passwords
// are 422 responses that still carry the state and its message.
func (h *Handler) writeReset(w http.ResponseWriter, r *http.Request, id string, s domain.OtpSession, err error) {
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, resetResponse{ID: id, OtpSession: s})
	case s.Error != "" && (errors.Is(err, domain.ErrVerification) || errors.Is(err, domain.ErrValidation)):
		h.writeJSON(w, http.StatusUnprocessableEntity, resetResponse{ID: id, OtpSession: s})
	default:
		h.writeError(w, r, err)
	}
}

func (h *Handler) handleResetStart(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !h.decode(w, r, &req) {
		return
	}
	id, s, err := h.svc.Reset.Start(r.Context(), req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, resetResponse{ID: id, OtpSession: s})
}

func (h *Handler) handleResetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resetID")
	s, err := h.svc.Reset.Session(id)
	h.writeReset(w, r, id, s, err)
}

func (h *Handler) handleResetEmail(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !h.decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "resetID")
	s, err := h.svc.Reset.SubmitEmail(r.Context(), id, req.Email)
	h.writeReset(w, r, id, s, err)
}

func (h *Handler) handleResetResend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resetID")
	s, err := h.svc.Reset.Resend(r.Context(), id)
	h.writeReset(w, r, id, s, err)
}

func (h *Handler) handleResetCode(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !h.decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "resetID")
	s, err := h.svc.Reset.SubmitCode(r.Context(), id, req.Code)
	h.writeReset(w, r, id, s, err)
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !h.decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "resetID")
	s, err := h.svc.Reset.SubmitPassword(r.Context(), id, req.Password, req.Confirm)
	h.writeReset(w, r, id, s, err)
}

func (h *Handler) handleResetBack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resetID")
	s, err := h.svc.Reset.Back(r.Context(), id)
	h.writeReset(w, r, id, s, err)
}
