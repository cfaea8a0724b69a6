package httpadapter

import (
	"net/http"

	"campaign-wizard/internal/core/domain"
)

type introResponse struct {
	Shown bool `json:"shown"`
}

func (h *Handler) handleIntroShown(w http.ResponseWriter, r *http.Request) {
	shown, err := h.svc.Wizard.IntroShown(r.Context(), session(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, introResponse{Shown: shown})
}

func (h *Handler) handleMarkIntroShown(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Wizard.MarkIntroShown(r.Context(), session(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, introResponse{Shown: true})
}

func (h *Handler) handleGetBusinessProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Wizard.BusinessProfile(r.Context(), session(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// handleSaveBusinessProfile creates the profile. It answers 201 on
// success and 422 when the profile is invalid or already exists.
func (h *Handler) handleSaveBusinessProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.BusinessProfile
	if !h.decode(w, r, &p) {
		return
	}
	if err := h.svc.Wizard.SaveBusinessProfile(r.Context(), session(r), p); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

type connectionResponse struct {
	domain.ConnectionState
	Current domain.ConnectionStep `json:"current"`
}

func (h *Handler) writeConnection(w http.ResponseWriter, r *http.Request, c domain.ConnectionState, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, connectionResponse{ConnectionState: c, Current: c.CurrentStep()})
}

func (h *Handler) handleGetConnection(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Wizard.Connection(r.Context(), session(r))
	h.writeConnection(w, r, c, err)
}

type selectConnectionRequest struct {
	OptionID string `json:"option_id"`
}

func (h *Handler) handleSelectConnection(w http.ResponseWriter, r *http.Request) {
	var req selectConnectionRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Wizard.SelectConnection(r.Context(), session(r), req.OptionID)
	h.writeConnection(w, r, c, err)
}

func (h *Handler) handleNextConnection(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Wizard.NextConnectionStep(r.Context(), session(r))
	h.writeConnection(w, r, c, err)
}

func (h *Handler) handlePreviousConnection(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Wizard.PreviousConnectionStep(r.Context(), session(r))
	h.writeConnection(w, r, c, err)
}
