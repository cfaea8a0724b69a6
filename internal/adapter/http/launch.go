package httpadapter

import (
	"net/http"
)

type paymentResponse struct {
	Verified bool `json:"verified"`
}

func (h *Handler) handleCheckPayment(w http.ResponseWriter, r *http.Request) {
	verified, err := h.svc.Launch.CheckPayment(r.Context(), session(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, paymentResponse{Verified: verified})
}

// handleLaunch starts the phased launch and answers 202 with the first
// snapshot. An unverified payment method yields 402.
func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Launch.Launch(r.Context(), session(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, h.svc.Launch.Status(session(r)))
}

func (h *Handler) handleLaunchStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Launch.Status(session(r)))
}

func (h *Handler) handleAbortLaunch(w http.ResponseWriter, r *http.Request) {
	h.svc.Launch.Abort(session(r))
	w.WriteHeader(http.StatusNoContent)
}
