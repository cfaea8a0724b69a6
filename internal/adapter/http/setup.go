package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-wizard/internal/core/domain"
)

type previewRequest struct {
	DailyBudget float64 `json:"daily_budget"`
	AdSetCount  int     `json:"ad_set_count"`
}

// handlePreviewSetup recomputes the budget split for the current form
// values. Nothing is stored.
func (h *Handler) handlePreviewSetup(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.Wizard.PreviewSetup(req.DailyBudget, req.AdSetCount))
}

func (h *Handler) handleGetCampaignDraft(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Wizard.CampaignDraft(r.Context(), session(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

func (h *Handler) handleSaveCampaignDraft(w http.ResponseWriter, r *http.Request) {
	var d domain.CampaignDraft
	if !h.decode(w, r, &d) {
		return
	}
	saved, err := h.svc.Wizard.SaveCampaignDraft(r.Context(), session(r), d)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, saved)
}

type creativeResponse struct {
	domain.CreativeDraft
	Complete bool `json:"complete"`
}

func (h *Handler) writeCreative(w http.ResponseWriter, r *http.Request, d domain.CreativeDraft, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, creativeResponse{CreativeDraft: d, Complete: d.IsComplete()})
}

func (h *Handler) handleGetCreative(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Wizard.CreativeDraft(r.Context(), session(r))
	h.writeCreative(w, r, d, err)
}

func (h *Handler) handleSaveCreative(w http.ResponseWriter, r *http.Request) {
	var d domain.CreativeDraft
	if !h.decode(w, r, &d) {
		return
	}
	d, err := h.svc.Wizard.SaveCreativeDraft(r.Context(), session(r), d)
	h.writeCreative(w, r, d, err)
}

type formatRequest struct {
	Format domain.CreativeFormat `json:"format"`
}

func (h *Handler) handleSetCreativeFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !h.decode(w, r, &req) {
		return
	}
	d, err := h.svc.Wizard.SetCreativeFormat(r.Context(), session(r), req.Format)
	h.writeCreative(w, r, d, err)
}

type mediaRequest struct {
	Kind    domain.MediaKind `json:"kind"`
	Content string           `json:"content"`
}

func (h *Handler) handleAddCreativeMedia(w http.ResponseWriter, r *http.Request) {
	var req mediaRequest
	if !h.decode(w, r, &req) {
		return
	}
	d, err := h.svc.Wizard.AddCreativeMedia(r.Context(), session(r), req.Kind, req.Content)
	h.writeCreative(w, r, d, err)
}

func (h *Handler) handleRemoveCreativeMedia(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Wizard.RemoveCreativeMedia(r.Context(), session(r), chi.URLParam(r, "mediaID"))
	h.writeCreative(w, r, d, err)
}

func (h *Handler) handleCompleteCreative(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Wizard.CompleteCreative(r.Context(), session(r))
	h.writeCreative(w, r, d, err)
}

type adSetsResponse struct {
	AdSets      []domain.AdSet `json:"ad_sets"`
	TotalBudget float64        `json:"total_budget"`
}

func (h *Handler) writeAdSets(w http.ResponseWriter, r *http.Request, list []domain.AdSet, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.AdSet{}
	}
	h.writeJSON(w, http.StatusOK, adSetsResponse{AdSets: list, TotalBudget: domain.TotalBudget(list)})
}

func (h *Handler) handleListAdSets(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Wizard.AdSets(r.Context(), session(r))
	h.writeAdSets(w, r, list, err)
}

func (h *Handler) handleGenerateAdSets(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Wizard.GenerateAdSets(r.Context(), session(r))
	h.writeAdSets(w, r, list, err)
}

type editAdSetRequest struct {
	Location string `json:"location"`
}

func (h *Handler) handleEditAdSet(w http.ResponseWriter, r *http.Request) {
	var req editAdSetRequest
	if !h.decode(w, r, &req) {
		return
	}
	list, err := h.svc.Wizard.EditAdSetLocation(r.Context(), session(r), chi.URLParam(r, "adSetID"), req.Location)
	h.writeAdSets(w, r, list, err)
}
