package httpadapter

import (
	"bytes"
	"net/http"
	"strconv"

	"campaign-wizard/internal/adapter/report"
)

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Wizard.Campaigns(r.Context(), session(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleCampaignSummary returns the dashboard totals over every finalized
// campaign of the user.
func (h *Handler) handleCampaignSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Wizard.CampaignSummary(r.Context(), session(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sum)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) handleExportCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Wizard.Campaigns(r.Context(), session(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err = report.WriteCampaigns(&buf, list); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="campaigns.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
