package httpadapter

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"campaign-wizard/internal/core/domain"
)

type signInRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token    string          `json:"token"`
	Identity domain.Identity `json:"identity"`
}

// IdentityID derives the stable identity of an email address.
func IdentityID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

// handleSignIn stands in for the external sign-in provider. Any address
// is accepted unless it set a password through a reset, in which case the
// password must match.
func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !h.decode(w, r, &req) {
		return
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		h.writeError(w, r, domain.Invalid("email", "is not a valid address"))
		return
	}
	if h.svc.Accounts != nil {
		ok, found, err := h.svc.Accounts.Verify(r.Context(), addr.Address, req.Password)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if found && !ok {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name, _, _ = strings.Cut(addr.Address, "@")
	}
	id := domain.Identity{ID: IdentityID(addr.Address), Email: addr.Address, Name: name}
	token, err := h.auth.SignIdentity(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, signInResponse{Token: token, Identity: id})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, identityFrom(r.Context()))
}

type catalogResponse struct {
	BusinessCategories []string                `json:"business_categories"`
	Goals              []domain.AdGoal         `json:"goals"`
	Objectives         []string                `json:"objectives"`
	MaxAdSets          int                     `json:"max_ad_sets"`
	CallsToAction      []string                `json:"calls_to_action"`
	ConnectionSteps    []domain.ConnectionStep `json:"connection_steps"`
	LaunchPhases       []string                `json:"launch_phases"`
}

// handleCatalog lists the fixed choices offered by the wizard forms.
func (h *Handler) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, catalogResponse{
		BusinessCategories: domain.BusinessCategories,
		Goals:              []domain.AdGoal{domain.GoalWebsiteVisits, domain.GoalLeads, domain.GoalSales},
		Objectives:         domain.CampaignObjectives,
		MaxAdSets:          domain.MaxAdSets,
		CallsToAction:      domain.CallsToAction,
		ConnectionSteps:    domain.ConnectionSteps,
		LaunchPhases:       domain.LaunchPhases,
	})
}
