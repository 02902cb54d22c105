package httpadapter

import (
	"encoding/json"
	"net/http"

	"hermes-ido/internal/core/domain"
)

// handleCreateCampaign registers a campaign owned by the caller. It
// answers 201 with the stored campaign, including its assigned id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	owner := r.Header.Get(accountHeader)
	if owner == "" {
		h.writeError(w, r, "create campaign", domain.ErrInvalidAccount)
		return
	}
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	cfg, schedule, err := req.toDomain()
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), owner, cfg, schedule)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(c))
}

// handleListCampaigns returns all campaigns, or those in the status given
// by the optional status query parameter.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var filter *domain.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.Status(raw)
		switch status {
		case domain.StatusPending, domain.StatusClaiming, domain.StatusRefunding:
		default:
			h.badRequest(w, "invalid status")
			return
		}
		filter = &status
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, newCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}
