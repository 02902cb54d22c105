package httpadapter

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hermes-ido/internal/amount"
	"hermes-ido/internal/core/domain"
)

// handleJoin deposits the requested amount of the acquire asset for the
// caller. The response carries the accepted amount, which may be lower
// than requested when caps trim it.
func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	account := r.Header.Get(accountHeader)
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}

	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "join", err)
		return
	}
	requested, err := amount.ParseUnits(req.Amount, c.AcquireDecimals)
	if err != nil {
		h.writeError(w, r, "join", domain.Wrap(domain.CodeInvalidAmount, "invalid amount", err))
		return
	}

	accepted, err := h.svc.Join(r.Context(), id, account, requested)
	if err != nil {
		h.writeError(w, r, "join", err)
		return
	}
	h.writeJSON(w, http.StatusOK, transferResponse{
		CampaignID: id,
		Account:    account,
		Asset:      c.AcquireAsset,
		Amount:     amount.FormatUnits(accepted, c.AcquireDecimals),
	})
}

// handleApprove resolves an ended campaign. Any caller may trigger it.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	outcome, err := h.svc.Approve(r.Context(), id, r.Header.Get(accountHeader))
	if err != nil {
		h.writeError(w, r, "approve", err)
		return
	}
	h.writeJSON(w, http.StatusOK, approveResponse{CampaignID: id, Outcome: outcome})
}

func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	h.handleWithdraw(w, r, "claim", h.svc.Claim, func(c *domain.Campaign) (string, uint8) {
		return c.RewardAsset, c.RewardDecimals
	})
}

func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	h.handleWithdraw(w, r, "refund", h.svc.Refund, func(c *domain.Campaign) (string, uint8) {
		return c.AcquireAsset, c.AcquireDecimals
	})
}

type withdrawFn func(ctx context.Context, campaignID int64, account string) (*big.Int, error)

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request, op string, withdraw withdrawFn, assetOf func(*domain.Campaign) (string, uint8)) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	account := r.Header.Get(accountHeader)
	paid, err := withdraw(r.Context(), id, account)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}
	asset, decimals := assetOf(c)
	h.writeJSON(w, http.StatusOK, transferResponse{
		CampaignID: id,
		Account:    account,
		Asset:      asset,
		Amount:     amount.FormatUnits(paid, decimals),
	})
}

// handlePosition reports an account's contribution and what it may
// withdraw right now.
func (h *Handler) handlePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	account := chi.URLParam(r, "account")
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "position", err)
		return
	}
	pos, err := h.svc.GetPosition(r.Context(), id, account)
	if err != nil {
		h.writeError(w, r, "position", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newPositionResponse(c, pos))
}
