package httpadapter

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hermes-ido/internal/amount"
	"hermes-ido/internal/core/domain"
)

// Dev ledger routes take amounts in whole tokens scaled by the decimals
// field of the request; zero decimals means base units.

func (h *Handler) handleMint(w http.ResponseWriter, r *http.Request) {
	h.handleLedgerWrite(w, r, "mint", h.ledger.Mint)
}

func (h *Handler) handleAssetApprove(w http.ResponseWriter, r *http.Request) {
	h.handleLedgerWrite(w, r, "asset approve", h.ledger.Approve)
}

func (h *Handler) handleLedgerWrite(w http.ResponseWriter, r *http.Request, op string, write func(ctx context.Context, asset, holder string, amount *big.Int) error) {
	asset := chi.URLParam(r, "asset")
	var req ledgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	if req.Account == "" {
		req.Account = r.Header.Get(accountHeader)
	}
	if req.Account == "" {
		h.writeError(w, r, op, domain.ErrInvalidAccount)
		return
	}
	v, err := amount.ParseUnits(req.Amount, req.Decimals)
	if err != nil {
		h.writeError(w, r, op, domain.Wrap(domain.CodeInvalidAmount, "invalid amount", err))
		return
	}
	if err = write(r.Context(), asset, req.Account, v); err != nil {
		h.writeError(w, r, op, err)
		return
	}
	h.writeBalance(w, r, asset, req.Account, req.Decimals)
}

// handleBalance reports balance and allowance, optionally scaled by the
// decimals query parameter.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	var decimals uint8
	if raw := r.URL.Query().Get("decimals"); raw != "" {
		d, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			h.badRequest(w, "invalid decimals")
			return
		}
		decimals = uint8(d)
	}
	h.writeBalance(w, r, chi.URLParam(r, "asset"), chi.URLParam(r, "account"), decimals)
}

func (h *Handler) writeBalance(w http.ResponseWriter, r *http.Request, asset, account string, decimals uint8) {
	balance, err := h.ledger.BalanceOf(r.Context(), asset, account)
	if err != nil {
		h.writeError(w, r, "balance", err)
		return
	}
	allowance, err := h.ledger.Allowance(r.Context(), asset, account)
	if err != nil {
		h.writeError(w, r, "balance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{
		Asset:     asset,
		Account:   account,
		Balance:   amount.FormatUnits(balance, decimals),
		Allowance: amount.FormatUnits(allowance, decimals),
	})
}
