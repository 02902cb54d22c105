package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hermes-ido/internal/core/domain"
)

// codeBadRequest marks malformed requests that never reached the domain.
const codeBadRequest domain.Code = "BAD_REQUEST"

type errorResponse struct {
	Code    domain.Code `json:"code"`
	Message string      `json:"message"`
}

// statusOf maps domain error codes to HTTP statuses. Rule violations that
// depend on campaign state are conflicts; bad input is 400.
func statusOf(code domain.Code) int {
	switch code {
	case domain.CodeInvalidConfig,
		domain.CodeInvalidAmount,
		domain.CodeInvalidAccount,
		domain.CodeBelowMinAllocation:
		return http.StatusBadRequest
	case domain.CodeCampaignNotFound:
		return http.StatusNotFound
	case domain.CodeNotJoinPeriod,
		domain.CodeTooEarly,
		domain.CodeAllocationExhausted,
		domain.CodeGoalReached,
		domain.CodeAlreadyResolved,
		domain.CodeNotClaimable,
		domain.CodeNotRefundable,
		domain.CodeNothingToClaim,
		domain.CodeAllClaimed,
		domain.CodeNothingToRefund:
		return http.StatusConflict
	case domain.CodeInsufficientBalance,
		domain.CodeInsufficientAllowance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as JSON. Unknown errors are logged and hidden.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := domain.CodeOf(err)
	status := statusOf(code)
	resp := errorResponse{Code: code, Message: err.Error()}
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error",
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.Any("error", err))
		resp.Message = "internal error"
	}
	h.writeJSON(w, status, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Code: codeBadRequest, Message: msg})
}

func campaignID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id >= 0
}
