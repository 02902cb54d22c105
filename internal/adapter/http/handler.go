package httpadapter

import (
	"context"
	"log/slog"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"hermes-ido/internal/core/port"
)

// accountHeader carries the caller identity. Authentication happens in
// front of this service.
const accountHeader = "X-Account"

// Ledger is the token ledger surface exposed by the dev endpoints.
type Ledger interface {
	Mint(ctx context.Context, asset, holder string, amount *big.Int) error
	Approve(ctx context.Context, asset, holder string, amount *big.Int) error
	Allowance(ctx context.Context, asset, holder string) (*big.Int, error)
	BalanceOf(ctx context.Context, asset, holder string) (*big.Int, error)
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP that drives port.IDOUseCase. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.IDOUseCase
	logger *slog.Logger
	router chi.Router

	ledger Ledger
	events http.Handler
}

// Option configures optional routes.
type Option func(*Handler)

// WithLedger mounts the dev ledger routes under /api/v1/assets.
func WithLedger(l Ledger) Option {
	return func(h *Handler) { h.ledger = l }
}

// WithEvents mounts a websocket event stream at /api/v1/events.
func WithEvents(events http.Handler) Option {
	return func(h *Handler) { h.events = events }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.IDOUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(requestID, h.accessLog, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Post("/join", h.handleJoin)
				r.Post("/approve", h.handleApprove)
				r.Post("/claim", h.handleClaim)
				r.Post("/refund", h.handleRefund)
				r.Get("/contributions/{account}", h.handlePosition)
			})
		})
		if h.events != nil {
			r.Handle("/events", h.events)
		}
		if h.ledger != nil {
			r.Route("/assets/{asset}", func(r chi.Router) {
				r.Post("/mint", h.handleMint)
				r.Post("/approve", h.handleAssetApprove)
				r.Get("/balances/{account}", h.handleBalance)
			})
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
