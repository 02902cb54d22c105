package port

import (
	"context"
	"math/big"
)

// TokenGateway moves fungible assets between holders and the engine's
// custody account. Failures are reported as domain.ErrInsufficientBalance
// or domain.ErrInsufficientAllowance.
type TokenGateway interface {
	// Pull moves amount of asset from holder into custody using the
	// allowance the holder granted.
	Pull(ctx context.Context, asset, from string, amount *big.Int) error
	// Push moves amount of asset from custody to holder.
	Push(ctx context.Context, asset, to string, amount *big.Int) error
	// Reclaim takes back into custody amount of asset that Push sent to
	// holder. It needs no allowance and is only used to reverse a payout
	// whose ledger update could not be stored.
	Reclaim(ctx context.Context, asset, from string, amount *big.Int) error
	// BalanceOf reports the balance of holder.
	BalanceOf(ctx context.Context, asset, holder string) (*big.Int, error)
}
