package ledger

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"hermes-ido/internal/core/domain"
)

// Ledger is an in-process fungible token ledger with ERC20-like balances
// and allowances. Every allowance is granted to the custody account, which
// is the only spender. It implements port.TokenGateway.
type Ledger struct {
	custody string

	mu         sync.Mutex
	balances   map[string]map[string]*big.Int
	allowances map[string]map[string]*big.Int
}

// New returns an empty ledger whose custody account is custody.
func New(custody string) *Ledger {
	return &Ledger{
		custody:    custody,
		balances:   make(map[string]map[string]*big.Int),
		allowances: make(map[string]map[string]*big.Int),
	}
}

// Custody returns the account holding deposits and rewards.
func (l *Ledger) Custody() string {
	return l.custody
}

// Mint credits amount of asset to holder.
func (l *Ledger) Mint(_ context.Context, asset, holder string, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := l.entry(l.balances, asset, holder)
	bal.Add(bal, amount)
	return nil
}

// Approve sets the allowance holder grants the custody account, replacing
// any previous value.
func (l *Ledger) Approve(_ context.Context, asset, holder string, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry(l.allowances, asset, holder).Set(amount)
	return nil
}

// Allowance reports what the custody account may still pull from holder.
func (l *Ledger) Allowance(_ context.Context, asset, holder string) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.entry(l.allowances, asset, holder)), nil
}

// BalanceOf reports the balance of holder.
func (l *Ledger) BalanceOf(_ context.Context, asset, holder string) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.entry(l.balances, asset, holder)), nil
}

// Pull moves amount from holder to custody, spending the allowance first.
func (l *Ledger) Pull(ctx context.Context, asset, from string, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	allowance := l.entry(l.allowances, asset, from)
	if allowance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s allows %s of %s, need %s",
			domain.ErrInsufficientAllowance, from, allowance, asset, amount)
	}
	if err := l.transfer(asset, from, l.custody, amount); err != nil {
		return err
	}
	allowance.Sub(allowance, amount)
	return nil
}

// Push moves amount from custody to holder.
func (l *Ledger) Push(ctx context.Context, asset, to string, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transfer(asset, l.custody, to, amount)
}

// Reclaim moves amount from holder back to custody without touching the
// allowance.
func (l *Ledger) Reclaim(ctx context.Context, asset, from string, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transfer(asset, from, l.custody, amount)
}

func (l *Ledger) transfer(asset, from, to string, amount *big.Int) error {
	src := l.entry(l.balances, asset, from)
	if src.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s holds %s of %s, need %s",
			domain.ErrInsufficientBalance, from, src, asset, amount)
	}
	dst := l.entry(l.balances, asset, to)
	src.Sub(src, amount)
	dst.Add(dst, amount)
	return nil
}

// entry returns the live value for asset/holder, creating a zero one.
// Callers hold mu.
func (l *Ledger) entry(m map[string]map[string]*big.Int, asset, holder string) *big.Int {
	byHolder, ok := m[asset]
	if !ok {
		byHolder = make(map[string]*big.Int)
		m[asset] = byHolder
	}
	v, ok := byHolder[holder]
	if !ok {
		v = new(big.Int)
		byHolder[holder] = v
	}
	return v
}
