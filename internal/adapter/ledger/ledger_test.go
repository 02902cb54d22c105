package ledger

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes-ido/internal/core/domain"
)

func balance(t *testing.T, l *Ledger, asset, holder string) string {
	t.Helper()
	v, err := l.BalanceOf(context.Background(), asset, holder)
	require.NoError(t, err)
	return v.String()
}

func TestPullSpendsAllowance(t *testing.T) {
	ctx := context.Background()
	l := New("ido")
	require.NoError(t, l.Mint(ctx, "token", "alice", big.NewInt(100)))
	require.NoError(t, l.Approve(ctx, "token", "alice", big.NewInt(60)))

	require.NoError(t, l.Pull(ctx, "token", "alice", big.NewInt(40)))

	assert.Equal(t, "60", balance(t, l, "token", "alice"))
	assert.Equal(t, "40", balance(t, l, "token", "ido"))
	left, err := l.Allowance(ctx, "token", "alice")
	require.NoError(t, err)
	assert.Equal(t, "20", left.String())
}

func TestPullFailures(t *testing.T) {
	ctx := context.Background()
	l := New("ido")
	require.NoError(t, l.Mint(ctx, "token", "alice", big.NewInt(10)))

	err := l.Pull(ctx, "token", "alice", big.NewInt(5))
	assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)

	require.NoError(t, l.Approve(ctx, "token", "alice", big.NewInt(50)))
	err = l.Pull(ctx, "token", "alice", big.NewInt(20))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, domain.CodeInsufficientBalance, domain.CodeOf(err))

	// failed pulls leave balances and allowance untouched
	assert.Equal(t, "10", balance(t, l, "token", "alice"))
	left, _ := l.Allowance(ctx, "token", "alice")
	assert.Equal(t, "50", left.String())
}

func TestReclaimIgnoresAllowance(t *testing.T) {
	ctx := context.Background()
	l := New("ido")
	require.NoError(t, l.Mint(ctx, "reward", "ido", big.NewInt(30)))
	require.NoError(t, l.Push(ctx, "reward", "bob", big.NewInt(30)))

	require.NoError(t, l.Reclaim(ctx, "reward", "bob", big.NewInt(30)))
	assert.Equal(t, "0", balance(t, l, "reward", "bob"))
	assert.Equal(t, "30", balance(t, l, "reward", "ido"))

	err := l.Reclaim(ctx, "reward", "bob", big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestPushFromCustody(t *testing.T) {
	ctx := context.Background()
	l := New("ido")
	require.NoError(t, l.Mint(ctx, "reward", "ido", big.NewInt(30)))

	require.NoError(t, l.Push(ctx, "reward", "bob", big.NewInt(30)))
	assert.Equal(t, "30", balance(t, l, "reward", "bob"))
	assert.Equal(t, "0", balance(t, l, "reward", "ido"))

	err := l.Push(ctx, "reward", "bob", big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestAssetsAreIndependent(t *testing.T) {
	ctx := context.Background()
	l := New("ido")
	require.NoError(t, l.Mint(ctx, "a", "alice", big.NewInt(7)))
	assert.Equal(t, "0", balance(t, l, "b", "alice"))
}

func TestMintRejectsNegative(t *testing.T) {
	l := New("ido")
	err := l.Mint(context.Background(), "a", "alice", big.NewInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestPullHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := New("ido")
	assert.ErrorIs(t, l.Pull(ctx, "a", "alice", big.NewInt(1)), context.Canceled)
}

func TestConcurrentPulls(t *testing.T) {
	ctx := context.Background()
	l := New("ido")
	require.NoError(t, l.Mint(ctx, "token", "alice", big.NewInt(100)))
	require.NoError(t, l.Approve(ctx, "token", "alice", big.NewInt(100)))

	var wg sync.WaitGroup
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Pull(ctx, "token", "alice", big.NewInt(1))
		}()
	}
	wg.Wait()

	assert.Equal(t, "0", balance(t, l, "token", "alice"))
	assert.Equal(t, "100", balance(t, l, "token", "ido"))
}
