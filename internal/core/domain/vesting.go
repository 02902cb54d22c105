package domain

import (
	"math/big"
	"time"
)

// Scale is the fixed-point unit (1e18) used by prices and vesting fractions.
var Scale = pow10(18)

// Checkpoint unlocks Fraction (cumulative, scaled by Scale) of a
// contributor's entitlement once After has elapsed since resolution. After
// is stored with second precision.
type Checkpoint struct {
	Fraction *big.Int
	After    time.Duration
}

// VestingSchedule is an ordered, immutable list of checkpoints.
type VestingSchedule []Checkpoint

// Validate checks that checkpoints are strictly increasing in both time and
// fraction and that the last one releases the whole entitlement.
func (s VestingSchedule) Validate() error {
	if len(s) == 0 {
		return invalidConfig("vesting schedule is empty")
	}
	for i, cp := range s {
		if cp.Fraction == nil || cp.Fraction.Sign() <= 0 || cp.Fraction.Cmp(Scale) > 0 {
			return invalidConfig("checkpoint %d fraction must be in (0, 1]", i)
		}
		if cp.After < 0 {
			return invalidConfig("checkpoint %d offset is negative", i)
		}
		if cp.After%time.Second != 0 {
			return invalidConfig("checkpoint %d offset must be whole seconds", i)
		}
		if i == 0 {
			continue
		}
		prev := s[i-1]
		if cp.After <= prev.After {
			return invalidConfig("checkpoint %d offset must be after checkpoint %d", i, i-1)
		}
		if cp.Fraction.Cmp(prev.Fraction) <= 0 {
			return invalidConfig("checkpoint %d fraction must exceed checkpoint %d", i, i-1)
		}
	}
	if s[len(s)-1].Fraction.Cmp(Scale) != 0 {
		return invalidConfig("last checkpoint must release 100%%")
	}
	return nil
}

// VestedFraction returns the cumulative fraction unlocked after elapsed,
// scaled by Scale. It is zero before the first checkpoint and plateaus at
// the last checkpoint's fraction.
func (s VestingSchedule) VestedFraction(elapsed time.Duration) *big.Int {
	fraction := new(big.Int)
	for _, cp := range s {
		if cp.After > elapsed {
			break
		}
		fraction.Set(cp.Fraction)
	}
	return fraction
}

// Vested returns the part of entitlement unlocked after elapsed.
func (s VestingSchedule) Vested(entitlement *big.Int, elapsed time.Duration) *big.Int {
	v := new(big.Int).Mul(entitlement, s.VestedFraction(elapsed))
	return v.Quo(v, Scale)
}

// Clone returns a deep copy of the schedule.
func (s VestingSchedule) Clone() VestingSchedule {
	out := make(VestingSchedule, len(s))
	for i, cp := range s {
		out[i] = Checkpoint{Fraction: new(big.Int).Set(cp.Fraction), After: cp.After}
	}
	return out
}

// Entitlement converts an acquire-asset amount into the reward-asset amount
// owed at the given fixed-point price. The decimal gap between the two
// assets scales the result up when the acquire asset is more precise and
// down when the reward asset is. Multiplication happens before division so
// only the final result is floored.
func Entitlement(contributed, price *big.Int, acquireDecimals, rewardDecimals uint8) *big.Int {
	if contributed == nil || contributed.Sign() <= 0 || price == nil || price.Sign() <= 0 {
		return new(big.Int)
	}
	num := new(big.Int).Mul(contributed, Scale)
	den := new(big.Int).Set(price)
	if acquireDecimals >= rewardDecimals {
		num.Mul(num, pow10(int64(acquireDecimals-rewardDecimals)))
	} else {
		den.Mul(den, pow10(int64(rewardDecimals-acquireDecimals)))
	}
	return num.Quo(num, den)
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
