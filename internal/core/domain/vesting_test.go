package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func units(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), Scale)
}

// pct returns p percent scaled by Scale.
func pct(p int64) *big.Int {
	v := new(big.Int).Mul(big.NewInt(p), Scale)
	return v.Quo(v, big.NewInt(100))
}

func threeDaySchedule() VestingSchedule {
	return VestingSchedule{
		{Fraction: pct(25), After: day},
		{Fraction: pct(50), After: 2 * day},
		{Fraction: pct(100), After: 3 * day},
	}
}

func TestVestedFraction(t *testing.T) {
	s := threeDaySchedule()

	cases := []struct {
		name    string
		elapsed time.Duration
		want    *big.Int
	}{
		{"before first checkpoint", 0, big.NewInt(0)},
		{"just before first", day - time.Second, big.NewInt(0)},
		{"at first", day, pct(25)},
		{"between first and second", day + 12*time.Hour, pct(25)},
		{"at second", 2 * day, pct(50)},
		{"at last", 3 * day, pct(100)},
		{"plateau", 300 * day, pct(100)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, 0, tc.want.Cmp(s.VestedFraction(tc.elapsed)), "got %s", s.VestedFraction(tc.elapsed))
		})
	}
}

func TestVested(t *testing.T) {
	s := threeDaySchedule()
	assert.Equal(t, units(250).String(), s.Vested(units(1000), day).String())
	assert.Equal(t, units(500).String(), s.Vested(units(1000), 2*day+time.Hour).String())
	assert.Equal(t, units(1000).String(), s.Vested(units(1000), 4*day).String())
}

func TestVestingScheduleValidate(t *testing.T) {
	require.NoError(t, threeDaySchedule().Validate())
	require.NoError(t, VestingSchedule{{Fraction: pct(100), After: 0}}.Validate())

	bad := map[string]VestingSchedule{
		"empty":              {},
		"zero fraction":      {{Fraction: big.NewInt(0), After: day}, {Fraction: pct(100), After: 2 * day}},
		"over 100%":          {{Fraction: pct(101), After: day}},
		"not ending at 100%": {{Fraction: pct(25), After: day}, {Fraction: pct(50), After: 2 * day}},
		"time not increasing": {
			{Fraction: pct(25), After: 2 * day},
			{Fraction: pct(100), After: 2 * day},
		},
		"fraction not increasing": {
			{Fraction: pct(50), After: day},
			{Fraction: pct(50), After: 2 * day},
			{Fraction: pct(100), After: 3 * day},
		},
		"negative offset": {{Fraction: pct(100), After: -time.Second}},
		"sub-second offset": {
			{Fraction: pct(50), After: time.Second},
			{Fraction: pct(100), After: time.Second + time.Millisecond},
		},
	}
	for name, s := range bad {
		t.Run(name, func(t *testing.T) {
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, NewError(CodeInvalidConfig, ""))
		})
	}
}

func TestEntitlement(t *testing.T) {
	t.Run("equal decimals at par", func(t *testing.T) {
		got := Entitlement(units(1000), Scale, 18, 18)
		assert.Equal(t, units(1000).String(), got.String())
	})

	t.Run("half price with one decimal less on reward", func(t *testing.T) {
		price := new(big.Int).Quo(Scale, big.NewInt(2))
		got := Entitlement(units(1000), price, 18, 17)
		assert.Equal(t, units(20000).String(), got.String())
	})

	t.Run("reward more precise than acquire", func(t *testing.T) {
		// 1000 units of a 6-decimal asset at price 2 into a 7-decimal asset.
		contributed := big.NewInt(1000_000000)
		price := new(big.Int).Mul(big.NewInt(2), Scale)
		got := Entitlement(contributed, price, 6, 7)
		assert.Equal(t, "50000000", got.String())
	})

	t.Run("zero contribution", func(t *testing.T) {
		assert.Equal(t, 0, Entitlement(big.NewInt(0), Scale, 18, 18).Sign())
	})
}
