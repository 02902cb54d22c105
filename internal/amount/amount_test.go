package amount

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnits(t *testing.T) {
	cases := []struct {
		in       string
		decimals uint8
		want     string
	}{
		{"1000", 18, "1000000000000000000000"},
		{"0.5", 18, "500000000000000000"},
		{"1.25", 2, "125"},
		{"42", 0, "42"},
		{"-3", 1, "-30"},
	}
	for _, tc := range cases {
		got, err := ParseUnits(tc.in, tc.decimals)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got.String(), tc.in)
	}
}

func TestParseUnitsRejects(t *testing.T) {
	_, err := ParseUnits("1.234", 2)
	assert.ErrorIs(t, err, ErrPrecision)

	_, err = ParseUnits("abc", 18)
	assert.Error(t, err)

	for _, s := range []string{"1e10000000", "1E3", "2.5e-1"} {
		_, err = ParseUnits(s, 18)
		assert.ErrorIs(t, err, ErrExponent, s)
	}

	_, err = ParseUnits(strings.Repeat("9", 61), 18)
	assert.ErrorIs(t, err, ErrTooLarge)
	_, err = ParseUnits(strings.Repeat("1", 200), 18)
	assert.ErrorIs(t, err, ErrTooLarge)

	v, err := ParseUnits(strings.Repeat("9", 60), 18)
	require.NoError(t, err)
	assert.Len(t, v.String(), MaxDigits)
}

func TestParserKeepsFirstError(t *testing.T) {
	var p Parser
	assert.Equal(t, "42", p.Int("42").String())
	assert.NoError(t, p.Err())

	assert.Equal(t, 0, p.Int("x1").Sign())
	p.Int("y2")
	require.Error(t, p.Err())
	assert.Contains(t, p.Err().Error(), `"x1"`)
}

func TestFormatUnits(t *testing.T) {
	v, err := ParseUnits("1000.5", 18)
	require.NoError(t, err)
	assert.Equal(t, "1000.5", FormatUnits(v, 18))
	assert.Equal(t, "0", FormatUnits(nil, 18))

	f, err := ParseFraction("0.25")
	require.NoError(t, err)
	assert.Equal(t, "250000000000000000", f.String())
	assert.Equal(t, "0.25", FormatFraction(f))
}
