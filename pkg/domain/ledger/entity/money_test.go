package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		out  Amount
		fail bool
	}{
		{in: "1.234,56", out: 123456},
		{in: "-12,00", out: -1200},
		{in: "0,00", out: 0},
		{in: "500,00", out: 50000},
		{in: "12,34 €", out: 1234},
		{in: "-0,01 €", out: -1},
		{in: " 2,50 ", out: 250},
		{in: "1.000.000,00", out: 100000000},
		{in: "", fail: true},
		{in: "abc", fail: true},
		{in: "12,3x", fail: true},
		{in: "12-34", fail: true},
		{in: "-", fail: true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.fail {
			require.Error(t, err, "input %q", tc.in)
			assert.True(t, errors.Is(err, ErrInvalidAmount), "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.out, got, "input %q", tc.in)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in  Amount
		out string
	}{
		{in: 0, out: "0,00"},
		{in: 1, out: "0,01 €"},
		{in: -1, out: "-0,01 €"},
		{in: 99, out: "0,99 €"},
		{in: -99, out: "-0,99 €"},
		{in: 100, out: "1,00 €"},
		{in: 12345, out: "123,45 €"},
		{in: -12345, out: "-123,45 €"},
		{in: 123456, out: "1234,56 €"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, tc.in.Format(), "amount %d", int64(tc.in))
	}
}

func TestAmountFormatParseRoundTrip(t *testing.T) {
	for _, cents := range []Amount{0, 1, -1, 99, 100, 12345, -12345, 123456, -123456} {
		parsed, err := ParseAmount(cents.Format())
		require.NoError(t, err, "amount %d", int64(cents))
		assert.Equal(t, cents, parsed, "amount %d", int64(cents))
	}
}
