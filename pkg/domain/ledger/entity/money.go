package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidAmount is returned when an amount string contains anything
// other than digits once the sign and separators are stripped.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts a human readable amount into cents. The comma is
// the decimal separator and dots are optional thousands grouping, so
// "1.234,56" parses to 123456 and "-12,00" to -1200. A trailing euro
// sign is tolerated, which lets the output of Amount.Format parse back.
func ParseAmount(text string) (Amount, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimSuffix(s, "€"))
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, errors.Wrapf(ErrInvalidAmount, "no digits in %q", text)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.Wrapf(ErrInvalidAmount, "unexpected character %q in %q", r, text)
		}
	}
	cents, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q does not fit in 64 bits", text)
	}
	if negative {
		cents = -cents
	}
	return Amount(cents), nil
}

// Format renders the amount for display. Zero renders as "0,00" with no
// currency suffix, every other value as euros and cents with a trailing
// euro sign. The sign is split off before the magnitude is divided, so
// amounts under one euro render as "0,01 €", "-0,99 €" and so on.
func (a Amount) Format() string {
	if a == 0 {
		return "0,00"
	}
	sign := ""
	cents := int64(a)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d €", sign, cents/100, cents%100)
}
