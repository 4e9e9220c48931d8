package entity

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the day precision date format used by ledger files and
// the rendered reports alike.
const DateLayout = "02/01/2006"

// ErrInvalidDate is returned when a date string is not a DD/MM/YYYY
// calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate converts a DD/MM/YYYY date into epoch milliseconds at local
// midnight.
func ParseDate(text string) (Timestamp, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(text), time.Local)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidDate, "%q is not a %s date", text, DateLayout)
	}
	return Timestamp(t.UnixMilli()), nil
}

// Time returns the timestamp as a time.Time in the local zone.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts))
}

// Format renders the timestamp as DD/MM/YYYY.
func (ts Timestamp) Format() string {
	return ts.Time().Format(DateLayout)
}
