package entity

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	ts, err := ParseDate("25/12/2023")
	require.NoError(t, err)

	parsed := ts.Time()
	assert.Equal(t, 2023, parsed.Year())
	assert.Equal(t, time.December, parsed.Month())
	assert.Equal(t, 25, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, 0, parsed.Minute())

	expected := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.Local)
	assert.Equal(t, Timestamp(expected.UnixMilli()), ts)
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "2023-12-25", "31/02/2023", "25/13/2023", "banana"} {
		_, err := ParseDate(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrInvalidDate), "input %q", in)
	}
}

func TestDateRoundTrip(t *testing.T) {
	for _, in := range []string{"01/01/2019", "29/02/2020", "31/12/1999", "25/12/2023"} {
		ts, err := ParseDate(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, ts.Format(), "input %q", in)
	}
}

func TestParseAdvance(t *testing.T) {
	assert.True(t, ParseAdvance("Y"))
	assert.False(t, ParseAdvance("N"))
	assert.False(t, ParseAdvance("y"))
	assert.False(t, ParseAdvance(""))
	assert.False(t, ParseAdvance("YES"))
}
