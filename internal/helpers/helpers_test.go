package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringTrim(t *testing.T) {
	assert.Equal(t, "abc", StringTrim("  abc "))
	assert.Equal(t, "abc", StringTrim(`"abc"`))
	assert.Equal(t, "abc", StringTrim("'abc'"))
	assert.Equal(t, "", StringTrim("  "))
}

func TestParseDateCalendarDate(t *testing.T) {
	got, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateRFC3339(t *testing.T) {
	got, err := ParseDate("2024-01-01T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC), got)

	// Offsets normalize to UTC.
	got, err = ParseDate("2024-01-01T18:30:00+05:30")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)))
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "January 1st", "01/02/2024", "2024-13-40"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseDateTrimsQuotes(t *testing.T) {
	got, err := ParseDate(` "2024-01-01" `)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
}
