package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Europe/Lisbon", Location("Mars/Olympus").String())
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
}

func TestParseDate(t *testing.T) {
	loc := Location("Europe/Lisbon")

	d, err := ParseDate("2025-06-10", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), d)

	_, err = ParseDate("10/06/2025", loc)
	assert.Error(t, err)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 6, 10, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, at, Fixed(at)())
}

func TestParseTimestamp(t *testing.T) {
	loc := Location("Europe/Lisbon")

	local, err := ParseTimestamp("2025-06-10T14:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, loc), local)

	utc, err := ParseTimestamp("2025-06-10T13:30:00.000Z", loc)
	require.NoError(t, err)
	assert.True(t, utc.Equal(local))

	day, err := ParseTimestamp("2025-12-25", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 25, 0, 0, 0, 0, loc), day)

	_, err = ParseTimestamp("amanhã", loc)
	assert.Error(t, err)
}
