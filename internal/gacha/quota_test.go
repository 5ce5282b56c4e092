package gacha

import (
	"testing"
	"time"

	"aquarium-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func statsWithUsage(date string, used int) *models.UserStats {
	return &models.UserStats{
		UserID:         "u1",
		DailyCasesUsed: used,
		LastCaseDate:   &date,
	}
}

func TestCasesRemaining_FreshUser(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, CasesRemaining(nil, now))
	assert.Equal(t, 1, CasesRemaining(&models.UserStats{UserID: "u1"}, now))
	assert.Equal(t, 1, CasesRemaining(statsWithUsage("2025-06-09", 1), now))
}

func TestCasesRemaining_ExhaustedToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CasesRemaining(statsWithUsage("2025-06-10", 1), now))
	assert.Equal(t, 0, CasesRemaining(statsWithUsage("2025-06-10", 3), now))
	assert.Equal(t, 1, CasesRemaining(statsWithUsage("2025-06-10", 0), now))
}

func TestConsume_SpendsTodaysCase(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	stats := &models.UserStats{UserID: "u1"}

	err := Consume(stats, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.DailyCasesUsed)
	assert.Equal(t, "2025-06-10", *stats.LastCaseDate)

	err = Consume(stats, now)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
	assert.Equal(t, 1, stats.DailyCasesUsed)
}

func TestConsume_ResetsOnNewUTCDay(t *testing.T) {
	stats := statsWithUsage("2025-06-10", 1)

	// 23:59 on the stored day is still exhausted
	lateNight := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	assert.ErrorIs(t, Consume(stats, lateNight), ErrQuotaExhausted)

	// 00:01 the next day is a fresh allowance, no explicit reset needed
	afterMidnight := time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC)
	assert.NoError(t, Consume(stats, afterMidnight))
	assert.Equal(t, 1, stats.DailyCasesUsed)
	assert.Equal(t, "2025-06-11", *stats.LastCaseDate)
}

func TestNextReset_StartOfNextUTCDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 18, 30, 15, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), NextReset(now))

	// month rollover
	eom := time.Date(2025, 6, 30, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), NextReset(eom))
}

func TestToday_UsesUTC(t *testing.T) {
	// 23:00 at UTC-5 on June 10 is already 04:00 June 11 in UTC
	loc := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2025, 6, 10, 23, 0, 0, 0, loc)
	assert.Equal(t, "2025-06-11", Today(local))
}
