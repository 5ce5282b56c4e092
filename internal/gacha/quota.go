package gacha

import (
	"errors"
	"time"

	"aquarium-service/internal/models"
)

// DailyCaseLimit is the per-user case allowance per UTC calendar day.
const DailyCaseLimit = 1

const dateLayout = "2006-01-02"

var ErrQuotaExhausted = errors.New("no cases remaining today")

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Today formats the UTC calendar date used for quota bookkeeping. Day
// boundaries are date equality in UTC, not a rolling 24-hour window: a case
// at 23:59 and another at 00:01 are both allowed.
func Today(now time.Time) string {
	return now.UTC().Format(dateLayout)
}

// CasesRemaining reports how many cases the user may still open today. A nil
// stats record or a stale last_case_date means the user is fresh.
func CasesRemaining(stats *models.UserStats, now time.Time) int {
	if stats == nil || stats.LastCaseDate == nil || *stats.LastCaseDate != Today(now) {
		return DailyCaseLimit
	}
	remaining := DailyCaseLimit - stats.DailyCasesUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NextReset is the start of the next UTC calendar day.
func NextReset(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// Consume spends one case, mutating stats in place. Returns
// ErrQuotaExhausted when the user already used today's allowance; the caller
// persists the updated usage fields on success.
func Consume(stats *models.UserStats, now time.Time) error {
	today := Today(now)
	if stats.LastCaseDate != nil && *stats.LastCaseDate == today {
		if stats.DailyCasesUsed >= DailyCaseLimit {
			return ErrQuotaExhausted
		}
		stats.DailyCasesUsed++
		return nil
	}
	stats.DailyCasesUsed = 1
	stats.LastCaseDate = &today
	return nil
}
