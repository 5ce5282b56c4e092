package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserStats tracks the per-user collection totals and daily case usage.
// LastCaseDate holds a UTC calendar date in "2006-01-02" form; nil means the
// user has never opened a case.
type UserStats struct {
	UserID         string  `json:"user_id" db:"user_id"`
	TotalPoints    int     `json:"total_points" db:"total_points"`
	TotalFish      int     `json:"total_fish" db:"total_fish"`
	DailyCasesUsed int     `json:"daily_cases_used" db:"daily_cases_used"`
	LastCaseDate   *string `json:"last_case_date" db:"last_case_date"`
}
