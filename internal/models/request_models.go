package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type GachaResult struct {
	Fish        Fish `json:"fish"`
	IsNew       bool `json:"is_new"`
	TotalPoints int  `json:"total_points"`
}

// GachaStatus reports how many cases the user may still open today.
// NextReset is the RFC 3339 start of the next UTC day, empty while the user
// is still fresh for today.
type GachaStatus struct {
	CasesRemaining int    `json:"cases_remaining"`
	NextReset      string `json:"next_reset,omitempty"`
}

type LeaderboardEntry struct {
	UserID      string `json:"user_id" db:"user_id"`
	Email       string `json:"email" db:"email"`
	TotalPoints int    `json:"total_points" db:"total_points"`
	TotalFish   int    `json:"total_fish" db:"total_fish"`
}

type UserStatsResponse struct {
	TotalPoints int `json:"total_points"`
	TotalFish   int `json:"total_fish"`
}
