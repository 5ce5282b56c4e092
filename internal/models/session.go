package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserSession struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TokenHash  string    `json:"token_hash"`
	DeviceInfo string    `json:"device_info"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsActive   bool      `json:"is_active"`
}

type Claims struct {
	jwt.RegisteredClaims
	Id     string `json:"claim_id"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
