package services

import (
	"context"
	"fmt"
	"time"

	"aquarium-service/internal/models"
	"aquarium-service/internal/repository"

	"github.com/google/uuid"
)

// SessionService provides business logic for session management
type SessionService struct {
	sessionRepo repository.SessionRepository
}

func NewSessionService(sessionRepo repository.SessionRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
	}
}

// CreateSession creates a new user session
func (s *SessionService) CreateSession(ctx context.Context, userID, tokenHash, deviceInfo, ipAddress string) (*models.UserSession, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash cannot be empty")
	}

	session := &models.UserSession{
		ID:         uuid.New().String(),
		UserID:     userID,
		TokenHash:  tokenHash,
		DeviceInfo: deviceInfo,
		IPAddress:  ipAddress,
		CreatedAt:  time.Now(),
		IsActive:   true,
	}

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetUserSessions retrieves all active sessions for a user
func (s *SessionService) GetUserSessions(ctx context.Context, userID string) ([]*models.UserSession, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}

	return s.sessionRepo.GetUserSessions(ctx, userID)
}

// InvalidateSession marks a session as inactive and removes it
func (s *SessionService) InvalidateSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}

	return s.sessionRepo.DeleteSession(ctx, sessionID)
}
