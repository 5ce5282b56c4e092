package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"aquarium-service/internal/models"
	"aquarium-service/internal/repository"

	"github.com/google/uuid"
)

type IUserService interface {
	RegisterNewUser(email, password, deviceInfo, ipAddress string) (*models.User, string, error)
	Login(email, password, deviceInfo, ipAddress string) (*models.User, *models.UserSession, string, error)
	GetUserByID(userID string) (*models.User, error)
}

type UserService struct {
	userRepo       repository.IUserRepository
	statsRepo      repository.IStatsRepository
	sessionService *SessionService
	jwtService     *JWTService
}

func NewUserService(userRepo repository.IUserRepository, statsRepo repository.IStatsRepository, sessionService *SessionService, jwtService *JWTService) IUserService {
	return &UserService{
		userRepo:       userRepo,
		statsRepo:      statsRepo,
		sessionService: sessionService,
		jwtService:     jwtService,
	}
}

// RegisterNewUser creates the user with a zeroed stats row, opens a session
// and returns a signed token so the client is logged in right after
// registration.
func (s *UserService) RegisterNewUser(email, password, deviceInfo, ipAddress string) (*models.User, string, error) {
	email = strings.ToLower(email)

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("error checking existing email: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("email already registered")
	}

	newUser := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: password, // hashed by the repository on insert
	}
	if err := s.userRepo.CreateUser(&newUser); err != nil {
		return nil, "", fmt.Errorf("error creating new user: %s", err)
	}

	if err := s.statsRepo.EnsureStats(newUser.ID); err != nil {
		log.Printf("error creating stats row for user %s: %s", newUser.ID, err)
		return nil, "", err
	}

	token, err := s.jwtService.GenerateNewToken(newUser.ID, newUser.Email)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %s", err)
	}

	if _, err := s.sessionService.CreateSession(context.Background(), newUser.ID, token, deviceInfo, ipAddress); err != nil {
		return nil, "", fmt.Errorf("error creating session: %s", err)
	}

	return &newUser, token, nil
}

func (s *UserService) Login(email, password, deviceInfo, ipAddress string) (*models.User, *models.UserSession, string, error) {
	user, err := s.userRepo.GetUserByEmail(strings.ToLower(email))
	if err != nil {
		log.Printf("user searching failed: %s \n", err)
		return nil, nil, "", fmt.Errorf("email or password incorrect")
	}

	if !s.userRepo.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, "", fmt.Errorf("invalid password")
	}

	token, err := s.jwtService.GenerateNewToken(user.ID, user.Email)
	if err != nil {
		return nil, nil, "", fmt.Errorf("error generating token: %s", err)
	}

	session, err := s.sessionService.CreateSession(context.Background(), user.ID, token, deviceInfo, ipAddress)
	if err != nil {
		return nil, nil, "", fmt.Errorf("error creating session: %s", err)
	}

	return user, session, token, nil
}

func (s *UserService) GetUserByID(userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(userID)
}
