package services

import (
	"context"
	"errors"
	"testing"

	"aquarium-service/internal/models"
	"aquarium-service/internal/repository"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	lookupErr error
	created   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	f.users[user.Email] = user
	f.created++
	return nil
}

func (f *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) CheckPasswordHash(password, hash string) bool {
	return password == hash
}

type fakeSessionRepo struct {
	sessions map[string]*models.UserSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.UserSession)}
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, session *models.UserSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) GetSession(ctx context.Context, sessionID string) (*models.UserSession, error) {
	if s, ok := f.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, errors.New("session not found")
}

func (f *fakeSessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessionRepo) GetUserSessions(ctx context.Context, userID string) ([]*models.UserSession, error) {
	var out []*models.UserSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func newTestUserService(userRepo *fakeUserRepo, statsRepo *fakeStatsRepo, sessionRepo *fakeSessionRepo) IUserService {
	return NewUserService(
		userRepo,
		statsRepo,
		NewSessionService(sessionRepo),
		NewJWTService("test-secret"),
	)
}

func TestRegisterNewUser_NormalizesEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	statsRepo := newFakeStatsRepo()
	sessionRepo := newFakeSessionRepo()
	service := newTestUserService(userRepo, statsRepo, sessionRepo)

	user, token, err := service.RegisterNewUser("Bob@Example.COM", "secret-pass", "test-device", "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)
	assert.NotEmpty(t, token)
	assert.NotNil(t, statsRepo.stats[user.ID], "stats row created at registration")
	assert.Len(t, sessionRepo.sessions, 1, "registration opens a session")
}

func TestRegisterNewUser_MixedCaseDuplicateRejected(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["bob@example.com"] = &models.User{ID: "u1", Email: "bob@example.com"}
	service := newTestUserService(userRepo, newFakeStatsRepo(), newFakeSessionRepo())

	_, _, err := service.RegisterNewUser("Bob@Example.COM", "secret-pass", "test-device", "127.0.0.1")
	assert.ErrorContains(t, err, "already registered")
	assert.Equal(t, 0, userRepo.created)
}

func TestRegisterNewUser_LookupFailurePropagates(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.lookupErr = errors.New("connection reset")
	service := newTestUserService(userRepo, newFakeStatsRepo(), newFakeSessionRepo())

	_, _, err := service.RegisterNewUser("bob@example.com", "secret-pass", "test-device", "127.0.0.1")
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, 0, userRepo.created, "storage failure must not fall through to create")
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["bob@example.com"] = &models.User{ID: "u1", Email: "bob@example.com", PasswordHash: "right-pass"}
	service := newTestUserService(userRepo, newFakeStatsRepo(), newFakeSessionRepo())

	_, _, _, err := service.Login("bob@example.com", "wrong-pass", "test-device", "127.0.0.1")
	assert.ErrorContains(t, err, "invalid password")
}
