package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

// ErrInvalidCredentials is returned for unknown users, wrong passwords,
// and deactivated accounts alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Store is the persistence contract for admin accounts.
type Store interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// Service authenticates administrators and tracks issued session tokens.
// Tokens are opaque and held in process; restarting the service signs
// everyone out.
type Service struct {
	store  Store
	logger *logger.Logger

	mu       sync.RWMutex
	sessions map[string]string // token -> username
}

// NewService creates a new admin service.
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		logger:   log,
		sessions: make(map[string]string),
	}
}

// Login verifies the credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (*models.AdminLoginResponse, error) {
	admin, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("look up admin: %w", err)
	}
	if admin == nil || !admin.Active {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = admin.Username
	s.mu.Unlock()

	s.logger.Info("admin_login", "Administrator logged in", "", map[string]interface{}{
		"username": admin.Username,
	})

	return &models.AdminLoginResponse{
		Token:    token,
		Username: admin.Username,
		FullName: admin.FullName,
		Role:     admin.Role,
	}, nil
}

// Verify reports whether a bearer token belongs to an active session.
func (s *Service) Verify(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[token]
	return ok
}

// Logout invalidates a session token.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
