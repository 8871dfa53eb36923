package auth

import (
	"context"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/domain/port/persistence"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
)

// Service validates credentials against the user store. It returns the
// account so the transport layer can issue whatever token it likes; the
// core neither creates nor parses tokens.
type Service struct {
	users  persistence.UserRepository
	logger coreport.Logger
}

var _ usecase.AuthUseCase = (*Service)(nil)

// NewService creates the auth service
func NewService(users persistence.UserRepository, logger coreport.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// Login checks the username/password pair. Credentials are compared as
// stored; hashing is out of scope here. Unknown users and wrong passwords
// are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errs.IsNotFoundError(err) {
			s.logger.Warn("Login attempt for unknown user", map[string]any{
				"username": username,
			})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		s.logger.Warn("Login attempt with wrong password", map[string]any{
			"username": username,
		})
		return nil, errs.ErrInvalidCredentials
	}

	s.logger.Info("User logged in", map[string]any{
		"username": user.Username,
		"role":     string(user.Role),
	})
	return user, nil
}
