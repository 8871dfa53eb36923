package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/model"
)

// UserRepository implements user lookups using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) modelToEntity(m *model.User) *entity.User {
	return &entity.User{
		Username: m.Username,
		Password: m.Password,
		Role:     entity.Role(m.Role),
		Name:     m.Name,
		Address:  m.Address,
		PhoneNo:  m.PhoneNo,
	}
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		r.logger.Error("Failed to get user", map[string]any{
			"username": username,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&userModel), nil
}

// ListAll returns every user
func (r *UserRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	var models []model.User
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to list users", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, r.modelToEntity(&models[i]))
	}
	return users, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username: user.Username,
		Password: user.Password,
		Role:     string(user.Role),
		Name:     user.Name,
		Address:  user.Address,
		PhoneNo:  user.PhoneNo,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateEvent
		}
		r.logger.Error("Failed to create user", map[string]any{
			"username": user.Username,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}
