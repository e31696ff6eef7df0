package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// GormUserRepository implements user.Repository using GORM
type GormUserRepository struct {
	db  *gorm.DB
	uow *GormUnitOfWork
}

// FindByUsername retrieves a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var model UserModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("user", username)
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", model.ID, err)
	}
	return &user.User{
		ID:           id,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		Role:         user.Role(model.Role),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

// UsernameExists reports whether the username is taken
func (r *GormUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}

// Add stages an insert
func (r *GormUserRepository) Add(u *user.User) {
	model := &UserModel{
		ID:           u.ID.String(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	r.uow.stage(func(tx *gorm.DB) (int64, error) {
		result := tx.Create(model)
		return result.RowsAffected, result.Error
	})
}
