package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/Vinlogg/pkg/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	AddUser(ctx context.Context, id uuid.UUID, email string) (*model.User, error)
	GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserEmail(ctx context.Context, id uuid.UUID, email string) error
}

func (r *Repository) GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("uuid = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("email = ?", model.NormalizeEmail(email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) AddUser(ctx context.Context, id uuid.UUID, email string) (*model.User, error) {
	user := model.User{
		UUID:  id,
		Email: model.NormalizeEmail(email),
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) UpdateUserEmail(ctx context.Context, id uuid.UUID, email string) error {
	result := r.DB.WithContext(ctx).Model(&model.User{}).Where("uuid = ?", id).Update("email", model.NormalizeEmail(email))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
