package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Vinlogg/pkg/model"
)

var ErrCellarItemNotFound = errors.New("cellar item not found")

type CellarRepository interface {
	AddCellarItem(ctx context.Context, item model.CellarItem) (*model.CellarItem, error)
	DeleteCellarItem(ctx context.Context, userID uuid.UUID, itemID uint) error
	GetCellarForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*model.CellarItem, error)
	GetCellarItemByID(ctx context.Context, userID uuid.UUID, itemID uint) (*model.CellarItem, error)
	GetCellarItemForWine(ctx context.Context, userID uuid.UUID, wineID uint) (*model.CellarItem, error)
	IncrementCellarItem(ctx context.Context, itemID uint, quantity int64, notes *string) error
	UpdateCellarItem(ctx context.Context, item *model.CellarItem) (*model.CellarItem, error)
}

func (r *Repository) GetCellarForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*model.CellarItem, error) {
	var items []*model.CellarItem

	result := r.DB.WithContext(ctx).
		Joins("Wine").
		Where("cellar.user_id IN ?", uuidStrings(userIDs)).
		Where("cellar.quantity > 0").
		Order("cellar.added_at desc").
		Find(&items)
	if result.Error != nil {
		r.Logger.Error("error getting cellar", zap.Int("users", len(userIDs)), zap.Error(result.Error))

		return nil, result.Error
	}

	return items, nil
}

func (r *Repository) GetCellarItemByID(ctx context.Context, userID uuid.UUID, itemID uint) (*model.CellarItem, error) {
	var item model.CellarItem

	result := r.DB.WithContext(ctx).
		Joins("Wine").
		Where("cellar.user_id = ?", userID).
		First(&item, itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCellarItemNotFound
		}

		return nil, result.Error
	}

	return &item, nil
}

func (r *Repository) GetCellarItemForWine(ctx context.Context, userID uuid.UUID, wineID uint) (*model.CellarItem, error) {
	var item model.CellarItem

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND wine_id = ?", userID, wineID).
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCellarItemNotFound
		}

		return nil, result.Error
	}

	return &item, nil
}

func (r *Repository) AddCellarItem(ctx context.Context, item model.CellarItem) (*model.CellarItem, error) {
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	if result := r.DB.WithContext(ctx).Omit("Wine").Create(&item); result.Error != nil {
		return nil, result.Error
	}

	return &item, nil
}

// IncrementCellarItem adds quantity in a single statement so concurrent adds do not lose bottles.
func (r *Repository) IncrementCellarItem(ctx context.Context, itemID uint, quantity int64, notes *string) error {
	updates := map[string]any{"quantity": gorm.Expr("quantity + ?", quantity)}
	if notes != nil {
		updates["notes"] = *notes
	}

	result := r.DB.WithContext(ctx).Model(&model.CellarItem{}).Where("id = ?", itemID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCellarItemNotFound
	}

	return nil
}

func (r *Repository) UpdateCellarItem(ctx context.Context, item *model.CellarItem) (*model.CellarItem, error) {
	if result := r.DB.WithContext(ctx).Omit("Wine").Save(item); result.Error != nil {
		return nil, result.Error
	}

	return item, nil
}

// DeleteCellarItem hard-deletes rows owned by userID so the (user, wine) pair can be added again.
func (r *Repository) DeleteCellarItem(ctx context.Context, userID uuid.UUID, itemID uint) error {
	result := r.DB.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(&model.CellarItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCellarItemNotFound
	}

	return nil
}
