package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Vinlogg/pkg/model"
)

var ErrLogNotFound = errors.New("log not found")

type LogRepository interface {
	AddLog(ctx context.Context, log model.WineLog) (*model.WineLog, error)
	DeleteLog(ctx context.Context, userID uuid.UUID, logID uint) error
	FindLogsByFoodTags(ctx context.Context, userID uuid.UUID, tags []string) ([]*model.WineLog, error)
	GetLogByID(ctx context.Context, logID uint) (*model.WineLog, error)
	GetLogStats(ctx context.Context, userID uuid.UUID) (*model.LogStats, error)
	GetLogsForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*model.WineLog, error)
}

func (r *Repository) GetLogsForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*model.WineLog, error) {
	var logs []*model.WineLog

	result := r.DB.WithContext(ctx).
		Joins("Wine").
		Where("logs.user_id IN ?", uuidStrings(userIDs)).
		Order("logs.date desc, logs.id desc").
		Find(&logs)
	if result.Error != nil {
		r.Logger.Error("error getting logs", zap.Int("users", len(userIDs)), zap.Error(result.Error))

		return nil, result.Error
	}

	return logs, nil
}

func (r *Repository) GetLogByID(ctx context.Context, logID uint) (*model.WineLog, error) {
	var log model.WineLog

	if result := r.DB.WithContext(ctx).Joins("Wine").First(&log, logID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}

		return nil, result.Error
	}

	return &log, nil
}

func (r *Repository) AddLog(ctx context.Context, log model.WineLog) (*model.WineLog, error) {
	if result := r.DB.WithContext(ctx).Omit("Wine").Create(&log); result.Error != nil {
		return nil, result.Error
	}

	return &log, nil
}

// DeleteLog only removes rows owned by userID.
func (r *Repository) DeleteLog(ctx context.Context, userID uuid.UUID, logID uint) error {
	result := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.WineLog{}, logID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}

	return nil
}

// FindLogsByFoodTags returns the caller's logs whose wine shares at least one pairing tag.
func (r *Repository) FindLogsByFoodTags(ctx context.Context, userID uuid.UUID, tags []string) ([]*model.WineLog, error) {
	var logs []*model.WineLog

	result := r.DB.WithContext(ctx).
		Joins("Wine").
		Where("logs.user_id = ?", userID).
		Where(`"Wine".food_pairing_tags && ?`, pq.StringArray(tags)).
		Order("logs.date desc, logs.id desc").
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}

func (r *Repository) GetLogStats(ctx context.Context, userID uuid.UUID) (*model.LogStats, error) {
	var stats model.LogStats

	result := r.DB.WithContext(ctx).Table("logs as l").
		Select("count(*) as log_count, "+
			"count(distinct l.wine_id) as unique_wines, "+
			"coalesce(avg(l.rating), 0) as average_rating").
		Where("l.user_id = ?", userID).
		Where("l.deleted_at is null").
		Scan(&stats)
	if result.Error != nil {
		return nil, result.Error
	}

	var topRegion []string

	result = r.DB.WithContext(ctx).Table("logs as l").
		Joins("INNER JOIN wines w on w.id = l.wine_id").
		Where("l.user_id = ?", userID).
		Where("l.deleted_at is null").
		Where("w.region is not null").
		Group("w.region").
		Order("count(*) desc").
		Limit(1).
		Pluck("w.region", &topRegion)
	if result.Error != nil {
		return nil, result.Error
	}

	if len(topRegion) > 0 {
		stats.TopRegion = topRegion[0]
	}

	result = r.DB.WithContext(ctx).Table("cellar").
		Select("coalesce(sum(quantity), 0)").
		Where("user_id = ?", userID).
		Where("deleted_at is null").
		Scan(&stats.CellarBottles)
	if result.Error != nil {
		return nil, result.Error
	}

	return &stats, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	return values
}
