package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Vinlogg/pkg/model"
)

var ErrWineNotFound = errors.New("wine not found")

type WineRepository interface {
	FindOrCreateWine(ctx context.Context, wine model.Wine) (*model.Wine, error)
	GetWineByArticleNumber(ctx context.Context, articleNumber string) (*model.Wine, error)
	GetWineByID(ctx context.Context, wineID uint) (*model.Wine, error)
}

// FindOrCreateWine deduplicates by article number when one is present and by
// name and producer otherwise.
func (r *Repository) FindOrCreateWine(ctx context.Context, wine model.Wine) (*model.Wine, error) {
	if wine.ArticleNumber != nil && *wine.ArticleNumber != "" {
		return r.addWineByArticleNumber(ctx, wine)
	}

	existing, err := r.findWineByNameAndProducer(ctx, wine.Name, wine.Producer)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrWineNotFound) {
		return nil, err
	}

	if result := r.DB.WithContext(ctx).Create(&wine); result.Error != nil {
		return nil, result.Error
	}

	return &wine, nil
}

func (r *Repository) addWineByArticleNumber(ctx context.Context, wine model.Wine) (*model.Wine, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "article_number"}},
		DoNothing: true,
	}).Create(&wine)
	if result.Error != nil {
		return nil, result.Error
	}

	if wine.ID == 0 {
		return r.GetWineByArticleNumber(ctx, *wine.ArticleNumber)
	}

	return &wine, nil
}

func (r *Repository) findWineByNameAndProducer(ctx context.Context, name string, producer *string) (*model.Wine, error) {
	var wine model.Wine

	query := r.DB.WithContext(ctx).Where("lower(name) = lower(?)", name)
	if producer != nil && *producer != "" {
		query = query.Where("lower(producer) = lower(?)", *producer)
	} else {
		query = query.Where("(producer IS NULL OR producer = '')")
	}

	if result := query.First(&wine); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrWineNotFound
		}

		return nil, result.Error
	}

	return &wine, nil
}

func (r *Repository) GetWineByArticleNumber(ctx context.Context, articleNumber string) (*model.Wine, error) {
	var wine model.Wine

	result := r.DB.WithContext(ctx).Where("article_number = ?", articleNumber).First(&wine)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrWineNotFound
		}

		return nil, result.Error
	}

	return &wine, nil
}

func (r *Repository) GetWineByID(ctx context.Context, wineID uint) (*model.Wine, error) {
	var wine model.Wine

	if result := r.DB.WithContext(ctx).First(&wine, wineID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrWineNotFound
		}

		return nil, result.Error
	}

	return &wine, nil
}
