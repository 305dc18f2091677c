package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Vinlogg/pkg/model"
)

var ErrPartnerNotFound = errors.New("partner link not found")

type PartnerRepository interface {
	AddPartnerLink(ctx context.Context, link model.PartnerLink) (*model.PartnerLink, error)
	DeletePartnerLink(ctx context.Context, userID uuid.UUID, linkID uint) error
	FindInvite(ctx context.Context, userID uuid.UUID, email string) (*model.PartnerLink, error)
	GetAcceptedPartnerLinks(ctx context.Context, userID uuid.UUID) ([]*model.PartnerLink, error)
	GetPendingInvitesForEmail(ctx context.Context, email string) ([]*model.PartnerLink, error)
	LinkPendingInvites(ctx context.Context, email string, userID uuid.UUID) ([]*model.PartnerLink, error)
}

// GetAcceptedPartnerLinks returns accepted links in both directions.
func (r *Repository) GetAcceptedPartnerLinks(ctx context.Context, userID uuid.UUID) ([]*model.PartnerLink, error) {
	var links []*model.PartnerLink

	result := r.DB.WithContext(ctx).
		Where("(user_id = ? OR partner_user_id = ?)", userID, userID).
		Where("status = ?", model.PartnerAccepted).
		Order("created_at").
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

func (r *Repository) GetPendingInvitesForEmail(ctx context.Context, email string) ([]*model.PartnerLink, error) {
	var links []*model.PartnerLink

	result := r.DB.WithContext(ctx).
		Where("partner_email = ? AND status = ?", model.NormalizeEmail(email), model.PartnerPending).
		Order("created_at").
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

func (r *Repository) FindInvite(ctx context.Context, userID uuid.UUID, email string) (*model.PartnerLink, error) {
	var link model.PartnerLink

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND partner_email = ?", userID, model.NormalizeEmail(email)).
		First(&link)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}

		return nil, result.Error
	}

	return &link, nil
}

func (r *Repository) AddPartnerLink(ctx context.Context, link model.PartnerLink) (*model.PartnerLink, error) {
	link.PartnerEmail = model.NormalizeEmail(link.PartnerEmail)

	if result := r.DB.WithContext(ctx).Create(&link); result.Error != nil {
		return nil, result.Error
	}

	return &link, nil
}

// DeletePartnerLink removes a link the caller created.
func (r *Repository) DeletePartnerLink(ctx context.Context, userID uuid.UUID, linkID uint) error {
	result := r.DB.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(&model.PartnerLink{}, linkID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPartnerNotFound
	}

	return nil
}

// LinkPendingInvites accepts every pending invite addressed to email on behalf of userID.
func (r *Repository) LinkPendingInvites(ctx context.Context, email string, userID uuid.UUID) ([]*model.PartnerLink, error) {
	var links []*model.PartnerLink

	result := r.DB.WithContext(ctx).Model(&links).
		Clauses(clause.Returning{}).
		Where("partner_email = ? AND status = ?", model.NormalizeEmail(email), model.PartnerPending).
		Updates(map[string]any{
			"partner_user_id": userID,
			"status":          model.PartnerAccepted,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}
