package model

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartnerStatus string

const (
	PartnerPending  PartnerStatus = "pending"
	PartnerAccepted PartnerStatus = "accepted"
)

type PartnerLink struct {
	gorm.Model
	UserID        uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_partner_invite"`
	PartnerEmail  string     `gorm:"uniqueIndex:idx_partner_invite"`
	PartnerUserID *uuid.UUID `gorm:"type:uuid;index"`
	Status        PartnerStatus
}

func (PartnerLink) TableName() string {
	return "partners"
}

// VisibleUserIDs returns the caller followed by every accepted partner, without duplicates.
func VisibleUserIDs(me uuid.UUID, links []*PartnerLink) []uuid.UUID {
	ids := []uuid.UUID{me}
	seen := map[uuid.UUID]bool{me: true}

	add := func(id uuid.UUID) {
		if id != uuid.Nil && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, link := range links {
		if link.Status != PartnerAccepted {
			continue
		}

		add(link.UserID)

		if link.PartnerUserID != nil {
			add(*link.PartnerUserID)
		}
	}

	return ids
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
