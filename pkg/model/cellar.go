package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CellarItem struct {
	gorm.Model
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cellar_user_wine"`
	WineID   uint      `gorm:"uniqueIndex:idx_cellar_user_wine"`
	Quantity int64
	Notes    *string
	AddedAt  time.Time

	Wine Wine `gorm:"foreignKey:WineID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (CellarItem) TableName() string {
	return "cellar"
}
