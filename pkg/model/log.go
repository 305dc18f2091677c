package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WineLog struct {
	gorm.Model
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	WineID       *uint
	UserImageURL *string
	Rating       *int
	LocationName *string
	Latitude     *float64
	Longitude    *float64
	Date         time.Time `gorm:"type:date"`
	Notes        *string
	Companions   *string
	Occasion     *string

	Wine *Wine `gorm:"foreignKey:WineID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func (WineLog) TableName() string {
	return "logs"
}

type LogStats struct {
	LogCount      uint64
	UniqueWines   uint64
	AverageRating float64
	TopRegion     string
	CellarBottles uint64
}
