package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UUID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Email string    `gorm:"index"`
}
