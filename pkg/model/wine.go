package model

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type WineSource string

const (
	WineSourceRetailer WineSource = "retailer"
	WineSourceAI       WineSource = "ai"
	WineSourceManual   WineSource = "manual"
)

type Wine struct {
	gorm.Model
	Name               string  `gorm:"index:idx_wine_name_producer"`
	Producer           *string `gorm:"index:idx_wine_name_producer"`
	Vintage            *int
	Region             *string
	Grapes             pq.StringArray `gorm:"type:text[]"`
	ArticleNumber      *string        `gorm:"uniqueIndex"`
	Price              *float64
	FoodPairingTags    pq.StringArray `gorm:"type:text[]"`
	URLToSystembolaget *string
	ImageURL           *string
	Description        *string
	ServingTemperature *string
	StoragePotential   *string
	Flavor             FlavorProfile `gorm:"embedded;embeddedPrefix:flavor_"`
	Source             WineSource
}

// FlavorProfile holds 1-5 scores; zero means unknown.
type FlavorProfile struct {
	Body      int
	Acidity   int
	Tannins   int
	Sweetness int
}
