package api

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type FlavorProfile struct {
	Body      int `json:"body"`
	Acidity   int `json:"acidity"`
	Tannins   int `json:"tannins"`
	Sweetness int `json:"sweetness"`
}

type Wine struct {
	ID                 uint           `json:"id"`
	Name               string         `json:"name"`
	Producer           *string        `json:"producer"`
	Vintage            *int           `json:"vintage"`
	Region             *string        `json:"region"`
	Grapes             []string       `json:"grapes"`
	ArticleNumber      *string        `json:"article_number"`
	Price              *float64       `json:"price"`
	FoodPairingTags    []string       `json:"food_pairing_tags"`
	URLToSystembolaget *string        `json:"url_to_systembolaget"`
	ImageURL           *string        `json:"image_url"`
	Description        *string        `json:"description"`
	ServingTemperature *string        `json:"serving_temperature"`
	StoragePotential   *string        `json:"storage_potential"`
	FlavorProfile      *FlavorProfile `json:"flavor_profile"`
	Source             string         `json:"source"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type WineLog struct {
	ID           uint      `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	WineID       *uint     `json:"wine_id"`
	UserImageURL *string   `json:"user_image_url"`
	Rating       *int      `json:"rating"`
	LocationName *string   `json:"location_name"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Date         string    `json:"date"`
	Notes        *string   `json:"notes"`
	Companions   *string   `json:"companions"`
	Occasion     *string   `json:"occasion"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Wine         *Wine     `json:"wine,omitempty"`
}

type CellarItem struct {
	ID       uint      `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	WineID   uint      `json:"wine_id"`
	Quantity int64     `json:"quantity"`
	Notes    *string   `json:"notes"`
	AddedAt  time.Time `json:"added_at"`
	Wine     *Wine     `json:"wine,omitempty"`
}

type PartnerLink struct {
	ID            uint       `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	PartnerEmail  string     `json:"partner_email"`
	PartnerUserID *uuid.UUID `json:"partner_user_id"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Stats struct {
	LogCount      uint64  `json:"log_count"`
	UniqueWines   uint64  `json:"unique_wines"`
	AverageRating float64 `json:"average_rating"`
	TopRegion     *string `json:"top_region"`
	CellarBottles uint64  `json:"cellar_bottles"`
}

// Request bodies.

type CreateLogRequest struct {
	WineID       *uint    `json:"wine_id"`
	UserImageURL *string  `json:"user_image_url"`
	Rating       *int     `json:"rating"        validate:"omitempty,min=1,max=5"`
	LocationName *string  `json:"location_name"`
	Latitude     *float64 `json:"latitude"      validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude"     validate:"omitempty,longitude"`
	Date         string   `json:"date"          validate:"omitempty,datetime=2006-01-02"`
	Notes        *string  `json:"notes"`
	Companions   *string  `json:"companions"`
	Occasion     *string  `json:"occasion"`
}

type CreateWineRequest struct {
	Name               string         `json:"name"                 validate:"required"`
	Producer           *string        `json:"producer"`
	Vintage            *int           `json:"vintage"              validate:"omitempty,min=1800,max=2100"`
	Region             *string        `json:"region"`
	Grapes             []string       `json:"grapes"`
	ArticleNumber      *string        `json:"article_number"`
	Price              *float64       `json:"price"                validate:"omitempty,min=0"`
	FoodPairingTags    []string       `json:"food_pairing_tags"`
	URLToSystembolaget *string        `json:"url_to_systembolaget"`
	ImageURL           *string        `json:"image_url"`
	Description        *string        `json:"description"`
	ServingTemperature *string        `json:"serving_temperature"`
	StoragePotential   *string        `json:"storage_potential"`
	FlavorProfile      *FlavorProfile `json:"flavor_profile"`
}

type AddCellarRequest struct {
	WineID   uint    `json:"wine_id"  validate:"required"`
	Quantity *int64  `json:"quantity" validate:"omitempty,min=1"`
	Notes    *string `json:"notes"`
}

type UpdateCellarRequest struct {
	ID       uint    `json:"id"       validate:"required"`
	Quantity *int64  `json:"quantity"`
	Notes    *string `json:"notes"`
}

type InviteRequest struct {
	Email string `json:"email" validate:"required"`
}

type DeletePartnerRequest struct {
	PartnerID uint `json:"partnerId" validate:"required"`
}

type ImageRequest struct {
	Image string `json:"image" validate:"required"`
}

type FoodRequest struct {
	Food string `json:"food" validate:"required"`
}
