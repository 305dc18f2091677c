package api

import (
	"time"

	"github.com/lib/pq"
	"go.openly.dev/pointy"

	"droscher.com/Vinlogg/pkg/model"
)

func WineFromModel(wine *model.Wine) *Wine {
	if wine == nil || wine.ID == 0 {
		return nil
	}

	apiWine := Wine{
		ID:                 wine.ID,
		Name:               wine.Name,
		Producer:           wine.Producer,
		Vintage:            wine.Vintage,
		Region:             wine.Region,
		Grapes:             nonNil(wine.Grapes),
		ArticleNumber:      wine.ArticleNumber,
		Price:              wine.Price,
		FoodPairingTags:    nonNil(wine.FoodPairingTags),
		URLToSystembolaget: wine.URLToSystembolaget,
		ImageURL:           wine.ImageURL,
		Description:        wine.Description,
		ServingTemperature: wine.ServingTemperature,
		StoragePotential:   wine.StoragePotential,
		Source:             string(wine.Source),
		CreatedAt:          wine.CreatedAt,
		UpdatedAt:          wine.UpdatedAt,
	}

	if wine.Flavor != (model.FlavorProfile{}) {
		apiWine.FlavorProfile = &FlavorProfile{
			Body:      wine.Flavor.Body,
			Acidity:   wine.Flavor.Acidity,
			Tannins:   wine.Flavor.Tannins,
			Sweetness: wine.Flavor.Sweetness,
		}
	}

	return &apiWine
}

func WineToModel(request CreateWineRequest) model.Wine {
	wine := model.Wine{
		Name:               request.Name,
		Producer:           request.Producer,
		Vintage:            request.Vintage,
		Region:             request.Region,
		Grapes:             pq.StringArray(nonNil(request.Grapes)),
		ArticleNumber:      request.ArticleNumber,
		Price:              request.Price,
		FoodPairingTags:    pq.StringArray(model.FilterFoodTags(request.FoodPairingTags)),
		URLToSystembolaget: request.URLToSystembolaget,
		ImageURL:           request.ImageURL,
		Description:        request.Description,
		ServingTemperature: request.ServingTemperature,
		StoragePotential:   request.StoragePotential,
		Source:             model.WineSourceManual,
	}

	if request.ArticleNumber != nil && *request.ArticleNumber == "" {
		wine.ArticleNumber = nil
	}

	if request.FlavorProfile != nil {
		wine.Flavor = model.FlavorProfile{
			Body:      request.FlavorProfile.Body,
			Acidity:   request.FlavorProfile.Acidity,
			Tannins:   request.FlavorProfile.Tannins,
			Sweetness: request.FlavorProfile.Sweetness,
		}
	}

	return wine
}

func LogsFromModel(logs []*model.WineLog) []*WineLog {
	apiLogs := make([]*WineLog, 0, len(logs))

	for _, log := range logs {
		apiLogs = append(apiLogs, LogFromModel(log))
	}

	return apiLogs
}

func LogFromModel(log *model.WineLog) *WineLog {
	return &WineLog{
		ID:           log.ID,
		UserID:       log.UserID,
		WineID:       log.WineID,
		UserImageURL: log.UserImageURL,
		Rating:       log.Rating,
		LocationName: log.LocationName,
		Latitude:     log.Latitude,
		Longitude:    log.Longitude,
		Date:         log.Date.Format(DateLayout),
		Notes:        log.Notes,
		Companions:   log.Companions,
		Occasion:     log.Occasion,
		CreatedAt:    log.CreatedAt,
		UpdatedAt:    log.UpdatedAt,
		Wine:         WineFromModel(log.Wine),
	}
}

// LogToModel builds a log owned by owner. An empty date means today.
func LogToModel(request CreateLogRequest, owner model.User, today time.Time) model.WineLog {
	date := truncateToDay(today)
	if request.Date != "" {
		if parsed, err := time.Parse(DateLayout, request.Date); err == nil {
			date = parsed
		}
	}

	return model.WineLog{
		UserID:       owner.UUID,
		WineID:       request.WineID,
		UserImageURL: request.UserImageURL,
		Rating:       request.Rating,
		LocationName: request.LocationName,
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		Date:         date,
		Notes:        request.Notes,
		Companions:   request.Companions,
		Occasion:     request.Occasion,
	}
}

func CellarItemsFromModel(items []*model.CellarItem) []*CellarItem {
	apiItems := make([]*CellarItem, 0, len(items))

	for _, item := range items {
		apiItems = append(apiItems, CellarItemFromModel(item))
	}

	return apiItems
}

func CellarItemFromModel(item *model.CellarItem) *CellarItem {
	return &CellarItem{
		ID:       item.ID,
		UserID:   item.UserID,
		WineID:   item.WineID,
		Quantity: item.Quantity,
		Notes:    item.Notes,
		AddedAt:  item.AddedAt,
		Wine:     WineFromModel(&item.Wine),
	}
}

func PartnerLinksFromModel(links []*model.PartnerLink) []*PartnerLink {
	apiLinks := make([]*PartnerLink, 0, len(links))

	for _, link := range links {
		apiLinks = append(apiLinks, PartnerLinkFromModel(link))
	}

	return apiLinks
}

func PartnerLinkFromModel(link *model.PartnerLink) *PartnerLink {
	return &PartnerLink{
		ID:            link.ID,
		UserID:        link.UserID,
		PartnerEmail:  link.PartnerEmail,
		PartnerUserID: link.PartnerUserID,
		Status:        string(link.Status),
		CreatedAt:     link.CreatedAt,
	}
}

func StatsFromModel(stats *model.LogStats) *Stats {
	apiStats := Stats{
		LogCount:      stats.LogCount,
		UniqueWines:   stats.UniqueWines,
		AverageRating: stats.AverageRating,
		CellarBottles: stats.CellarBottles,
	}

	if stats.TopRegion != "" {
		apiStats.TopRegion = pointy.String(stats.TopRegion)
	}

	return &apiStats
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
