package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/integrations"
	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/repository"
	"droscher.com/Vinlogg/pkg/server/api"
	"droscher.com/Vinlogg/pkg/sommelier"
)

const (
	msgImageMissing = "Ingen bild skickades"
	msgScanFailed   = "Ett fel uppstod vid analys av bilden"
)

type LabelAnalyzer interface {
	AnalyzeLabel(ctx context.Context, image string) (*sommelier.LabelAnalysis, error)
}

type ScanServer struct {
	analyzer       LabelAnalyzer
	retailer       integrations.Retailer
	wineRepository repository.WineRepository
	logger         *zap.Logger
}

type ScanResponse struct {
	Success              bool                     `json:"success"`
	VisionResult         *sommelier.LabelAnalysis `json:"visionResult"`
	SystembolagetProduct *model.RetailerProduct   `json:"systembolagetProduct"`
	Wine                 *api.Wine                `json:"wine"`
	FoundOnSystembolaget bool                     `json:"foundOnSystembolaget"`
	ManualEntryRequired  bool                     `json:"manualEntryRequired"`
}

func NewScanServer(analyzer LabelAnalyzer, retailer integrations.Retailer, wineRepo repository.WineRepository, logger *zap.Logger) *ScanServer {
	return &ScanServer{analyzer: analyzer, retailer: retailer, wineRepository: wineRepo, logger: logger}
}

// ScanWine reads a label photo, looks the wine up at the retailer and stores it.
// Only a failing vision call is an error; everything after it degrades.
func (s *ScanServer) ScanWine(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var request api.ImageRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(s.logger, r, err)
		writeError(w, http.StatusBadRequest, msgImageMissing)

		return
	}

	analysis, err := s.analyzer.AnalyzeLabel(r.Context(), request.Image)
	if err != nil {
		var failure *sommelier.EnrichmentFailure
		if !errors.As(err, &failure) {
			s.logger.Error("error analysing label", zap.Error(err))
			writeError(w, http.StatusInternalServerError, msgScanFailed)

			return
		}

		s.logger.Warn("label analysis unusable, asking for manual entry",
			zap.String("stage", string(failure.Stage)), zap.Error(failure.Err))

		analysis = sommelier.UnknownLabel()
	}

	response := ScanResponse{Success: true, VisionResult: analysis}

	if analysis.Unnamed {
		response.ManualEntryRequired = true
		writeJSON(w, http.StatusOK, response)

		return
	}

	product, err := s.retailer.FindWine(r.Context(), analysis.Name, analysis.Producer)
	if err != nil {
		s.logger.Warn("retailer search failed, returning label reading only", zap.String("name", analysis.Name), zap.Error(err))
		writeJSON(w, http.StatusOK, response)

		return
	}

	response.SystembolagetProduct = product
	response.FoundOnSystembolaget = product != nil

	wine, err := s.wineRepository.FindOrCreateWine(r.Context(), scannedWine(analysis, product))
	if err != nil {
		s.logger.Error("error saving scanned wine", zap.String("name", analysis.Name), zap.Error(err))
	} else {
		response.Wine = api.WineFromModel(wine)
	}

	writeJSON(w, http.StatusOK, response)
}

// scannedWine merges the label reading with the retailer match, the retailer winning on name and tags.
func scannedWine(analysis *sommelier.LabelAnalysis, product *model.RetailerProduct) model.Wine {
	wine := model.Wine{
		Name:               analysis.Name,
		Producer:           analysis.Producer,
		Vintage:            analysis.Vintage,
		Region:             analysis.Region,
		Grapes:             pq.StringArray(analysis.Grapes),
		FoodPairingTags:    pq.StringArray(analysis.FoodPairingTags),
		Description:        analysis.Description,
		ServingTemperature: analysis.ServingTemperature,
		StoragePotential:   analysis.StoragePotential,
		Source:             model.WineSourceAI,
	}

	if analysis.Flavor != nil {
		wine.Flavor = *analysis.Flavor
	}

	if product == nil {
		return wine
	}

	wine.Name = product.Name
	wine.ArticleNumber = &product.ArticleNumber
	wine.Price = product.Price
	wine.URLToSystembolaget = &product.URL
	wine.ImageURL = product.ImageURL
	wine.Source = model.WineSourceRetailer

	if tags := model.FilterFoodTags(product.FoodPairingTags); len(tags) > 0 {
		wine.FoodPairingTags = tags
	}

	return wine
}
