package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/repository"
	"droscher.com/Vinlogg/pkg/server/api"
)

const (
	msgFoodMissing    = "Ingen mat angiven"
	msgFoodUnmatched  = "Kunde inte matcha maten till några vin-kategorier"
	msgFoodNoWines    = "Inga viner i din källare matchar den maten"
	msgFoodFailed     = "Ett fel uppstod vid sökning"
	msgFoodWineFailed = "Kunde inte hämta viner"
)

type TagResolver interface {
	Resolve(ctx context.Context, food string) ([]string, error)
}

type FoodSearchServer struct {
	resolver      TagResolver
	logRepository repository.LogRepository
	logger        *zap.Logger
}

type FoodSearchResponse struct {
	Success bool           `json:"success"`
	Tags    []string       `json:"tags"`
	Wines   []*api.WineLog `json:"wines"`
	Message string         `json:"message,omitempty"`
}

func NewFoodSearchServer(resolver TagResolver, logRepo repository.LogRepository, logger *zap.Logger) *FoodSearchServer {
	return &FoodSearchServer{resolver: resolver, logRepository: logRepo, logger: logger}
}

// SearchFood finds the caller's logged wines that pair with a dish.
func (f *FoodSearchServer) SearchFood(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request api.FoodRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(f.logger, r, err)
		writeError(w, http.StatusBadRequest, msgFoodMissing)

		return
	}

	tags, err := f.resolver.Resolve(r.Context(), request.Food)
	if err != nil {
		f.logger.Error("error resolving food tags", zap.String("food", request.Food), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgFoodFailed)

		return
	}

	response := FoodSearchResponse{Success: true, Tags: tags, Wines: []*api.WineLog{}}

	if len(tags) == 0 {
		response.Tags = []string{}
		response.Message = msgFoodUnmatched
		writeJSON(w, http.StatusOK, response)

		return
	}

	logs, err := f.logRepository.FindLogsByFoodTags(r.Context(), user.UUID, tags)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgFoodWineFailed)

		return
	}

	if len(logs) == 0 {
		response.Message = msgFoodNoWines
	} else {
		response.Wines = api.LogsFromModel(logs)
	}

	writeJSON(w, http.StatusOK, response)
}
