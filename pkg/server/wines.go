package server

import (
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/repository"
	"droscher.com/Vinlogg/pkg/server/api"
)

const (
	msgWineNameMissing = "Vinets namn krävs"
	msgWineSaveFailed  = "Kunde inte spara vinet"
)

type WineServer struct {
	wineRepository repository.WineRepository
	logger         *zap.Logger
}

func NewWineServer(wineRepo repository.WineRepository, logger *zap.Logger) *WineServer {
	return &WineServer{wineRepository: wineRepo, logger: logger}
}

// AddWine stores a manually entered wine, returning the existing row when it is already known.
func (s *WineServer) AddWine(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var request api.CreateWineRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(s.logger, r, err)
		writeError(w, http.StatusBadRequest, msgWineNameMissing)

		return
	}

	wine, err := s.wineRepository.FindOrCreateWine(r.Context(), api.WineToModel(request))
	if err != nil {
		s.logger.Error("error saving wine", zap.String("name", request.Name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgWineSaveFailed)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"wine": api.WineFromModel(wine)})
}
