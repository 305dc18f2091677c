package server

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/repository"
	"droscher.com/Vinlogg/pkg/server/api"
)

const (
	msgLogsFailed      = "Kunde inte hämta viner"
	msgLogSaveFailed   = "Kunde inte spara vinet"
	msgLogIDMissing    = "Inget log-ID angavs"
	msgLogDeleteFailed = "Kunde inte radera vinet"
	msgLogNotFound     = "Loggen hittades inte"
	msgStatsFailed     = "Kunde inte hämta statistik"
)

type LogServer struct {
	logRepository     repository.LogRepository
	partnerRepository repository.PartnerRepository
	logger            *zap.Logger
	now               func() time.Time
}

func NewLogServer(logRepo repository.LogRepository, partnerRepo repository.PartnerRepository, logger *zap.Logger) *LogServer {
	return &LogServer{logRepository: logRepo, partnerRepository: partnerRepo, logger: logger, now: time.Now}
}

// GetLogs lists the caller's logs together with those of accepted partners.
func (s *LogServer) GetLogs(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	links, err := s.partnerRepository.GetAcceptedPartnerLinks(r.Context(), user.UUID)
	if err != nil {
		s.logger.Warn("error getting partners, showing own logs only", zap.Error(err))
	}

	logs, err := s.logRepository.GetLogsForUsers(r.Context(), model.VisibleUserIDs(user.UUID, links))
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgLogsFailed)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"logs": api.LogsFromModel(logs)})
}

func (s *LogServer) AddLog(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request api.CreateLogRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(s.logger, r, err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)

		return
	}

	log, err := s.logRepository.AddLog(r.Context(), api.LogToModel(request, *user, s.now()))
	if err != nil {
		s.logger.Error("error saving log", zap.Stringer("user", user.UUID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgLogSaveFailed)

		return
	}

	fullLog, err := s.logRepository.GetLogByID(r.Context(), log.ID)
	if err != nil {
		s.logger.Error("error loading log after saving", zap.Uint("id", log.ID), zap.Error(err))

		fullLog = log
	}

	writeJSON(w, http.StatusOK, map[string]any{"log": api.LogFromModel(fullLog)})
}

func (s *LogServer) DeleteLog(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	logID, found := queryID(r, "id")
	if !found {
		writeError(w, http.StatusBadRequest, msgLogIDMissing)

		return
	}

	if err := s.logRepository.DeleteLog(r.Context(), user.UUID, logID); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			writeError(w, http.StatusNotFound, msgLogNotFound)

			return
		}

		s.logger.Error("error deleting log", zap.Uint("id", logID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgLogDeleteFailed)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "deletedId": logID})
}

// GetStats summarises the caller's own tasting history.
func (s *LogServer) GetStats(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := s.logRepository.GetLogStats(r.Context(), user.UUID)
	if err != nil {
		s.logger.Error("error getting stats", zap.Stringer("user", user.UUID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgStatsFailed)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"stats": api.StatsFromModel(stats)})
}
