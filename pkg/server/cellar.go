package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/repository"
	"droscher.com/Vinlogg/pkg/server/api"
)

const (
	msgCellarFailed       = "Kunde inte hämta hemmalager"
	msgCellarWineMissing  = "wine_id krävs"
	msgCellarIDMissing    = "id krävs"
	msgCellarUpdateFailed = "Kunde inte uppdatera"
	msgCellarAddFailed    = "Kunde inte lägga till"
	msgCellarDeleteFailed = "Kunde inte ta bort"
	msgCellarNotFound     = "Flaskan finns inte i hemmalagret"

	actionCreated = "created"
	actionUpdated = "updated"
)

type CellarServer struct {
	cellarRepository  repository.CellarRepository
	partnerRepository repository.PartnerRepository
	logger            *zap.Logger
}

func NewCellarServer(cellarRepo repository.CellarRepository, partnerRepo repository.PartnerRepository, logger *zap.Logger) *CellarServer {
	return &CellarServer{cellarRepository: cellarRepo, partnerRepository: partnerRepo, logger: logger}
}

// GetCellar lists bottles in stock for the caller and accepted partners.
func (c *CellarServer) GetCellar(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	links, err := c.partnerRepository.GetAcceptedPartnerLinks(r.Context(), user.UUID)
	if err != nil {
		c.logger.Warn("error getting partners, showing own cellar only", zap.Error(err))
	}

	items, err := c.cellarRepository.GetCellarForUsers(r.Context(), model.VisibleUserIDs(user.UUID, links))
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgCellarFailed)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"cellar": api.CellarItemsFromModel(items)})
}

// AddToCellar adds bottles of a wine, topping up the caller's existing row if there is one.
func (c *CellarServer) AddToCellar(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request api.AddCellarRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(c.logger, r, err)
		writeError(w, http.StatusBadRequest, msgCellarWineMissing)

		return
	}

	quantity := int64(1)
	if request.Quantity != nil {
		quantity = *request.Quantity
	}

	existing, err := c.cellarRepository.GetCellarItemForWine(r.Context(), user.UUID, request.WineID)

	switch {
	case err == nil:
		c.topUp(w, r, user, existing, quantity, request.Notes)
	case errors.Is(err, repository.ErrCellarItemNotFound):
		c.create(w, r, user, request.WineID, quantity, request.Notes)
	default:
		c.logger.Error("error looking up cellar item", zap.Uint("wine", request.WineID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgCellarAddFailed)
	}
}

func (c *CellarServer) topUp(w http.ResponseWriter, r *http.Request, user *model.User, existing *model.CellarItem, quantity int64, notes *string) {
	if err := c.cellarRepository.IncrementCellarItem(r.Context(), existing.ID, quantity, notes); err != nil {
		c.logger.Error("error updating cellar item", zap.Uint("id", existing.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgCellarUpdateFailed)

		return
	}

	item, err := c.cellarRepository.GetCellarItemByID(r.Context(), user.UUID, existing.ID)
	if err != nil {
		c.logger.Error("error loading cellar item after update", zap.Uint("id", existing.ID), zap.Error(err))

		existing.Quantity += quantity
		if notes != nil {
			existing.Notes = notes
		}

		item = existing
	}

	writeJSON(w, http.StatusOK, map[string]any{"item": api.CellarItemFromModel(item), "action": actionUpdated})
}

func (c *CellarServer) create(w http.ResponseWriter, r *http.Request, user *model.User, wineID uint, quantity int64, notes *string) {
	created, err := c.cellarRepository.AddCellarItem(r.Context(), model.CellarItem{
		UserID:   user.UUID,
		WineID:   wineID,
		Quantity: quantity,
		Notes:    notes,
	})
	if err != nil {
		c.logger.Error("error adding cellar item", zap.Uint("wine", wineID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgCellarAddFailed)

		return
	}

	item, err := c.cellarRepository.GetCellarItemByID(r.Context(), user.UUID, created.ID)
	if err != nil {
		c.logger.Error("error loading cellar item after saving", zap.Uint("id", created.ID), zap.Error(err))

		item = created
	}

	writeJSON(w, http.StatusOK, map[string]any{"item": api.CellarItemFromModel(item), "action": actionCreated})
}

// UpdateCellarItem sets quantity and notes. A quantity of zero or less removes the row.
func (c *CellarServer) UpdateCellarItem(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request api.UpdateCellarRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(c.logger, r, err)
		writeError(w, http.StatusBadRequest, msgCellarIDMissing)

		return
	}

	item, err := c.cellarRepository.GetCellarItemByID(r.Context(), user.UUID, request.ID)
	if err != nil {
		c.writeLookupError(w, request.ID, err, msgCellarUpdateFailed)

		return
	}

	if request.Quantity != nil {
		item.Quantity = max(0, *request.Quantity)
	}

	if request.Notes != nil {
		item.Notes = request.Notes
	}

	if item.Quantity == 0 {
		if err := c.cellarRepository.DeleteCellarItem(r.Context(), user.UUID, item.ID); err != nil {
			c.logger.Error("error removing empty cellar item", zap.Uint("id", item.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, msgCellarUpdateFailed)

			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"removed": true, "id": item.ID})

		return
	}

	updated, err := c.cellarRepository.UpdateCellarItem(r.Context(), item)
	if err != nil {
		c.logger.Error("error updating cellar item", zap.Uint("id", item.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgCellarUpdateFailed)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"item": api.CellarItemFromModel(updated)})
}

func (c *CellarServer) DeleteCellarItem(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	itemID, found := queryID(r, "id")
	if !found {
		writeError(w, http.StatusBadRequest, msgCellarIDMissing)

		return
	}

	if err := c.cellarRepository.DeleteCellarItem(r.Context(), user.UUID, itemID); err != nil {
		c.writeLookupError(w, itemID, err, msgCellarDeleteFailed)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (c *CellarServer) writeLookupError(w http.ResponseWriter, itemID uint, err error, message string) {
	if errors.Is(err, repository.ErrCellarItemNotFound) {
		writeError(w, http.StatusNotFound, msgCellarNotFound)

		return
	}

	c.logger.Error("error accessing cellar item", zap.Uint("id", itemID), zap.Error(err))
	writeError(w, http.StatusInternalServerError, message)
}
