package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/server/api"
	"droscher.com/Vinlogg/pkg/storage"
)

const (
	msgImageInvalid    = "Bilden kunde inte läsas"
	msgImageTooLarge   = "Bilden är för stor"
	msgImageSaveFailed = "Kunde inte spara bilden"
)

type ImageServer struct {
	store  storage.ImageStore
	logger *zap.Logger
}

func NewImageServer(store storage.ImageStore, logger *zap.Logger) *ImageServer {
	return &ImageServer{store: store, logger: logger}
}

// UploadImage stores a label photo for the caller and returns its public URL.
func (i *ImageServer) UploadImage(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request api.ImageRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(i.logger, r, err)
		writeError(w, http.StatusBadRequest, msgImageMissing)

		return
	}

	url, err := i.store.SaveImage(r.Context(), user.UUID, request.Image)

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"url": url})
	case errors.Is(err, storage.ErrInvalidImage):
		writeError(w, http.StatusBadRequest, msgImageInvalid)
	case errors.Is(err, storage.ErrImageTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
	default:
		i.logger.Error("error storing image", zap.Stringer("user", user.UUID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgImageSaveFailed)
	}
}
