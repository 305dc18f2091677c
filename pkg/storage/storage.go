package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/configs"
)

var (
	ErrInvalidImage  = errors.New("invalid image")
	ErrImageTooLarge = errors.New("image too large")
)

const publicPrefix = "/images/"

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

type ImageStore interface {
	SaveImage(ctx context.Context, owner uuid.UUID, image string) (string, error)
}

// FileStore keeps label photos on local disk under <directory>/<owner>/<id><ext>.
type FileStore struct {
	directory string
	publicURL string
	maxBytes  int64
	logger    *zap.Logger
}

func NewFileStore(conf *configs.Config, logger *zap.Logger) *FileStore {
	return &FileStore{
		directory: conf.Storage.Directory,
		publicURL: strings.TrimSuffix(conf.Server.PublicURL, "/"),
		maxBytes:  conf.Storage.MaxBytes,
		logger:    logger,
	}
}

// SaveImage stores a base64 image or data URL and returns its public URL.
func (s *FileStore) SaveImage(ctx context.Context, owner uuid.UUID, image string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, contentType, err := DecodeImage(image)
	if err != nil {
		return "", err
	}

	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(data))
	}

	name := filepath.Join(owner.String(), uuid.NewString()+extensions[contentType])

	if err := os.MkdirAll(filepath.Join(s.directory, owner.String()), 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(s.directory, name), data, 0o644); err != nil {
		return "", err
	}

	s.logger.Info("stored image", zap.String("name", name), zap.Int("bytes", len(data)))

	return s.publicURL + publicPrefix + filepath.ToSlash(name), nil
}

// Handler serves stored images read-only.
func (s *FileStore) Handler() http.Handler {
	return http.StripPrefix(publicPrefix, http.FileServer(http.Dir(s.directory)))
}

// DecodeImage accepts "data:<type>;base64,<payload>" or a bare base64 payload, which is assumed to be JPEG.
// Only the image types in extensions are accepted.
func DecodeImage(image string) ([]byte, string, error) {
	contentType := "image/jpeg"
	payload := strings.TrimSpace(image)

	if strings.HasPrefix(payload, "data:") {
		header, body, found := strings.Cut(payload, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, "", fmt.Errorf("%w: malformed data url", ErrInvalidImage)
		}

		contentType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		payload = body
	}

	if _, found := extensions[contentType]; !found {
		return nil, "", fmt.Errorf("%w: unsupported type %q", ErrInvalidImage, contentType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty", ErrInvalidImage)
	}

	return data, contentType, nil
}
