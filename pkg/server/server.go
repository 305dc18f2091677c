package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/auth"
	"droscher.com/Vinlogg/pkg/model"
)

var ErrInvalidInput = errors.New("bad request")

const (
	maxBodyBytes = 16 << 20

	msgUnauthenticated = "Du måste vara inloggad"
	msgInvalidBody     = "Ogiltig förfrågan"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return v
}

// decodeRequest reads a JSON body into target and validates it.
func decodeRequest(w http.ResponseWriter, r *http.Request, target any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

// requireUser returns the authenticated user or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	user, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgUnauthenticated)

		return nil, false
	}

	return user, true
}

func queryID(r *http.Request, name string) (uint, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, false
	}

	id, err := strconv.ParseUint(value, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func logValidation(logger *zap.Logger, r *http.Request, err error) {
	logger.Info("rejected request body", zap.String("path", r.URL.Path), zap.Error(err))
}
