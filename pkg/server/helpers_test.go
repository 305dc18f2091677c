package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/Vinlogg/pkg/auth"
	"droscher.com/Vinlogg/pkg/model"
)

var (
	anna  = uuid.MustParse("0b7d6f36-3c55-4f11-9c4d-5bb1a3f4b001")
	bjorn = uuid.MustParse("0b7d6f36-3c55-4f11-9c4d-5bb1a3f4b002")

	annaUser = &model.User{Model: gorm.Model{ID: 1}, UUID: anna, Email: "anna@example.com"}
)

func newRequest(method string, target string, body string, user *model.User) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	if user != nil {
		request = request.WithContext(auth.WithUser(request.Context(), user))
	}

	return request
}

func decodeBody(recorder *httptest.ResponseRecorder) map[string]any {
	var body map[string]any

	_ = json.Unmarshal(recorder.Body.Bytes(), &body)

	return body
}
