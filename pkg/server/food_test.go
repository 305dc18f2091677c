package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/Vinlogg/mocks"
	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/server"
)

type FoodSearchTestSuite struct {
	suite.Suite
	resolver     *mocks.TagResolver
	logRepo      *mocks.LogRepository
	service      *server.FoodSearchServer
	observedLogs *observer.ObservedLogs
}

func TestFoodSearchTestSuite(t *testing.T) {
	suite.Run(t, new(FoodSearchTestSuite))
}

func (suite *FoodSearchTestSuite) SetupTest() {
	suite.resolver = mocks.NewTagResolver(suite.T())
	suite.logRepo = mocks.NewLogRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewFoodSearchServer(suite.resolver, suite.logRepo, zap.New(observedZapCore))
}

func (suite *FoodSearchTestSuite) search(body string) (int, map[string]any) {
	recorder := httptest.NewRecorder()
	suite.service.SearchFood(recorder, newRequest(http.MethodPost, "/api/search-food", body, annaUser))

	return recorder.Code, decodeBody(recorder)
}

func (suite *FoodSearchTestSuite) TestSearchFood_ReturnsMatchingLogs() {
	logs := []*model.WineLog{{
		Model:  gorm.Model{ID: 4},
		UserID: anna,
		Date:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Wine:   &model.Wine{Model: gorm.Model{ID: 8}, Name: "Sancerre", FoodPairingTags: []string{"Fisk", "Skaldjur"}},
	}}

	suite.resolver.EXPECT().Resolve(mock.Anything, "lax med dillsås").Return([]string{"Fisk"}, nil)
	suite.logRepo.EXPECT().FindLogsByFoodTags(mock.Anything, anna, []string{"Fisk"}).Return(logs, nil)

	status, body := suite.search(`{"food": "lax med dillsås"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal(true, body["success"])
	suite.Equal([]any{"Fisk"}, body["tags"])
	suite.NotContains(body, "message")
	suite.Require().Len(body["wines"], 1)
	suite.Equal("Sancerre", body["wines"].([]any)[0].(map[string]any)["wine"].(map[string]any)["name"])
}

func (suite *FoodSearchTestSuite) TestSearchFood_NoTags() {
	suite.resolver.EXPECT().Resolve(mock.Anything, "sten").Return([]string{}, nil)

	status, body := suite.search(`{"food": "sten"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal(map[string]any{
		"success": true,
		"tags":    []any{},
		"wines":   []any{},
		"message": "Kunde inte matcha maten till några vin-kategorier",
	}, body)
	suite.logRepo.AssertNotCalled(suite.T(), "FindLogsByFoodTags", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FoodSearchTestSuite) TestSearchFood_NoWines() {
	suite.resolver.EXPECT().Resolve(mock.Anything, "älgstek").Return([]string{"Vilt"}, nil)
	suite.logRepo.EXPECT().FindLogsByFoodTags(mock.Anything, anna, []string{"Vilt"}).Return(nil, nil)

	status, body := suite.search(`{"food": "älgstek"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal([]any{}, body["wines"])
	suite.Equal("Inga viner i din källare matchar den maten", body["message"])
}

func (suite *FoodSearchTestSuite) TestSearchFood_ResolverError() {
	suite.resolver.EXPECT().Resolve(mock.Anything, "tacos").Return(nil, errors.New("unavailable"))

	status, body := suite.search(`{"food": "tacos"}`)

	suite.Equal(http.StatusInternalServerError, status)
	suite.Equal("Ett fel uppstod vid sökning", body["error"])
}

func (suite *FoodSearchTestSuite) TestSearchFood_DatabaseError() {
	suite.resolver.EXPECT().Resolve(mock.Anything, "tacos").Return([]string{"Nöt"}, nil)
	suite.logRepo.EXPECT().FindLogsByFoodTags(mock.Anything, anna, []string{"Nöt"}).Return(nil, errors.New("boom"))

	status, body := suite.search(`{"food": "tacos"}`)

	suite.Equal(http.StatusInternalServerError, status)
	suite.Equal("Kunde inte hämta viner", body["error"])
}

func (suite *FoodSearchTestSuite) TestSearchFood_MissingFood() {
	status, body := suite.search(`{"food": ""}`)

	suite.Equal(http.StatusBadRequest, status)
	suite.Equal("Ingen mat angiven", body["error"])
}
