package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/Vinlogg/mocks"
	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/server"
	"droscher.com/Vinlogg/pkg/sommelier"
)

type ScanTestSuite struct {
	suite.Suite
	analyzer     *mocks.LabelAnalyzer
	retailer     *mocks.Retailer
	wineRepo     *mocks.WineRepository
	service      *server.ScanServer
	observedLogs *observer.ObservedLogs
}

func TestScanTestSuite(t *testing.T) {
	suite.Run(t, new(ScanTestSuite))
}

func (suite *ScanTestSuite) SetupTest() {
	suite.analyzer = mocks.NewLabelAnalyzer(suite.T())
	suite.retailer = mocks.NewRetailer(suite.T())
	suite.wineRepo = mocks.NewWineRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewScanServer(suite.analyzer, suite.retailer, suite.wineRepo, zap.New(observedZapCore))
}

func barolo() *sommelier.LabelAnalysis {
	return &sommelier.LabelAnalysis{
		Name:            "Barolo Cannubi",
		Producer:        pointy.String("Marchesi di Barolo"),
		Vintage:         pointy.Int(2018),
		Region:          pointy.String("Piemonte, Italien"),
		Grapes:          []string{"Nebbiolo"},
		FoodPairingTags: []string{"Nöt", "Vilt"},
		Flavor:          &model.FlavorProfile{Body: 5, Acidity: 4, Tannins: 5, Sweetness: 1},
	}
}

func (suite *ScanTestSuite) scan(body string) (int, map[string]any) {
	recorder := httptest.NewRecorder()
	suite.service.ScanWine(recorder, newRequest(http.MethodPost, "/api/scan-wine", body, annaUser))

	return recorder.Code, decodeBody(recorder)
}

func (suite *ScanTestSuite) TestScanWine_RetailerHitIsStoredByArticleNumber() {
	product := &model.RetailerProduct{
		ArticleNumber:   "7415",
		Name:            "Marchesi di Barolo Barolo Cannubi",
		Price:           pointy.Float64(449),
		FoodPairingTags: []string{"Nöt", "Lamm", "Ost"},
		URL:             "https://www.systembolaget.se/produkt/vin/7415",
		Source:          "systembolaget",
	}

	suite.analyzer.EXPECT().AnalyzeLabel(mock.Anything, "aGVq").Return(barolo(), nil)
	suite.retailer.EXPECT().FindWine(mock.Anything, "Barolo Cannubi", pointy.String("Marchesi di Barolo")).Return(product, nil)
	suite.wineRepo.EXPECT().FindOrCreateWine(mock.Anything, mock.MatchedBy(func(wine model.Wine) bool {
		return wine.Name == "Marchesi di Barolo Barolo Cannubi" &&
			*wine.ArticleNumber == "7415" &&
			*wine.Producer == "Marchesi di Barolo" &&
			*wine.Vintage == 2018 &&
			wine.Source == model.WineSourceRetailer &&
			len(wine.FoodPairingTags) == 2 && wine.FoodPairingTags[1] == "Lamm" &&
			wine.Flavor.Body == 5
	})).Return(&model.Wine{Model: gorm.Model{ID: 11}, Name: "Marchesi di Barolo Barolo Cannubi", Source: model.WineSourceRetailer}, nil)

	status, body := suite.scan(`{"image": "aGVq"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal(true, body["success"])
	suite.Equal(true, body["foundOnSystembolaget"])
	suite.Equal(false, body["manualEntryRequired"])
	suite.Equal("7415", body["systembolagetProduct"].(map[string]any)["articleNumber"])
	suite.InDelta(11, body["wine"].(map[string]any)["id"], 0)
	suite.Equal("Barolo Cannubi", body["visionResult"].(map[string]any)["name"])
}

func (suite *ScanTestSuite) TestScanWine_RetailerMissStoresAIWine() {
	suite.analyzer.EXPECT().AnalyzeLabel(mock.Anything, "aGVq").Return(barolo(), nil)
	suite.retailer.EXPECT().FindWine(mock.Anything, "Barolo Cannubi", mock.Anything).Return(nil, nil)
	suite.wineRepo.EXPECT().FindOrCreateWine(mock.Anything, mock.MatchedBy(func(wine model.Wine) bool {
		return wine.ArticleNumber == nil &&
			wine.Source == model.WineSourceAI &&
			len(wine.FoodPairingTags) == 2 && wine.FoodPairingTags[1] == "Vilt"
	})).Return(&model.Wine{Model: gorm.Model{ID: 12}, Name: "Barolo Cannubi", Source: model.WineSourceAI}, nil)

	status, body := suite.scan(`{"image": "aGVq"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal(false, body["foundOnSystembolaget"])
	suite.Nil(body["systembolagetProduct"])
	suite.Equal("ai", body["wine"].(map[string]any)["source"])
}

func (suite *ScanTestSuite) TestScanWine_RetailerErrorPersistsNothing() {
	suite.analyzer.EXPECT().AnalyzeLabel(mock.Anything, "aGVq").Return(barolo(), nil)
	suite.retailer.EXPECT().FindWine(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	status, body := suite.scan(`{"image": "aGVq"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal(true, body["success"])
	suite.Equal(false, body["foundOnSystembolaget"])
	suite.Equal(false, body["manualEntryRequired"])
	suite.Nil(body["wine"])
	suite.Nil(body["systembolagetProduct"])
	suite.Equal("Barolo Cannubi", body["visionResult"].(map[string]any)["name"])
	suite.Equal(1, suite.observedLogs.FilterMessage("retailer search failed, returning label reading only").Len())
	suite.wineRepo.AssertNotCalled(suite.T(), "FindOrCreateWine", mock.Anything, mock.Anything)
}

func (suite *ScanTestSuite) TestScanWine_DatabaseErrorDegrades() {
	suite.analyzer.EXPECT().AnalyzeLabel(mock.Anything, "aGVq").Return(barolo(), nil)
	suite.retailer.EXPECT().FindWine(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	suite.wineRepo.EXPECT().FindOrCreateWine(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	status, body := suite.scan(`{"image": "aGVq"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal(true, body["success"])
	suite.Nil(body["wine"])
	suite.Equal("Barolo Cannubi", body["visionResult"].(map[string]any)["name"])
}

func (suite *ScanTestSuite) TestScanWine_UnnamedLabelNeedsManualEntry() {
	suite.analyzer.EXPECT().AnalyzeLabel(mock.Anything, "aGVq").Return(sommelier.UnknownLabel(), nil)

	status, body := suite.scan(`{"image": "aGVq"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal(true, body["manualEntryRequired"])
	suite.Nil(body["wine"])
	suite.Equal("Okänt vin", body["visionResult"].(map[string]any)["name"])
	suite.retailer.AssertNotCalled(suite.T(), "FindWine", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScanTestSuite) TestScanWine_UnparseableAnalysisNeedsManualEntry() {
	failure := &sommelier.EnrichmentFailure{Stage: sommelier.StageDecode, Raw: "jag vet inte", Err: errors.New("invalid character")}

	suite.analyzer.EXPECT().AnalyzeLabel(mock.Anything, "aGVq").Return(nil, failure)

	status, body := suite.scan(`{"image": "aGVq"}`)

	suite.Equal(http.StatusOK, status)
	suite.Equal(true, body["success"])
	suite.Equal(true, body["manualEntryRequired"])
	suite.Equal("Okänt vin", body["visionResult"].(map[string]any)["name"])
	suite.Equal(1, suite.observedLogs.FilterMessage("label analysis unusable, asking for manual entry").Len())
}

func (suite *ScanTestSuite) TestScanWine_VisionTransportErrorFails() {
	suite.analyzer.EXPECT().AnalyzeLabel(mock.Anything, "aGVq").Return(nil, sommelier.ErrModelUnavailable)

	status, body := suite.scan(`{"image": "aGVq"}`)

	suite.Equal(http.StatusInternalServerError, status)
	suite.Equal("Ett fel uppstod vid analys av bilden", body["error"])
}

func (suite *ScanTestSuite) TestScanWine_MissingImage() {
	status, body := suite.scan(`{}`)

	suite.Equal(http.StatusBadRequest, status)
	suite.Equal("Ingen bild skickades", body["error"])
}
