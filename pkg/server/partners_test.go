package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/Vinlogg/mocks"
	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/repository"
	"droscher.com/Vinlogg/pkg/server"
)

type PartnerTestSuite struct {
	suite.Suite
	partnerRepo  *mocks.PartnerRepository
	userRepo     *mocks.UserRepository
	service      *server.PartnerServer
	observedLogs *observer.ObservedLogs
}

func TestPartnerTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerTestSuite))
}

func (suite *PartnerTestSuite) SetupTest() {
	suite.partnerRepo = mocks.NewPartnerRepository(suite.T())
	suite.userRepo = mocks.NewUserRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewPartnerServer(suite.partnerRepo, suite.userRepo, zap.New(observedZapCore))
}

func (suite *PartnerTestSuite) TestGetPartners() {
	accepted := []*model.PartnerLink{{Model: gorm.Model{ID: 1}, UserID: anna, PartnerEmail: "bjorn@example.com", PartnerUserID: &bjorn, Status: model.PartnerAccepted}}
	pending := []*model.PartnerLink{{Model: gorm.Model{ID: 2}, UserID: bjorn, PartnerEmail: "anna@example.com", Status: model.PartnerPending}}

	suite.partnerRepo.EXPECT().GetAcceptedPartnerLinks(mock.Anything, anna).Return(accepted, nil)
	suite.partnerRepo.EXPECT().GetPendingInvitesForEmail(mock.Anything, "anna@example.com").Return(pending, nil)

	recorder := httptest.NewRecorder()
	suite.service.GetPartners(recorder, newRequest(http.MethodGet, "/api/partners", "", annaUser))

	suite.Equal(http.StatusOK, recorder.Code)
	body := decodeBody(recorder)
	suite.Len(body["partners"], 1)
	suite.Len(body["pendingInvites"], 1)
	suite.Equal("accepted", body["partners"].([]any)[0].(map[string]any)["status"])
	suite.Equal("pending", body["pendingInvites"].([]any)[0].(map[string]any)["status"])
}

func (suite *PartnerTestSuite) TestGetPartners_DatabaseError() {
	suite.partnerRepo.EXPECT().GetAcceptedPartnerLinks(mock.Anything, anna).Return(nil, errors.New("boom"))

	recorder := httptest.NewRecorder()
	suite.service.GetPartners(recorder, newRequest(http.MethodGet, "/api/partners", "", annaUser))

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.Equal("Kunde inte hämta partners", decodeBody(recorder)["error"])
}

func (suite *PartnerTestSuite) TestInvite_MissingEmail() {
	for _, body := range []string{`{}`, `{"email": "   "}`, ``} {
		recorder := httptest.NewRecorder()
		suite.service.Invite(recorder, newRequest(http.MethodPost, "/api/partners", body, annaUser))

		suite.Equal(http.StatusBadRequest, recorder.Code, body)
		suite.Equal("E-post krävs", decodeBody(recorder)["error"], body)
	}
}

func (suite *PartnerTestSuite) TestInvite_Self() {
	recorder := httptest.NewRecorder()
	suite.service.Invite(recorder, newRequest(http.MethodPost, "/api/partners", `{"email": " Anna@Example.com "}`, annaUser))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("Du kan inte bjuda in dig själv", decodeBody(recorder)["error"])
}

func (suite *PartnerTestSuite) TestInvite_Duplicate() {
	suite.partnerRepo.EXPECT().FindInvite(mock.Anything, anna, "bjorn@example.com").
		Return(&model.PartnerLink{Model: gorm.Model{ID: 1}}, nil)

	recorder := httptest.NewRecorder()
	suite.service.Invite(recorder, newRequest(http.MethodPost, "/api/partners", `{"email": "Bjorn@example.com"}`, annaUser))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("Denna person är redan inbjuden", decodeBody(recorder)["error"])
}

func (suite *PartnerTestSuite) TestInvite_KnownUserIsAcceptedImmediately() {
	suite.partnerRepo.EXPECT().FindInvite(mock.Anything, anna, "bjorn@example.com").Return(nil, repository.ErrPartnerNotFound)
	suite.userRepo.EXPECT().GetUserFromEmail(mock.Anything, "bjorn@example.com").
		Return(&model.User{Model: gorm.Model{ID: 2}, UUID: bjorn, Email: "bjorn@example.com"}, nil)
	suite.partnerRepo.EXPECT().AddPartnerLink(mock.Anything, mock.MatchedBy(func(link model.PartnerLink) bool {
		return link.UserID == anna &&
			link.PartnerEmail == "bjorn@example.com" &&
			link.PartnerUserID != nil && *link.PartnerUserID == bjorn &&
			link.Status == model.PartnerAccepted
	})).RunAndReturn(func(_ context.Context, link model.PartnerLink) (*model.PartnerLink, error) {
		link.ID = 4

		return &link, nil
	})

	recorder := httptest.NewRecorder()
	suite.service.Invite(recorder, newRequest(http.MethodPost, "/api/partners", `{"email": "bjorn@example.com"}`, annaUser))

	suite.Equal(http.StatusOK, recorder.Code)
	body := decodeBody(recorder)
	suite.Equal("Partner tillagd! Ni delar nu vinkällare.", body["message"])
	suite.Equal(bjorn.String(), body["invite"].(map[string]any)["partner_user_id"])
}

func (suite *PartnerTestSuite) TestInvite_UnknownUserIsPending() {
	suite.partnerRepo.EXPECT().FindInvite(mock.Anything, anna, "cecilia@example.com").Return(nil, repository.ErrPartnerNotFound)
	suite.userRepo.EXPECT().GetUserFromEmail(mock.Anything, "cecilia@example.com").Return(nil, repository.ErrUserNotFound)
	suite.partnerRepo.EXPECT().AddPartnerLink(mock.Anything, mock.MatchedBy(func(link model.PartnerLink) bool {
		return link.PartnerUserID == nil && link.Status == model.PartnerPending
	})).RunAndReturn(func(_ context.Context, link model.PartnerLink) (*model.PartnerLink, error) {
		return &link, nil
	})

	recorder := httptest.NewRecorder()
	suite.service.Invite(recorder, newRequest(http.MethodPost, "/api/partners", `{"email": "cecilia@example.com"}`, annaUser))

	suite.Equal(http.StatusOK, recorder.Code)
	body := decodeBody(recorder)
	suite.Equal("Inbjudan skickad! Partnern kopplas när de loggar in.", body["message"])
	suite.Nil(body["invite"].(map[string]any)["partner_user_id"])
}

func (suite *PartnerTestSuite) TestInvite_InsertError() {
	suite.partnerRepo.EXPECT().FindInvite(mock.Anything, anna, "cecilia@example.com").Return(nil, repository.ErrPartnerNotFound)
	suite.userRepo.EXPECT().GetUserFromEmail(mock.Anything, "cecilia@example.com").Return(nil, errors.New("timeout"))
	suite.partnerRepo.EXPECT().AddPartnerLink(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	recorder := httptest.NewRecorder()
	suite.service.Invite(recorder, newRequest(http.MethodPost, "/api/partners", `{"email": "cecilia@example.com"}`, annaUser))

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.Equal("Kunde inte skapa inbjudan", decodeBody(recorder)["error"])
	suite.Equal(1, suite.observedLogs.FilterMessage("error looking up invited user, storing pending invite").Len())
}

func (suite *PartnerTestSuite) TestDeletePartner() {
	suite.partnerRepo.EXPECT().DeletePartnerLink(mock.Anything, anna, uint(4)).Return(nil)

	recorder := httptest.NewRecorder()
	suite.service.DeletePartner(recorder, newRequest(http.MethodDelete, "/api/partners", `{"partnerId": 4}`, annaUser))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal(map[string]any{"success": true}, decodeBody(recorder))
}

func (suite *PartnerTestSuite) TestDeletePartner_MissingID() {
	recorder := httptest.NewRecorder()
	suite.service.DeletePartner(recorder, newRequest(http.MethodDelete, "/api/partners", `{}`, annaUser))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("Partner ID krävs", decodeBody(recorder)["error"])
}

func (suite *PartnerTestSuite) TestDeletePartner_NotOwnLink() {
	suite.partnerRepo.EXPECT().DeletePartnerLink(mock.Anything, anna, uint(5)).Return(repository.ErrPartnerNotFound)

	recorder := httptest.NewRecorder()
	suite.service.DeletePartner(recorder, newRequest(http.MethodDelete, "/api/partners", `{"partnerId": 5}`, annaUser))

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *PartnerTestSuite) TestLinkPartners() {
	linked := []*model.PartnerLink{{Model: gorm.Model{ID: 1}}, {Model: gorm.Model{ID: 2}}}

	suite.partnerRepo.EXPECT().LinkPendingInvites(mock.Anything, "anna@example.com", anna).Return(linked, nil)

	recorder := httptest.NewRecorder()
	suite.service.LinkPartners(recorder, newRequest(http.MethodPost, "/api/partners/link", "", annaUser))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal(map[string]any{"linked": float64(2), "message": "2 partner(s) kopplades"}, decodeBody(recorder))
}

func (suite *PartnerTestSuite) TestLinkPartners_NothingPending() {
	suite.partnerRepo.EXPECT().LinkPendingInvites(mock.Anything, "anna@example.com", anna).Return([]*model.PartnerLink{}, nil)

	recorder := httptest.NewRecorder()
	suite.service.LinkPartners(recorder, newRequest(http.MethodPost, "/api/partners/link", "", annaUser))

	suite.Equal(map[string]any{"linked": float64(0), "message": "Inga väntande inbjudningar"}, decodeBody(recorder))
}

func (suite *PartnerTestSuite) TestLinkPartners_DatabaseError() {
	suite.partnerRepo.EXPECT().LinkPendingInvites(mock.Anything, "anna@example.com", anna).Return(nil, errors.New("boom"))

	recorder := httptest.NewRecorder()
	suite.service.LinkPartners(recorder, newRequest(http.MethodPost, "/api/partners/link", "", annaUser))

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.Equal("Kunde inte länka partners", decodeBody(recorder)["error"])
}
