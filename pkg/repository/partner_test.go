package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/repository"
)

type PartnerTestSuite struct {
	RepositorySuite
}

func TestPartnerTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerTestSuite))
}

func (suite *PartnerTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *PartnerTestSuite) TestGetAcceptedPartnerLinks_BothDirections() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "partners" WHERE (user_id = $1 OR partner_user_id = $2) AND status = $3 AND "partners"."deleted_at" IS NULL ORDER BY created_at`)).
		WithArgs(anna, anna, "accepted").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "partner_email", "partner_user_id", "status"}).
			AddRow(1, anna.String(), "bjorn@example.com", bjorn.String(), "accepted").
			AddRow(2, bjorn.String(), "anna@example.com", anna.String(), "accepted"))

	links, err := suite.repository.GetAcceptedPartnerLinks(context.Background(), anna)

	suite.Require().NoError(err)
	suite.Len(links, 2)
	suite.Equal(bjorn, *links[0].PartnerUserID)
	suite.Equal(bjorn, links[1].UserID)
	suite.Equal([]uuid.UUID{anna, bjorn}, model.VisibleUserIDs(anna, links))
}

func (suite *PartnerTestSuite) TestGetPendingInvitesForEmail_GetsInvites() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "partners" WHERE (partner_email = $1 AND status = $2) AND "partners"."deleted_at" IS NULL ORDER BY created_at`)).
		WithArgs("anna@example.com", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "partner_email", "status"}).
			AddRow(5, bjorn.String(), "anna@example.com", "pending"))

	links, err := suite.repository.GetPendingInvitesForEmail(context.Background(), "Anna@example.com")

	suite.Require().NoError(err)
	suite.Len(links, 1)
	suite.Equal(model.PartnerPending, links[0].Status)
}

func (suite *PartnerTestSuite) TestFindInvite_NotFound() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "partners" WHERE \(user_id = \$1 AND partner_email = \$2\) (.+)`).
		WithArgs(anna, "bjorn@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	link, err := suite.repository.FindInvite(context.Background(), anna, "bjorn@example.com ")

	suite.Nil(link)
	suite.ErrorIs(err, repository.ErrPartnerNotFound)
}

func (suite *PartnerTestSuite) TestAddPartnerLink_NormalizesEmail() {
	link := model.PartnerLink{UserID: anna, PartnerEmail: " Bjorn@Example.com", Status: model.PartnerPending}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "partners" ("created_at","updated_at","deleted_at","user_id","partner_email","partner_user_id","status") VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, anna, "bjorn@example.com", nil, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	suite.mock.ExpectCommit()

	result, err := suite.repository.AddPartnerLink(context.Background(), link)

	suite.Require().NoError(err)
	suite.Equal(uint(8), result.ID)
	suite.Equal("bjorn@example.com", result.PartnerEmail)
}

func (suite *PartnerTestSuite) TestDeletePartnerLink_DeletesOwnLink() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "partners" WHERE user_id = $1 AND "partners"."id" = $2`)).
		WithArgs(anna, 8).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.DeletePartnerLink(context.Background(), anna, 8))
}

func (suite *PartnerTestSuite) TestDeletePartnerLink_NotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("^DELETE FROM (.+)").WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.DeletePartnerLink(context.Background(), bjorn, 8)

	suite.ErrorIs(err, repository.ErrPartnerNotFound)
}

func (suite *PartnerTestSuite) TestLinkPendingInvites_AcceptsInvites() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^UPDATE "partners" SET "partner_user_id"=\$1,"status"=\$2,"updated_at"=\$3 WHERE (.+)partner_email = \$4 AND status = \$5(.+) RETURNING \*`).
		WithArgs(anna, "accepted", sqlmock.AnyArg(), "anna@example.com", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "partner_email", "partner_user_id", "status"}).
			AddRow(5, bjorn.String(), "anna@example.com", anna.String(), "accepted"))
	suite.mock.ExpectCommit()

	links, err := suite.repository.LinkPendingInvites(context.Background(), "anna@example.com", anna)

	suite.Require().NoError(err)
	suite.Len(links, 1)
	suite.Equal(model.PartnerAccepted, links[0].Status)
	suite.Equal(anna, *links[0].PartnerUserID)
}
