package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/repository"
)

type LogTestSuite struct {
	RepositorySuite
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

var (
	anna  = uuid.MustParse("0b6f1c1e-4a3a-4d8e-9a57-3a1f2b9c0d11")
	bjorn = uuid.MustParse("5e0c2a9b-7d4f-4b1a-8c3e-6f2d1a0b9c22")
)

func (suite *LogTestSuite) TestGetLogsForUsers_GetsLogsWithWine() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "logs" LEFT JOIN "wines" "Wine" ON "logs"\."wine_id" = "Wine"\."id" AND "Wine"\."deleted_at" IS NULL WHERE logs\.user_id IN \(\$1,\$2\) AND "logs"\."deleted_at" IS NULL ORDER BY logs\.date desc, logs\.id desc`).
		WithArgs(anna.String(), bjorn.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "wine_id", "rating", "Wine__id", "Wine__name"}).
			AddRow(2, bjorn.String(), 7, 4, 7, "Chablis").
			AddRow(1, anna.String(), 8, 5, 8, "Barolo"))

	logs, err := suite.repository.GetLogsForUsers(context.Background(), []uuid.UUID{anna, bjorn})

	suite.Require().NoError(err)
	suite.Len(logs, 2)
	suite.Equal(bjorn, logs[0].UserID)
	suite.Equal("Chablis", logs[0].Wine.Name)
	suite.Equal(4, *logs[0].Rating)
	suite.Equal("Barolo", logs[1].Wine.Name)
}

func (suite *LogTestSuite) TestGetLogsForUsers_LogsError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(errors.New("connection reset"))

	logs, err := suite.repository.GetLogsForUsers(context.Background(), []uuid.UUID{anna})

	suite.Nil(logs)
	suite.EqualError(err, "connection reset")
	suite.Equal(1, suite.observedLogs.FilterMessage("error getting logs").Len())
}

func (suite *LogTestSuite) TestAddLog_AddsLog() {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	log := model.WineLog{
		UserID: anna,
		WineID: pointy.Uint(7),
		Rating: pointy.Int(4),
		Date:   date,
		Notes:  pointy.String("Mineral"),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "logs" ("created_at","updated_at","deleted_at","user_id","wine_id","user_image_url","rating","location_name","latitude","longitude","date","notes","companions","occasion") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, anna, 7, nil, 4, nil, nil, nil, date, "Mineral", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
	suite.mock.ExpectCommit()

	result, err := suite.repository.AddLog(context.Background(), log)

	suite.Require().NoError(err)
	suite.Equal(uint(31), result.ID)
	suite.Equal(anna, result.UserID)
}

func (suite *LogTestSuite) TestDeleteLog_SoftDeletesOwnLog() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "logs" SET "deleted_at"=$1 WHERE user_id = $2 AND "logs"."id" = $3 AND "logs"."deleted_at" IS NULL`)).
		WithArgs(sqlmock.AnyArg(), anna, 31).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.DeleteLog(context.Background(), anna, 31))
}

func (suite *LogTestSuite) TestDeleteLog_OtherUsersLogIsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "logs" SET (.+)`).
		WithArgs(sqlmock.AnyArg(), bjorn, 31).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.DeleteLog(context.Background(), bjorn, 31)

	suite.ErrorIs(err, repository.ErrLogNotFound)
}

func (suite *LogTestSuite) TestFindLogsByFoodTags_UsesOverlap() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "logs" LEFT JOIN "wines" "Wine" (.+) WHERE logs\.user_id = \$1 AND "Wine"\.food_pairing_tags && \$2 (.+)`).
		WithArgs(anna, `{"Fisk","Skaldjur"}`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "Wine__id", "Wine__name", "Wine__food_pairing_tags"}).
			AddRow(4, anna.String(), 2, "Chablis", "{Fisk,Skaldjur}"))

	logs, err := suite.repository.FindLogsByFoodTags(context.Background(), anna, []string{"Fisk", "Skaldjur"})

	suite.Require().NoError(err)
	suite.Len(logs, 1)
	suite.Equal("Chablis", logs[0].Wine.Name)
	suite.Equal([]string{"Fisk", "Skaldjur"}, []string(logs[0].Wine.FoodPairingTags))
}

func (suite *LogTestSuite) TestGetLogStats_GetsStats() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) as log_count, count(distinct l.wine_id) as unique_wines, coalesce(avg(l.rating), 0) as average_rating FROM logs as l WHERE l.user_id = $1 AND l.deleted_at is null`)).
		WithArgs(anna).
		WillReturnRows(sqlmock.NewRows([]string{"log_count", "unique_wines", "average_rating"}).AddRow(12, 9, 3.75))
	suite.mock.ExpectQuery(`^SELECT (.+)region(.+) FROM logs as l INNER JOIN wines w on w\.id = l\.wine_id (.+) GROUP BY (.+) LIMIT \$2`).
		WithArgs(anna, 1).
		WillReturnRows(sqlmock.NewRows([]string{"region"}).AddRow("Bourgogne"))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT coalesce(sum(quantity), 0) FROM "cellar" WHERE user_id = $1 AND deleted_at is null`)).
		WithArgs(anna).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(14))

	stats, err := suite.repository.GetLogStats(context.Background(), anna)

	suite.Require().NoError(err)
	suite.Equal(uint64(12), stats.LogCount)
	suite.Equal(uint64(9), stats.UniqueWines)
	suite.InDelta(3.75, stats.AverageRating, 0.001)
	suite.Equal("Bourgogne", stats.TopRegion)
	suite.Equal(uint64(14), stats.CellarBottles)
}

func (suite *LogTestSuite) TestGetLogStats_ReturnsError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(errors.New("boom"))

	stats, err := suite.repository.GetLogStats(context.Background(), anna)

	suite.Nil(stats)
	suite.EqualError(err, "boom")
}
