package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
)

type BookmarkTestSuite struct {
	RepositorySuite
}

func TestBookmarkTestSuite(t *testing.T) {
	suite.Run(t, new(BookmarkTestSuite))
}

func (suite *BookmarkTestSuite) TestAddBookmark_InsertsRow() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "bookmarks" (.+) ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.AddBookmark(context.Background(), 1, 4)
	suite.Require().NoError(err)
}

func (suite *BookmarkTestSuite) TestAddBookmark_RepeatIsNoOp() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "bookmarks" (.+) ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.AddBookmark(context.Background(), 1, 4)
	suite.Require().NoError(err)
}

func (suite *BookmarkTestSuite) TestRemoveBookmark_MissingRowIsNoOp() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "bookmarks" WHERE user_id = \$1 AND drink_id = \$2`).
		WithArgs(1, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.RemoveBookmark(context.Background(), 1, 4)
	suite.Require().NoError(err)
}

func (suite *BookmarkTestSuite) TestGetBookmarkedDrinks_GetsDrinks() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "drinks" (.+) INNER JOIN bookmarks ON bookmarks.drink_id = drinks.id WHERE bookmarks.user_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uint(2), "mojito").AddRow(uint(4), "margarita"))

	drinks, err := suite.repository.GetBookmarkedDrinks(context.Background(), 1)
	suite.Require().NoError(err)
	suite.Len(drinks, 2)
	suite.Equal("mojito", drinks[0].Name)
	suite.Equal("margarita", drinks[1].Name)
}

func (suite *BookmarkTestSuite) TestHasBookmark_True() {
	suite.mock.ExpectQuery(`^SELECT count\(\*\) FROM "bookmarks" WHERE user_id = \$1 AND drink_id = \$2`).
		WithArgs(1, 4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	bookmarked, err := suite.repository.HasBookmark(context.Background(), 1, 4)
	suite.Require().NoError(err)
	suite.True(bookmarked)
}

func (suite *BookmarkTestSuite) TestHasBookmark_False() {
	suite.mock.ExpectQuery(`^SELECT count\(\*\) FROM "bookmarks"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	bookmarked, err := suite.repository.HasBookmark(context.Background(), 1, 9)
	suite.Require().NoError(err)
	suite.False(bookmarked)
}
