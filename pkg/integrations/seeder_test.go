package integrations_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/Mixology/mocks"
	"droscher.com/Mixology/pkg/integrations"
	"droscher.com/Mixology/pkg/model"
)

type SeederTestSuite struct {
	suite.Suite
	source       *mocks.DrinkSource
	repo         *mocks.DrinkRepository
	seeder       *integrations.Seeder
	observedLogs *observer.ObservedLogs
}

func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

func (suite *SeederTestSuite) SetupTest() {
	suite.source = mocks.NewDrinkSource(suite.T())
	suite.repo = mocks.NewDrinkRepository(suite.T())

	observedZapCore, observedLogs := observer.New(zap.WarnLevel)
	suite.observedLogs = observedLogs

	suite.seeder = integrations.NewSeeder(suite.source, suite.repo, zap.New(observedZapCore))
}

func (suite *SeederTestSuite) expectStaticLanguages(ctx context.Context) {
	codes := []string{"EN", "DE", "ES", "FR", "IT", "ZH-HANS", "ZH-HANT"}
	for i, code := range codes {
		suite.repo.EXPECT().AddLanguage(ctx, code, mock.Anything).
			Return(&model.Language{Model: gorm.Model{ID: uint(i + 1)}, Code: code}, nil)
	}
}

func (suite *SeederTestSuite) expectReferenceData(ctx context.Context) {
	suite.source.EXPECT().ListCategories(ctx).Return([]string{"ordinary drink"}, nil)
	suite.repo.EXPECT().AddCategory(ctx, "ordinary drink").
		Return(&model.Category{Model: gorm.Model{ID: 2}, Name: "ordinary drink"}, nil)

	suite.source.EXPECT().ListGlasses(ctx).Return([]string{"cocktail glass"}, nil)
	suite.repo.EXPECT().AddGlass(ctx, "cocktail glass").
		Return(&model.Glass{Model: gorm.Model{ID: 3}, Name: "cocktail glass"}, nil)

	suite.source.EXPECT().ListIngredients(ctx).Return([]string{"tequila"}, nil)
	suite.repo.EXPECT().AddIngredient(ctx, "tequila").
		Return(&model.Ingredient{Model: gorm.Model{ID: 5}, Name: "tequila"}, nil)

	suite.repo.EXPECT().GetGlasses(ctx).
		Return([]*model.Glass{{Model: gorm.Model{ID: 3}, Name: "cocktail glass"}}, nil)
}

func (suite *SeederTestSuite) TestRun_ImportsClearedDrinks() {
	ctx := context.Background()
	suite.expectStaticLanguages(ctx)
	suite.expectReferenceData(ctx)

	suite.source.EXPECT().ListDrinkIDs(ctx, "cocktail glass").Return([]string{"11007", "11008"}, nil)

	suite.source.EXPECT().LookupDrink(ctx, "11007").Return(&model.DrinkRecord{
		Name:           "margarita",
		ImageURL:       "https://example.com/margarita.jpg",
		Alcoholic:      true,
		Category:       "ordinary drink",
		Glass:          "cocktail glass",
		LicenseCleared: true,
		Ingredients:    []model.IngredientMeasure{{Name: "tequila", Quantity: "1 1/2 oz"}},
		Instructions: []model.LocalizedText{
			{LanguageCode: "EN", Text: "Shake with ice."},
			{LanguageCode: "XX", Text: "unknown language"},
		},
	}, nil)
	suite.repo.EXPECT().GetCategoryByName(ctx, "ordinary drink").
		Return(&model.Category{Model: gorm.Model{ID: 2}, Name: "ordinary drink"}, nil)
	suite.repo.EXPECT().GetGlassByName(ctx, "cocktail glass").
		Return(&model.Glass{Model: gorm.Model{ID: 3}, Name: "cocktail glass"}, nil)
	suite.repo.EXPECT().AddDrink(ctx, mock.MatchedBy(func(drink model.Drink) bool {
		return drink.Name == "margarita" &&
			drink.CategoryID == 2 &&
			drink.GlassID == 3 &&
			len(drink.Ingredients) == 1 &&
			drink.Ingredients[0].IngredientID == 5 &&
			drink.Ingredients[0].Quantity == "1 1/2 oz" &&
			len(drink.Instructions) == 1 &&
			drink.Instructions[0].LanguageID == 1
	})).Return(&model.Drink{Model: gorm.Model{ID: 10}}, nil)

	// Not license cleared, must not be written.
	suite.source.EXPECT().LookupDrink(ctx, "11008").Return(&model.DrinkRecord{
		Name:     "mystery drink",
		Category: "ordinary drink",
		Glass:    "cocktail glass",
	}, nil)

	err := suite.seeder.Run(ctx)
	suite.Require().NoError(err)

	// One warning for the unknown instruction language.
	suite.Equal(1, suite.observedLogs.Len())
}

func (suite *SeederTestSuite) TestRun_AccumulatesLookupFailures() {
	ctx := context.Background()
	suite.expectStaticLanguages(ctx)
	suite.expectReferenceData(ctx)

	suite.source.EXPECT().ListDrinkIDs(ctx, "cocktail glass").Return([]string{"11007", "11009"}, nil)

	suite.source.EXPECT().LookupDrink(ctx, "11007").Return(nil, errors.New("feed timeout"))

	suite.source.EXPECT().LookupDrink(ctx, "11009").Return(&model.DrinkRecord{
		Name:           "paloma",
		Category:       "ordinary drink",
		Glass:          "cocktail glass",
		LicenseCleared: true,
	}, nil)
	suite.repo.EXPECT().GetCategoryByName(ctx, "ordinary drink").
		Return(&model.Category{Model: gorm.Model{ID: 2}}, nil)
	suite.repo.EXPECT().GetGlassByName(ctx, "cocktail glass").
		Return(&model.Glass{Model: gorm.Model{ID: 3}}, nil)
	suite.repo.EXPECT().AddDrink(ctx, mock.Anything).
		Return(&model.Drink{Model: gorm.Model{ID: 11}}, nil)

	err := suite.seeder.Run(ctx)
	suite.Require().ErrorContains(err, "feed timeout")
}
