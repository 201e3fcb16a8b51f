package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/Mixology/mocks"
	"droscher.com/Mixology/pkg/auth"
	"droscher.com/Mixology/pkg/model"
	"droscher.com/Mixology/pkg/repository"
	"droscher.com/Mixology/pkg/server"
)

type DrinkServerTestSuite struct {
	suite.Suite
	drinkRepo    *mocks.DrinkRepository
	bookmarkRepo *mocks.BookmarkRepository
	service      *server.DrinkServer
	observedLogs *observer.ObservedLogs
}

func TestDrinkServerTestSuite(t *testing.T) {
	suite.Run(t, new(DrinkServerTestSuite))
}

func (suite *DrinkServerTestSuite) SetupTest() {
	suite.drinkRepo = mocks.NewDrinkRepository(suite.T())
	suite.bookmarkRepo = mocks.NewBookmarkRepository(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	observedLogger := zap.New(observedZapCore)

	renderer, err := server.NewRenderer(observedLogger)
	suite.Require().NoError(err)

	suite.service = server.NewDrinkServer(suite.drinkRepo, suite.bookmarkRepo, renderer, observedLogger)
}

func withURLParam(r *http.Request, key string, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func (suite *DrinkServerTestSuite) TestListDrinks_AppliesQueryParams() {
	expectedFilter := repository.DrinkFilter{
		Name:         pointy.String("rita"),
		CategoryID:   pointy.Uint(2),
		IngredientID: pointy.Uint(7),
		Alcoholic:    pointy.Bool(true),
		Page:         2,
		PageSize:     5,
	}

	suite.drinkRepo.EXPECT().FindDrinks(mock.Anything, expectedFilter).Return(&repository.DrinkPage{
		Drinks: []*model.Drink{
			{Model: gorm.Model{ID: 4}, Name: "margarita", Alcoholic: true, CategoryID: 2, Category: model.Category{Name: "cocktail"}},
		},
		Page:    2,
		Total:   6,
		HasPrev: true,
		HasNext: false,
	}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/drinks?name=rita&category=2&ingredient=7&alcoholic=true&page=2&size=5", nil)
	recorder := httptest.NewRecorder()
	suite.service.ListDrinks(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Type"), "application/json")
	suite.JSONEq(`{
		"drinks": [{
			"id": 4,
			"name": "Margarita",
			"image_url": "",
			"image_attribution": "",
			"alcoholic": true,
			"optional_alc": false,
			"category": "Cocktail",
			"category_id": 2
		}],
		"page": 2,
		"has_prev": true,
		"has_next": false
	}`, recorder.Body.String())
}

func (suite *DrinkServerTestSuite) TestListDrinks_MalformedParamsImposeNoConstraint() {
	expectedFilter := repository.DrinkFilter{Page: 1, PageSize: repository.DefaultPageSize}

	suite.drinkRepo.EXPECT().FindDrinks(mock.Anything, expectedFilter).
		Return(&repository.DrinkPage{Drinks: []*model.Drink{}, Page: 1}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/drinks?category=abc&alcoholic=banana&page=0&size=-3", nil)
	recorder := httptest.NewRecorder()
	suite.service.ListDrinks(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *DrinkServerTestSuite) TestGetDrink_ReturnsDrink() {
	drink := &model.Drink{
		Model:      gorm.Model{ID: 4},
		Name:       "margarita",
		ImageURL:   "https://example.com/margarita.jpg",
		Alcoholic:  true,
		CategoryID: 2,
		Category:   model.Category{Name: "cocktail"},
	}

	suite.drinkRepo.EXPECT().GetDrinkByID(mock.Anything, uint(4)).Return(drink, nil)

	request := withURLParam(httptest.NewRequest(http.MethodGet, "/api/drinks/4", nil), "drinkID", "4")
	recorder := httptest.NewRecorder()
	suite.service.GetDrink(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"name":"Margarita"`)
	suite.Contains(recorder.Body.String(), `"category":"Cocktail"`)
}

func (suite *DrinkServerTestSuite) TestGetDrink_NotFound() {
	suite.drinkRepo.EXPECT().GetDrinkByID(mock.Anything, uint(99)).Return(nil, repository.ErrDrinkNotFound)

	request := withURLParam(httptest.NewRequest(http.MethodGet, "/api/drinks/99", nil), "drinkID", "99")
	recorder := httptest.NewRecorder()
	suite.service.GetDrink(recorder, request)

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(`{"error": "drink not found"}`, recorder.Body.String())
}

func (suite *DrinkServerTestSuite) TestGetDrink_NonNumericID() {
	request := withURLParam(httptest.NewRequest(http.MethodGet, "/api/drinks/margarita", nil), "drinkID", "margarita")
	recorder := httptest.NewRecorder()
	suite.service.GetDrink(recorder, request)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *DrinkServerTestSuite) TestDrinksPage_RendersResults() {
	suite.drinkRepo.EXPECT().FindDrinks(mock.Anything, mock.Anything).Return(&repository.DrinkPage{
		Drinks: []*model.Drink{
			{Model: gorm.Model{ID: 4}, Name: "margarita", Category: model.Category{Name: "cocktail"}},
		},
		Page:    1,
		Total:   1,
		HasPrev: false,
		HasNext: false,
	}, nil)

	request := httptest.NewRequest(http.MethodGet, "/drinks?name=rita", nil)
	recorder := httptest.NewRecorder()
	suite.service.DrinksPage(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Type"), "text/html")
	suite.Contains(recorder.Body.String(), "Margarita")
}

func (suite *DrinkServerTestSuite) TestDrinkDetailPage_ShowsBookmarkStateForUser() {
	drink := &model.Drink{
		Model:    gorm.Model{ID: 4},
		Name:     "margarita",
		Category: model.Category{Name: "cocktail"},
		Glass:    model.Glass{Name: "cocktail glass"},
		Ingredients: []model.DrinkIngredient{
			{IngredientID: 1, Quantity: "2 oz", Ingredient: model.Ingredient{Name: "tequila"}},
		},
		Instructions: []model.Instruction{
			{LanguageID: 1, Text: "Shake with ice.", Language: model.Language{Code: "EN", Name: "English"}},
		},
	}
	user := &model.User{Model: gorm.Model{ID: 7}, Username: "zelda"}

	suite.drinkRepo.EXPECT().GetDrinkByID(mock.Anything, uint(4)).Return(drink, nil)
	suite.bookmarkRepo.EXPECT().HasBookmark(mock.Anything, uint(7), uint(4)).Return(true, nil)

	request := withURLParam(httptest.NewRequest(http.MethodGet, "/drinks/4", nil), "drinkID", "4")
	request = request.WithContext(context.WithValue(request.Context(), auth.UserKey{}, user))
	recorder := httptest.NewRecorder()
	suite.service.DrinkDetailPage(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	suite.Contains(body, "bi bi-bookmark-fill")
	suite.Contains(body, "tequila")
	suite.Contains(body, "Shake with ice.")
}

func (suite *DrinkServerTestSuite) TestDrinkDetailPage_AnonymousSkipsBookmarkLookup() {
	drink := &model.Drink{
		Model:    gorm.Model{ID: 4},
		Name:     "margarita",
		Category: model.Category{Name: "cocktail"},
		Glass:    model.Glass{Name: "cocktail glass"},
	}

	suite.drinkRepo.EXPECT().GetDrinkByID(mock.Anything, uint(4)).Return(drink, nil)

	request := withURLParam(httptest.NewRequest(http.MethodGet, "/drinks/4", nil), "drinkID", "4")
	recorder := httptest.NewRecorder()
	suite.service.DrinkDetailPage(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.NotContains(recorder.Body.String(), "bi bi-bookmark")
}

func (suite *DrinkServerTestSuite) TestDrinkDetailPage_NotFound() {
	suite.drinkRepo.EXPECT().GetDrinkByID(mock.Anything, uint(99)).Return(nil, repository.ErrDrinkNotFound)

	request := withURLParam(httptest.NewRequest(http.MethodGet, "/drinks/99", nil), "drinkID", "99")
	recorder := httptest.NewRecorder()
	suite.service.DrinkDetailPage(recorder, request)

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.Contains(recorder.Body.String(), "Drink not found.")
}
