package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/Mixology/pkg/auth"
	"droscher.com/Mixology/pkg/repository"
)

type DrinkServer struct {
	repository repository.DrinkRepository
	bookmarks  repository.BookmarkRepository
	renderer   *Renderer
	logger     *zap.Logger
}

func NewDrinkServer(repo repository.DrinkRepository, bookmarks repository.BookmarkRepository, renderer *Renderer, logger *zap.Logger) *DrinkServer {
	return &DrinkServer{repository: repo, bookmarks: bookmarks, renderer: renderer, logger: logger}
}

type drinkPageJSON struct {
	Drinks  []DrinkJSON `json:"drinks"`
	Page    int         `json:"page"`
	HasPrev bool        `json:"has_prev"`
	HasNext bool        `json:"has_next"`
}

// filterFromQuery maps the optional query parameters onto filter criteria.
// Absent or malformed parameters impose no constraint.
func filterFromQuery(r *http.Request) repository.DrinkFilter {
	filter := repository.DrinkFilter{Page: 1, PageSize: repository.DefaultPageSize}
	query := r.URL.Query()

	if name := query.Get("name"); name != "" {
		filter.Name = pointy.String(name)
	}

	if category := query.Get("category"); category != "" {
		if id, err := strconv.ParseUint(category, 10, 32); err == nil {
			filter.CategoryID = pointy.Uint(uint(id))
		}
	}

	if ingredient := query.Get("ingredient"); ingredient != "" {
		if id, err := strconv.ParseUint(ingredient, 10, 32); err == nil {
			filter.IngredientID = pointy.Uint(uint(id))
		}
	}

	if alcoholic := query.Get("alcoholic"); alcoholic != "" {
		if value, err := strconv.ParseBool(alcoholic); err == nil {
			filter.Alcoholic = pointy.Bool(value)
		}
	}

	if page := query.Get("page"); page != "" {
		if value, err := strconv.Atoi(page); err == nil && value >= 1 {
			filter.Page = value
		}
	}

	if size := query.Get("size"); size != "" {
		if value, err := strconv.Atoi(size); err == nil && value >= 1 {
			filter.PageSize = value
		}
	}

	return filter
}

func (d *DrinkServer) ListDrinks(w http.ResponseWriter, r *http.Request) {
	page, err := d.repository.FindDrinks(r.Context(), filterFromQuery(r))
	if err != nil {
		writeInternalError(w, d.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, drinkPageJSON{
		Drinks:  DrinksFromModel(page.Drinks),
		Page:    page.Page,
		HasPrev: page.HasPrev,
		HasNext: page.HasNext,
	})
}

func (d *DrinkServer) GetDrink(w http.ResponseWriter, r *http.Request) {
	drinkID, err := strconv.ParseUint(chi.URLParam(r, "drinkID"), 10, 32)
	if err != nil {
		writeErrorJSON(w, http.StatusNotFound, "drink not found")

		return
	}

	drink, err := d.repository.GetDrinkByID(r.Context(), uint(drinkID))
	if err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			writeErrorJSON(w, http.StatusNotFound, "drink not found")

			return
		}

		writeInternalError(w, d.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, DrinkFromModel(drink))
}

func (d *DrinkServer) DrinksPage(w http.ResponseWriter, r *http.Request) {
	page, err := d.repository.FindDrinks(r.Context(), filterFromQuery(r))
	if err != nil {
		d.logger.Error("error listing drinks", zap.Error(err))
		d.renderer.renderError(w, http.StatusInternalServerError, "Something went wrong.")

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	d.renderer.render(w, http.StatusOK, "drinks", map[string]any{
		"Title":   "Drinks",
		"User":    user,
		"Drinks":  DrinksFromModel(page.Drinks),
		"Page":    page.Page,
		"HasPrev": page.HasPrev,
		"HasNext": page.HasNext,
		"Query":   r.URL.Query().Get("name"),
	})
}

func (d *DrinkServer) DrinkDetailPage(w http.ResponseWriter, r *http.Request) {
	drinkID, err := strconv.ParseUint(chi.URLParam(r, "drinkID"), 10, 32)
	if err != nil {
		d.renderer.renderError(w, http.StatusNotFound, "Drink not found.")

		return
	}

	drink, err := d.repository.GetDrinkByID(r.Context(), uint(drinkID))
	if err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			d.renderer.renderError(w, http.StatusNotFound, "Drink not found.")

			return
		}

		d.logger.Error("error loading drink", zap.Uint64("drink_id", drinkID), zap.Error(err))
		d.renderer.renderError(w, http.StatusInternalServerError, "Something went wrong.")

		return
	}

	user, loggedIn := auth.UserFromContext(r.Context())
	bookmarked := false

	if loggedIn {
		bookmarked, err = d.bookmarks.HasBookmark(r.Context(), user.ID, drink.ID)
		if err != nil {
			d.logger.Error("error checking bookmark", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}

	d.renderer.render(w, http.StatusOK, "drink", map[string]any{
		"Title":      titleCaser.String(drink.Name),
		"User":       user,
		"Drink":      DrinkFromModel(drink),
		"Glass":      titleCaser.String(drink.Glass.Name),
		"Details":    drink,
		"Bookmarked": bookmarked,
	})
}
