package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/Mixology/pkg/auth"
	"droscher.com/Mixology/pkg/repository"
)

type BookmarkServer struct {
	repository repository.BookmarkRepository
	drinks     repository.DrinkRepository
	logger     *zap.Logger
}

func NewBookmarkServer(repo repository.BookmarkRepository, drinks repository.DrinkRepository, logger *zap.Logger) *BookmarkServer {
	return &BookmarkServer{repository: repo, drinks: drinks, logger: logger}
}

type addBookmarkJSON struct {
	DrinkID uint `json:"drink_id"`
}

func (b *BookmarkServer) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := auth.UserFromContext(r.Context())
	if !loggedIn {
		writeUnauthenticated(w)

		return
	}

	drinks, err := b.repository.GetBookmarkedDrinks(r.Context(), user.ID)
	if err != nil {
		writeInternalError(w, b.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"drinks": DrinksFromModel(drinks)})
}

func (b *BookmarkServer) AddBookmark(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := auth.UserFromContext(r.Context())
	if !loggedIn {
		writeUnauthenticated(w)

		return
	}

	var body addBookmarkJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.DrinkID == 0 {
		writeErrorJSON(w, http.StatusBadRequest, "drink_id is required")

		return
	}

	if _, err := b.drinks.GetDrinkByID(r.Context(), body.DrinkID); err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			writeErrorJSON(w, http.StatusNotFound, "drink not found")

			return
		}

		writeInternalError(w, b.logger, err)

		return
	}

	if err := b.repository.AddBookmark(r.Context(), user.ID, body.DrinkID); err != nil {
		writeInternalError(w, b.logger, err)

		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"bookmarked": true})
}

func (b *BookmarkServer) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := auth.UserFromContext(r.Context())
	if !loggedIn {
		writeUnauthenticated(w)

		return
	}

	drinkID, err := strconv.ParseUint(chi.URLParam(r, "drinkID"), 10, 32)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid drink id")

		return
	}

	if err := b.repository.RemoveBookmark(r.Context(), user.ID, uint(drinkID)); err != nil {
		writeInternalError(w, b.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bookmarked": false})
}
