package server

import (
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Mixology/pkg/auth"
	"droscher.com/Mixology/pkg/repository"
)

type PageServer struct {
	renderer  *Renderer
	bookmarks repository.BookmarkRepository
	logger    *zap.Logger
}

func NewPageServer(renderer *Renderer, bookmarks repository.BookmarkRepository, logger *zap.Logger) *PageServer {
	return &PageServer{renderer: renderer, bookmarks: bookmarks, logger: logger}
}

func (p *PageServer) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (p *PageServer) Home(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	p.renderer.render(w, http.StatusOK, "home", map[string]any{
		"Title": "Home",
		"User":  user,
	})
}

// Profile shows the logged-in user's bookmarked drinks. The route is wrapped
// in RequireLogin.
func (p *PageServer) Profile(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := auth.UserFromContext(r.Context())
	if !loggedIn {
		http.Redirect(w, r, "/login", http.StatusFound)

		return
	}

	drinks, err := p.bookmarks.GetBookmarkedDrinks(r.Context(), user.ID)
	if err != nil {
		p.logger.Error("error loading bookmarks", zap.Uint("user_id", user.ID), zap.Error(err))
		p.renderer.renderError(w, http.StatusInternalServerError, "Something went wrong.")

		return
	}

	p.renderer.render(w, http.StatusOK, "profile", map[string]any{
		"Title":  "My Profile",
		"User":   user,
		"Drinks": DrinksFromModel(drinks),
	})
}

func (p *PageServer) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderer.renderError(w, http.StatusNotFound, "Page not found.")
}
