package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"droscher.com/Mixology/pkg/auth"
)

// NewRouter wires the page and API routes. The auth middleware resolves
// identity on every request; handlers that need a user enforce it themselves,
// pages by redirecting to /login and API routes with a 401 payload.
func NewRouter(authManager *auth.Manager, pages *PageServer, drinks *DrinkServer, users *UserServer, bookmarks *BookmarkServer) *chi.Mux {
	router := chi.NewRouter()
	router.Use(authManager.Middleware)
	router.NotFound(pages.NotFound)

	router.Get("/", pages.Root)
	router.Get("/home", pages.Home)

	router.Get("/login", users.LoginPage)
	router.Post("/login", users.Login)
	router.Get("/register", users.RegisterPage)
	router.Post("/register", users.Register)
	router.Post("/logout", users.Logout)

	router.Get("/profile", RequireLogin(pages.Profile))

	router.Get("/drinks", drinks.DrinksPage)
	router.Get("/drinks/{drinkID}", drinks.DrinkDetailPage)

	router.Route("/api", func(api chi.Router) {
		api.Get("/drinks", drinks.ListDrinks)
		api.Get("/drinks/{drinkID}", drinks.GetDrink)
		api.Get("/me", users.Me)
		api.Get("/bookmarks", bookmarks.ListBookmarks)
		api.Post("/bookmarks", bookmarks.AddBookmark)
		api.Delete("/bookmarks/{drinkID}", bookmarks.RemoveBookmark)
	})

	return router
}

// RequireLogin guards page routes that only make sense with a session.
func RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, loggedIn := auth.UserFromContext(r.Context()); !loggedIn {
			http.Redirect(w, r, "/login", http.StatusFound)

			return
		}

		next(w, r)
	}
}
