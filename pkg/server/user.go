package server

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"droscher.com/Mixology/configs"
	"droscher.com/Mixology/pkg/auth"
	"droscher.com/Mixology/pkg/model"
	"droscher.com/Mixology/pkg/repository"
)

type UserServer struct {
	conf     *configs.Config
	auth     *auth.Manager
	drinks   repository.DrinkRepository
	renderer *Renderer
	logger   *zap.Logger
}

func NewUserServer(conf *configs.Config, authManager *auth.Manager, drinks repository.DrinkRepository, renderer *Renderer, logger *zap.Logger) *UserServer {
	return &UserServer{conf: conf, auth: authManager, drinks: drinks, renderer: renderer, logger: logger}
}

func (u *UserServer) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, loggedIn := auth.UserFromContext(r.Context()); loggedIn {
		http.Redirect(w, r, "/home", http.StatusFound)

		return
	}

	u.renderLogin(w, http.StatusOK, "")
}

func (u *UserServer) Login(w http.ResponseWriter, r *http.Request) {
	form, err := parseLoginForm(r)
	if err != nil {
		u.renderLogin(w, http.StatusBadRequest, formErrorMessage(err))

		return
	}

	user, err := u.auth.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			u.renderLogin(w, http.StatusUnauthorized, "invalid credentials")

			return
		}

		u.logger.Error("error authenticating user", zap.Error(err))
		u.renderer.renderError(w, http.StatusInternalServerError, "Something went wrong.")

		return
	}

	u.startSession(w, r, user)
}

func (u *UserServer) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if _, loggedIn := auth.UserFromContext(r.Context()); loggedIn {
		http.Redirect(w, r, "/home", http.StatusFound)

		return
	}

	u.renderRegister(w, r, http.StatusOK, "")
}

func (u *UserServer) Register(w http.ResponseWriter, r *http.Request) {
	form, err := parseRegisterForm(r)
	if err != nil {
		u.renderRegister(w, r, http.StatusBadRequest, formErrorMessage(err))

		return
	}

	language, err := u.drinks.GetLanguageByCode(r.Context(), form.LanguagePref)
	if err != nil {
		u.renderRegister(w, r, http.StatusBadRequest, "unknown language preference")

		return
	}

	user, err := u.auth.Register(r.Context(), form.Username, form.Password, language.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			u.renderRegister(w, r, http.StatusConflict, "username already taken")

			return
		}

		u.logger.Error("error registering user", zap.Error(err))
		u.renderer.renderError(w, http.StatusInternalServerError, "Something went wrong.")

		return
	}

	u.startSession(w, r, user)
}

func (u *UserServer) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		if err := u.auth.Revoke(r.Context(), cookie.Value); err != nil {
			u.logger.Warn("error revoking session", zap.Error(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/home", http.StatusFound)
}

// Me returns the authenticated user, mirroring the page session state for API
// clients.
func (u *UserServer) Me(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := auth.UserFromContext(r.Context())
	if !loggedIn {
		writeUnauthenticated(w)

		return
	}

	writeJSON(w, http.StatusOK, UserFromModel(user))
}

func (u *UserServer) startSession(w http.ResponseWriter, r *http.Request, user *model.User) {
	token, err := u.auth.IssueSession(r.Context(), user)
	if err != nil {
		u.logger.Error("error issuing session", zap.Uint("user_id", user.ID), zap.Error(err))
		u.renderer.renderError(w, http.StatusInternalServerError, "Something went wrong.")

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(u.conf.Auth.SessionTTLHours) * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/home", http.StatusFound)
}

func (u *UserServer) renderLogin(w http.ResponseWriter, status int, message string) {
	u.renderer.render(w, status, "login", map[string]any{
		"Title":   "Login",
		"Error":   message,
		"Path":    "/login",
		"BtnName": "Enter",
	})
}

func (u *UserServer) renderRegister(w http.ResponseWriter, r *http.Request, status int, message string) {
	languages, err := u.drinks.GetLanguages(r.Context())
	if err != nil {
		u.logger.Error("error loading languages", zap.Error(err))
	}

	u.renderer.render(w, status, "register", map[string]any{
		"Title":     "Register",
		"Error":     message,
		"Path":      "/register",
		"BtnName":   "Create",
		"Languages": languages,
	})
}
