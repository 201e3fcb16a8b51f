package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"droscher.com/Mixology/configs"
	"droscher.com/Mixology/pkg/model"
	"droscher.com/Mixology/pkg/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
)

// dummyHash is compared against when the username does not exist, so a failed
// login costs the same whether the user is unknown or the password is wrong.
const dummyHash = "$2a$14$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const SessionCookieName = "mixology_session"

type UserKey struct{}

type Manager struct {
	conf   *configs.Config
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo repository.UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// Register hashes the password and persists a new user. The raw password is
// never stored; a taken username surfaces as repository.ErrDuplicateUsername.
func (a *Manager) Register(ctx context.Context, username string, password string, languagePrefID uint) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.conf.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	return a.repo.AddUser(ctx, username, string(hash), languagePrefID)
}

// Authenticate returns the user when the password matches the stored hash.
// Unknown user and wrong password both return ErrInvalidCredentials.
func (a *Manager) Authenticate(ctx context.Context, username string, password string) (*model.User, error) {
	user, err := a.repo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))

			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueSession creates a session row and returns a signed token referencing
// it. The token alone is not enough to authenticate: the row must still exist
// when the token is presented.
func (a *Manager) IssueSession(ctx context.Context, user *model.User) (string, error) {
	sid := uuid.New().String()
	expiresAt := time.Now().Add(time.Duration(a.conf.Auth.SessionTTLHours) * time.Hour)

	if _, err := a.repo.CreateSession(ctx, user.ID, sid, expiresAt); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": sid,
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(a.conf.Auth.SecretKey))
}

// Revoke deletes the session row so a replayed token fails lookup even though
// its signature remains valid.
func (a *Manager) Revoke(ctx context.Context, token string) error {
	sid, err := a.parseSessionID(token)
	if err != nil {
		return err
	}

	return a.repo.DeleteSessionByToken(ctx, sid)
}

// Middleware resolves the request's identity before any handler runs. A valid
// token attaches the user to the context; anything else leaves the request
// anonymous. It never blocks a request.
func (a *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			next.ServeHTTP(w, r)

			return
		}

		sid, err := a.parseSessionID(token)
		if err != nil {
			a.logger.Debug("rejecting session token", zap.Error(err))
			next.ServeHTTP(w, r)

			return
		}

		session, err := a.repo.GetSessionByToken(r.Context(), sid)
		if err != nil {
			if !errors.Is(err, repository.ErrSessionNotFound) {
				a.logger.Error("error resolving session", zap.Error(err))
			}

			next.ServeHTTP(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), UserKey{}, &session.User)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey{}).(*model.User)

	return user, ok
}

func (a *Manager) parseSessionID(tokenString string) (string, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, ErrInvalidToken
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return "", err
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return "", ErrInvalidToken
	}

	sid, found := claims["sid"].(string)
	if !found {
		return "", ErrInvalidToken
	}

	return sid, nil
}

// extractToken prefers the session cookie set by the page routes and falls
// back to a bearer header for API clients.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return ""
	}

	return token
}
