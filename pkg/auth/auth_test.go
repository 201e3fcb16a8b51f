package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"droscher.com/Mixology/configs"
	"droscher.com/Mixology/mocks"
	"droscher.com/Mixology/pkg/auth"
	"droscher.com/Mixology/pkg/model"
	"droscher.com/Mixology/pkg/repository"
)

type AuthTestSuite struct {
	suite.Suite
	userRepo     *mocks.UserRepository
	manager      *auth.Manager
	observedLogs *observer.ObservedLogs
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	suite.userRepo = mocks.NewUserRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	conf := &configs.Config{
		Auth: configs.Auth{
			SecretKey:       "test-secret",
			BcryptCost:      bcrypt.MinCost,
			SessionTTLHours: 1,
		},
	}
	suite.manager = auth.NewAuthManager(conf, suite.userRepo, zap.New(observedZapCore))
}

func (suite *AuthTestSuite) TestRegister_StoresHashNotPassword() {
	ctx := context.Background()

	suite.userRepo.EXPECT().AddUser(ctx, "zelda", mock.MatchedBy(func(hash string) bool {
		return hash != "opensesame" &&
			bcrypt.CompareHashAndPassword([]byte(hash), []byte("opensesame")) == nil
	}), uint(1)).Return(&model.User{Model: gorm.Model{ID: 1}, Username: "zelda"}, nil)

	user, err := suite.manager.Register(ctx, "zelda", "opensesame", 1)
	suite.Require().NoError(err)
	suite.Equal("zelda", user.Username)
}

func (suite *AuthTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("opensesame"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.userRepo.EXPECT().GetUserByName(ctx, "zelda").
		Return(&model.User{Model: gorm.Model{ID: 1}, Username: "zelda", PasswordHash: string(hash)}, nil)

	user, err := suite.manager.Authenticate(ctx, "zelda", "opensesame")
	suite.Require().NoError(err)
	suite.Equal(uint(1), user.ID)
}

func (suite *AuthTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("opensesame"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.userRepo.EXPECT().GetUserByName(ctx, "zelda").
		Return(&model.User{Model: gorm.Model{ID: 1}, Username: "zelda", PasswordHash: string(hash)}, nil)

	user, err := suite.manager.Authenticate(ctx, "zelda", "letmein")
	suite.Require().ErrorIs(err, auth.ErrInvalidCredentials)
	suite.Nil(user)
}

func (suite *AuthTestSuite) TestAuthenticate_UnknownUser() {
	ctx := context.Background()

	suite.userRepo.EXPECT().GetUserByName(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	user, err := suite.manager.Authenticate(ctx, "nobody", "opensesame")
	suite.Require().ErrorIs(err, auth.ErrInvalidCredentials)
	suite.Nil(user)
}

func (suite *AuthTestSuite) issueSession(user *model.User) (string, string) {
	var sid string

	suite.userRepo.EXPECT().CreateSession(mock.Anything, user.ID, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ uint, token string, _ time.Time) {
			sid = token
		}).
		Return(&model.Session{ID: 1, UserID: user.ID}, nil)

	token, err := suite.manager.IssueSession(context.Background(), user)
	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.NotEqual(sid, token)

	return token, sid
}

func (suite *AuthTestSuite) TestMiddleware_CookieAttachesUser() {
	user := &model.User{Model: gorm.Model{ID: 7}, Username: "zelda"}
	token, sid := suite.issueSession(user)

	suite.userRepo.EXPECT().GetSessionByToken(mock.Anything, sid).
		Return(&model.Session{ID: 1, UserID: user.ID, User: *user}, nil)

	var seen *model.User

	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = auth.UserFromContext(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/home", nil)
	request.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), request)

	suite.Require().NotNil(seen)
	suite.Equal("zelda", seen.Username)
}

func (suite *AuthTestSuite) TestMiddleware_BearerAttachesUser() {
	user := &model.User{Model: gorm.Model{ID: 7}, Username: "zelda"}
	token, sid := suite.issueSession(user)

	suite.userRepo.EXPECT().GetSessionByToken(mock.Anything, sid).
		Return(&model.Session{ID: 1, UserID: user.ID, User: *user}, nil)

	var seen *model.User

	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = auth.UserFromContext(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), request)

	suite.Require().NotNil(seen)
	suite.Equal("zelda", seen.Username)
}

func (suite *AuthTestSuite) TestMiddleware_GarbageTokenIsAnonymous() {
	var seen *model.User

	var called bool

	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = auth.UserFromContext(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/home", nil)
	request.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "not.a.token"})
	handler.ServeHTTP(httptest.NewRecorder(), request)

	suite.True(called)
	suite.Nil(seen)
}

func (suite *AuthTestSuite) TestMiddleware_RevokedSessionIsAnonymous() {
	user := &model.User{Model: gorm.Model{ID: 7}, Username: "zelda"}
	token, sid := suite.issueSession(user)

	suite.userRepo.EXPECT().GetSessionByToken(mock.Anything, sid).Return(nil, repository.ErrSessionNotFound)

	var seen *model.User

	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = auth.UserFromContext(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/home", nil)
	request.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), request)

	suite.Nil(seen)
	suite.Equal(0, suite.observedLogs.Len())
}

func (suite *AuthTestSuite) TestMiddleware_TokenSignedWithOtherKeyIsAnonymous() {
	otherConf := &configs.Config{
		Auth: configs.Auth{SecretKey: "other-secret", BcryptCost: bcrypt.MinCost, SessionTTLHours: 1},
	}
	otherRepo := mocks.NewUserRepository(suite.T())
	otherManager := auth.NewAuthManager(otherConf, otherRepo, zap.NewNop())

	otherRepo.EXPECT().CreateSession(mock.Anything, uint(7), mock.Anything, mock.Anything).
		Return(&model.Session{ID: 1, UserID: 7}, nil)

	token, err := otherManager.IssueSession(context.Background(), &model.User{Model: gorm.Model{ID: 7}})
	suite.Require().NoError(err)

	var seen *model.User

	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = auth.UserFromContext(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/home", nil)
	request.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), request)

	suite.Nil(seen)
}

func (suite *AuthTestSuite) TestRevoke_DeletesSessionRow() {
	user := &model.User{Model: gorm.Model{ID: 7}, Username: "zelda"}
	token, sid := suite.issueSession(user)

	suite.userRepo.EXPECT().DeleteSessionByToken(mock.Anything, sid).Return(nil)

	err := suite.manager.Revoke(context.Background(), token)
	suite.Require().NoError(err)
}

func (suite *AuthTestSuite) TestRevoke_RejectsGarbageToken() {
	err := suite.manager.Revoke(context.Background(), "not.a.token")
	suite.Require().Error(err)
}
