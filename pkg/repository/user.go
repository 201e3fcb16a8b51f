package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Mixology/pkg/model"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrSessionNotFound   = errors.New("session not found")
)

type UserRepository interface {
	AddUser(ctx context.Context, username string, passwordHash string, languagePrefID uint) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	CreateSession(ctx context.Context, userID uint, token string, expiresAt time.Time) (*model.Session, error)
	GetSessionByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteSessionByToken(ctx context.Context, token string) error
}

func (r *Repository) AddUser(ctx context.Context, username string, passwordHash string, languagePrefID uint) (*model.User, error) {
	user := model.User{
		Username:       username,
		PasswordHash:   passwordHash,
		LanguagePrefID: languagePrefID,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Joins("LanguagePref").First(&user, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Joins("LanguagePref").Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) CreateSession(ctx context.Context, userID uint, token string, expiresAt time.Time) (*model.Session, error) {
	session := model.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	if result := r.DB.WithContext(ctx).Create(&session); result.Error != nil {
		return nil, result.Error
	}

	return &session, nil
}

// GetSessionByToken ignores expired rows so a stale token resolves to
// anonymous rather than a logged-in user. The user comes back with the
// language preference loaded; the middleware hands it straight to handlers.
func (r *Repository) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session

	result := r.DB.WithContext(ctx).
		Joins("User").
		Joins("User.LanguagePref").
		Where("sessions.token = ?", token).
		Where("sessions.expires_at > ?", time.Now()).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}

		r.Logger.Error("error loading session", zap.Error(result.Error))

		return nil, result.Error
	}

	return &session, nil
}

func (r *Repository) DeleteSessionByToken(ctx context.Context, token string) error {
	result := r.DB.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{})

	return result.Error
}
