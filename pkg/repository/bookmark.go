package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"droscher.com/Mixology/pkg/model"
)

type BookmarkRepository interface {
	AddBookmark(ctx context.Context, userID uint, drinkID uint) error
	RemoveBookmark(ctx context.Context, userID uint, drinkID uint) error
	GetBookmarkedDrinks(ctx context.Context, userID uint) ([]*model.Drink, error)
	HasBookmark(ctx context.Context, userID uint, drinkID uint) (bool, error)
}

// AddBookmark is an upsert on the composite key, so repeating an add (or two
// concurrent adds for the same pair) leaves exactly one row.
func (r *Repository) AddBookmark(ctx context.Context, userID uint, drinkID uint) error {
	bookmark := model.Bookmark{UserID: userID, DrinkID: drinkID}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&bookmark)

	return result.Error
}

// RemoveBookmark deletes the row if present; removing a bookmark that does
// not exist is a no-op.
func (r *Repository) RemoveBookmark(ctx context.Context, userID uint, drinkID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND drink_id = ?", userID, drinkID).
		Delete(&model.Bookmark{})

	return result.Error
}

func (r *Repository) GetBookmarkedDrinks(ctx context.Context, userID uint) ([]*model.Drink, error) {
	var drinks []*model.Drink

	result := r.DB.WithContext(ctx).
		Joins("Category").
		Joins("INNER JOIN bookmarks ON bookmarks.drink_id = drinks.id").
		Where("bookmarks.user_id = ?", userID).
		Order("drinks.id ASC").
		Find(&drinks)
	if result.Error != nil {
		return nil, result.Error
	}

	return drinks, nil
}

func (r *Repository) HasBookmark(ctx context.Context, userID uint, drinkID uint) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("user_id = ? AND drink_id = ?", userID, drinkID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
