package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Mixology/pkg/model"
)

var ErrDrinkNotFound = errors.New("drink not found")

const DefaultPageSize = 10

// DrinkFilter carries the optional search criteria. A nil field imposes no
// constraint; supplied criteria combine conjunctively.
type DrinkFilter struct {
	Name         *string
	CategoryID   *uint
	IngredientID *uint
	Alcoholic    *bool
	Page         int
	PageSize     int
}

type DrinkPage struct {
	Drinks  []*model.Drink
	Page    int
	Total   int64
	HasPrev bool
	HasNext bool
}

type DrinkRepository interface {
	AddDrink(ctx context.Context, drink model.Drink) (*model.Drink, error)
	AddCategory(ctx context.Context, name string) (*model.Category, error)
	AddGlass(ctx context.Context, name string) (*model.Glass, error)
	AddIngredient(ctx context.Context, name string) (*model.Ingredient, error)
	AddLanguage(ctx context.Context, code string, name string) (*model.Language, error)
	FindDrinks(ctx context.Context, filter DrinkFilter) (*DrinkPage, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	GetDrinkByID(ctx context.Context, drinkID uint) (*model.Drink, error)
	GetGlassByName(ctx context.Context, name string) (*model.Glass, error)
	GetGlasses(ctx context.Context) ([]*model.Glass, error)
	GetLanguageByCode(ctx context.Context, code string) (*model.Language, error)
	GetLanguages(ctx context.Context) ([]*model.Language, error)
}

// AddDrink writes a drink together with its instructions and ingredient links
// in one transaction so a partial recipe is never observable. A drink with
// the same name is updated in place.
func (r *Repository) AddDrink(ctx context.Context, drink model.Drink) (*model.Drink, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).Create(&drink)

		return result.Error
	})
	if err != nil {
		return nil, err
	}

	return &drink, nil
}

func (r *Repository) GetDrinkByID(ctx context.Context, drinkID uint) (*model.Drink, error) {
	var drink model.Drink

	result := r.DB.WithContext(ctx).
		Joins("Category").
		Joins("Glass").
		Preload("Instructions", func(db *gorm.DB) *gorm.DB { return db.Order("instructions.language_id ASC") }).
		Preload("Instructions.Language").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&drink, drinkID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDrinkNotFound
		}

		return nil, result.Error
	}

	return &drink, nil
}

// FindDrinks applies the supplied criteria and returns one page of matches.
// Results are ordered by drink id ascending so pagination is stable across
// calls.
func (r *Repository) FindDrinks(ctx context.Context, filter DrinkFilter) (*DrinkPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PageSize < 1 {
		filter.PageSize = DefaultPageSize
	}

	var total int64

	countQuery := r.DB.WithContext(ctx).Model(&model.Drink{})
	updateQueryWithCriteria(filter, countQuery)

	if result := countQuery.Count(&total); result.Error != nil {
		return nil, result.Error
	}

	var drinks []*model.Drink

	query := r.DB.WithContext(ctx).
		Joins("Category").
		Joins("Glass").
		Order("drinks.id ASC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize)
	updateQueryWithCriteria(filter, query)

	if result := query.Find(&drinks); result.Error != nil {
		return nil, result.Error
	}

	return &DrinkPage{
		Drinks:  drinks,
		Page:    filter.Page,
		Total:   total,
		HasPrev: filter.Page > 1,
		HasNext: int64(filter.Page*filter.PageSize) < total,
	}, nil
}

func updateQueryWithCriteria(filter DrinkFilter, query *gorm.DB) {
	if filter.Name != nil {
		pattern := "%" + strings.ToLower(*filter.Name) + "%"
		query.Where("drinks.name ILIKE ?", pattern)
	}

	if filter.CategoryID != nil {
		query.Where("drinks.category_id = ?", *filter.CategoryID)
	}

	if filter.IngredientID != nil {
		query.Where("drinks.id IN (SELECT drink_id FROM drinks_ingredients WHERE ingredient_id = ?)", *filter.IngredientID)
	}

	if filter.Alcoholic != nil {
		query.Where("drinks.alcoholic = ?", *filter.Alcoholic)
	}
}

// AddIngredient has get-or-create semantics; import resolves ingredient names
// through it.
func (r *Repository) AddIngredient(ctx context.Context, name string) (*model.Ingredient, error) {
	ingredient := model.Ingredient{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&ingredient); result.Error != nil {
		return nil, result.Error
	}

	if ingredient.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&ingredient); result.Error != nil {
			return nil, result.Error
		}
	}

	return &ingredient, nil
}

func (r *Repository) AddCategory(ctx context.Context, name string) (*model.Category, error) {
	category := model.Category{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&category); result.Error != nil {
		return nil, result.Error
	}

	if category.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&category); result.Error != nil {
			return nil, result.Error
		}
	}

	return &category, nil
}

func (r *Repository) AddGlass(ctx context.Context, name string) (*model.Glass, error) {
	glass := model.Glass{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&glass); result.Error != nil {
		return nil, result.Error
	}

	if glass.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&glass); result.Error != nil {
			return nil, result.Error
		}
	}

	return &glass, nil
}

func (r *Repository) AddLanguage(ctx context.Context, code string, name string) (*model.Language, error) {
	language := model.Language{Code: code, Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&language); result.Error != nil {
		return nil, result.Error
	}

	if language.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("code = ?", code).First(&language); result.Error != nil {
			return nil, result.Error
		}
	}

	return &language, nil
}

func (r *Repository) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category

	result := r.DB.WithContext(ctx).Where("name = ?", name).First(&category)
	if result.Error != nil {
		return nil, result.Error
	}

	return &category, nil
}

func (r *Repository) GetGlassByName(ctx context.Context, name string) (*model.Glass, error) {
	var glass model.Glass

	result := r.DB.WithContext(ctx).Where("name = ?", name).First(&glass)
	if result.Error != nil {
		return nil, result.Error
	}

	return &glass, nil
}

func (r *Repository) GetGlasses(ctx context.Context) ([]*model.Glass, error) {
	var glasses []*model.Glass

	if result := r.DB.WithContext(ctx).Order("name ASC").Find(&glasses); result.Error != nil {
		return nil, result.Error
	}

	return glasses, nil
}

func (r *Repository) GetLanguageByCode(ctx context.Context, code string) (*model.Language, error) {
	var language model.Language

	result := r.DB.WithContext(ctx).Where("code = ?", code).First(&language)
	if result.Error != nil {
		return nil, result.Error
	}

	return &language, nil
}

func (r *Repository) GetLanguages(ctx context.Context) ([]*model.Language, error) {
	var languages []*model.Language

	if result := r.DB.WithContext(ctx).Order("id ASC").Find(&languages); result.Error != nil {
		return nil, result.Error
	}

	return languages, nil
}
