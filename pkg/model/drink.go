package model

import "gorm.io/gorm"

type Language struct {
	gorm.Model
	Code string `gorm:"uniqueIndex"`
	Name string `gorm:"uniqueIndex"`
}

type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}

type Glass struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}

type Ingredient struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}

type Drink struct {
	gorm.Model
	Name             string `gorm:"uniqueIndex"`
	ImageURL         string
	ImageAttribution string
	VideoURL         string
	Alcoholic        bool
	OptionalAlc      bool
	CategoryID       uint
	GlassID          uint
	Instructions     []Instruction
	Ingredients      []DrinkIngredient

	Category Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Glass    Glass    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

// DrinkIngredient links a drink to an ingredient with a free-text quantity
// such as "2 oz". Unit and magnitude are not parsed.
type DrinkIngredient struct {
	gorm.Model
	DrinkID      uint `gorm:"uniqueIndex:idx_drink_ingredient"`
	IngredientID uint `gorm:"uniqueIndex:idx_drink_ingredient"`
	Quantity     string

	Ingredient Ingredient `gorm:"constraint:OnDelete:CASCADE;"`
}

func (DrinkIngredient) TableName() string {
	return "drinks_ingredients"
}

// Instruction holds the recipe steps for one drink in one language.
type Instruction struct {
	DrinkID    uint   `gorm:"primaryKey"`
	LanguageID uint   `gorm:"primaryKey"`
	Text       string `gorm:"not null"`

	Language Language `gorm:"constraint:OnDelete:CASCADE;"`
}
