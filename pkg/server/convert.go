package server

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"droscher.com/Mixology/pkg/model"
)

// Catalog names are stored lowercased (the feed is normalized on import) and
// title-cased on the way out.
var titleCaser = cases.Title(language.English)

type DrinkJSON struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	ImageURL         string `json:"image_url"`
	ImageAttribution string `json:"image_attribution"`
	Alcoholic        bool   `json:"alcoholic"`
	OptionalAlc      bool   `json:"optional_alc"`
	Category         string `json:"category"`
	CategoryID       uint   `json:"category_id"`
}

type UserJSON struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	LanguagePref string `json:"language_pref"`
}

func DrinkFromModel(drink *model.Drink) DrinkJSON {
	return DrinkJSON{
		ID:               drink.ID,
		Name:             titleCaser.String(drink.Name),
		ImageURL:         drink.ImageURL,
		ImageAttribution: drink.ImageAttribution,
		Alcoholic:        drink.Alcoholic,
		OptionalAlc:      drink.OptionalAlc,
		Category:         titleCaser.String(drink.Category.Name),
		CategoryID:       drink.CategoryID,
	}
}

func DrinksFromModel(drinks []*model.Drink) []DrinkJSON {
	out := make([]DrinkJSON, 0, len(drinks))

	for _, drink := range drinks {
		out = append(out, DrinkFromModel(drink))
	}

	return out
}

func UserFromModel(user *model.User) UserJSON {
	return UserJSON{
		ID:           user.ID,
		Username:     user.Username,
		LanguagePref: user.LanguagePref.Code,
	}
}
