package model

// DrinkRecord is a feed-neutral drink representation produced by an import
// integration; names arrive lowercased and quantities stay free text.
type DrinkRecord struct {
	Name             string
	ImageURL         string
	ImageAttribution string
	VideoURL         string
	Alcoholic        bool
	OptionalAlc      bool
	Category         string
	Glass            string
	LicenseCleared   bool
	Ingredients      []IngredientMeasure
	Instructions     []LocalizedText
}

type IngredientMeasure struct {
	Name     string
	Quantity string
}

type LocalizedText struct {
	LanguageCode string
	Text         string
}
