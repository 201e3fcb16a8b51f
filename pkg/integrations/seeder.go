package integrations

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Mixology/pkg/model"
	"droscher.com/Mixology/pkg/repository"
)

// staticLanguages mirrors the instruction languages the feed publishes.
var staticLanguages = []model.Language{
	{Code: "EN", Name: "English"},
	{Code: "DE", Name: "German"},
	{Code: "ES", Name: "Spanish"},
	{Code: "FR", Name: "French"},
	{Code: "IT", Name: "Italian"},
	{Code: "ZH-HANS", Name: "Mandarin Chinese, Simplified"},
	{Code: "ZH-HANT", Name: "Mandarin Chinese, Traditional"},
}

// Seeder imports reference data and the drink catalog from a feed. It is a
// one-shot batch job, not part of the request path.
type Seeder struct {
	source DrinkSource
	repo   repository.DrinkRepository
	logger *zap.Logger
}

func NewSeeder(source DrinkSource, repo repository.DrinkRepository, logger *zap.Logger) *Seeder {
	return &Seeder{source: source, repo: repo, logger: logger}
}

// Run loads reference data first, then every license-cleared drink. A record
// that fails to import is logged and skipped; the accumulated errors are
// returned once the run finishes.
func (s *Seeder) Run(ctx context.Context) error {
	languages, err := s.seedLanguages(ctx)
	if err != nil {
		return err
	}

	if err := s.seedReferenceData(ctx); err != nil {
		return err
	}

	glasses, err := s.repo.GetGlasses(ctx)
	if err != nil {
		return err
	}

	var errs error

	for _, glass := range glasses {
		ids, err := s.source.ListDrinkIDs(ctx, glass.Name)
		if multierr.AppendInto(&errs, err) {
			s.logger.Error("error listing drinks for glass", zap.String("glass", glass.Name), zap.Error(err))

			continue
		}

		for _, id := range ids {
			if err := s.importDrink(ctx, id, languages); err != nil {
				s.logger.Error("error importing drink", zap.String("drink_id", id), zap.Error(err))
				errs = multierr.Append(errs, err)
			}
		}
	}

	return errs
}

func (s *Seeder) seedLanguages(ctx context.Context) (map[string]uint, error) {
	languages := make(map[string]uint, len(staticLanguages))

	for _, language := range staticLanguages {
		created, err := s.repo.AddLanguage(ctx, language.Code, language.Name)
		if err != nil {
			return nil, err
		}

		languages[created.Code] = created.ID
	}

	return languages, nil
}

func (s *Seeder) seedReferenceData(ctx context.Context) error {
	categories, err := s.source.ListCategories(ctx)
	if err != nil {
		return err
	}

	for _, name := range categories {
		if _, err := s.repo.AddCategory(ctx, name); err != nil {
			return err
		}
	}

	glasses, err := s.source.ListGlasses(ctx)
	if err != nil {
		return err
	}

	for _, name := range glasses {
		if _, err := s.repo.AddGlass(ctx, name); err != nil {
			return err
		}
	}

	ingredients, err := s.source.ListIngredients(ctx)
	if err != nil {
		return err
	}

	for _, name := range ingredients {
		if _, err := s.repo.AddIngredient(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

// importDrink maps one feed record onto the drink graph and writes it. Only
// license-cleared records are persisted; ingredient names resolve
// get-or-create.
func (s *Seeder) importDrink(ctx context.Context, id string, languages map[string]uint) error {
	record, err := s.source.LookupDrink(ctx, id)
	if err != nil {
		return err
	}

	if !record.LicenseCleared {
		s.logger.Debug("skipping drink without license clearance", zap.String("drink_id", id))

		return nil
	}

	category, err := s.repo.GetCategoryByName(ctx, record.Category)
	if err != nil {
		return fmt.Errorf("resolving category %q: %w", record.Category, err)
	}

	glass, err := s.repo.GetGlassByName(ctx, record.Glass)
	if err != nil {
		return fmt.Errorf("resolving glass %q: %w", record.Glass, err)
	}

	drink := model.Drink{
		Name:             record.Name,
		ImageURL:         record.ImageURL,
		ImageAttribution: record.ImageAttribution,
		VideoURL:         record.VideoURL,
		Alcoholic:        record.Alcoholic,
		OptionalAlc:      record.OptionalAlc,
		CategoryID:       category.ID,
		GlassID:          glass.ID,
	}

	for _, measure := range record.Ingredients {
		ingredient, err := s.repo.AddIngredient(ctx, measure.Name)
		if err != nil {
			return fmt.Errorf("resolving ingredient %q: %w", measure.Name, err)
		}

		drink.Ingredients = append(drink.Ingredients, model.DrinkIngredient{
			IngredientID: ingredient.ID,
			Quantity:     measure.Quantity,
		})
	}

	for _, instruction := range record.Instructions {
		languageID, found := languages[instruction.LanguageCode]
		if !found {
			s.logger.Warn("skipping instructions in unknown language",
				zap.String("drink_id", id), zap.String("language", instruction.LanguageCode))

			continue
		}

		drink.Instructions = append(drink.Instructions, model.Instruction{
			LanguageID: languageID,
			Text:       instruction.Text,
		})
	}

	if _, err := s.repo.AddDrink(ctx, drink); err != nil {
		return fmt.Errorf("saving drink %q: %w", record.Name, err)
	}

	return nil
}
