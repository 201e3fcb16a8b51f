package integrations

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Mixology/pkg/integrations/cocktaildb"
	"droscher.com/Mixology/pkg/model"
)

// DrinkSource is an external recipe feed the catalog can be imported from.
type DrinkSource interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListGlasses(ctx context.Context) ([]string, error)
	ListIngredients(ctx context.Context) ([]string, error)
	ListDrinkIDs(ctx context.Context, glass string) ([]string, error)
	LookupDrink(ctx context.Context, drinkID string) (*model.DrinkRecord, error)
}

func GetIntegration(name string, logger *zap.Logger) DrinkSource {
	if name == cocktaildb.IntegrationName {
		return cocktaildb.NewClient(logger)
	}

	return nil
}
