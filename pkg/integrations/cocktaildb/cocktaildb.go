package cocktaildb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"droscher.com/Mixology/pkg/model"
)

const (
	IntegrationName = "cocktaildb"
	DefaultBaseURL  = "https://www.thecocktaildb.com/api/json/v1/1"

	requestTimeout = 30 * time.Second
	maxPositions   = 15 // the feed carries strIngredient1..15 / strMeasure1..15
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(logger *zap.Logger) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, logger)
}

func NewClientWithBaseURL(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

type nameList struct {
	Drinks []map[string]string `json:"drinks"`
}

// rawDrink holds one lookup record. Every value in the feed is a string or
// null, including the localized instruction variants keyed by language
// suffix.
type rawDrink map[string]*string

type lookupResponse struct {
	Drinks []rawDrink `json:"drinks"`
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "/list.php?c=list", "strCategory")
}

func (c *Client) ListGlasses(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "/list.php?g=list", "strGlass")
}

func (c *Client) ListIngredients(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "/list.php?i=list", "strIngredient1")
}

// ListDrinkIDs returns the ids of all drinks served in the named glass.
func (c *Client) ListDrinkIDs(ctx context.Context, glass string) ([]string, error) {
	query := strings.ReplaceAll(glass, " ", "_")

	var response nameList
	if err := c.get(ctx, "/filter.php?g="+url.QueryEscape(query), &response); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(response.Drinks))

	for _, drink := range response.Drinks {
		if id := drink["idDrink"]; id != "" {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (c *Client) LookupDrink(ctx context.Context, drinkID string) (*model.DrinkRecord, error) {
	var response lookupResponse
	if err := c.get(ctx, "/lookup.php?i="+url.QueryEscape(drinkID), &response); err != nil {
		return nil, err
	}

	if len(response.Drinks) == 0 {
		return nil, fmt.Errorf("no drink with id %s", drinkID)
	}

	return parseDrink(response.Drinks[0]), nil
}

func (c *Client) listNames(ctx context.Context, path string, key string) ([]string, error) {
	var response nameList
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(response.Drinks))

	for _, entry := range response.Drinks {
		if name := entry[key]; name != "" {
			names = append(names, strings.ToLower(name))
		}
	}

	return names, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	c.logger.Debug("fetching feed data", zap.String("url", request.URL.String()))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("feed returned %s for %s", response.Status, path)
	}

	return json.NewDecoder(response.Body).Decode(out)
}

// parseDrink maps a raw feed record onto the feed-neutral representation.
// strAlcoholic carries a tri-state ("Alcoholic", "Non alcoholic", "Optional
// alcohol") that splits into the two independent flags.
func parseDrink(raw rawDrink) *model.DrinkRecord {
	alcoholic := strings.ToLower(stringValue(raw["strAlcoholic"]))

	record := &model.DrinkRecord{
		Name:             strings.ToLower(stringValue(raw["strDrink"])),
		ImageAttribution: stringValue(raw["strImageAttribution"]),
		VideoURL:         stringValue(raw["strVideo"]),
		Alcoholic:        alcoholic == "alcoholic",
		OptionalAlc:      alcoholic == "optional alcohol",
		Category:         strings.ToLower(stringValue(raw["strCategory"])),
		Glass:            strings.ToLower(stringValue(raw["strGlass"])),
		LicenseCleared:   stringValue(raw["strCreativeCommonsConfirmed"]) == "Yes",
	}

	record.ImageURL = stringValue(raw["strDrinkThumb"])
	if record.ImageURL == "" {
		record.ImageURL = stringValue(raw["strImageSource"])
	}

	for position := 1; position <= maxPositions; position++ {
		name := stringValue(raw[fmt.Sprintf("strIngredient%d", position)])
		if name == "" {
			continue
		}

		record.Ingredients = append(record.Ingredients, model.IngredientMeasure{
			Name:     strings.ToLower(name),
			Quantity: strings.TrimSpace(stringValue(raw[fmt.Sprintf("strMeasure%d", position)])),
		})
	}

	for key, value := range raw {
		if !strings.HasPrefix(key, "strInstructions") || value == nil || *value == "" {
			continue
		}

		// The unsuffixed key is English; the rest carry a language code
		// suffix such as DE or ZH-HANS.
		code := strings.TrimPrefix(key, "strInstructions")
		if code == "" {
			code = "EN"
		}

		record.Instructions = append(record.Instructions, model.LocalizedText{
			LanguageCode: strings.ToUpper(code),
			Text:         *value,
		})
	}

	// Map iteration order is random; keep the output stable.
	sort.Slice(record.Instructions, func(i, j int) bool {
		return record.Instructions[i].LanguageCode < record.Instructions[j].LanguageCode
	})

	return record
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
