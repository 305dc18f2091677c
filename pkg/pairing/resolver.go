package pairing

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/sommelier"
)

type keyword struct {
	word string
	tags []model.FoodTag
}

// keywords is scanned in order; the first substring hit wins.
var keywords = []keyword{
	{"nötkött", []model.FoodTag{model.TagBeef}},
	{"nötfärs", []model.FoodTag{model.TagBeef}},
	{"biff", []model.FoodTag{model.TagBeef}},
	{"entrecôte", []model.FoodTag{model.TagBeef}},
	{"oxfilé", []model.FoodTag{model.TagBeef}},
	{"kalv", []model.FoodTag{model.TagLightMeat}},
	{"kalvkött", []model.FoodTag{model.TagLightMeat}},
	{"gris", []model.FoodTag{model.TagPork}},
	{"fläsk", []model.FoodTag{model.TagPork}},
	{"fläskkött", []model.FoodTag{model.TagPork}},
	{"kyckling", []model.FoodTag{model.TagPoultry}},
	{"anka", []model.FoodTag{model.TagPoultry}},
	{"kalkon", []model.FoodTag{model.TagPoultry}},
	{"vilt", []model.FoodTag{model.TagGame}},
	{"älg", []model.FoodTag{model.TagGame}},
	{"rådjur", []model.FoodTag{model.TagGame}},
	{"hjort", []model.FoodTag{model.TagGame}},
	{"lamm", []model.FoodTag{model.TagLamb}},
	{"lammkött", []model.FoodTag{model.TagLamb}},
	{"fisk", []model.FoodTag{model.TagFish}},
	{"lax", []model.FoodTag{model.TagFish}},
	{"torsk", []model.FoodTag{model.TagFish}},
	{"skaldjur", []model.FoodTag{model.TagShellfish}},
	{"räkor", []model.FoodTag{model.TagShellfish}},
	{"hummer", []model.FoodTag{model.TagShellfish}},
	{"musslor", []model.FoodTag{model.TagShellfish}},
	{"vegetariskt", []model.FoodTag{model.TagVegetarian}},
	{"vegan", []model.FoodTag{model.TagVegetarian}},
	{"grönsaker", []model.FoodTag{model.TagVegetarian}},
	{"aperitif", []model.FoodTag{model.TagAperitif}},
	{"mingel", []model.FoodTag{model.TagAperitif}},
}

// TagSuggester is the model fallback used when no keyword matches.
type TagSuggester interface {
	SuggestFoodTags(ctx context.Context, food string) ([]string, error)
}

type Resolver struct {
	suggester TagSuggester
	logger    *zap.Logger
}

func NewResolver(suggester TagSuggester, logger *zap.Logger) *Resolver {
	return &Resolver{suggester: suggester, logger: logger}
}

// Resolve maps a dish to food tags. An empty result means nothing matched.
func (r *Resolver) Resolve(ctx context.Context, food string) ([]string, error) {
	normalized := strings.ToLower(strings.TrimSpace(food))
	if normalized == "" {
		return []string{}, nil
	}

	if tags, found := lookup(normalized); found {
		return tags, nil
	}

	if r.suggester == nil {
		return []string{}, nil
	}

	tags, err := r.suggester.SuggestFoodTags(ctx, strings.TrimSpace(food))
	if err != nil {
		var failure *sommelier.EnrichmentFailure
		if errors.As(err, &failure) {
			r.logger.Warn("unusable tag suggestion", zap.String("food", food), zap.Error(err))

			return []string{}, nil
		}

		return nil, err
	}

	return model.FilterFoodTags(tags), nil
}

func lookup(food string) ([]string, bool) {
	for _, entry := range keywords {
		if strings.Contains(food, entry.word) {
			tags := make([]string, 0, len(entry.tags))
			for _, tag := range entry.tags {
				tags = append(tags, string(tag))
			}

			return tags, true
		}
	}

	return nil, false
}
