package sommelier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/model"
)

const UnknownWineName = "Okänt vin"

const labelSystemPrompt = "You are a sommelier API. Analyze wine labels and return structured JSON data. " +
	"Always respond with ONLY valid JSON, no markdown or explanations."

const labelUserPrompt = `Analyze the wine label in this image. Return a JSON object with:

{
  "name": "Full name of the wine",
  "producer": "Producer/winery name",
  "vintage": 2020,
  "region": "Region/Country",
  "grapes": ["Shiraz", "Cabernet"],
  "food_pairing_tags": ["Nöt", "Lamm"],
  "description": "A short 1-sentence description of the wine's likely taste profile",
  "serving_temperature": "16-18°C",
  "storage_potential": "Drink now or cellar 5-8 years",
  "flavor_profile": {"body": 4, "acidity": 3, "tannins": 4, "sweetness": 1}
}

IMPORTANT for food_pairing_tags: Choose 1-3 tags STRICTLY from this list:
%s

flavor_profile scores go from 1 (low) to 5 (high).
If you cannot determine a field, set it to null (or empty array for arrays).`

// LabelAnalysis is what the vision model could read from a label.
type LabelAnalysis struct {
	Name               string               `json:"name"`
	Producer           *string              `json:"producer"`
	Vintage            *int                 `json:"vintage"`
	Region             *string              `json:"region"`
	Grapes             []string             `json:"grapes"`
	FoodPairingTags    []string             `json:"food_pairing_tags"`
	Description        *string              `json:"description"`
	ServingTemperature *string              `json:"serving_temperature"`
	StoragePotential   *string              `json:"storage_potential"`
	Flavor             *model.FlavorProfile `json:"flavor_profile"`
	Unnamed            bool                 `json:"-"`
}

func UnknownLabel() *LabelAnalysis {
	return &LabelAnalysis{
		Name:            UnknownWineName,
		Grapes:          []string{},
		FoodPairingTags: []string{},
		Unnamed:         true,
	}
}

type labelJSON struct {
	Name               *string      `json:"name"`
	Producer           *string      `json:"producer"`
	Vintage            flexibleYear `json:"vintage"              validate:"omitempty,min=1800,max=2100"`
	Region             *string      `json:"region"`
	Grapes             []string     `json:"grapes"`
	FoodPairingTags    []string     `json:"food_pairing_tags"`
	Description        *string      `json:"description"`
	ServingTemperature *string      `json:"serving_temperature"`
	StoragePotential   *string      `json:"storage_potential"`
	FlavorProfile      *flavorJSON  `json:"flavor_profile"`
}

type flavorJSON struct {
	Body      float64 `json:"body"      validate:"min=0,max=5"`
	Acidity   float64 `json:"acidity"   validate:"min=0,max=5"`
	Tannins   float64 `json:"tannins"   validate:"min=0,max=5"`
	Sweetness float64 `json:"sweetness" validate:"min=0,max=5"`
}

// AnalyzeLabel sends the label photo to the vision model. A reply that cannot be
// used is reported as an *EnrichmentFailure; a failed call wraps ErrModelUnavailable.
func (c *Client) AnalyzeLabel(ctx context.Context, image string) (*LabelAnalysis, error) {
	request := openai.ChatCompletionRequest{
		Model:     c.visionModel,
		MaxTokens: visionMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: labelSystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: fmt.Sprintf(labelUserPrompt, strings.Join(model.FoodTagNames(), ", ")),
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageDataURL(image)},
					},
				},
			},
		},
	}

	content, err := c.complete(ctx, request)
	if err != nil {
		c.logger.Error("vision request failed", zap.Error(err))

		return nil, err
	}

	c.logger.Debug("vision response", zap.String("content", content))

	analysis, err := c.parseLabel(content)
	if err != nil {
		c.logger.Warn("could not use vision response", zap.Error(err))

		return nil, err
	}

	return analysis, nil
}

func (c *Client) parseLabel(content string) (*LabelAnalysis, error) {
	body := stripCodeFence(content)
	if body == "" {
		return nil, &EnrichmentFailure{Stage: StageEmpty, Raw: content, Err: errors.New("no content")}
	}

	var parsed labelJSON
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, &EnrichmentFailure{Stage: StageDecode, Raw: content, Err: err}
	}

	if err := c.validate.Struct(parsed); err != nil {
		return nil, &EnrichmentFailure{Stage: StageValidate, Raw: content, Err: err}
	}

	return parsed.toAnalysis(), nil
}

func (l labelJSON) toAnalysis() *LabelAnalysis {
	analysis := UnknownLabel()

	if name := optionalString(l.Name); name != nil {
		analysis.Name = *name
		analysis.Unnamed = false
	}

	analysis.Producer = optionalString(l.Producer)
	analysis.Region = optionalString(l.Region)
	analysis.Description = optionalString(l.Description)
	analysis.ServingTemperature = optionalString(l.ServingTemperature)
	analysis.StoragePotential = optionalString(l.StoragePotential)

	if l.Vintage != 0 {
		vintage := int(l.Vintage)
		analysis.Vintage = &vintage
	}

	for _, grape := range l.Grapes {
		if grape = strings.TrimSpace(grape); grape != "" {
			analysis.Grapes = append(analysis.Grapes, grape)
		}
	}

	analysis.FoodPairingTags = model.FilterFoodTags(l.FoodPairingTags)

	if l.FlavorProfile != nil {
		analysis.Flavor = &model.FlavorProfile{
			Body:      score(l.FlavorProfile.Body),
			Acidity:   score(l.FlavorProfile.Acidity),
			Tannins:   score(l.FlavorProfile.Tannins),
			Sweetness: score(l.FlavorProfile.Sweetness),
		}
	}

	return analysis
}

func score(value float64) int {
	return int(math.Round(value))
}

func imageDataURL(image string) string {
	if strings.HasPrefix(image, "data:") {
		return image
	}

	return "data:image/jpeg;base64," + image
}
