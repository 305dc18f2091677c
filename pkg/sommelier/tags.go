package sommelier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/model"
)

const tagSystemPrompt = "Du matchar mat med vinkategorier. Svara ENDAST med en JSON-array.\n\nTillgängliga taggar: %s"

const tagUserPrompt = `Vilka taggar matchar bäst med: "%s"? Svara med JSON-array, t.ex: ["Fisk", "Skaldjur"]`

// SuggestFoodTags asks the cheaper model which food tags fit a dish. The answer is
// filtered to the known tags; an unreadable answer is an *EnrichmentFailure.
func (c *Client) SuggestFoodTags(ctx context.Context, food string) ([]string, error) {
	request := openai.ChatCompletionRequest{
		Model:     c.tagModel,
		MaxTokens: tagMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(tagSystemPrompt, strings.Join(model.FoodTagNames(), ", ")),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(tagUserPrompt, food),
			},
		},
	}

	content, err := c.complete(ctx, request)
	if err != nil {
		c.logger.Error("tag request failed", zap.Error(err))

		return nil, err
	}

	body := stripCodeFence(content)
	if body == "" {
		return []string{}, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(body), &tags); err != nil {
		return nil, &EnrichmentFailure{Stage: StageDecode, Raw: content, Err: err}
	}

	return model.FilterFoodTags(tags), nil
}
