package sommelier

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/configs"
)

var ErrModelUnavailable = errors.New("language model unavailable")

const (
	visionMaxTokens = 1000
	tagMaxTokens    = 100
)

type Client struct {
	api         *openai.Client
	visionModel string
	tagModel    string
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewClient(conf configs.OpenAI, logger *zap.Logger) *Client {
	clientConfig := openai.DefaultConfig(conf.APIKey)
	if conf.BaseURL != "" {
		clientConfig.BaseURL = conf.BaseURL
	}

	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		visionModel: conf.VisionModel,
		tagModel:    conf.TagModel,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

// complete returns the content of the first choice, or "" when the model returned none.
func (c *Client) complete(ctx context.Context, request openai.ChatCompletionRequest) (string, error) {
	response, err := c.api.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	if len(response.Choices) == 0 {
		return "", nil
	}

	return response.Choices[0].Message.Content, nil
}
