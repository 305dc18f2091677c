package integrations

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/configs"
	"droscher.com/Vinlogg/pkg/integrations/systembolaget"
	"droscher.com/Vinlogg/pkg/model"
)

// Retailer looks up a wine in a shop catalog. A nil product with a nil error means no hit.
type Retailer interface {
	FindWine(ctx context.Context, name string, producer *string) (*model.RetailerProduct, error)
}

func GetRetailer(name string, conf *configs.Config, logger *zap.Logger) Retailer {
	if name == systembolaget.IntegrationName {
		return systembolaget.NewSystembolagetIntegration(conf.Systembolaget, logger)
	}

	return nil
}

// Chain asks each retailer in order and returns the first hit.
type Chain struct {
	retailers []Retailer
	logger    *zap.Logger
}

func NewChain(conf *configs.Config, logger *zap.Logger) *Chain {
	chain := &Chain{logger: logger}

	for _, name := range conf.Integrations.Retailer {
		retailer := GetRetailer(name, conf, logger)
		if retailer == nil {
			logger.Warn("unknown retailer integration", zap.String("name", name))

			continue
		}

		chain.retailers = append(chain.retailers, retailer)
	}

	return chain
}

func NewChainOf(logger *zap.Logger, retailers ...Retailer) *Chain {
	return &Chain{retailers: retailers, logger: logger}
}

func (c *Chain) FindWine(ctx context.Context, name string, producer *string) (*model.RetailerProduct, error) {
	var errs error

	for _, retailer := range c.retailers {
		product, err := retailer.FindWine(ctx, name, producer)
		if err != nil {
			multierr.AppendInto(&errs, err)

			continue
		}

		if product != nil {
			return product, nil
		}
	}

	return nil, errs
}
