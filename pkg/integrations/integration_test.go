package integrations_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"droscher.com/Vinlogg/configs"
	"droscher.com/Vinlogg/pkg/integrations"
	"droscher.com/Vinlogg/pkg/integrations/systembolaget"
	"droscher.com/Vinlogg/pkg/model"
)

type stubRetailer struct {
	product *model.RetailerProduct
	err     error
	calls   int
}

func (s *stubRetailer) FindWine(_ context.Context, _ string, _ *string) (*model.RetailerProduct, error) {
	s.calls++

	return s.product, s.err
}

func TestGetRetailer(t *testing.T) {
	conf := &configs.Config{}
	logger := zaptest.NewLogger(t)

	assert.IsType(t, &systembolaget.SystembolagetIntegration{}, integrations.GetRetailer("systembolaget", conf, logger))
	assert.Nil(t, integrations.GetRetailer("vinmonopolet", conf, logger))
}

func TestChain_FirstHitWins(t *testing.T) {
	failing := &stubRetailer{err: errors.New("down")}
	miss := &stubRetailer{}
	hit := &stubRetailer{product: &model.RetailerProduct{ArticleNumber: "7415"}}
	unused := &stubRetailer{product: &model.RetailerProduct{ArticleNumber: "1"}}

	chain := integrations.NewChainOf(zaptest.NewLogger(t), failing, miss, hit, unused)
	product, err := chain.FindWine(context.Background(), "Barolo", nil)

	assert.NoError(t, err)
	assert.Equal(t, "7415", product.ArticleNumber)
	assert.Equal(t, 0, unused.calls)
}

func TestChain_CombinesErrors(t *testing.T) {
	chain := integrations.NewChainOf(zaptest.NewLogger(t),
		&stubRetailer{err: errors.New("first")},
		&stubRetailer{err: errors.New("second")})

	product, err := chain.FindWine(context.Background(), "Barolo", nil)

	assert.Nil(t, product)
	assert.EqualError(t, err, "first; second")
}

func TestNewChain_SkipsUnknownNames(t *testing.T) {
	conf := &configs.Config{Integrations: configs.Integrations{Retailer: []string{"unknown"}}}

	product, err := integrations.NewChain(conf, zaptest.NewLogger(t)).FindWine(context.Background(), "Barolo", nil)

	assert.NoError(t, err)
	assert.Nil(t, product)
}
