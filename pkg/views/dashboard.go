// Package views composes the analytical views into user-facing responses.
package views

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/mkraev/kopilka/pkg/analytics"
	"github.com/mkraev/kopilka/pkg/models"
	"github.com/mkraev/kopilka/pkg/rates"
)

// RateProvider resolves currency codes and stock tickers to rates. A nil
// provider, or one that returns nothing, leaves the corresponding dashboard
// sections empty without affecting the rest.
type RateProvider interface {
	CurrencyRates(ctx context.Context, currencies []string) []rates.CurrencyRate
	StockPrices(ctx context.Context, stocks []string) []rates.StockPrice
}

// Response is the aggregate dashboard payload.
type Response struct {
	Greeting        string                     `json:"greeting"`
	Cards           []analytics.CardSummary    `json:"cards"`
	TopTransactions []analytics.TopTransaction `json:"top_transactions"`
	CurrencyRates   []rates.CurrencyRate       `json:"currency_rates"`
	StockRates      []rates.StockPrice         `json:"stock_rates"`
}

type Builder struct {
	analyzer *analytics.Analyzer
	rates    RateProvider
	logger   *log.Logger
}

func NewBuilder(analyzer *analytics.Analyzer, provider RateProvider, logger *log.Logger) *Builder {
	return &Builder{
		analyzer: analyzer,
		rates:    provider,
		logger:   logger,
	}
}

// Dashboard builds the month-to-date view for the given reference date:
// greeting, per-card spending and top expenses over the month window, plus
// the tracked currency and stock rates. An unparseable reference date is
// the only error; rate provider failures leave empty lists.
func (b *Builder) Dashboard(ctx context.Context, txs []models.Transaction, currentDate string, currencies, stocks []string) (*Response, error) {
	filtered, err := b.analyzer.FilterByMonth(txs, currentDate)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Greeting:        b.analyzer.Greeting(currentDate),
		Cards:           b.analyzer.CardSummaries(filtered),
		TopTransactions: b.analyzer.TopExpenses(filtered),
		CurrencyRates:   []rates.CurrencyRate{},
		StockRates:      []rates.StockPrice{},
	}

	if b.rates != nil {
		if fetched := b.rates.CurrencyRates(ctx, currencies); fetched != nil {
			resp.CurrencyRates = fetched
		}
		if fetched := b.rates.StockPrices(ctx, stocks); fetched != nil {
			resp.StockRates = fetched
		}
	}

	b.logger.Info("dashboard composed",
		"cards", len(resp.Cards),
		"top_transactions", len(resp.TopTransactions),
		"currency_rates", len(resp.CurrencyRates),
		"stock_rates", len(resp.StockRates))
	return resp, nil
}
