// Package service ties ingestion, analytics, rate enrichment and report
// persistence together for the command layer.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mkraev/kopilka/pkg/analytics"
	"github.com/mkraev/kopilka/pkg/config"
	"github.com/mkraev/kopilka/pkg/models"
	"github.com/mkraev/kopilka/pkg/parser"
	"github.com/mkraev/kopilka/pkg/rates"
	"github.com/mkraev/kopilka/pkg/reports"
	"github.com/mkraev/kopilka/pkg/views"
)

// SearchMode selects one of the search variants.
type SearchMode string

const (
	SearchKeyword   SearchMode = "keyword"
	SearchPhones    SearchMode = "phones"
	SearchTransfers SearchMode = "transfers"
)

var ErrNoOperationsFile = errors.New("no operations file given and none configured")

type Processor struct {
	cfg      *config.Config
	parser   *parser.Parser
	analyzer *analytics.Analyzer
	builder  *views.Builder
	reports  *reports.Writer
	logger   *log.Logger
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	analyzer := analytics.New(logger)
	client := rates.New(rates.Options{
		ExchangeURL:    cfg.ExchangeURL,
		ExchangeAPIKey: cfg.ExchangeAPIKey,
		StocksURL:      cfg.StocksURL,
		StocksAPIKey:   cfg.StocksAPIKey,
	}, logger)

	return &Processor{
		cfg:      cfg,
		parser:   parser.New(logger),
		analyzer: analyzer,
		builder:  views.NewBuilder(analyzer, client, logger),
		reports:  reports.NewWriter(cfg.ReportsDir, logger),
		logger:   logger,
	}
}

// Analyzer exposes the underlying analytics for callers that compose their
// own views.
func (p *Processor) Analyzer() *analytics.Analyzer {
	return p.analyzer
}

// LoadAliases adds header aliases for non-standard exports.
func (p *Processor) LoadAliases(path string) error {
	return p.parser.LoadAliases(path)
}

// LoadOperations reads transactions from the given file, falling back to
// the configured operations file when path is empty.
func (p *Processor) LoadOperations(path string) ([]models.Transaction, error) {
	if path == "" {
		path = p.cfg.OperationsFile
	}
	if path == "" {
		return nil, ErrNoOperationsFile
	}
	return p.parser.ProcessFile(path)
}

// Dashboard loads operations and composes the month-to-date dashboard for
// the reference date.
func (p *Processor) Dashboard(ctx context.Context, path, currentDate string) (*views.Response, error) {
	txs, err := p.LoadOperations(path)
	if err != nil {
		return nil, err
	}
	return p.builder.Dashboard(ctx, txs, currentDate, p.cfg.Currencies, p.cfg.Stocks)
}

// Cashback loads operations and estimates per-category cashback for the
// given year and month.
func (p *Processor) Cashback(path string, year, month int) (map[string]float64, error) {
	txs, err := p.LoadOperations(path)
	if err != nil {
		return nil, err
	}
	return p.analyzer.CashbackByCategory(txs, year, month), nil
}

// Savings loads operations and computes the round-up savings total for the
// given month.
func (p *Processor) Savings(path, month string, limit int64) (float64, error) {
	txs, err := p.LoadOperations(path)
	if err != nil {
		return 0, err
	}
	return p.analyzer.RoundUpSavings(txs, month, limit)
}

// Search loads operations and runs the selected search variant.
func (p *Processor) Search(path string, mode SearchMode, query string) ([]models.Transaction, error) {
	txs, err := p.LoadOperations(path)
	if err != nil {
		return nil, err
	}

	switch mode {
	case SearchKeyword:
		return p.analyzer.SearchByKeyword(txs, query), nil
	case SearchPhones:
		return p.analyzer.FindPhoneNumbers(txs), nil
	case SearchTransfers:
		return p.analyzer.FindPersonalTransfers(txs), nil
	default:
		return nil, fmt.Errorf("unknown search mode %q", mode)
	}
}

// SaveReport persists a result under the configured reports directory.
func (p *Processor) SaveReport(kind string, v any) (string, error) {
	return p.reports.SaveJSON(kind, "", v)
}
