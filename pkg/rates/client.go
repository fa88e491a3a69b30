// Package rates fetches currency exchange rates and stock quotes from
// external providers. It degrades instead of failing: an item that cannot
// be fetched is omitted, and a missing credential yields an empty result.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// baseCurrency is what every exchange rate is quoted against.
const baseCurrency = "RUB"

// fetchConcurrency bounds parallel provider requests.
const fetchConcurrency = 4

// CurrencyRate is one currency's rate against the base currency.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is one ticker's last quoted price.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// Options carries provider endpoints and credentials, usually taken from
// config.
type Options struct {
	ExchangeURL    string
	ExchangeAPIKey string
	StocksURL      string
	StocksAPIKey   string
	Timeout        time.Duration
}

type Client struct {
	httpClient *http.Client
	opts       Options
	logger     *log.Logger
}

func New(opts Options, logger *log.Logger) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		opts:       opts,
		logger:     logger,
	}
}

// CurrencyRates resolves each currency code to its rate against the base
// currency. Codes that fail to resolve are omitted; without a credential
// the result is empty.
func (c *Client) CurrencyRates(ctx context.Context, currencies []string) []CurrencyRate {
	if c.opts.ExchangeAPIKey == "" {
		c.logger.Warn("exchange api key is not set, skipping currency rates")
		return nil
	}

	results := make([]*CurrencyRate, len(currencies))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, code := range currencies {
		i, code := i, code
		g.Go(func() error {
			rate, err := c.fetchRate(ctx, code)
			if err != nil {
				c.logger.Warn("failed to fetch currency rate", "currency", code, "error", err)
				return nil
			}
			results[i] = &CurrencyRate{Currency: code, Rate: rate}
			return nil
		})
	}
	_ = g.Wait()

	rates := make([]CurrencyRate, 0, len(currencies))
	for _, r := range results {
		if r != nil {
			rates = append(rates, *r)
		}
	}

	c.logger.Info("currency rates fetched", "requested", len(currencies), "resolved", len(rates))
	return rates
}

// StockPrices resolves each ticker to its last price. Tickers that fail to
// resolve are omitted; without a credential the result is empty.
func (c *Client) StockPrices(ctx context.Context, stocks []string) []StockPrice {
	if c.opts.StocksAPIKey == "" {
		c.logger.Warn("stocks api key is not set, skipping stock prices")
		return nil
	}

	results := make([]*StockPrice, len(stocks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, symbol := range stocks {
		i, symbol := i, symbol
		g.Go(func() error {
			price, err := c.fetchPrice(ctx, symbol)
			if err != nil {
				c.logger.Warn("failed to fetch stock price", "stock", symbol, "error", err)
				return nil
			}
			results[i] = &StockPrice{Stock: symbol, Price: price}
			return nil
		})
	}
	_ = g.Wait()

	prices := make([]StockPrice, 0, len(stocks))
	for _, p := range results {
		if p != nil {
			prices = append(prices, *p)
		}
	}

	c.logger.Info("stock prices fetched", "requested", len(stocks), "resolved", len(prices))
	return prices
}

func (c *Client) fetchRate(ctx context.Context, code string) (float64, error) {
	params := url.Values{}
	params.Set("from", code)
	params.Set("to", baseCurrency)
	params.Set("amount", "1")

	var body struct {
		Result *float64 `json:"result"`
	}
	if err := c.getJSON(ctx, c.opts.ExchangeURL, params, c.opts.ExchangeAPIKey, &body); err != nil {
		return 0, err
	}
	if body.Result == nil {
		return 0, fmt.Errorf("response has no result field")
	}
	return decimal.NewFromFloat(*body.Result).Round(2).InexactFloat64(), nil
}

func (c *Client) fetchPrice(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var body struct {
		Price *float64 `json:"price"`
	}
	if err := c.getJSON(ctx, c.opts.StocksURL, params, c.opts.StocksAPIKey, &body); err != nil {
		return 0, err
	}
	if body.Price == nil {
		return 0, fmt.Errorf("response has no price field")
	}
	return decimal.NewFromFloat(*body.Price).Round(2).InexactFloat64(), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, apiKey string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("apikey", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
