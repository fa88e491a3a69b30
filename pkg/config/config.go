// Package config loads user settings and provider credentials. Settings
// live in a JSON file (user_settings.json by default); credentials come
// from the environment, optionally seeded from a .env file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	OperationsFile string
	ReportsDir     string
	Currencies     []string
	Stocks         []string

	ExchangeURL    string
	ExchangeAPIKey string
	StocksURL      string
	StocksAPIKey   string
}

// envBindings maps viper keys to the environment variable names the
// original deployment already uses.
var envBindings = map[string]string{
	"exchange_url":     "URL_EXCHANGER",
	"exchange_api_key": "API_KEY_EXCHANGER",
	"stocks_url":       "URL_STOCKS",
	"stocks_api_key":   "API_KEY_STOCKS",
}

// Load builds the configuration. An explicit path must exist; with an empty
// path a user_settings.json in the working directory is used when present,
// and defaults otherwise.
func Load(path string) (*Config, error) {
	// .env is optional, the environment may already be populated.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("reports_dir", "reports_data")
	v.SetDefault("exchange_url", "https://api.apilayer.com/exchangerates_data/convert")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	} else {
		v.SetConfigName("user_settings")
		v.SetConfigType("json")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading settings file: %w", err)
			}
		}
	}

	return &Config{
		OperationsFile: v.GetString("operations_file"),
		ReportsDir:     v.GetString("reports_dir"),
		Currencies:     v.GetStringSlice("user_currencies"),
		Stocks:         v.GetStringSlice("user_stocks"),
		ExchangeURL:    v.GetString("exchange_url"),
		ExchangeAPIKey: v.GetString("exchange_api_key"),
		StocksURL:      v.GetString("stocks_url"),
		StocksAPIKey:   v.GetString("stocks_api_key"),
	}, nil
}
