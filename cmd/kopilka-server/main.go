package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/mkraev/kopilka/pkg/config"
	"github.com/mkraev/kopilka/pkg/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kopilka",
	})

	var (
		port    = pflag.String("port", "3000", "Server port")
		cfgFile = pflag.StringP("config", "c", "", "Settings file (default is user_settings.json)")
	)
	pflag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}

	srv := server.New(cfg, logger)
	addr := fmt.Sprintf("0.0.0.0:%s", *port)
	logger.Info("starting server", "addr", addr)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
