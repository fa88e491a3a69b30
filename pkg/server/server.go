// Package server exposes the analytics over HTTP. Operations files are
// uploaded per request; nothing is stored between calls.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/mkraev/kopilka/pkg/analytics"
	"github.com/mkraev/kopilka/pkg/config"
	"github.com/mkraev/kopilka/pkg/models"
	"github.com/mkraev/kopilka/pkg/parser"
	"github.com/mkraev/kopilka/pkg/rates"
	"github.com/mkraev/kopilka/pkg/service"
	"github.com/mkraev/kopilka/pkg/views"
)

type Server struct {
	cfg      *config.Config
	logger   *log.Logger
	mux      *http.ServeMux
	parser   *parser.Parser
	analyzer *analytics.Analyzer
	builder  *views.Builder
}

func New(cfg *config.Config, logger *log.Logger) *Server {
	analyzer := analytics.New(logger)
	client := rates.New(rates.Options{
		ExchangeURL:    cfg.ExchangeURL,
		ExchangeAPIKey: cfg.ExchangeAPIKey,
		StocksURL:      cfg.StocksURL,
		StocksAPIKey:   cfg.StocksAPIKey,
	}, logger)

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		mux:      http.NewServeMux(),
		parser:   parser.New(logger),
		analyzer: analyzer,
		builder:  views.NewBuilder(analyzer, client, logger),
	}
	s.setupRoutes()
	return s
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// Handler returns the route multiplexer, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/dashboard", s.withLogging(s.handleDashboard))
	s.mux.HandleFunc("/api/cashback", s.withLogging(s.handleCashback))
	s.mux.HandleFunc("/api/savings", s.withLogging(s.handleSavings))
	s.mux.HandleFunc("/api/search", s.withLogging(s.handleSearch))
}

// readOperations pulls the uploaded operations file out of the request and
// parses it.
func (s *Server) readOperations(r *http.Request) ([]models.Transaction, error) {
	file, header, err := r.FormFile("operations")
	if err != nil {
		return nil, fmt.Errorf("operations file required: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read operations file: %w", err)
	}
	return s.parser.ProcessBytes(data, header.Filename)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	txs, err := s.readOperations(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read operations", err)
		return
	}

	date := r.FormValue("date")
	resp, err := s.builder.Dashboard(r.Context(), txs, date, s.cfg.Currencies, s.cfg.Stocks)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to build dashboard", err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCashback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	txs, err := s.readOperations(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read operations", err)
		return
	}

	year, err := strconv.Atoi(r.FormValue("year"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "year required", err)
		return
	}
	month, err := strconv.Atoi(r.FormValue("month"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "month required", err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.analyzer.CashbackByCategory(txs, year, month))
}

func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	txs, err := s.readOperations(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read operations", err)
		return
	}

	month := r.FormValue("month")
	limit, err := strconv.ParseInt(r.FormValue("limit"), 10, 64)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "limit required", err)
		return
	}

	total, err := s.analyzer.RoundUpSavings(txs, month, limit)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to compute savings", err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]float64{"total_saved": total})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	txs, err := s.readOperations(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read operations", err)
		return
	}

	var found []models.Transaction
	switch mode := service.SearchMode(r.FormValue("mode")); mode {
	case service.SearchPhones:
		found = s.analyzer.FindPhoneNumbers(txs)
	case service.SearchTransfers:
		found = s.analyzer.FindPersonalTransfers(txs)
	case service.SearchKeyword, "":
		found = s.analyzer.SearchByKeyword(txs, r.FormValue("query"))
	default:
		s.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown search mode %q", mode), nil)
		return
	}

	s.writeJSON(w, http.StatusOK, found)
}

// --- helpers ---

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log requests and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
