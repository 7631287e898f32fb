package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/usecase"
)

// Server exposes the sentiment analysis API: GET /pd and GET /news snapshot
// the matching category queue, run one classification and return the
// combined payload. Queries are read-only with respect to queue state.
type Server struct {
	analysisUC *usecase.AnalysisUsecase
	registry   *domain.ChannelRegistry

	server *http.Server
	host   string
	port   int
}

// NewServer creates a new API server
func NewServer(analysisUC *usecase.AnalysisUsecase, registry *domain.ChannelRegistry, host string, port int) *Server {
	return &Server{
		analysisUC: analysisUC,
		registry:   registry,
		host:       host,
		port:       port,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.host, s.port),
		Handler: s.Handler(),
	}

	fmt.Printf("[API] Starting HTTP server on %s\n", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Shutdown(context.Background())
	}
	return nil
}

// Handler builds the routed handler with the CORS middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Query endpoints
	mux.HandleFunc("/pd", s.handlePumpDump)
	mux.HandleFunc("/news", s.handleNews)

	// Monitored channel overview
	mux.HandleFunc("/channels", s.handleChannels)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return corsMiddleware(mux)
}

func (s *Server) handlePumpDump(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := s.analysisUC.AnalyzePumpDump(r.Context())
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	s.writeJSON(w, report)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := s.analysisUC.AnalyzeNews(r.Context())
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	s.writeJSON(w, report)
}

func (s *Server) handleChannels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	channels := s.registry.List()
	s.writeJSON(w, map[string]interface{}{
		"channels": channels,
		"count":    len(channels),
	})
}

// corsMiddleware applies the wide-open CORS policy: this is a public-read
// API, so all origins, methods and headers are permitted.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ============ Helpers ============

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
