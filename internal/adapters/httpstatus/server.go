package httpstatus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const rootBody = "Discord Bot is running! 🤖"

// Readiness lo implementa el bot (true mientras el gateway está arriba).
type Readiness interface {
	Ready() bool
}

type Status struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
	BotReady  bool    `json:"botReady"`
}

type Server struct {
	ready   Readiness
	metrics http.Handler
	log     *slog.Logger
	started time.Time
	now     func() time.Time
	mux     chi.Router
}

// New arma las rutas; metrics puede ser nil (sin /metrics).
func New(ready Readiness, metrics http.Handler, log *slog.Logger) *Server {
	s := &Server{ready: ready, metrics: metrics, log: log, now: time.Now, mux: chi.NewRouter()}
	s.started = s.now()
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.Use(middleware.Recoverer)
	s.mux.Get("/", s.handleRoot)
	s.mux.Get("/status", s.handleStatus)
	if s.metrics != nil {
		s.mux.Method(http.MethodGet, "/metrics", s.metrics)
	}
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(rootBody))
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	st := Status{
		Status:    "online",
		Uptime:    now.Sub(s.started).Seconds(),
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		BotReady:  s.ready != nil && s.ready.Ready(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(st); err != nil {
		s.log.Warn("status encode", "err", err)
	}
}

// Start escucha hasta que ctx se cancela.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	s.log.Info("🌐 HTTP escuchando", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
