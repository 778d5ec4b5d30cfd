package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "github.com/sharondrury/arrow-game/internal/adapters/http"
	"github.com/sharondrury/arrow-game/internal/generator"
	"github.com/sharondrury/arrow-game/internal/hint"
	"github.com/sharondrury/arrow-game/internal/ports"
	"github.com/sharondrury/arrow-game/internal/solver"
	"github.com/sharondrury/arrow-game/internal/usecase"
	"github.com/sharondrury/arrow-game/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "bfs", "solver to use: bfs|dfs")
	maxStates := flag.Int("max-states", solver.DefaultMaxStates, "solver state budget per candidate")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	// Choose solver: BFS by default, DFS as an alternative via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "dfs":
		s = solver.NewDFSSolver()
	default:
		s = solver.NewBFSSolver()
	}

	// Wire providers → use cases → HTTP adapter
	g := generator.NewRandomGenerator(s)
	g.MaxStates = *maxStates
	hin := hint.NewFirstExit()
	v := validator.New()
	uc := usecase.NewService(s, g, hin, v)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "solver", *solverKind, "maxStates", *maxStates)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
