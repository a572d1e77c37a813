// Command alnstats-server provides a REST API for alignment statistics.
//
// Usage:
//
//	alnstats-server [options]
//
// Options:
//
//	-port       Port to listen on (default: 8080)
//	-host       Host to bind to (default: localhost)
//	-config     YAML config file supplying request defaults
//	-store      Report store directory, empty for in-memory
//	-data-root  Confine directory requests below this path
//	-verbose    Log at debug level
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/alnstats-go/api/handlers"
	"github.com/aria-lang/alnstats-go/api/middleware"
	"github.com/aria-lang/alnstats-go/internal/config"
	"github.com/aria-lang/alnstats-go/internal/reportstore"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	cfgPath := flag.String("config", "", "YAML config file")
	storePath := flag.String("store", "", "Report store directory, empty for in-memory")
	dataRoot := flag.String("data-root", "", "Confine directory requests below this path")
	verbose := flag.Bool("verbose", false, "Log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Error("loading config", "path", *cfgPath, "error", err)
			os.Exit(1)
		}
	}

	store, err := reportstore.Open(*storePath)
	if err != nil {
		log.Error("opening report store", "path", *storePath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	h := handlers.New(cfg, store, log)
	h.DataRoot = *dataRoot

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Mount("/api", h.Routes())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(homePage))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Error("could not gracefully shut down", "error", err)
		}
		close(done)
	}()

	log.Info("alnstats API server starting", "addr", "http://"+addr, "store", *storePath, "data_root", *dataRoot)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("could not listen", "addr", addr, "error", err)
		os.Exit(1)
	}

	<-done
	log.Info("server stopped")
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>alnstats API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>alnstats API</h1>
    <p>Pairwise statistics for multiple sequence alignments.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/stats/pair</code>
        <p>Statistics for two aligned sequences.</p>
        <pre>{"sequence1": "ACGT-N", "sequence2": "ACGA--"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/stats/alignment</code>
        <p>One row per sequence pair of an alignment.</p>
        <pre>{"name": "gene.aln", "fasta": ">a\nAC-T\n>b\nACGT\n"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/stats/directory</code>
        <p>Report a server-side directory and store the result.</p>
        <pre>{"path": "alignments", "suffix": ".aln", "failure_policy": "collect"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">GET</span> <code>/api/reports</code>, <code>/api/reports/{id}</code>, <code>/api/reports/latest</code>
        <p>Stored directory reports.</p>
    </div>
</body>
</html>`
