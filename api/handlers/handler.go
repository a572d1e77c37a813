package handlers

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aria-lang/alnstats-go/internal/alnio"
	"github.com/aria-lang/alnstats-go/internal/config"
	"github.com/aria-lang/alnstats-go/internal/reportstore"
	"github.com/aria-lang/alnstats-go/internal/sequence"
	"github.com/aria-lang/alnstats-go/internal/stats"
)

// Handler serves the statistics and report endpoints.
type Handler struct {
	// Config supplies defaults for fields a request leaves empty.
	Config config.Config

	// Store persists directory reports. Report endpoints need it.
	Store *reportstore.Store

	// DataRoot, when set, confines directory requests to paths below it.
	DataRoot string

	Logger *slog.Logger
}

// New creates a handler using cfg for defaults.
func New(cfg config.Config, store *reportstore.Store, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Config: cfg, Store: store, Logger: log}
}

// Options common to every statistics request. Empty fields fall back to
// the server configuration.
type Options struct {
	Gap             string `json:"gap,omitempty"`
	Ambiguous       string `json:"ambiguous,omitempty"`
	HeaderDelimiter string `json:"header_delimiter,omitempty"`
	Uppercase       *bool  `json:"uppercase,omitempty"`
}

func (h *Handler) settings(o Options) (config.Config, sequence.Alphabet, error) {
	cfg := h.Config
	if o.Gap != "" {
		cfg.Gap = o.Gap
	}
	if o.Ambiguous != "" {
		cfg.Ambiguous = o.Ambiguous
	}
	if o.HeaderDelimiter != "" {
		cfg.HeaderDelimiter = o.HeaderDelimiter
	}
	if o.Uppercase != nil {
		cfg.Uppercase = *o.Uppercase
	}
	alpha, err := cfg.Alphabet()
	return cfg, alpha, err
}

func (h *Handler) collector(cfg config.Config, alpha sequence.Alphabet) *stats.Collector {
	c := stats.NewCollector(alpha)
	c.Uppercase = cfg.Uppercase
	c.Workers = cfg.Workers
	c.Logger = h.Logger
	return c
}

func (h *Handler) parser(cfg config.Config) *alnio.Parser {
	p := alnio.NewParser()
	p.HeaderDelimiter = cfg.HeaderDelimiter
	return p
}

// resolveDir applies DataRoot to a requested directory.
func (h *Handler) resolveDir(dir string) (string, error) {
	if dir == "" {
		return "", &sequence.InvalidInputError{Param: "path", Reason: "directory path is required"}
	}
	if h.DataRoot == "" {
		return dir, nil
	}
	root := filepath.Clean(h.DataRoot)
	full := filepath.Join(root, dir)
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", &sequence.InvalidPathError{Path: dir, Reason: "outside the data root"}
	}
	return full, nil
}
