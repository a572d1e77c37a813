package handlers

import (
	"net/http"
	"strings"

	"github.com/aria-lang/alnstats-go/internal/alignment"
	"github.com/aria-lang/alnstats-go/internal/alnio"
	"github.com/aria-lang/alnstats-go/internal/sequence"
	"github.com/aria-lang/alnstats-go/internal/stats"
)

// PairRequest asks for the statistics of two aligned sequences.
type PairRequest struct {
	Options
	ID1       string `json:"id1,omitempty"`
	ID2       string `json:"id2,omitempty"`
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
}

// PairResponse carries one statistics row and the aligned blocks it was
// derived from.
type PairResponse struct {
	Row    stats.Row         `json:"row"`
	Blocks []alignment.Block `json:"blocks"`
}

// Pair handles POST /api/stats/pair.
func (h *Handler) Pair(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cfg, alpha, err := h.settings(req.Options)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.ID1 == "" {
		req.ID1 = "seq1"
	}
	if req.ID2 == "" {
		req.ID2 = "seq2"
	}
	if cfg.Uppercase {
		req.Sequence1 = strings.ToUpper(req.Sequence1)
		req.Sequence2 = strings.ToUpper(req.Sequence2)
	}

	s1 := sequence.Sequence{ID: req.ID1, Bases: req.Sequence1}
	s2 := sequence.Sequence{ID: req.ID2, Bases: req.Sequence2}
	row, err := stats.PairRow("", s1, s2, alpha)
	if err != nil {
		writeError(w, err)
		return
	}
	blocks, err := alignment.AlignedBlocks(s1.Bases, s2.Bases, alpha.Gap)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PairResponse{Row: row, Blocks: blocks})
}

// AlignmentRequest carries one alignment file's content.
type AlignmentRequest struct {
	Options
	Name  string `json:"name"`
	FASTA string `json:"fasta"`
}

// TableResponse lists statistics rows in report order.
type TableResponse struct {
	Columns []string    `json:"columns"`
	Rows    []stats.Row `json:"rows"`
}

// Alignment handles POST /api/stats/alignment.
func (h *Handler) Alignment(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Name == "" {
		req.Name = "alignment"
	}

	cfg, alpha, err := h.settings(req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	rs, err := h.parser(cfg).Parse(strings.NewReader(req.FASTA), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	rows, err := h.collector(cfg, alpha).Collect(req.Name, rs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TableResponse{Columns: stats.Columns, Rows: rows})
}

// DirectoryRequest asks for the statistics of every alignment file in a
// server-side directory.
type DirectoryRequest struct {
	Options
	Path          string `json:"path"`
	Suffix        string `json:"suffix,omitempty"`
	FailurePolicy string `json:"failure_policy,omitempty"`
}

// DirectoryResponse is a computed, and when a store is configured,
// persisted, directory report.
type DirectoryResponse struct {
	ID       string      `json:"id,omitempty"`
	Files    []string    `json:"files"`
	Failures []string    `json:"failures"`
	Columns  []string    `json:"columns"`
	Rows     []stats.Row `json:"rows"`
}

// Directory handles POST /api/stats/directory.
func (h *Handler) Directory(w http.ResponseWriter, r *http.Request) {
	var req DirectoryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cfg, alpha, err := h.settings(req.Options)
	if err != nil {
		writeError(w, err)
		return
	}
	dir, err := h.resolveDir(req.Path)
	if err != nil {
		writeError(w, err)
		return
	}
	suffix := req.Suffix
	if suffix == "" {
		suffix = cfg.Suffix
	}
	policy := cfg.Policy()
	if req.FailurePolicy != "" {
		if policy, err = stats.ParseFailurePolicy(req.FailurePolicy); err != nil {
			writeError(w, err)
			return
		}
	}

	agg := &stats.Aggregator{
		Lister:    alnio.DirLister{},
		Parser:    h.parser(cfg),
		Collector: h.collector(cfg, alpha),
		Policy:    policy,
		Logger:    h.Logger,
	}
	report, err := agg.Aggregate(dir, suffix)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := DirectoryResponse{
		Files:    report.Files,
		Failures: make([]string, 0, len(report.Failures)),
		Columns:  stats.Columns,
		Rows:     report.Table.Rows,
	}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, f.Error())
	}

	if h.Store != nil {
		id, err := h.Store.Put(reportRecord(report))
		if err != nil {
			writeError(w, err)
			return
		}
		resp.ID = id
		h.Logger.Info("report stored", "id", id, "dir", dir, "rows", report.Table.Len())
	}

	writeJSON(w, http.StatusOK, resp)
}
