package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tinct/pkg/archive"
	"github.com/matzehuels/tinct/pkg/cache"
	"github.com/matzehuels/tinct/pkg/color"
	"github.com/matzehuels/tinct/pkg/errors"
	"github.com/matzehuels/tinct/pkg/gen"
	"github.com/matzehuels/tinct/pkg/graphio"
)

const defaultListLimit = 50

// colorRequest is the body of POST /v1/color. Graph uses the pkg/graphio
// wire format.
type colorRequest struct {
	Graph         json.RawMessage `json:"graph"`
	Strategy      string          `json:"strategy"`
	MaxColors     int             `json:"max_colors"`
	MaxExpansions int             `json:"max_expansions"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Strategy == "" {
		req.Strategy = color.NameBranchBound
	}

	strategy, err := color.Parse[string](req.Strategy)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g, err := graphio.ReadGraph(bytes.NewReader(req.Graph))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidGraph, err, "parse graph"))
		return
	}
	for _, n := range g.Nodes() {
		if err := errors.ValidateNodeLabel(n); err != nil {
			s.writeError(w, err)
			return
		}
	}

	fingerprint := graphio.Fingerprint(g)
	maxColors := req.MaxColors
	if maxColors <= 0 {
		maxColors = g.NodeCount()
	}
	key := cache.Key("color", fingerprint, strategy.Name(), maxColors)

	if data, ok, err := s.results.Get(r.Context(), key); err == nil && ok {
		var run archive.Run
		if json.Unmarshal(data, &run) == nil {
			s.writeJSON(w, http.StatusOK, run)
			return
		}
	}

	start := time.Now()
	coloring, found, err := strategy.Color(g, color.Options[string]{
		MaxColors:     maxColors,
		MaxExpansions: s.requestBudget(req.MaxExpansions),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	run := archive.NewRun()
	run.Strategy = strategy.Name()
	run.Fingerprint = fingerprint
	run.Nodes = g.NodeCount()
	run.Edges = g.EdgeCount() / 2
	run.MaxColors = maxColors
	run.Found = found
	run.NumColors = color.NumColors(coloring)
	run.Duration = time.Since(start)
	run.Coloring = coloring

	if err := s.runs.Put(r.Context(), run); err != nil {
		s.logger.Warn("archive run", "err", err)
	}
	if data, err := json.Marshal(run); err == nil {
		if err := s.results.Set(r.Context(), key, data, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("cache result", "err", err)
		}
	}

	s.writeJSON(w, http.StatusOK, run)
}

// requestBudget resolves the effective expansion budget: requests may lower
// the configured cap but never raise or remove it.
func (s *Server) requestBudget(requested int) int {
	limit := s.cfg.MaxExpansions
	if limit <= 0 {
		return requested
	}
	if requested <= 0 || requested > limit {
		return limit
	}
	return requested
}

// generateRequest is the body of POST /v1/generate.
type generateRequest struct {
	Nodes     int     `json:"nodes"`
	Density   float64 `json:"density"`
	Connected bool    `json:"connected"`
	Seed      uint64  `json:"seed"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	g, err := gen.Random(gen.Options{
		Nodes:     req.Nodes,
		Density:   req.Density,
		Connected: req.Connected,
		Seed:      req.Seed,
	})
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "generate graph"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := graphio.WriteGraph(g, w); err != nil {
		s.logger.Error("encode graph", "err", err)
	}
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	runs, err := s.runs.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if runs == nil {
		runs = []archive.Run{}
	}
	s.writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.runs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}
