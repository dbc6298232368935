package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fuzzyrank/fuzzyrank/core"
	"github.com/fuzzyrank/fuzzyrank/core/algo"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/outwriter"
	"github.com/fuzzyrank/fuzzyrank/internal/problem"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// maxBodyBytes bounds the size of a decision problem accepted over HTTP.
const maxBodyBytes = 1 << 20

// RankHandler serves the ranking endpoints.
type RankHandler struct {
	cfg     *contract.Config
	mgr     contract.CacheManager
	pub     contract.Publisher
	metrics *Metrics
	logger  *slog.Logger
}

// NewRankHandler creates a RankHandler.
func NewRankHandler(cfg *contract.Config, mgr contract.CacheManager, pub contract.Publisher, m *Metrics, logger *slog.Logger) *RankHandler {
	return &RankHandler{cfg: cfg, mgr: mgr, pub: pub, metrics: m, logger: logger}
}

// Rank decodes a decision problem (YAML or JSON) from the body and responds
// with its ranking. Query parameters strict and steps override the server
// configuration for this request.
func (h *RankHandler) Rank(w http.ResponseWriter, r *http.Request) {
	cfg := h.cfg.Clone()
	strict, err := queryBool(r, "strict", cfg.Strict)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "bad_request", map[string]any{"error": err.Error()})
		return
	}
	steps, err := queryBool(r, "steps", false)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "bad_request", map[string]any{"error": err.Error()})
		return
	}
	cfg.Strict = strict

	in, err := problem.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.fail(w, http.StatusBadRequest, "bad_request", map[string]any{"error": err.Error()})
		return
	}

	run, err := core.RankProblem(r.Context(), cfg, h.mgr, in)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.fail(w, http.StatusServiceUnavailable, "cancelled", map[string]any{"error": err.Error()})
		return
	case errors.Is(err, algo.ErrTooLarge):
		h.fail(w, http.StatusRequestEntityTooLarge, "too_large", map[string]any{
			"error":    algo.ErrTooLarge.Error(),
			"problems": problemList(err),
		})
		return
	case err != nil:
		h.fail(w, http.StatusUnprocessableEntity, "invalid", map[string]any{
			"error":    "invalid decision problem",
			"problems": problemList(err),
		})
		return
	}

	if h.metrics != nil {
		h.metrics.observeRanking(run.CacheHit, run.Result.NumAlternatives)
	}
	if h.pub != nil {
		if err := h.pub.PublishRankingCompleted(run); err != nil {
			h.logger.Warn("failed to publish ranking event", "run_id", run.RunID, "error", err)
		}
	}

	w.Header().Set("X-Run-ID", run.RunID)
	writeJSON(w, http.StatusOK, outwriter.NewRankingDocument(run, steps))
}

// resizeRequest is the body of POST /api/v1/resize. A zero count keeps the
// current count of the problem.
type resizeRequest struct {
	Problem      schema.Input `json:"problem"`
	Experts      int          `json:"experts"`
	Criteria     int          `json:"criteria"`
	Alternatives int          `json:"alternatives"`
}

// Resize reshapes a decision problem, default-filling new cells.
func (h *RankHandler) Resize(w http.ResponseWriter, r *http.Request) {
	var req resizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Experts < 0 || req.Criteria < 0 || req.Alternatives < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "counts cannot be negative"})
		return
	}

	in := algo.InferCounts(req.Problem)
	experts := keepIfZero(req.Experts, in.NumExperts)
	criteria := keepIfZero(req.Criteria, in.NumCriteria)
	alternatives := keepIfZero(req.Alternatives, in.NumAlternatives)
	if err := algo.CheckSize(experts, criteria, alternatives, h.cfg.Limits); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{
			"error":    algo.ErrTooLarge.Error(),
			"problems": problemList(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, algo.Resize(in, experts, criteria, alternatives))
}

// Scale lists the linguistic scale.
func (h *RankHandler) Scale(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, outwriter.BuildScale())
}

func (h *RankHandler) fail(w http.ResponseWriter, status int, reason string, body map[string]any) {
	if h.metrics != nil {
		h.metrics.observeFailure(reason)
	}
	writeJSON(w, status, body)
}

// problemList flattens a joined validation error into its messages.
func problemList(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		errs := joined.Unwrap()
		out := make([]string, 0, len(errs))
		for _, e := range errs {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func queryBool(r *http.Request, key string, def bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New("invalid " + key + " parameter: " + raw)
	}
	return v, nil
}

func keepIfZero(n, current int) int {
	if n == 0 {
		return current
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
