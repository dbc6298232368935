// Package core has the orchestration around the ranking pipeline: input
// snapshots, validation, result caching, history tracking and the entry
// points used by the commands.
package core

import (
	"context"
	"fmt"

	"github.com/fuzzyrank/fuzzyrank/core/algo"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/outwriter"
	"github.com/fuzzyrank/fuzzyrank/internal/problem"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// ExecutorFunc defines the function signature for executing a command.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteRank loads the configured problem, ranks it and prints the result.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	return executeRank(ctx, cfg, mgr, outwriter.NewOutWriter())
}

func executeRank(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, ow *outwriter.OutWriter) error {
	in, err := problem.Load(cfg.ProblemPath)
	if err != nil {
		return err
	}
	run, err := RankProblem(ctx, cfg, mgr, in)
	if err != nil {
		return fmt.Errorf("invalid decision problem: %w", err)
	}
	return ow.WriteRanking(run, cfg)
}

// ExecuteScale prints the linguistic scale.
func ExecuteScale(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.NewOutWriter().WriteScale(cfg)
}

// ExecuteTemplate writes a default-filled problem, or resizes the problem
// named by --from. Counts left at zero keep the size of the source problem.
func ExecuteTemplate(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	in, err := BuildTemplate(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTemplate(in, cfg)
}

// BuildTemplate returns the problem that ExecuteTemplate writes.
func BuildTemplate(cfg *contract.Config) (schema.Input, error) {
	if cfg.TemplateFrom == "" {
		e := countOr(cfg.TemplateExperts, contract.DefaultTemplateCount)
		c := countOr(cfg.TemplateCriteria, contract.DefaultTemplateCount)
		a := countOr(cfg.TemplateAlternatives, contract.DefaultTemplateCount)
		if err := algo.CheckSize(e, c, a, cfg.Limits); err != nil {
			return schema.Input{}, err
		}
		return problem.Template(e, c, a), nil
	}

	source, err := problem.Load(cfg.TemplateFrom)
	if err != nil {
		return schema.Input{}, err
	}
	e := countOr(cfg.TemplateExperts, source.NumExperts)
	c := countOr(cfg.TemplateCriteria, source.NumCriteria)
	a := countOr(cfg.TemplateAlternatives, source.NumAlternatives)
	if err := algo.CheckSize(e, c, a, cfg.Limits); err != nil {
		return schema.Input{}, err
	}
	return algo.Resize(source, e, c, a), nil
}

// countOr returns n, or fallback when n is not positive.
func countOr(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}
