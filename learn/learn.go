// Package learn is the end-to-end pipeline: trace files in, learned
// control-flow graphs and reports out. Files are processed concurrently,
// each on its own CFG; the reports come back in input order.
package learn

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tracefold/cfg"
	"github.com/katalvlaran/tracefold/config"
	"github.com/katalvlaran/tracefold/dfs"
	"github.com/katalvlaran/tracefold/dot"
	"github.com/katalvlaran/tracefold/ints"
	"github.com/katalvlaran/tracefold/rpni"
	"github.com/katalvlaran/tracefold/separation"
)

var tracer = otel.Tracer("tracefold/learn")

// RunRecorder is implemented by observers that also want per-run totals,
// such as metrics.Collector.
type RunRecorder interface {
	RunFinished(res rpni.Result, seconds float64)
}

// Report summarizes one generalization run.
type Report struct {
	RunID    string
	Name     string
	Result   rpni.Result
	Traces   int
	Nodes    int
	Edges    int
	Loops    int
	Cost     float64
	Duration time.Duration
	DOT      []byte
}

// Run learns one CFG per trace file. obs must be safe for concurrent use
// when more than one worker is configured; nil means no observer.
func Run(ctx context.Context, c config.Config, files []string, logger *slog.Logger, obs rpni.Observer) ([]Report, error) {
	reports := make([]Report, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Workers)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plans, err := config.LoadTraces(f)
			if err != nil {
				return err
			}
			rep, err := Learn(ctx, c, f, plans, logger, obs)
			if err != nil {
				return fmt.Errorf("learn: %s: %w", f, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Learn generalizes plans into a fresh CFG and reports on the result.
func Learn(ctx context.Context, c config.Config, name string, plans []config.Plan, logger *slog.Logger, obs rpni.Observer) (Report, error) {
	rep := Report{RunID: uuid.NewString(), Name: name, Traces: len(plans)}
	_, span := tracer.Start(ctx, "learn.Learn", oteltrace.WithAttributes(
		attribute.String("run_id", rep.RunID),
		attribute.String("name", name),
		attribute.Int("traces", len(plans)),
	))
	defer span.End()

	log := logger.With(slog.String("run_id", rep.RunID), slog.String("name", name))
	gen, err := newGeneralizer(c, plans, log, obs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return rep, err
	}

	start := time.Now()
	out := cfg.New[ints.Store, ints.Stmt, ints.Guard]()
	res, err := gen.Generalize(plans, out)
	rep.Duration = time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return rep, err
	}
	if rr, ok := obs.(RunRecorder); ok {
		rr.RunFinished(res, rep.Duration.Seconds())
	}

	back, err := dfs.BackEdges(out.Graph(), out.Entry())
	if err != nil {
		return rep, err
	}
	if rep.DOT, err = dot.CFG(out, "tracefold"); err != nil {
		return rep, err
	}
	rep.Result = res
	rep.Nodes = out.NodeCount()
	rep.Edges = out.EdgeCount()
	rep.Loops = len(back)
	rep.Cost = out.ConditionsCost(costFunc(c))

	span.SetAttributes(
		attribute.String("result", res.String()),
		attribute.Int("nodes", rep.Nodes),
		attribute.Int("loops", rep.Loops),
	)
	span.SetStatus(codes.Ok, "")

	return rep, nil
}

func costFunc(c config.Config) separation.Cost[ints.Guard] {
	w := c.Cost.SizeWeight
	return separation.CostSum(
		separation.CostBadConditions[ints.Guard](),
		func(g *ints.Guard) float64 {
			if g == nil {
				return 0
			}
			return w * float64(g.Size())
		},
	)
}

func newGeneralizer(c config.Config, plans []config.Plan, log *slog.Logger, obs rpni.Observer) (*rpni.Generalizer[ints.Store, ints.Stmt, ints.Guard], error) {
	ops, err := c.Operators()
	if err != nil {
		return nil, err
	}
	vars := c.Guards.Variables
	if len(vars) == 0 {
		vars = config.Variables(plans)
	}
	inf := separation.NewLinear[ints.Store, ints.Guard](ints.Domain{}, ints.Candidates(vars, c.Guards.Constants, ops))

	opts := rpni.DefaultOptions(ints.Stmt(c.Skip))
	opts.MaxNodes = c.MaxNodes
	opts.Logger = log
	if obs != nil {
		opts.Observer = obs
	}

	return rpni.New[ints.Store, ints.Stmt, ints.Guard](inf, costFunc(c), opts), nil
}
