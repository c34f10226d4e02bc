package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/langkit/pkg/logger"
	"github.com/dmitrymomot/langkit/pkg/parallel"
)

// Result is the outcome of one check.
type Result struct {
	Topic    string
	Name     string
	Passed   bool
	Err      error
	Duration time.Duration
}

// Report is the outcome of one run.
type Report struct {
	RunID    uuid.UUID
	Started  time.Time
	Duration time.Duration
	Results  []Result
	Passed   int
	Failed   int
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithParallelism caps how many checks run at once. Zero keeps the default.
// Panics with ErrInvalidParallelism for negative n.
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) {
		if err := ValidateParallelism(n); err != nil {
			panic(err)
		}
		if n > 0 {
			r.parallelism = n
		}
	}
}

// ValidateParallelism returns ErrInvalidParallelism for negative n.
// Zero means "use the default".
func ValidateParallelism(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidParallelism, n)
	}
	return nil
}

// Runner executes checks and collects a Report.
type Runner struct {
	log         *slog.Logger
	parallelism int
}

// NewRunner returns a Runner that logs nowhere and runs GOMAXPROCS checks at once.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		log:         logger.Nop(),
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("runner"))
	return r
}

// Run executes checks concurrently and returns the results in input order.
// A failing or panicking check is recorded in the report. Run returns an
// error only when ctx ends first.
func (r *Runner) Run(ctx context.Context, checks []Check) (Report, error) {
	rep := Report{
		RunID:   uuid.New(),
		Started: time.Now(),
	}
	ctx = logger.ContextWithRunID(ctx, rep.RunID.String())
	r.log.InfoContext(ctx, "run started", slog.Int("checks", len(checks)), slog.Int("parallelism", r.parallelism))

	results, err := parallel.Map(ctx, checks, func(ctx context.Context, c Check) (Result, error) {
		return r.runOne(ctx, c), nil
	}, parallel.WithLimit(r.parallelism))
	if err != nil {
		r.log.ErrorContext(ctx, "run aborted", logger.Error(err))
		return rep, err
	}

	rep.Results = results
	rep.Duration = time.Since(rep.Started)
	var failures []error
	for _, res := range results {
		if res.Passed {
			rep.Passed++
		} else {
			rep.Failed++
			failures = append(failures, fmt.Errorf("%s/%s: %w", res.Topic, res.Name, res.Err))
		}
	}

	r.log.InfoContext(ctx, "run finished",
		logger.Group("totals",
			slog.Int("passed", rep.Passed),
			slog.Int("failed", rep.Failed),
		),
		logger.Duration(rep.Duration),
		logger.Errors(failures...),
	)
	return rep, nil
}

func (r *Runner) runOne(ctx context.Context, c Check) (res Result) {
	res = Result{Topic: c.Topic, Name: c.Name}
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("%w: %v", ErrPanic, p)
		}
		res.Duration = time.Since(start)
		res.Passed = res.Err == nil

		level := slog.LevelDebug
		if !res.Passed {
			level = slog.LevelWarn
		}
		r.log.Log(ctx, level, "check finished",
			logger.Topic(c.Topic),
			logger.Check(c.Name),
			logger.Passed(res.Passed),
			logger.Duration(res.Duration),
			logger.Error(res.Err),
		)
	}()

	res.Err = c.Run(ctx)
	return res
}
