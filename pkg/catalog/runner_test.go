package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/catalog"
	"github.com/dmitrymomot/langkit/pkg/logger"
	"github.com/dmitrymomot/langkit/pkg/parallel"
)

func TestDefaultCatalogPasses(t *testing.T) {
	t.Parallel()

	checks, err := catalog.Default().Select()
	require.NoError(t, err)

	rep, err := catalog.NewRunner().Run(context.Background(), checks)
	require.NoError(t, err)

	for _, res := range rep.Results {
		assert.True(t, res.Passed, "%s/%s: %v", res.Topic, res.Name, res.Err)
	}
	assert.True(t, rep.OK())
	assert.Equal(t, len(checks), rep.Passed)
}

func TestRunnerRecordsFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	checks := []catalog.Check{
		{Topic: "t", Name: "pass", Run: noop},
		{Topic: "t", Name: "fail", Run: func(context.Context) error { return boom }},
		{Topic: "t", Name: "panic", Run: func(context.Context) error { panic("kaboom") }},
	}

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevelName("debug"),
		logger.WithContextExtractors(logger.ExtractRunID),
	)

	rep, err := catalog.NewRunner(catalog.WithLogger(log), catalog.WithParallelism(2)).Run(context.Background(), checks)
	require.NoError(t, err)

	require.Len(t, rep.Results, 3)
	assert.Equal(t, "pass", rep.Results[0].Name)
	assert.True(t, rep.Results[0].Passed)
	assert.ErrorIs(t, rep.Results[1].Err, boom)
	assert.ErrorIs(t, rep.Results[2].Err, catalog.ErrPanic)
	assert.Contains(t, rep.Results[2].Err.Error(), "kaboom")

	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 2, rep.Failed)
	assert.False(t, rep.OK())

	assert.Contains(t, buf.String(), rep.RunID.String())
	assert.Contains(t, buf.String(), `"check":"panic"`)
	assert.Contains(t, buf.String(), `"component":"runner"`)
	assert.Contains(t, buf.String(), `"totals":{"passed":1,"failed":2}`)
	assert.Contains(t, buf.String(), `"errors":{`)
}

func TestRunnerRecordsPanicInParallelTask(t *testing.T) {
	t.Parallel()

	checks := []catalog.Check{
		{Topic: "t", Name: "map", Run: func(ctx context.Context) error {
			_, err := parallel.Map(ctx, []int{1}, func(context.Context, int) (int, error) {
				panic("inner")
			})
			return err
		}},
		{Topic: "t", Name: "join", Run: func(ctx context.Context) error {
			_, _, err := parallel.Join(ctx,
				func(context.Context) (int, error) { return 1, nil },
				func(context.Context) (int, error) { panic("inner") },
			)
			return err
		}},
		{Topic: "t", Name: "pass", Run: noop},
	}

	rep, err := catalog.NewRunner().Run(context.Background(), checks)
	require.NoError(t, err)
	require.Len(t, rep.Results, 3)

	for _, res := range rep.Results[:2] {
		assert.False(t, res.Passed, res.Name)
		assert.ErrorIs(t, res.Err, parallel.ErrPanic, res.Name)
		assert.Contains(t, res.Err.Error(), "inner", res.Name)
	}
	assert.True(t, rep.Results[2].Passed)
	assert.Equal(t, 2, rep.Failed)
}

func TestRunnerParallelism(t *testing.T) {
	t.Parallel()

	assert.NoError(t, catalog.ValidateParallelism(0))
	assert.NoError(t, catalog.ValidateParallelism(4))
	assert.ErrorIs(t, catalog.ValidateParallelism(-1), catalog.ErrInvalidParallelism)

	assert.Panics(t, func() { catalog.NewRunner(catalog.WithParallelism(-2)) })
	assert.NotPanics(t, func() { catalog.NewRunner(catalog.WithParallelism(0)) })
}

func TestRunnerCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.NewRunner().Run(ctx, []catalog.Check{{Topic: "t", Name: "x", Run: noop}})
	assert.ErrorIs(t, err, context.Canceled)
}
