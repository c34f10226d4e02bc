package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langkit/pkg/logger"
)

func TestDecoratorKeepsExtractorsAcrossDerivedHandlers(t *testing.T) {
	buf := &bytes.Buffer{}
	h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(buf, nil), logger.ExtractRunID, nil)
	log := slog.New(h).With(logger.Topic("arith")).WithGroup("detail")

	ctx := logger.ContextWithRunID(context.Background(), "r-9")
	log.InfoContext(ctx, "msg", logger.Check("wrapping"))

	out := buf.String()
	assert.Contains(t, out, `"topic":"arith"`)
	assert.Contains(t, out, `"detail":{`)
	assert.Contains(t, out, `"run_id":"r-9"`)
}

func TestDecoratorSkipsEmptyAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	empty := func(context.Context) (slog.Attr, bool) { return slog.Attr{}, true }
	log := slog.New(logger.NewLogHandlerDecorator(slog.NewTextHandler(buf, nil), empty))

	log.Info("msg")
	assert.NotContains(t, buf.String(), `=""`)
	assert.Contains(t, buf.String(), "msg=msg")
}
