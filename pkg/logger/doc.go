// Package logger builds *slog.Logger instances from functional options and
// provides the attribute helpers used across langkit.
//
// New picks a JSON or text handler, attaches static attributes and wraps the
// handler in LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record. ExtractRunID is the extractor the runner relies on: a run
// identifier stored with ContextWithRunID shows up as "run_id" on each record
// logged with that context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "langkit"),
//	    logger.WithContextExtractors(logger.ExtractRunID),
//	)
//	ctx := logger.ContextWithRunID(context.Background(), id)
//	log.InfoContext(ctx, "check finished", logger.Topic("arith"), logger.Passed(true))
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
