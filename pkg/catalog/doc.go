// Package catalog turns the langkit topic packages into runnable checks.
//
// A Check is a named function that exercises one behavior and returns an
// error describing any mismatch. Default returns a Registry holding the full
// catalogue, grouped by topic (convert, arith, floats, ownership, references,
// iterator, collection, text, summary, parallel). A Runner executes a
// selection of checks concurrently, recovers panics, times each check and
// produces a Report that can be written as text, JSON or YAML.
//
// # Usage
//
//	reg := catalog.Default()
//	checks, err := reg.Select("arith", "floats")
//	if err != nil {
//	    return err
//	}
//	report, err := catalog.NewRunner(catalog.WithLogger(log)).Run(ctx, checks)
//	if err != nil {
//	    return err
//	}
//	_ = catalog.WriteReport(os.Stdout, report, catalog.FormatText)
//
// # Writing checks
//
// Equal compares with go-cmp and returns an ErrMismatch carrying the diff.
// Expect joins several outcomes into one error:
//
//	catalog.Check{Topic: "arith", Name: "add_two", Run: func(context.Context) error {
//	    return catalog.Expect(
//	        catalog.Equal("AddTwo(2)", int32(4), arith.AddTwo(2)),
//	    )
//	}}
//
// # Error Handling
//
// Registration fails with ErrInvalidCheck or ErrDuplicateCheck, selection
// with ErrUnknownTopic, encoding with ErrUnknownFormat. Failed checks are
// reported in the Report, not returned; Run only returns an error when the
// context ends before all checks have run.
package catalog
