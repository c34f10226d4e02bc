package catalog

import (
	"context"

	"github.com/dmitrymomot/langkit/pkg/textutil"
)

func textChecks() []Check {
	return []Check{
		{Topic: "text", Name: "split_at", Run: func(context.Context) error {
			head, tail, err := textutil.SplitAt("I see the eigenvalue in thine eye", 21)
			if err != nil {
				return err
			}
			return Expect(
				Equal("head", "I see the eigenvalue ", head),
				Equal("tail", "in thine eye", tail),
			)
		}},
		{Topic: "text", Name: "partition", Run: func(context.Context) error {
			upper, lower := textutil.PartitionUpper("Great Teacher Onizuka")
			return Expect(
				Equal("upper", "GTO", upper),
				Equal("rest", "reat eacher nizuka", lower),
			)
		}},
	}
}
