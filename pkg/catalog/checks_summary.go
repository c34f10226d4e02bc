package catalog

import (
	"context"

	"github.com/dmitrymomot/langkit/pkg/summary"
)

func summaryChecks() []Check {
	return []Check{
		{Topic: "summary", Name: "summarize", Run: func(context.Context) error {
			items := []summary.Summarizer{
				summary.NewsArticle{
					Headline: "Penguins win the Stanley Cup Championship!",
					Location: "Pittsburgh, PA, USA",
					Author:   "Iceburgh",
				},
				summary.Tweet{Username: "horse_ebooks", Content: "of course"},
			}
			return Expect(
				Equal("summaries", []string{
					"Penguins win the Stanley Cup Championship!, by Iceburgh (Pittsburgh, PA, USA)",
					"horse_ebooks: of course",
				}, summary.SummarizeAll(items...)),
				Equal("notify", "Breaking news! horse_ebooks: of course", summary.Notify(items[1])),
			)
		}},
	}
}
