package summary

import "fmt"

// Summarizer is implemented by content that can be reduced to a single line.
type Summarizer interface {
	Summarize() string
}

// NewsArticle is a news story.
type NewsArticle struct {
	Headline string
	Location string
	Author   string
	Content  string
}

// Summarize returns "headline, by author (location)".
func (a NewsArticle) Summarize() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}

// Tweet is a short post.
type Tweet struct {
	Username string
	Content  string
	Reply    bool
	Retweet  bool
}

// Summarize returns "username: content".
func (t Tweet) Summarize() string {
	return fmt.Sprintf("%s: %s", t.Username, t.Content)
}

// Notify formats a breaking news alert for item.
func Notify(item Summarizer) string {
	return "Breaking news! " + item.Summarize()
}

// SummarizeAll summarizes every item, preserving order.
func SummarizeAll(items ...Summarizer) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Summarize())
	}
	return out
}
