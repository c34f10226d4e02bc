// Package summary demonstrates interface-based polymorphism with content
// types that can describe themselves in one line.
//
// Any type with a Summarize() string method satisfies Summarizer
// implicitly; NewsArticle and Tweet are the two built-in implementations.
// Notify and SummarizeAll accept the interface and never see the concrete
// types.
package summary
