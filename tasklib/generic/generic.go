// Package generic reads OpenGraph tags, structured data and a text snippet from
// any page. It never declines and is the fallback for every capture.
package generic

import (
	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/page"
	"go.uber.org/zap"
)

// SnippetLength caps text_snippet, in characters.
const SnippetLength = 1000

// New returns the generic extractor logging skipped structured data to logger.
func New(logger *zap.Logger) extractor.Extractor {
	return extractor.Func{
		SiteName: extractor.GenericSource,
		Fn: func(snap *page.Snapshot) (*extractor.Result, error) {
			return Extract(snap, logger), nil
		},
	}
}

func Extract(snap *page.Snapshot, logger *zap.Logger) *extractor.Result {
	og := extractor.Fields{
		"title": extractor.First(
			extractor.Meta(snap, "og:title"),
			extractor.Value(snap.Title),
		),
		"description": extractor.First(
			extractor.Meta(snap, "og:description"),
			extractor.Meta(snap, "description"),
		),
		"url": extractor.First(
			extractor.Meta(snap, "og:url"),
			extractor.Value(snap.URL),
		),
		"site_name": extractor.First(
			extractor.Meta(snap, "og:site_name"),
			extractor.Value(snap.Host),
		),
		"image": extractor.First(extractor.Meta(snap, "og:image")),
		"type":  extractor.First(extractor.Meta(snap, "og:type")),
	}

	return extractor.NewResult(extractor.GenericSource).
		Set("og", og).
		Set("ld", snap.StructuredData(logger)).
		Set("text_snippet", Snippet(snap.Text, SnippetLength))
}

// Snippet keeps at most n characters of text.
func Snippet(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}

	return string(r[:n])
}
