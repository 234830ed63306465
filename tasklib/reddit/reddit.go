// Package reddit reads public post pages, both the legacy layout and the
// shreddit web components.
package reddit

import (
	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/page"
)

const Source = "reddit"

var hostRe = extractor.HostPattern("reddit.com")

var Extractor = extractor.Func{SiteName: Source, Fn: Extract}

func Extract(snap *page.Snapshot) (*extractor.Result, error) {
	if !hostRe.MatchString(snap.Host) {
		return nil, nil
	}

	res := extractor.NewResult(Source).
		Set("title", extractor.First(
			extractor.Text(snap, `h1[data-test-id="post-content-title"]`),
			extractor.Attr(snap, "shreddit-post", "post-title"),
			extractor.Text(snap, "h1"),
			extractor.Value(snap.Title),
		)).
		Set("author", extractor.First(
			extractor.Text(snap, `a[data-testid="post_author_link"]`),
			extractor.Attr(snap, "shreddit-post", "author"),
		)).
		Set("votes", extractor.First(
			extractor.Attr(snap, `[id^="vote-arrows-"]`, "aria-label"),
			extractor.Attr(snap, "shreddit-post", "score"),
		)).
		Set("content", extractor.First(
			extractor.Text(snap, `[data-test-id="post-content"]`),
			extractor.Text(snap, `shreddit-post [slot="text-body"]`),
		)).
		Set("url", snap.URL)

	return res, nil
}
