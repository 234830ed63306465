package twitter

import (
	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/page"
)

const Source = "twitter"

var hostRe = extractor.HostPattern("twitter.com", "x.com")

var Extractor = extractor.Func{SiteName: Source, Fn: Extract}

// Extract only reads meta tags; the timeline markup changes too often.
func Extract(snap *page.Snapshot) (*extractor.Result, error) {
	if !hostRe.MatchString(snap.Host) {
		return nil, nil
	}

	res := extractor.NewResult(Source).
		Set("title", extractor.First(
			extractor.Meta(snap, "og:title"),
			extractor.Value(snap.Title),
		)).
		Set("author", extractor.First(extractor.Meta(snap, "twitter:creator"))).
		Set("description", extractor.First(
			extractor.Meta(snap, "og:description"),
			extractor.Meta(snap, "description"),
		)).
		Set("url", snap.URL)

	return res, nil
}
