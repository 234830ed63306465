package youtube

import (
	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/page"
)

const Source = "youtube"

var hostRe = extractor.HostPattern("youtube.com")

var Extractor = extractor.Func{SiteName: Source, Fn: Extract}

// Extract reads public watch pages.
func Extract(snap *page.Snapshot) (*extractor.Result, error) {
	if !hostRe.MatchString(snap.Host) {
		return nil, nil
	}

	res := extractor.NewResult(Source).
		Set("title", extractor.First(
			extractor.Text(snap, "h1.ytd-video-primary-info-renderer"),
			extractor.Text(snap, "ytd-watch-metadata h1"),
			extractor.Itemprop(snap, "name"),
			extractor.Value(snap.Title),
		)).
		Set("channel", extractor.First(
			extractor.Text(snap, "#text-container.ytd-channel-name #text"),
			extractor.Itemprop(snap, "channelId"),
		)).
		Set("description", extractor.First(
			extractor.Text(snap, "#description-inline-expander"),
			extractor.Meta(snap, "description"),
		)).
		Set("url", snap.URL)

	return res, nil
}
