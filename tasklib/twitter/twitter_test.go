package twitter

import (
	"strings"
	"testing"

	"github.com/dreamerjackson/harvester/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const status = `<html><head><title>gopher on X</title>
<meta property="og:title" content="Gopher on X: &quot;hello&quot;">
<meta name="twitter:creator" content="@gopher">
<meta property="og:description" content="hello">
</head><body></body></html>`

func TestExtract(t *testing.T) {
	for _, u := range []string{"https://x.com/gopher/status/1", "https://mobile.twitter.com/gopher/status/1"} {
		t.Run(u, func(t *testing.T) {
			snap, err := page.Load(strings.NewReader(status), u)
			require.NoError(t, err)

			res, err := Extract(snap)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, Source, res.Source)
			assert.Equal(t, `Gopher on X: "hello"`, res.Fields["title"])
			assert.Equal(t, "@gopher", res.Fields["author"])
			assert.Equal(t, "hello", res.Fields["description"])
			assert.Equal(t, u, res.Fields["url"])
		})
	}
}

func TestExtractDeclines(t *testing.T) {
	for _, u := range []string{"https://dropbox.com/s/1", "https://example.org/"} {
		snap, err := page.Load(strings.NewReader(status), u)
		require.NoError(t, err)

		res, err := Extract(snap)
		assert.NoError(t, err)
		assert.Nil(t, res, u)
	}
}
