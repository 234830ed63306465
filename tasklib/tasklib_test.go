package tasklib

import (
	"strings"
	"testing"

	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistryOrder(t *testing.T) {
	var names []string
	for _, e := range extractor.Registry.List() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"reddit", "youtube", "twitter"}, names)
	assert.Equal(t, extractor.GenericSource, extractor.Registry.Fallback().Name())
}

func TestSelectBuiltins(t *testing.T) {
	sel := extractor.NewSelector()

	tests := []struct {
		url  string
		want string
	}{
		{url: "https://www.reddit.com/r/golang/comments/1/", want: "reddit"},
		{url: "https://www.youtube.com/watch?v=1", want: "youtube"},
		{url: "https://x.com/golang/status/1", want: "twitter"},
		{url: "https://example.org/", want: extractor.GenericSource},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			snap, err := page.Load(strings.NewReader(`<title>t</title>`), tt.url)
			require.NoError(t, err)

			res, err := sel.Select(snap)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Source)
		})
	}
}

func TestRegisterScripts(t *testing.T) {
	store := extractor.NewStore()
	Register(store, zap.NewNop())

	err := RegisterScripts(store, []extractor.ScriptModel{
		{Name: "forum", Host: `forum\.example$`, Script: `({title: title, url: url})`},
	})
	require.NoError(t, err)

	list := store.List()
	require.Len(t, list, 4)
	assert.Equal(t, "forum", list[3].Name())

	err = RegisterScripts(store, []extractor.ScriptModel{
		{Name: "reddit", Host: `reddit`, Script: `({})`},
	})
	assert.Error(t, err)

	err = RegisterScripts(store, []extractor.ScriptModel{
		{Name: "broken", Host: `x`, Script: `({`},
	})
	assert.Error(t, err)
}
