package page

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func load(t *testing.T, doc string) *Snapshot {
	t.Helper()
	s, err := Load(strings.NewReader(doc), "https://example.org/post")
	require.NoError(t, err)
	return s
}

func ldBlock(body string) string {
	return `<script type="application/ld+json">` + body + `</script>`
}

func TestMeta(t *testing.T) {
	s := load(t, articleHTML)

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "name attribute", key: "description", want: "plain description"},
		{name: "property attribute, first wins", key: "og:title", want: "OG Title"},
		{name: "missing", key: "og:image", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Meta(tt.key))
		})
	}
	assert.Equal(t, "Item Name", s.Itemprop("name"))
}

func TestMetaNameBeforeProperty(t *testing.T) {
	s := load(t, `<meta property="k" content="from property"><meta name="k" content="from name">`)
	assert.Equal(t, "from name", s.Meta("k"))

	s = load(t, `<meta name="k" content=""><meta property="k" content="from property">`)
	assert.Equal(t, "from property", s.Meta("k"))
}

func TestStructuredDataNone(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := load(t, articleHTML)

	items := s.StructuredData(zap.New(core))
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Zero(t, logs.Len())
}

func TestStructuredDataSkipsMalformed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := load(t, ldBlock(`{"@type":"WebSite","n":1}`)+
		ldBlock(`{"@type": broken`)+
		ldBlock(`{"@type":"Organization"}`)+
		ldBlock(`{"a":1} trailing`)+
		ldBlock(`   `)+
		ldBlock(`{"@type":"BreadcrumbList"}`))

	items := s.StructuredData(zap.New(core))
	require.Len(t, items, 3)
	assert.Equal(t, "WebSite", items[0].(map[string]interface{})["@type"])
	assert.Equal(t, json.Number("1"), items[0].(map[string]interface{})["n"])
	assert.Equal(t, "Organization", items[1].(map[string]interface{})["@type"])
	assert.Equal(t, "BreadcrumbList", items[2].(map[string]interface{})["@type"])

	warned := logs.FilterMessage("invalid structured data skipped").All()
	require.Len(t, warned, 3)
	assert.Equal(t, int64(1), warned[0].ContextMap()["block"])
}

func TestStructuredDataSpreadsArrays(t *testing.T) {
	s := load(t, ldBlock(`[{"@type":"Article"}, {"@type":"Person"}]`)+ldBlock(`"bare string"`))

	items := s.StructuredData(nil)
	require.Len(t, items, 3)
	assert.Equal(t, "Article", items[0].(map[string]interface{})["@type"])
	assert.Equal(t, "Person", items[1].(map[string]interface{})["@type"])
	assert.Equal(t, "bare string", items[2])
}

func TestStructuredDataEmptyBlock(t *testing.T) {
	s := load(t, ldBlock(``))

	items := s.StructuredData(nil)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]interface{}{}, items[0])
}
