package export

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/generator"
	"github.com/dreamerjackson/harvester/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs string

func (f fixedIDs) Next() string { return string(f) }

func record() *harvest.Record {
	return &harvest.Record{
		Source:      "reddit",
		Fields:      extractor.Fields{"title": "Hello"},
		HarvestedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		Location: harvest.Location{
			Href:     "https://old.reddit.com:8443/r/golang",
			Host:     "old.reddit.com:8443",
			Pathname: "/r/golang",
		},
	}
}

func TestSanitizeHost(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"www.example.org", "www.example.org"},
		{"example.org:8080", "example.org_8080"},
		{"münchen.de", "m_nchen.de"},
		{"a b/c", "a_b_c"},
		{"under_score-dash", "under_score-dash"},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeHost(tt.host))
		})
	}
}

func TestFromRecord(t *testing.T) {
	a, err := FromRecord(record(), fixedIDs("42"))
	require.NoError(t, err)

	assert.Equal(t, "harvest_old.reddit.com_42.json", a.Filename)
	assert.Equal(t, "reddit", a.Source)
	assert.Equal(t, "https://old.reddit.com:8443/r/golang", a.URL)
	assert.Contains(t, string(a.Payload), "\n  \"title\": \"Hello\"")
}

func TestFilenameFormat(t *testing.T) {
	g, err := generator.New(1)
	require.NoError(t, err)

	a, err := FromRecord(record(), g)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^harvest_old\.reddit\.com_\d+\.json$`), a.Filename)
}

func TestNothingToExport(t *testing.T) {
	for _, payload := range [][]byte{nil, []byte(""), []byte("  \n\t")} {
		_, err := New("example.org", payload, fixedIDs("1"))
		assert.True(t, errors.Is(err, ErrNothingToExport))
	}

	_, err := FromRecord(nil, fixedIDs("1"))
	assert.True(t, errors.Is(err, ErrNothingToExport))
}

func TestHostnameFallsBackToHost(t *testing.T) {
	assert.Equal(t, "example.org", Hostname(harvest.Location{Href: "https://example.org/x", Host: "example.org"}))
	assert.Equal(t, "example.org", Hostname(harvest.Location{Href: "", Host: "example.org"}))
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := FileSink{Dir: dir}

	a, err := New("example.org", []byte(`{"source":"generic"}`), fixedIDs("7"))
	require.NoError(t, err)
	require.NoError(t, sink.Save(a))

	got, err := os.ReadFile(sink.Path(a))
	require.NoError(t, err)
	assert.Equal(t, `{"source":"generic"}`, string(got))
	assert.Equal(t, filepath.Join(dir, "harvest_example.org_7.json"), sink.Path(a))
}
