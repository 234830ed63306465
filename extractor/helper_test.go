package extractor

import (
	"errors"
	"strings"
	"testing"

	"github.com/dreamerjackson/harvester/page"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, rawURL, doc string) *page.Snapshot {
	t.Helper()
	s, err := page.Load(strings.NewReader(doc), rawURL)
	require.NoError(t, err)
	return s
}

// siteStub matches one host and reports how often it ran.
type siteStub struct {
	name  string
	host  string
	err   error
	panic bool
	calls int
}

func (s *siteStub) Name() string { return s.name }

func (s *siteStub) Extract(snap *page.Snapshot) (*Result, error) {
	s.calls++
	if snap.Host != s.host {
		return nil, nil
	}
	if s.panic {
		panic("selector blew up")
	}
	if s.err != nil {
		return nil, s.err
	}
	return NewResult(s.name).Set("title", snap.Title), nil
}

var errBroken = errors.New("broken extractor")

func genericStub() Extractor {
	return Func{SiteName: GenericSource, Fn: func(snap *page.Snapshot) (*Result, error) {
		return NewResult(GenericSource).Set("title", snap.Title), nil
	}}
}
