// Package export turns a captured record into a downloadable artifact and
// hands it to sinks.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/dreamerjackson/harvester/harvest"
)

var ErrNothingToExport = errors.New("nothing to export")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// IDSource yields unique, time ordered ids.
type IDSource interface {
	Next() string
}

type Artifact struct {
	Filename    string
	Payload     []byte
	Source      string
	URL         string
	HarvestedAt time.Time
}

// Sink stores artifacts somewhere outside the process.
type Sink interface {
	Save(artifacts ...*Artifact) error
}

// SanitizeHost replaces every character outside [A-Za-z0-9_.-] with '_'.
func SanitizeHost(host string) string {
	return unsafeChars.ReplaceAllString(host, "_")
}

func Filename(host, id string) string {
	return "harvest_" + SanitizeHost(host) + "_" + id + ".json"
}

// New wraps an already rendered payload. A blank payload is refused.
func New(host string, payload []byte, ids IDSource) (*Artifact, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, ErrNothingToExport
	}

	return &Artifact{
		Filename: Filename(host, ids.Next()),
		Payload:  payload,
	}, nil
}

// FromRecord renders rec in its pretty form and names the artifact after the
// page hostname.
func FromRecord(rec *harvest.Record, ids IDSource) (*Artifact, error) {
	if rec == nil {
		return nil, ErrNothingToExport
	}

	payload, err := rec.JSON(true)
	if err != nil {
		return nil, fmt.Errorf("render record failed:%w", err)
	}

	a, err := New(Hostname(rec.Location), payload, ids)
	if err != nil {
		return nil, err
	}
	a.Source = rec.Source
	a.URL = rec.Location.Href
	a.HarvestedAt = rec.HarvestedAt

	return a, nil
}

// Hostname is the location host without its port.
func Hostname(loc harvest.Location) string {
	if u, err := url.Parse(loc.Href); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}

	return loc.Host
}
