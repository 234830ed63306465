// Package harvest runs one capture: read the page, pick an extraction, stamp
// provenance and bound the size.
package harvest

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dreamerjackson/harvester/normalize"
	"github.com/dreamerjackson/harvester/page"
	"go.uber.org/zap"
)

var ErrCaptureInFlight = errors.New("a capture is already running")

type Harvester struct {
	source   page.Source
	inflight int32

	mu   sync.Mutex
	last time.Time

	options
}

func New(source page.Source, opts ...Option) *Harvester {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	return &Harvester{
		source:  source,
		options: options,
	}
}

// Capture reads the current page and returns its bounded record. Only one
// capture runs at a time; a second caller gets ErrCaptureInFlight.
// limitChars <= 0 means normalize.DefaultLimit.
func (h *Harvester) Capture(limitChars int) (*Record, error) {
	if !atomic.CompareAndSwapInt32(&h.inflight, 0, 1) {
		return nil, ErrCaptureInFlight
	}
	defer atomic.StoreInt32(&h.inflight, 0)

	if limitChars <= 0 {
		limitChars = normalize.DefaultLimit
	}

	snap, err := h.source.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("read page failed:%w", err)
	}

	loc := Location{
		Href:     snap.URL,
		Host:     snap.HostPort,
		Pathname: snap.Path,
	}

	res, err := h.selector.Select(snap)
	if err != nil {
		return nil, fmt.Errorf("extract failed:%w", err)
	}

	rec := &Record{
		Source:      res.Source,
		Fields:      res.Fields,
		HarvestedAt: h.stamp(),
		Location:    loc,
	}

	truncated, err := normalize.Normalize(rec, limitChars)
	if err != nil {
		return nil, fmt.Errorf("normalize failed:%w", err)
	}

	h.logger.Info("capture finished",
		zap.String("source", rec.Source),
		zap.String("url", loc.Href),
		zap.Int("limit", limitChars),
		zap.Bool("truncated", truncated),
	)

	return rec, nil
}

// stamp never goes backwards, even if the wall clock does.
func (h *Harvester) stamp() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.clock().UTC().Truncate(time.Millisecond)
	if now.Before(h.last) {
		now = h.last
	}
	h.last = now

	return now
}
