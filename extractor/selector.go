package extractor

import (
	"errors"
	"fmt"

	"github.com/dreamerjackson/harvester/page"
	"go.uber.org/zap"
)

var ErrNoResult = errors.New("no extractor produced a result")

type Selector struct {
	options
}

func NewSelector(opts ...Option) *Selector {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	return &Selector{options: options}
}

// Select runs the site extractors in priority order and returns the first
// site-specific result. A failing extractor is logged and skipped. When no
// site matches, the fallback's result is returned.
func (s *Selector) Select(snap *page.Snapshot) (*Result, error) {
	for _, e := range s.store.List() {
		res, err := s.run(e, snap)
		if err != nil {
			s.logger.Error("extractor failed",
				zap.String("extractor", e.Name()),
				zap.String("host", snap.Host),
				zap.Error(err),
			)
			continue
		}

		if res != nil && res.Source != GenericSource {
			s.logger.Debug("extractor matched",
				zap.String("extractor", e.Name()),
				zap.String("host", snap.Host),
			)
			return res, nil
		}
	}

	fallback := s.store.Fallback()
	if fallback == nil {
		return nil, ErrNoResult
	}

	res, err := s.run(fallback, snap)
	if err != nil {
		return nil, fmt.Errorf("fallback %s:%w", fallback.Name(), err)
	}

	if res == nil {
		return nil, ErrNoResult
	}

	return res, nil
}

func (s *Selector) run(e Extractor, snap *page.Snapshot) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()

	return e.Extract(snap)
}
