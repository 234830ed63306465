package harvest

import (
	"time"

	"github.com/dreamerjackson/harvester/extractor"
	"go.uber.org/zap"
)

type options struct {
	logger   *zap.Logger
	selector *extractor.Selector
	clock    func() time.Time
}

var defaultOptions = options{
	logger:   zap.NewNop(),
	selector: extractor.NewSelector(),
	clock:    time.Now,
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithSelector(selector *extractor.Selector) Option {
	return func(opts *options) {
		opts.selector = selector
	}
}

func WithClock(clock func() time.Time) Option {
	return func(opts *options) {
		opts.clock = clock
	}
}
