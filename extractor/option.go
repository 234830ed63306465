package extractor

import (
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	store  *Store
}

var defaultOptions = options{
	logger: zap.NewNop(),
	store:  Registry,
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithStore(store *Store) Option {
	return func(opts *options) {
		opts.store = store
	}
}
