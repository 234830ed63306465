package sqldb

import (
	"go.uber.org/zap"
)

type options struct {
	logger  *zap.Logger
	sqlURL  string
	maxConn int
}

var defaultOptions = options{
	logger:  zap.NewNop(),
	maxConn: 16,
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithConnURL(sqlURL string) Option {
	return func(opts *options) {
		opts.sqlURL = sqlURL
	}
}

func WithMaxConn(n int) Option {
	return func(opts *options) {
		opts.maxConn = n
	}
}
