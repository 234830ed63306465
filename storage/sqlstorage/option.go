package sqlstorage

import (
	"go.uber.org/zap"
)

type options struct {
	logger     *zap.Logger
	sqlURL     string
	table      string
	BatchCount int // rows buffered before an insert
}

var defaultOptions = options{
	logger:     zap.NewNop(),
	table:      "harvests",
	BatchCount: 1,
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithSQLURL(sqlURL string) Option {
	return func(opts *options) {
		opts.sqlURL = sqlURL
	}
}

func WithTable(table string) Option {
	return func(opts *options) {
		opts.table = table
	}
}

func WithBatchCount(batchCount int) Option {
	return func(opts *options) {
		opts.BatchCount = batchCount
	}
}
