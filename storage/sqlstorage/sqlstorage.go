// Package sqlstorage archives exported artifacts in MySQL.
package sqlstorage

import (
	"fmt"
	"time"

	"github.com/dreamerjackson/harvester/export"
	"github.com/dreamerjackson/harvester/sqldb"
	"go.uber.org/zap"
)

var columns = []sqldb.Field{
	{Title: "filename", Type: "VARCHAR(255)"},
	{Title: "source", Type: "VARCHAR(64)"},
	{Title: "url", Type: "VARCHAR(2048)"},
	{Title: "harvested_at", Type: "VARCHAR(32)"},
	{Title: "payload", Type: "MEDIUMTEXT"},
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type SQLStorage struct {
	dataDocker []*export.Artifact // rows waiting for the next insert
	db         sqldb.DBer
	created    bool
	options
}

func New(opts ...Option) (*SQLStorage, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	db, err := sqldb.New(
		sqldb.WithConnURL(options.sqlURL),
		sqldb.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	return newStorage(db, options), nil
}

func newStorage(db sqldb.DBer, options options) *SQLStorage {
	if options.BatchCount < 1 {
		options.BatchCount = 1
	}

	return &SQLStorage{db: db, options: options}
}

// Save buffers artifacts and inserts them once a batch is full.
func (s *SQLStorage) Save(artifacts ...*export.Artifact) error {
	if !s.created {
		err := s.db.CreateTable(sqldb.TableData{
			TableName:   s.table,
			ColumnNames: columns,
			AutoKey:     true,
		})
		if err != nil {
			return fmt.Errorf("create table failed:%w", err)
		}
		s.created = true
	}

	for _, a := range artifacts {
		s.dataDocker = append(s.dataDocker, a)

		if len(s.dataDocker) >= s.BatchCount {
			if err := s.Flush(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *SQLStorage) Flush() error {
	if len(s.dataDocker) == 0 {
		return nil
	}

	defer func() {
		s.dataDocker = nil
	}()

	args := make([]interface{}, 0, len(s.dataDocker)*len(columns))
	for _, a := range s.dataDocker {
		args = append(args, a.Filename, a.Source, a.URL, stamp(a.HarvestedAt), string(a.Payload))
	}

	err := s.db.Insert(sqldb.TableData{
		TableName:   s.table,
		ColumnNames: columns,
		Args:        args,
		DataCount:   len(s.dataDocker),
	})
	if err != nil {
		s.logger.Error("insert data failed", zap.Int("rows", len(s.dataDocker)), zap.Error(err))
		return fmt.Errorf("archive artifacts failed:%w", err)
	}

	s.logger.Info("artifacts archived", zap.Int("rows", len(s.dataDocker)))

	return nil
}

// Close flushes whatever is still buffered.
func (s *SQLStorage) Close() error {
	err := s.Flush()

	if c, ok := s.db.(interface{ Close() error }); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(timeLayout)
}
