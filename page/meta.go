package page

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// Meta returns the content of the first meta tag whose name is key, then of the
// first whose property is key, else "".
func (s *Snapshot) Meta(key string) string {
	if v := s.names[key]; v != "" {
		return v
	}

	return s.properties[key]
}

// Itemprop returns the content of the first meta tag with the given itemprop.
func (s *Snapshot) Itemprop(key string) string {
	return s.itemprops[key]
}

// StructuredData parses every structured-data block on its own. Arrays are
// spread into the result, other values appended as-is. A malformed block is
// logged and skipped.
func (s *Snapshot) StructuredData(logger *zap.Logger) []interface{} {
	if logger == nil {
		logger = zap.NewNop()
	}

	items := make([]interface{}, 0, len(s.blocks))
	for i, block := range s.blocks {
		v, err := parseBlock(block)
		if err != nil {
			logger.Warn("invalid structured data skipped",
				zap.Int("block", i),
				zap.String("url", s.URL),
				zap.Error(err),
			)
			continue
		}

		if arr, ok := v.([]interface{}); ok {
			items = append(items, arr...)
			continue
		}
		items = append(items, v)
	}

	return items
}

func parseBlock(block string) (interface{}, error) {
	// an empty script reads as an empty object
	if block == "" {
		block = "{}"
	}

	dec := json.NewDecoder(strings.NewReader(block))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode structured data:%w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return v, nil
}
