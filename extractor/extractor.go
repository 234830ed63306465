// Package extractor defines site extractors, the ordered registry they live in
// and the selector that picks one result per capture.
package extractor

import (
	"github.com/dreamerjackson/harvester/page"
)

const GenericSource = "generic"

// Extractor turns a snapshot into a site-shaped record. Extract returns a nil
// result and nil error when the page is not on the extractor's site.
type Extractor interface {
	Name() string
	Extract(snap *page.Snapshot) (*Result, error)
}

type Fields map[string]interface{}

// Result is what one extractor produced. Consumers must treat every field as
// optional.
type Result struct {
	Source string
	Fields Fields
}

func NewResult(source string) *Result {
	return &Result{
		Source: source,
		Fields: make(Fields),
	}
}

func (r *Result) Set(key string, value interface{}) *Result {
	r.Fields[key] = value
	return r
}

// Func adapts a function to Extractor.
type Func struct {
	SiteName string
	Fn       func(snap *page.Snapshot) (*Result, error)
}

func (f Func) Name() string {
	return f.SiteName
}

func (f Func) Extract(snap *page.Snapshot) (*Result, error) {
	return f.Fn(snap)
}
