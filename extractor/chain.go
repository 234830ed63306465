package extractor

import (
	"regexp"
	"strings"

	"github.com/dreamerjackson/harvester/page"
	"go.uber.org/zap"
)

// Candidate is one place a field value may come from.
type Candidate func() string

// First returns the first candidate yielding non-blank text, trimmed.
// A candidate that panics counts as blank.
func First(candidates ...Candidate) string {
	for _, c := range candidates {
		if v := strings.TrimSpace(try(c)); v != "" {
			return v
		}
	}

	return ""
}

func try(c Candidate) (v string) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Debug("field candidate failed", zap.Any("recover", r))
			v = ""
		}
	}()

	return c()
}

// Text is the visible text of the first element matching selector.
func Text(snap *page.Snapshot, selector string) Candidate {
	return func() string {
		sel := snap.Find(selector).First()
		if sel.Length() == 0 {
			return ""
		}
		return page.VisibleText(sel)
	}
}

// Attr is an attribute of the first element matching selector.
func Attr(snap *page.Snapshot, selector, attr string) Candidate {
	return func() string {
		return snap.Find(selector).First().AttrOr(attr, "")
	}
}

func Meta(snap *page.Snapshot, key string) Candidate {
	return func() string {
		return snap.Meta(key)
	}
}

func Itemprop(snap *page.Snapshot, key string) Candidate {
	return func() string {
		return snap.Itemprop(key)
	}
}

func Value(s string) Candidate {
	return func() string {
		return s
	}
}

// HostPattern builds a case-insensitive matcher for a domain and its subdomains.
func HostPattern(domains ...string) *regexp.Regexp {
	quoted := make([]string, 0, len(domains))
	for _, d := range domains {
		quoted = append(quoted, regexp.QuoteMeta(d))
	}

	return regexp.MustCompile(`(?i)(^|\.)(` + strings.Join(quoted, "|") + `)$`)
}
