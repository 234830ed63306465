// Package page turns an already-loaded HTML document into a read-only Snapshot
// that extractors can query.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const structuredDataSelector = `script[type="application/ld+json"]`

var ErrNoURL = errors.New("page url is empty")

// Snapshot is the state of one document at capture time.
// It is never modified after Load returns.
type Snapshot struct {
	Title    string // document title, whitespace collapsed
	Host     string // hostname without port
	HostPort string // host with port, if any
	URL      string
	Path     string
	Text     string // visible body text

	names      map[string]string
	properties map[string]string
	itemprops  map[string]string
	blocks     []string
	doc        *goquery.Document
}

// Load decodes r to UTF-8, parses it and records rawURL as the location the
// document was loaded from. Nothing is fetched.
func Load(r io.Reader, rawURL string) (*Snapshot, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document failed:%w", err)
	}

	e := DetermineEncoding(body)
	utf8Reader := transform.NewReader(bytes.NewReader(body), e.NewDecoder())

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("parse document failed:%w", err)
	}

	return FromDocument(doc, rawURL)
}

func FromDocument(doc *goquery.Document, rawURL string) (*Snapshot, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrNoURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url failed:%w", err)
	}

	// same shape as location.href: lower-case host, root path spelled out
	u.Host = strings.ToLower(u.Host)
	if u.Path == "" && u.Opaque == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	s := &Snapshot{
		Title:      strings.Join(strings.Fields(doc.Find("title").First().Text()), " "),
		Host:       u.Hostname(),
		HostPort:   u.Host,
		URL:        u.String(),
		Path:       u.EscapedPath(),
		names:      make(map[string]string),
		properties: make(map[string]string),
		itemprops:  make(map[string]string),
		doc:        doc,
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		s.Text = VisibleText(body)
	}

	doc.Find("meta").Each(func(i int, m *goquery.Selection) {
		content := m.AttrOr("content", "")
		keep(s.names, m, "name", content)
		keep(s.properties, m, "property", content)
		keep(s.itemprops, m, "itemprop", content)
	})

	doc.Find(structuredDataSelector).Each(func(i int, n *goquery.Selection) {
		s.blocks = append(s.blocks, n.Text())
	})

	return s, nil
}

// first match wins
func keep(m map[string]string, sel *goquery.Selection, attr string, content string) {
	key, ok := sel.Attr(attr)
	if !ok {
		return
	}

	if _, seen := m[key]; !seen {
		m[key] = content
	}
}

// Find runs a CSS selector against the document.
func (s *Snapshot) Find(selector string) *goquery.Selection {
	return s.doc.Find(selector)
}

// Blocks returns the raw text of every structured-data script, in document order.
func (s *Snapshot) Blocks() []string {
	blocks := make([]string, len(s.blocks))
	copy(blocks, s.blocks)

	return blocks
}

// DetermineEncoding sniffs BOM and meta declarations in the first KB. An
// uncertain windows-1252 guess becomes UTF-8 when the whole body is valid UTF-8.
func DetermineEncoding(body []byte) encoding.Encoding {
	e, name, certain := charset.DetermineEncoding(body, "")

	if !certain && name == "windows-1252" && utf8.Valid(body) {
		zap.L().Debug("undeclared charset, body is valid utf-8")

		return unicode.UTF8
	}

	return e
}
