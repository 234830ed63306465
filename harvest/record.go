package harvest

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/dreamerjackson/harvester/extractor"
)

// TimeLayout is ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

const (
	keySource      = "source"
	keyHarvestedAt = "harvested_at"
	keyLocation    = "location"
	keyNote        = "note"
	keyTextSnippet = "text_snippet"
)

type Location struct {
	Href     string `json:"href"`
	Host     string `json:"host"`
	Pathname string `json:"pathname"`
}

// Record is an extraction result stamped with capture provenance.
type Record struct {
	Source      string
	Fields      extractor.Fields
	HarvestedAt time.Time
	Location    Location
	Note        string // set only when the record was truncated
}

// MarshalJSON writes a flat object: source, the extracted fields in key order,
// then provenance. HTML characters are left unescaped.
func (r *Record) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		switch k {
		case keySource, keyHarvestedAt, keyLocation, keyNote:
			// provenance wins over extracted fields
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')

	if err := writeMember(&buf, keySource, r.Source, false); err != nil {
		return nil, err
	}
	for _, k := range keys {
		if err := writeMember(&buf, k, r.Fields[k], true); err != nil {
			return nil, err
		}
	}
	if err := writeMember(&buf, keyHarvestedAt, r.HarvestedAt.UTC().Format(TimeLayout), true); err != nil {
		return nil, err
	}
	if err := writeMember(&buf, keyLocation, r.Location, true); err != nil {
		return nil, err
	}
	if r.Note != "" {
		if err := writeMember(&buf, keyNote, r.Note, true); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value interface{}, comma bool) error {
	if comma {
		buf.WriteByte(',')
	}

	k, err := encode(key)
	if err != nil {
		return err
	}
	v, err := encode(value)
	if err != nil {
		return err
	}

	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)

	return nil
}

func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JSON renders the artifact, indented with two spaces when pretty.
func (r *Record) JSON(pretty bool) ([]byte, error) {
	b, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}

	if !pretty {
		return b, nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Size is the length in bytes of the compact serialization.
func (r *Record) Size() (int, error) {
	b, err := r.MarshalJSON()
	return len(b), err
}

func (r *Record) TextSnippet() (string, bool) {
	s, ok := r.Fields[keyTextSnippet].(string)
	return s, ok
}

func (r *Record) SetTextSnippet(s string) {
	r.Fields[keyTextSnippet] = s
}

func (r *Record) SetNote(note string) {
	r.Note = note
}
