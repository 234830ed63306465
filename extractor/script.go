package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/dreamerjackson/harvester/page"
	"github.com/robertkrimen/otto"
)

var (
	ErrScriptResult  = errors.New("script must evaluate to an object")
	ErrScriptValue   = errors.New("script result is not serializable")
	ErrScriptTimeout = errors.New("script ran too long")
)

// ScriptTimeout bounds one run of a configured script.
var ScriptTimeout = 2 * time.Second

// ScriptModel declares a site extractor in configuration. Host is a regular
// expression matched against the page hostname. The script's completion value
// becomes the result fields, e.g.
//
//	({title: first(text("h1.post"), title), author: meta("author"), url: url})
type ScriptModel struct {
	Name   string `json:"name"`
	Host   string `json:"host"`
	Script string `json:"script"`
}

const prelude = `
function first() {
	for (var i = 0; i < arguments.length; i++) {
		var v = arguments[i];
		if (v !== undefined && v !== null && String(v).trim() !== "") {
			return String(v).trim();
		}
	}
	return "";
}
`

type scriptExtractor struct {
	name   string
	host   *regexp.Regexp
	script string
}

// NewScript validates m and returns it as an Extractor.
func NewScript(m ScriptModel) (Extractor, error) {
	if m.Name == "" {
		return nil, errors.New("script extractor needs a name")
	}
	if m.Name == GenericSource {
		return nil, fmt.Errorf("script extractor can not be named %q", GenericSource)
	}

	host, err := regexp.Compile("(?i)" + m.Host)
	if err != nil {
		return nil, fmt.Errorf("script %s host pattern:%w", m.Name, err)
	}

	if _, err := otto.New().Compile(m.Name, m.Script); err != nil {
		return nil, fmt.Errorf("script %s compile:%w", m.Name, err)
	}

	return &scriptExtractor{
		name:   m.Name,
		host:   host,
		script: m.Script,
	}, nil
}

func (s *scriptExtractor) Name() string {
	return s.name
}

func (s *scriptExtractor) Extract(snap *page.Snapshot) (*Result, error) {
	if !s.host.MatchString(snap.Host) {
		return nil, nil
	}

	vm := otto.New()
	if err := bind(vm, snap); err != nil {
		return nil, err
	}

	if _, err := vm.Run(prelude); err != nil {
		return nil, err
	}

	v, err := s.run(vm)
	if err != nil {
		return nil, err
	}

	e, err := v.Export()
	if err != nil {
		return nil, err
	}

	fields, ok := e.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s:%w", s.name, ErrScriptResult)
	}

	// NaN and Infinity survive Export but not the artifact encoder
	if _, err := json.Marshal(fields); err != nil {
		return nil, fmt.Errorf("%s: %v:%w", s.name, err, ErrScriptValue)
	}

	res := NewResult(s.name)
	for k, v := range fields {
		res.Fields[k] = v
	}

	return res, nil
}

type halt struct{}

func (s *scriptExtractor) run(vm *otto.Otto) (v otto.Value, err error) {
	vm.Interrupt = make(chan func(), 1)
	timer := time.AfterFunc(ScriptTimeout, func() {
		vm.Interrupt <- func() {
			panic(halt{})
		}
	})
	defer timer.Stop()

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(halt); !ok {
				panic(r)
			}
			err = fmt.Errorf("run script %s after %s:%w", s.name, ScriptTimeout, ErrScriptTimeout)
		}
	}()

	v, err = vm.Run(s.script)
	if err != nil {
		return v, fmt.Errorf("run script %s:%w", s.name, err)
	}

	return v, nil
}

func bind(vm *otto.Otto, snap *page.Snapshot) error {
	values := map[string]interface{}{
		"title": snap.Title,
		"url":   snap.URL,
		"host":  snap.Host,
		"path":  snap.Path,
		"meta": func(key string) string {
			return snap.Meta(key)
		},
		"itemprop": func(key string) string {
			return snap.Itemprop(key)
		},
		"text": func(selector string) string {
			return First(Text(snap, selector))
		},
		"attr": func(selector, name string) string {
			return First(Attr(snap, selector, name))
		},
	}

	for k, v := range values {
		if err := vm.Set(k, v); err != nil {
			return fmt.Errorf("bind %s:%w", k, err)
		}
	}

	return nil
}
