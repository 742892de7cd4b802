// Package store reads and writes the flat JSON documents bistro keeps on
// disk (the menu and the order book). Reads never fail loudly: callers get a
// CheckResult describing whether the document was usable.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// State captures the readiness of a document on disk.
type State string

const (
	StateMissing State = "missing"
	StateReady   State = "ready"
	StateInvalid State = "invalid"
	StateError   State = "error"
)

// CheckResult reports what happened when a document was read.
type CheckResult struct {
	Path  string
	State State
	Err   error
}

// OK reports whether the document was decoded.
func (r CheckResult) OK() bool {
	return r.State == StateReady
}

const defaultIndent = "    "

// Store manages JSON document IO.
type Store struct {
	indent string
}

// Option customizes a Store during construction.
type Option func(*Store)

// WithIndent overrides the indentation used when writing documents.
func WithIndent(indent string) Option {
	return func(s *Store) {
		s.indent = indent
	}
}

// New builds a store.
func New(opts ...Option) *Store {
	s := &Store{indent: defaultIndent}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ReadJSON decodes the document at path into v, which must be a non-nil
// pointer. The document is decoded into a scratch value first and copied
// into v only on success, so a failed read leaves v untouched. When v points
// to a slice the document must be a JSON array; `null` or an object is
// reported as invalid.
func (s *Store) ReadJSON(path string, v any) CheckResult {
	path = strings.TrimSpace(path)
	if path == "" {
		err := fmt.Errorf("store: path is required")
		return CheckResult{State: StateError, Err: err}
	}
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		err := fmt.Errorf("store: decode target for %s must be a non-nil pointer", path)
		return CheckResult{Path: path, State: StateError, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return CheckResult{Path: path, State: StateMissing, Err: err}
		}
		return CheckResult{Path: path, State: StateError, Err: err}
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return CheckResult{Path: path, State: StateInvalid, Err: fmt.Errorf("store: %s is empty", path)}
	}
	if target.Elem().Kind() == reflect.Slice && trimmed[0] != '[' {
		return CheckResult{Path: path, State: StateInvalid, Err: fmt.Errorf("store: %s is not a JSON array", path)}
	}
	scratch := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(trimmed, scratch.Interface()); err != nil {
		return CheckResult{Path: path, State: StateInvalid, Err: fmt.Errorf("store: parse %s: %w", path, err)}
	}
	target.Elem().Set(scratch.Elem())
	return CheckResult{Path: path, State: StateReady}
}

// WriteJSON encodes v with indentation and overwrites path.
func (s *Store) WriteJSON(path string, v any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("store: path is required")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", s.indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("store: encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: ensure dir for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return nil
}
