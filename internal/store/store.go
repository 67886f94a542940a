// Package store persists saved games as a single table of records.
// YAML and JSON encodings are supported.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golife/pkg/life"
)

// ErrNotFound reports a name with no saved record.
var ErrNotFound = errors.New("game not found")

// Summary is a one-line listing of a saved game.
type Summary struct {
	Name string
	Age  int
}

// Store saves and restores game records.
type Store interface {
	// Save appends a record. Names need not be unique.
	Save(ctx context.Context, rec life.Record) error
	// Load returns the most recently saved record with the given name.
	Load(ctx context.Context, name string) (life.Record, error)
	// List summarises every record in the order saved.
	List(ctx context.Context) ([]Summary, error)
}

// Format names a table encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Open returns a store for the table file at path in the given format.
func Open(path string, format Format) (Store, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatYAML, "yml", "":
		return NewYAMLStore(path)
	case FormatJSON:
		return NewJSONStore(path)
	default:
		return nil, fmt.Errorf("unknown store format %q", format)
	}
}

type table struct {
	Games []life.Record `json:"games" yaml:"games"`
}

type codec struct {
	name      string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

// fileStore keeps the whole table in one file, rewritten on every save.
type fileStore struct {
	mu    sync.Mutex
	path  string
	codec codec
}

func newFileStore(path string, c codec) (*fileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	return &fileStore{path: path, codec: c}, nil
}

func (s *fileStore) read() (table, error) {
	var t table
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return t, nil
		}
		return t, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return t, nil
	}
	if err := s.codec.unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("%s unmarshal %s: %w", s.codec.name, s.path, err)
	}
	return t, nil
}

func (s *fileStore) write(t table) error {
	data, err := s.codec.marshal(t)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", s.codec.name, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

func (s *fileStore) Save(ctx context.Context, rec life.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.read()
	if err != nil {
		return err
	}
	t.Games = append(t.Games, rec)
	return s.write(t)
}

func (s *fileStore) Load(ctx context.Context, name string) (life.Record, error) {
	if err := ctx.Err(); err != nil {
		return life.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.read()
	if err != nil {
		return life.Record{}, err
	}
	for i := len(t.Games) - 1; i >= 0; i-- {
		if t.Games[i].Name == name {
			return t.Games[i], nil
		}
	}
	return life.Record{}, fmt.Errorf("game %q: %w", name, ErrNotFound)
}

func (s *fileStore) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make([]Summary, len(t.Games))
	for i, rec := range t.Games {
		out[i] = Summary{Name: rec.Name, Age: rec.Age}
	}
	return out, nil
}
