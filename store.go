package recipes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/shopspring/decimal"
)

// Book is a flat mapping of names to decimal values that remembers the order
// in which names were first inserted. Both the ingredient costs and the
// recipe costs are Books.
type Book struct {
	names  []string
	values map[string]decimal.Decimal
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{values: make(map[string]decimal.Decimal)}
}

// Get returns the value stored for 'name'.
func (b *Book) Get(name string) (decimal.Decimal, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Has returns true if 'name' is in the book.
func (b *Book) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Set stores the value for 'name'. An existing name keeps its position.
func (b *Book) Set(name string, value decimal.Decimal) {
	if _, exists := b.values[name]; !exists {
		b.names = append(b.names, name)
	}
	b.values[name] = value
}

// Names returns the names in insertion order.
func (b *Book) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

func (b *Book) Len() int { return len(b.names) }

// Clone returns a deep copy of the book.
func (b *Book) Clone() *Book {
	c := &Book{
		names:  b.Names(),
		values: make(map[string]decimal.Decimal, len(b.values)),
	}
	for k, v := range b.values {
		c.values[k] = v
	}
	return c
}

// Equal returns true if both books hold the same names, values and order.
func (b *Book) Equal(o *Book) bool {
	if b.Len() != o.Len() {
		return false
	}
	for i, name := range b.names {
		if o.names[i] != name || !b.values[name].Equal(o.values[name]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the book as a JSON object, in insertion order, values as plain numbers.
func (b *Book) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, name := range b.names {
		w.Append(name, json.Number(b.values[name].String()))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON reads a JSON object whose values must all be numbers.
func (b *Book) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}

	nb := NewBook()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected a name, got %v", tok)
		}
		var jval any
		if err := dec.Decode(&jval); err != nil {
			return fmt.Errorf("cannot read value of %q: %w", name, err)
		}
		num, ok := jval.(json.Number)
		if !ok {
			return fmt.Errorf("value of %q is not a number: %v", name, jval)
		}
		val, err := decimal.NewFromString(num.String())
		if err != nil {
			return fmt.Errorf("value of %q is not a number: %w", name, err)
		}
		nb.Set(name, val)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*b = *nb
	return nil
}

// Store loads and saves a whole Book.
type Store interface {
	Load() (*Book, error)
	Save(*Book) error
}

// ParseError is returned when a store file cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse error in %q: %v", e.Path, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// FileStore persists a Book as a JSON document.
//
// Save overwrites the file wholesale, there is no locking and no atomic
// rename: a single process is expected to own the file.
type FileStore struct {
	Path string
}

// Load reads the book from the file. A missing file is an empty book.
func (s FileStore) Load() (*Book, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("%q does not exist, starting with an empty book", s.Path)
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", s.Path, err)
	}

	b := NewBook()
	if err := json.Unmarshal(data, b); err != nil {
		return nil, &ParseError{Path: s.Path, Err: err}
	}
	return b, nil
}

// Save writes the book with a 2-space indentation.
func (s FileStore) Save(b *Book) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode %q: %w", s.Path, err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", s.Path, err)
	}
	log.Printf("saved %d entries to %q", b.Len(), s.Path)
	return nil
}

// MemStore keeps the last saved book in memory.
type MemStore struct {
	book  *Book
	Saves int // number of calls to Save
}

// NewMemStore returns a MemStore initially holding a copy of 'b', or an empty book if b is nil.
func NewMemStore(b *Book) *MemStore {
	if b == nil {
		b = NewBook()
	}
	return &MemStore{book: b.Clone()}
}

func (s *MemStore) Load() (*Book, error) { return s.book.Clone(), nil }

func (s *MemStore) Save(b *Book) error {
	s.book = b.Clone()
	s.Saves++
	return nil
}
