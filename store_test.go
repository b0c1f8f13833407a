package recipes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := FileStore{Path: filepath.Join(t.TempDir(), "ingredients.json")}
	b, err := s.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Load() = %d entries, want 0", b.Len())
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		book *Book
	}{
		{"empty", book()},
		{"single", book("Eggs", "0.05")},
		{"order is kept", book("sugar", "0.002", "Flour", "0.001", "butter", "0.012")},
		{"integers", book("Pancakes", "5")},
		{"unicode", book("crème fraîche", "0.0085")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FileStore{Path: filepath.Join(t.TempDir(), "store.json")}
			if err := s.Save(tt.book); err != nil {
				t.Fatalf("Save() unexpected error: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if !got.Equal(tt.book) {
				t.Errorf("Load() = %v, want %v", got.Names(), tt.book.Names())
			}
		})
	}
}

func TestFileStore_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingredients.json")
	s := FileStore{Path: path}
	if err := s.Save(book("Eggs", "0.05", "Flour", "0.001")); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"Eggs\": 0.05,\n  \"Flour\": 0.001\n}"
	if string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}

	// Save overwrites wholesale.
	if err := s.Save(book("Milk", "0.001")); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, _ = os.ReadFile(path)
	if want := "{\n  \"Milk\": 0.001\n}"; string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestFileStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"Eggs": 0.05`},
		{"empty file", ``},
		{"not an object", `[1, 2]`},
		{"string value", `{"Eggs": "cheap"}`},
		{"null value", `{"Eggs": null}`},
		{"nested object", `{"Eggs": {"cost": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "store.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := FileStore{Path: path}.Load()
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Load() error = %v, want a *ParseError", err)
			}
			if perr.Path != path {
				t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
			}
		})
	}
}

func TestBook_DuplicateKeys(t *testing.T) {
	b := NewBook()
	if err := b.UnmarshalJSON([]byte(`{"a": 1, "b": 2, "a": 3}`)); err != nil {
		t.Fatalf("UnmarshalJSON() unexpected error: %v", err)
	}
	if want := book("a", "3", "b", "2"); !b.Equal(want) {
		t.Errorf("UnmarshalJSON() = %v, want %v", b.Names(), want.Names())
	}
}

func TestBook_Clone(t *testing.T) {
	b := book("a", "1")
	c := b.Clone()
	c.Set("b", D("2"))
	if b.Has("b") {
		t.Error("Clone() shares state with the original book")
	}
}

func TestMemStore(t *testing.T) {
	s := NewMemStore(book("a", "1"))
	b, _ := s.Load()
	b.Set("b", D("2"))
	if again, _ := s.Load(); again.Has("b") {
		t.Error("Load() returned a shared book")
	}
	if err := s.Save(b); err != nil {
		t.Fatal(err)
	}
	if again, _ := s.Load(); !again.Equal(b) {
		t.Errorf("Load() after Save() = %v, want %v", again.Names(), b.Names())
	}
	if s.Saves != 1 {
		t.Errorf("Saves = %d, want 1", s.Saves)
	}
}
