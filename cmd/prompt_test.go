package cmd

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompter_Line(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\n  second \nlast"), &out)
	for _, want := range []string{"first", "  second ", "last"} {
		got, err := p.Line("> ")
		if err != nil {
			t.Fatalf("Line() unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Line() = %q, want %q", got, want)
		}
	}
	if _, err := p.Line("> "); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Line() at EOF error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if got, want := out.String(), "> > > > "; got != want {
		t.Errorf("prompts = %q, want %q", got, want)
	}
}

func TestPrompter_NonEmpty(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n   \n  Pancakes \n"), &out)
	got, err := p.NonEmpty("Enter recipe name: ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Pancakes" {
		t.Errorf("NonEmpty() = %q, want %q", got, "Pancakes")
	}
	if n := strings.Count(out.String(), "Input cannot be empty.\n"); n != 2 {
		t.Errorf("NonEmpty() complained %d times, want 2:\n%s", n, out.String())
	}
}

func TestPrompter_PositiveDecimal(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n\n0\n-3\n 2.5 \n"), &out)
	got, err := p.PositiveDecimal("Enter number of portions: ")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2.5" {
		t.Errorf("PositiveDecimal() = %v, want 2.5", got)
	}
	want := "Enter number of portions: Invalid input. Please enter a number.\n" +
		"Enter number of portions: Invalid input. Please enter a number.\n" +
		"Enter number of portions: Please enter a positive number.\n" +
		"Enter number of portions: Please enter a positive number.\n" +
		"Enter number of portions: "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	if _, err := NewPrompter(strings.NewReader("x\n"), io.Discard).PositiveDecimal("? "); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("PositiveDecimal() at EOF error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{" Y \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
	}
	for _, tt := range tests {
		got, err := NewPrompter(strings.NewReader(tt.in), io.Discard).Confirm("? ")
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
