package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter asks questions on a writer and reads the answers, one per line.
// Invalid answers are asked again, forever.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter returns a Prompter reading answers from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints the prompt and returns the answer without its line ending.
// An input closed before any answer is io.ErrUnexpectedEOF.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// NonEmpty returns a trimmed, non blank answer.
func (p *Prompter) NonEmpty(prompt string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if v := strings.TrimSpace(line); v != "" {
			return v, nil
		}
		fmt.Fprintln(p.w, "Input cannot be empty.")
	}
}

// PositiveDecimal returns a strictly positive number.
func (p *Prompter) PositiveDecimal(prompt string) (decimal.Decimal, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return decimal.Decimal{}, err
		}
		v, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(p.w, "Invalid input. Please enter a number.")
			continue
		}
		if v.IsPositive() {
			return v, nil
		}
		fmt.Fprintln(p.w, "Please enter a positive number.")
	}
}

// Confirm returns true if the answer is "y", ignoring case and spaces.
func (p *Prompter) Confirm(question string) (bool, error) {
	line, err := p.Line(question)
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y", nil
}
