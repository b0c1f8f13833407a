package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// PriceEntry is the cost per gram of an ingredient in a supplier price list.
type PriceEntry struct {
	Name        string
	CostPerGram decimal.Decimal
}

// PriceListQuery selects the entries of a price list document.
//
// Path is a JSONPath expression selecting either a list of objects, each
// holding a name and a cost per gram under NameKey and CostKey, or a single
// flat object mapping names to costs (like an ingredients file).
type PriceListQuery struct {
	Path    string
	NameKey string
	CostKey string
}

// DefaultPriceListQuery reads a flat name to cost object.
var DefaultPriceListQuery = PriceListQuery{Path: "$", NameKey: "name", CostKey: "cost_per_gram"}

// PriceList is a decoded price list document. It remembers the document
// order of the properties of every object.
type PriceList struct {
	doc  any
	keys map[uintptr][]string
}

// ReadPriceList reads a price list document from a file, or from an http(s) address.
func ReadPriceList(ctx context.Context, src string) (*PriceList, error) {
	var data []byte
	var err error
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		data, err = hget(ctx, http.DefaultClient, src)
		if err != nil {
			return nil, fmt.Errorf("cannot fetch price list %q: %w", src, err)
		}
	} else {
		data, err = os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("cannot read price list: %w", err)
		}
	}
	l, err := decodePriceList(data)
	if err != nil {
		return nil, &ParseError{Path: src, Err: err}
	}
	return l, nil
}

// Select extracts the price entries from a price list.
func (q PriceListQuery) Select(l *PriceList) ([]PriceEntry, error) {
	path := q.Path
	if path == "" {
		path = "$"
	}
	jval, err := jsonpath.Get(path, l.doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}

	switch v := jval.(type) {
	case []any:
		entries := make([]PriceEntry, 0, len(v))
		for i, item := range v {
			jitem, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: expected an object, got %T", path, i, item)
			}
			e, err := q.entry(jitem)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", path, i, err)
			}
			entries = append(entries, e)
		}
		return entries, nil
	case map[string]any:
		if _, ok := v[q.NameKey]; ok {
			e, err := q.entry(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return []PriceEntry{e}, nil
		}
		// flat object, in document order.
		entries := make([]PriceEntry, 0, len(v))
		for _, name := range l.names(v) {
			cost, err := toDecimal(v[name])
			if err != nil {
				return nil, fmt.Errorf("%s: cost of %q: %w", path, name, err)
			}
			entries = append(entries, PriceEntry{Name: name, CostPerGram: cost})
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%s: expected a list or an object, got %T", path, jval)
	}
}

// names returns the property names of a decoded object in document order.
// Objects that were not decoded from the document get a sorted order.
func (l *PriceList) names(jobj map[string]any) []string {
	if names, ok := l.keys[reflect.ValueOf(jobj).Pointer()]; ok && len(names) == len(jobj) {
		return names
	}
	names := make([]string, 0, len(jobj))
	for name := range jobj {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (q PriceListQuery) entry(jobj map[string]any) (PriceEntry, error) {
	name, ok := jobj[q.NameKey].(string)
	if !ok {
		return PriceEntry{}, fmt.Errorf("missing string property %q", q.NameKey)
	}
	jcost, ok := jobj[q.CostKey]
	if !ok {
		return PriceEntry{}, fmt.Errorf("%q: missing property %q", name, q.CostKey)
	}
	cost, err := toDecimal(jcost)
	if err != nil {
		return PriceEntry{}, fmt.Errorf("%q: %w", name, err)
	}
	return PriceEntry{Name: strings.TrimSpace(name), CostPerGram: cost}, nil
}

// toDecimal converts a decoded json value into a decimal, strings are accepted.
func toDecimal(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number: %v", jval)
	}
}

// decodePriceList decodes a single JSON document, numbers are kept as json.Number.
func decodePriceList(data []byte) (*PriceList, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	l := &PriceList{keys: make(map[uintptr][]string)}
	doc, err := l.decode(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the document")
	}
	l.doc = doc
	return l, nil
}

// decode reads the next value, recording the property order of objects.
func (l *PriceList) decode(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		jobj := make(map[string]any)
		var names []string
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("expected a property name, got %v", tok)
			}
			jval, err := l.decode(dec)
			if err != nil {
				return nil, err
			}
			if _, dup := jobj[name]; !dup {
				names = append(names, name)
			}
			jobj[name] = jval
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		l.keys[reflect.ValueOf(jobj).Pointer()] = names
		return jobj, nil
	case '[':
		jlist := []any{}
		for dec.More() {
			jval, err := l.decode(dec)
			if err != nil {
				return nil, err
			}
			jlist = append(jlist, jval)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return jlist, nil
	default:
		return nil, fmt.Errorf("unexpected %v", d)
	}
}

// hget performs an HTTP GET request and returns the response body.
func hget(ctx context.Context, client *http.Client, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
