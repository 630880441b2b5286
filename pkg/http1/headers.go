package http1

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

type Header struct {
	Name  string
	Value string
}

// Headers keeps fields in the order they are written, duplicates included.
// Lookups are case-insensitive.
type Headers []Header

func (headers *Headers) Add(name string, value string) {
	*headers = append(*headers, Header{Name: name, Value: value})
}

// Set replaces every field called name with a single one.
func (headers *Headers) Set(name string, value string) {
	headers.Del(name)
	headers.Add(name, value)
}

func (headers *Headers) Del(name string) (deleted bool) {
	kept := (*headers)[:0]
	for _, h := range *headers {
		if strings.EqualFold(h.Name, name) {
			deleted = true
			continue
		}
		kept = append(kept, h)
	}
	*headers = kept
	return
}

// Get returns the first value of name.
func (headers Headers) Get(name string) (value string, ok bool) {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			value, ok = h.Value, true
			return
		}
	}
	return
}

func (headers Headers) Has(name string) bool {
	_, ok := headers.Get(name)
	return ok
}

func (headers Headers) Values(name string) (values []string) {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			values = append(values, h.Value)
		}
	}
	return
}

// ContainsToken reports whether the comma separated values of name include token.
func (headers Headers) ContainsToken(name string, token string) bool {
	return httpguts.HeaderValuesContainsToken(headers.Values(name), token)
}

// validate rejects names that are not tokens and values that could split the message.
func (headers Headers) validate(op string) error {
	for _, h := range headers {
		if !httpguts.ValidHeaderFieldName(h.Name) {
			return invalidHeader(op, h.Name)
		}
		if !httpguts.ValidHeaderFieldValue(h.Value) {
			return invalidHeader(op, h.Name)
		}
	}
	return nil
}

// chunkedLast reports whether chunked is the final transfer coding.
func (headers Headers) chunkedLast() bool {
	values := headers.Values("Transfer-Encoding")
	if len(values) == 0 {
		return false
	}
	codings := strings.Split(values[len(values)-1], ",")
	return strings.EqualFold(strings.TrimSpace(codings[len(codings)-1]), "chunked")
}
