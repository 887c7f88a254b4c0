package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// queryParser reads typed values from a query string and remembers the
// first malformed one.
type queryParser struct {
	values url.Values
	err    error
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{values: r.URL.Query()}
}

func (p *queryParser) text(key string, dst *string) {
	if v, ok := p.lookup(key); ok {
		*dst = v
	}
}

func (p *queryParser) integer(key string, dst *int) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key)
		return
	}
	*dst = n
}

func (p *queryParser) number(key string, dst *float64) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key)
		return
	}
	*dst = f
}

func (p *queryParser) optionalNumber(key string, dst **float64) {
	var f float64
	if _, ok := p.lookup(key); !ok {
		return
	}
	p.number(key, &f)
	if p.err == nil {
		*dst = &f
	}
}

func (p *queryParser) lookup(key string) (string, bool) {
	if !p.values.Has(key) {
		return "", false
	}
	return p.values.Get(key), true
}

func (p *queryParser) fail(key string) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid query parameter %q", key)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
