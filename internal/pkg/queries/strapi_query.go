// Package queries serialises structured filters, populate and sort parameters into
// the backend's bracketed query-string dialect, e.g.
//
//	filters[Email][$eq]=a%40b.com&filters[Date][$eq]=2025-04-09&populate=*
//
// Keys keep their brackets literally; only values are escaped.
package queries

import (
	"fmt"
	"net/url"
	"strings"
)

type Operator string

const (
	// OpNone serialises a filter without an operator segment: filters[doctor]=7.
	OpNone     Operator = ""
	OpEq       Operator = "$eq"
	OpEqi      Operator = "$eqi"
	OpNe       Operator = "$ne"
	OpIn       Operator = "$in"
	OpContains Operator = "$contains"
)

type Filter struct {
	Path     []string
	Operator Operator
	Value    string
}

type param struct {
	key   string
	value string
}

type sortKey struct {
	field     string
	direction string
}

type Query struct {
	filters  []Filter
	populate []param
	sort     []sortKey
}

func New() *Query {
	return &Query{}
}

// Filter adds a filter on the attribute addressed by path. Relations are
// addressed by listing each hop: Filter(OpIn, "Cardio", "categories", "Name").
func (q *Query) Filter(op Operator, value string, path ...string) *Query {
	q.filters = append(q.filters, Filter{Path: path, Operator: op, Value: value})
	return q
}

// Eq is shorthand for Filter(OpEq, ...).
func (q *Query) Eq(value string, path ...string) *Query {
	return q.Filter(OpEq, value, path...)
}

// Populate adds a plain populate parameter such as populate=*.
func (q *Query) Populate(value string) *Query {
	q.populate = append(q.populate, param{key: "populate", value: value})
	return q
}

// PopulatePath adds a nested populate parameter, e.g.
// PopulatePath("url", "doctor", "populate", "Image", "populate", "0").
func (q *Query) PopulatePath(value string, path ...string) *Query {
	q.populate = append(q.populate, param{key: "populate" + brackets(path), value: value})
	return q
}

// Sort adds sort[i]=field:direction.
func (q *Query) Sort(field, direction string) *Query {
	q.sort = append(q.sort, sortKey{field: field, direction: direction})
	return q
}

func (q *Query) Filters() []Filter {
	return q.filters
}

func (q *Query) IsEmpty() bool {
	return q == nil || (len(q.filters) == 0 && len(q.populate) == 0 && len(q.sort) == 0)
}

// Encode renders filters first, then populate, then sort, each in insertion order.
func (q *Query) Encode() string {
	if q.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, len(q.filters)+len(q.populate)+len(q.sort))
	for _, f := range q.filters {
		key := "filters" + brackets(f.Path)
		if f.Operator != OpNone {
			key += "[" + string(f.Operator) + "]"
		}
		parts = append(parts, key+"="+url.QueryEscape(f.Value))
	}
	for _, p := range q.populate {
		parts = append(parts, p.key+"="+escapePopulate(p.value))
	}
	for i, s := range q.sort {
		parts = append(parts, fmt.Sprintf("sort[%d]=%s:%s", i, url.QueryEscape(s.field), url.QueryEscape(s.direction)))
	}
	return strings.Join(parts, "&")
}

// Params returns the query as a flat map, used for error and log context.
func (q *Query) Params() map[string]string {
	params := make(map[string]string)
	if q.IsEmpty() {
		return params
	}
	for _, pair := range strings.Split(q.Encode(), "&") {
		key, value, _ := strings.Cut(pair, "=")
		params[key] = value
	}
	return params
}

func (q *Query) String() string {
	return q.Encode()
}

func brackets(path []string) string {
	var b strings.Builder
	for _, segment := range path {
		b.WriteString("[")
		b.WriteString(segment)
		b.WriteString("]")
	}
	return b.String()
}

func escapePopulate(value string) string {
	if value == "*" {
		return value
	}
	return url.QueryEscape(value)
}
