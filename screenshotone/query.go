package screenshotone

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is an ordered multimap of request parameters.
//
// Unlike url.Values, serialization order is insertion order, not
// alphabetical. The order matters: the encoded query string is the
// input to request signing, so two equal parameter sets inserted in
// different orders produce different signatures.
type Query struct {
	keys   []string
	values map[string][]string
}

// NewQuery returns an empty Query.
func NewQuery() Query {
	return Query{values: make(map[string][]string)}
}

// Set assigns a single value to the key, replacing any existing values.
// A key set twice keeps its original position in the serialization.
func (q *Query) Set(key, value string) {
	if q.values == nil {
		q.values = make(map[string][]string)
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = []string{value}
}

// Add appends values under the key, keeping any existing ones.
func (q *Query) Add(key string, values ...string) {
	if len(values) == 0 {
		return
	}
	if q.values == nil {
		q.values = make(map[string][]string)
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = append(q.values[key], values...)
}

// Get returns the first value associated with the key, or "" when the
// key is absent.
func (q *Query) Get(key string) string {
	vs := q.values[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Values returns all values associated with the key in insertion order.
func (q *Query) Values(key string) []string {
	return q.values[key]
}

// Has reports whether the key is present.
func (q *Query) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

// Len returns the number of distinct keys.
func (q *Query) Len() int {
	return len(q.keys)
}

// Clone returns an independent copy. Mutating the copy never affects
// the original and vice versa.
func (q *Query) Clone() Query {
	c := Query{
		keys:   make([]string, len(q.keys)),
		values: make(map[string][]string, len(q.values)),
	}
	copy(c.keys, q.keys)
	for k, vs := range q.values {
		c.values[k] = append([]string(nil), vs...)
	}
	return c
}

// Encode serializes the query in insertion order using standard
// form-urlencoded escaping (space becomes '+'). Multi-value keys emit
// one key=value pair per value, in the order the values were added.
func (q *Query) Encode() string {
	var b strings.Builder
	for _, k := range q.keys {
		escaped := url.QueryEscape(k)
		for _, v := range q.values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(escaped)
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

// formatCoordinate renders a latitude or longitude as fixed-point
// decimal. Plain FormatFloat with a negative precision may fall back to
// exponential notation which the signing server does not accept, so the
// value is expanded to 20 fractional digits and the trailing zeros are
// stripped afterwards.
func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', 20, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
