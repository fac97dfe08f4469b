package card

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Params is the classifier-supplied parameter map. Nothing about its shape is
// trusted: every accessor validates the one field it reads and reports a
// missing value for anything absent, null, blank or of the wrong type.
type Params map[string]any

// String returns the trimmed string at key.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// StringOr returns the string at key or def.
func (p Params) StringOr(key, def string) string {
	if s, ok := p.String(key); ok {
		return s
	}
	return def
}

// First returns the first key that holds a usable string.
func (p Params) First(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := p.String(k); ok {
			return s, true
		}
	}
	return "", false
}

// Optional returns a pointer to the string at key, or nil.
func (p Params) Optional(key string) *string {
	if s, ok := p.String(key); ok {
		return &s
	}
	return nil
}

// Scalar renders a string or a number at key as text. Numbers drop trailing zeros.
func (p Params) Scalar(key string) (string, bool) {
	switch v := p[key].(type) {
	case string:
		return p.String(key)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	}
	return "", false
}

// Count returns a non-negative integer at key or def. Integral JSON numbers and
// numeric strings are accepted.
func (p Params) Count(key string, def int) int {
	var n int64
	switch v := p[key].(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return def
		}
		n = int64(v)
	case int:
		n = int64(v)
	case int64:
		n = v
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return def
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return def
		}
		n = i
	default:
		return def
	}
	if n < 0 || n > math.MaxInt32 {
		return def
	}
	return int(n)
}

// Objects returns the entries at key that are themselves objects.
func (p Params) Objects(key string) []Params {
	list, ok := p[key].([]any)
	if !ok {
		return nil
	}
	var out []Params
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Params(m))
		}
	}
	return out
}
