package fakeadmin

import (
	"fmt"
	"strings"
)

type term struct {
	field string // empty matches any field
	value string
}

type queryTerms []term

func parseQuery(q string) queryTerms {
	var out queryTerms
	for _, tok := range strings.Fields(q) {
		if tok == "AND" || tok == "*" {
			continue
		}
		t := term{value: tok}
		if field, value, ok := strings.Cut(tok, ":"); ok && field != "" {
			t = term{field: field, value: value}
		}
		t.value = strings.ToLower(strings.Trim(t.value, `"`))
		out = append(out, t)
	}
	return out
}

func (qt queryTerms) match(doc map[string]any) bool {
	for _, t := range qt {
		if !t.match(doc) {
			return false
		}
	}
	return true
}

func (t term) match(doc map[string]any) bool {
	if t.field != "" {
		v, ok := doc[t.field]
		if !ok {
			return false
		}
		return t.value == "*" || valueContains(v, t.value)
	}
	for _, v := range doc {
		if valueContains(v, t.value) {
			return true
		}
	}
	return false
}

func valueContains(v any, needle string) bool {
	switch x := v.(type) {
	case []any:
		for _, e := range x {
			if valueContains(e, needle) {
				return true
			}
		}
		return false
	case map[string]any:
		for _, e := range x {
			if valueContains(e, needle) {
				return true
			}
		}
		return false
	case nil:
		return false
	default:
		return strings.Contains(strings.ToLower(fmt.Sprint(x)), needle)
	}
}
