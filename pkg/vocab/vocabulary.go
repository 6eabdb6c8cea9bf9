// Package vocab holds the closed vocabularies shared by every contract:
// sectors, stages, countries, departments, subscription types, chart types
// and classifier categories.
//
// Each vocabulary is a named string type with a process-wide, immutable
// lookup table built on first use. Validate is the single validate-or-fallback
// entry point; it never fails and reports rejected values through a callback.
package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
)

// Vocabulary is an ordered set of canonical labels with a designated fallback.
type Vocabulary[T ~string] struct {
	name     string
	values   []T
	index    map[T]struct{}
	fallback T
}

// Mismatch describes a candidate that was not part of a vocabulary.
type Mismatch struct {
	Vocabulary string
	Field      string
	Value      interface{}
	Accepted   []string
	Fallback   string
}

// ReportFunc receives one Mismatch per fallback substitution.
type ReportFunc func(Mismatch)

// newVocabulary panics on duplicate labels or a fallback outside the set:
// both are programming errors in the tables below.
func newVocabulary[T ~string](name string, fallback T, values ...T) *Vocabulary[T] {
	index := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, dup := index[v]; dup {
			panic(fmt.Sprintf("vocab: duplicate label %q in %s", string(v), name))
		}
		index[v] = struct{}{}
	}
	if _, ok := index[fallback]; !ok {
		panic(fmt.Sprintf("vocab: fallback %q not in %s", string(fallback), name))
	}
	return &Vocabulary[T]{name: name, values: values, index: index, fallback: fallback}
}

// lazy builds a vocabulary once, on first use.
func lazy[T ~string](name string, fallback T, values ...T) func() *Vocabulary[T] {
	return sync.OnceValue(func() *Vocabulary[T] {
		return newVocabulary(name, fallback, values...)
	})
}

func (v *Vocabulary[T]) Name() string { return v.name }

func (v *Vocabulary[T]) Fallback() T { return v.fallback }

func (v *Vocabulary[T]) Len() int { return len(v.values) }

// Values returns the labels in declaration order.
func (v *Vocabulary[T]) Values() []T {
	out := make([]T, len(v.values))
	copy(out, v.values)
	return out
}

// Strings returns the labels as plain strings in declaration order.
func (v *Vocabulary[T]) Strings() []string {
	out := make([]string, len(v.values))
	for i, val := range v.values {
		out[i] = string(val)
	}
	return out
}

// Contains reports whether label is a member.
func (v *Vocabulary[T]) Contains(label string) bool {
	_, ok := v.index[T(label)]
	return ok
}

// Lookup returns the member matching candidate. Only string-typed candidates
// can match; everything else is reported as absent.
func (v *Vocabulary[T]) Lookup(candidate interface{}) (T, bool) {
	var label T
	switch c := candidate.(type) {
	case T:
		label = c
	case string:
		label = T(c)
	case nil:
		label = ""
	default:
		return "", false
	}
	if _, ok := v.index[label]; ok {
		return label, true
	}
	return "", false
}

// Validate returns candidate when it belongs to v and v's fallback otherwise,
// calling report once for every substitution. report may be nil.
func Validate[T ~string](v *Vocabulary[T], field string, candidate interface{}, report ReportFunc) T {
	if label, ok := v.Lookup(candidate); ok {
		return label
	}
	if report != nil {
		report(Mismatch{
			Vocabulary: v.name,
			Field:      field,
			Value:      candidate,
			Accepted:   v.Strings(),
			Fallback:   string(v.fallback),
		})
	}
	return v.fallback
}

// labelFromJSON never fails, so that any candidate reaches Validate instead
// of failing the decode. Strings are unquoted, null becomes the empty label and
// every other value keeps its compact JSON text, which no vocabulary contains.
func labelFromJSON(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s, nil
		}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return string(data), nil
	}
	return compact.String(), nil
}

func marshalLabel(label string) ([]byte, error) {
	return json.Marshal(label)
}
