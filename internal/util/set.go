// Package util holds small generic containers shared by the grammar
// compiler's internal packages.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// SVSet is a set of string keys, each mapped to a value of type V. It is
// used wherever the compiler needs to group items (paths, rules) by a
// string key without caring about insertion order.
type SVSet[V any] map[string]V

// NewSVSet creates an SVSet, optionally seeded from one or more maps.
func NewSVSet[V any](of ...map[string]V) SVSet[V] {
	s := SVSet[V](map[string]V{})
	for _, m := range of {
		for k := range m {
			s.Set(k, m[k])
		}
	}
	return s
}

// Set assigns the value for a key, adding the key if it isn't present.
func (s SVSet[V]) Set(key string, val V) {
	s[key] = val
}

// Get retrieves the value for a key, or the zero value of V if absent.
func (s SVSet[V]) Get(key string) V {
	return s[key]
}

// Has returns whether key is present in the set.
func (s SVSet[V]) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys in the set.
func (s SVSet[V]) Len() int {
	return len(s)
}

// Elements returns the keys of the set in unspecified order.
func (s SVSet[V]) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

// ElementsOrdered returns the keys of the set, sorted ascending.
func (s SVSet[V]) ElementsOrdered() []string {
	elems := s.Elements()
	sort.Strings(elems)
	return elems
}

// Copy returns a shallow copy of the set.
func (s SVSet[V]) Copy() SVSet[V] {
	return NewSVSet(map[string]V(s))
}

// String shows the contents of the set; key order is not guaranteed.
func (s SVSet[V]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	i := 0
	for k := range s {
		sb.WriteString(fmt.Sprintf("%v", k))
		i++
		if i < len(s) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}
