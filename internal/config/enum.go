package config

import (
	"fmt"
	"sort"
	"strings"
)

// enumNormalizer maps loosely written enum strings onto canonical values.
type enumNormalizer[T comparable] struct {
	values map[string]T
	keys   []string
}

func newEnumNormalizer[T comparable](values map[string]T) *enumNormalizer[T] {
	n := &enumNormalizer[T]{values: make(map[string]T, len(values))}
	for k, v := range values {
		key := cleanEnum(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)
	return n
}

// normalize returns the canonical value, or the zero value when raw is unknown.
func (n *enumNormalizer[T]) normalize(raw string) (T, bool) {
	v, ok := n.values[cleanEnum(raw)]
	return v, ok
}

func (n *enumNormalizer[T]) errorFor(field, raw string) error {
	return fmt.Errorf("invalid %s %q (valid: %s)", field, raw, strings.Join(n.keys, ", "))
}

func cleanEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
