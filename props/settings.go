package props

import "sort"

// Settings is a small named-value container for simulation settings.
// Unlike a map with an implicit zero value, Get makes the "unset" case
// visible in its second result; there is no silent fallback.
type Settings struct {
	values map[string]any
}

// NewSettings returns an empty settings container.
func NewSettings() *Settings {
	return &Settings{values: make(map[string]any)}
}

// Set stores v under key, replacing any previous value.
func (s *Settings) Set(key string, v any) {
	s.values[key] = v
}

// Get returns the value stored under key and whether it was ever set.
func (s *Settings) Get(key string) (any, bool) {
	v, ok := s.values[key]

	return v, ok
}

// Unset removes key, reporting whether it was present.
func (s *Settings) Unset(key string) bool {
	_, ok := s.values[key]
	delete(s.values, key)

	return ok
}

// Keys returns all set keys sorted ascending.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
