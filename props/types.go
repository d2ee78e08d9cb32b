// Package props: core types, key parsing, and sentinel errors.
package props

import (
	"errors"
	"strings"
)

// Sentinel errors for property storage operations.
var (
	// ErrBadKey indicates a key that is not of the form "pore.<name>" or "throat.<name>".
	ErrBadKey = errors.New("props: key must be \"pore.<name>\" or \"throat.<name>\"")
	// ErrKeyNotFound indicates a required property key is absent from the store.
	ErrKeyNotFound = errors.New("props: key not found")
	// ErrRowCount indicates an array whose row count does not match the entity count.
	ErrRowCount = errors.New("props: array row count does not match entity count")
	// ErrRowWidth indicates data whose length is incompatible with the row width.
	ErrRowWidth = errors.New("props: data length is not a multiple of the row width")
	// ErrRowIndex indicates a row index outside the current live range.
	ErrRowIndex = errors.New("props: row index out of range")
	// ErrKeyConflict indicates a key tree insertion that collides with an existing leaf.
	ErrKeyConflict = errors.New("props: key path collides with an existing scalar entry")
)

// Kind discriminates the two entity spaces a property array can index.
type Kind int

const (
	// Pore properties index graph nodes ("pore.<name>").
	Pore Kind = iota
	// Throat properties index graph edges ("throat.<name>").
	Throat
)

// String returns the key prefix for the kind: "pore" or "throat".
func (k Kind) String() string {
	if k == Pore {
		return "pore"
	}

	return "throat"
}

// ParseKey splits a property key into its entity kind and bare name.
// Returns ErrBadKey for an unknown prefix or an empty name.
// Complexity: O(len(key)).
func ParseKey(key string) (Kind, string, error) {
	prefix, name, ok := strings.Cut(key, ".")
	if !ok || name == "" {
		return 0, "", ErrBadKey
	}
	switch prefix {
	case "pore":
		return Pore, name, nil
	case "throat":
		return Throat, name, nil
	default:
		return 0, "", ErrBadKey
	}
}
