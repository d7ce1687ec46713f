// Package dom is the query primitive the extractors and builders read from.
// Lookups return ErrNotFound instead of panicking so every caller picks its
// own fallback per field.
package dom

import "errors"

// ErrNotFound is returned when a selector matches nothing or an attribute is
// absent. An element that exists but has empty text is not ErrNotFound.
var ErrNotFound = errors.New("element not found")

type Node interface {
	// FindOne returns the first descendant matching selector.
	FindOne(selector string) (Node, error)
	// FindAll returns every descendant matching selector, possibly none.
	FindAll(selector string) ([]Node, error)
	Text() (string, error)
	Attr(name string) (string, error)
	Click() error
}

// IsNotFound reports whether err means "nothing matched".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
