// Package extract pulls single fields out of DOM nodes. Absence is reported
// as dom.ErrNotFound; deciding what an absent field means is left to the
// record builders.
package extract

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"go-xscraper/internal/dom"

	"golang.org/x/text/unicode/norm"
)

var ErrBadCount = errors.New("label does not start with a count")

// Clean normalises scraped text to NFC and trims surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Text returns the cleaned text of the first match of selector under n.
func Text(n dom.Node, selector string) (string, error) {
	el, err := n.FindOne(selector)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("read text of %s: %w", selector, err)
	}
	return Clean(text), nil
}

// TextOr is Text with a fallback for a missing element. Other read errors
// also fall back but are logged.
func TextOr(n dom.Node, selector, fallback string) string {
	text, err := Text(n, selector)
	if err != nil {
		if !dom.IsNotFound(err) {
			log.Printf("⚠️ Could not read %s: %v", selector, err)
		}
		return fallback
	}
	return text
}

// Attr returns attribute name of the first match of selector under n.
func Attr(n dom.Node, selector, name string) (string, error) {
	el, err := n.FindOne(selector)
	if err != nil {
		return "", err
	}
	return el.Attr(name)
}

// Count reads the aria-label of the first match of selector and parses its
// leading number, e.g. "1234 views." -> 1234.
func Count(n dom.Node, selector string) (int, error) {
	label, err := Attr(n, selector, "aria-label")
	if err != nil {
		return 0, err
	}
	return ParseCount(label)
}

// CountOr returns missing when the counter element is absent or its label
// carries no number.
func CountOr(n dom.Node, selector string, missing int) int {
	count, err := Count(n, selector)
	if err != nil {
		if !dom.IsNotFound(err) {
			log.Printf("⚠️ Unreadable counter %s: %v", selector, err)
		}
		return missing
	}
	return count
}

// ParseCount splits label on the first whitespace and parses the leading
// token as a non-negative integer. Thousands separators are dropped.
func ParseCount(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadCount, label)
	}
	token := strings.ReplaceAll(fields[0], ",", "")
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadCount, label)
	}
	return n, nil
}
