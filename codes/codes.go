// Package codes parses and normalizes scanned box and pair label payloads.
package codes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates the four fields of a box label payload.
const Delimiter = "$"

// ErrInvalidFormat is returned when a scanned payload does not match the
// box label contract.
var ErrInvalidFormat = errors.New("invalid box code format")

// BoxCode is the structured payload printed on a box label:
// id$sku$expectedPairs$sequenceNumber.
type BoxCode struct {
	LabelID        string
	SKU            string
	ExpectedPairs  int
	SequenceNumber string
}

// ParseBoxCode splits a raw box label payload into its four fields.
// ExpectedPairs must be a positive base-10 integer; every other field is an
// opaque string.
func ParseBoxCode(raw string) (BoxCode, error) {
	parts := strings.Split(strings.TrimSpace(raw), Delimiter)
	if len(parts) != 4 {
		return BoxCode{}, fmt.Errorf("%w: expected 4 fields separated by %q, got %d", ErrInvalidFormat, Delimiter, len(parts))
	}
	for _, part := range parts {
		if part == "" {
			return BoxCode{}, fmt.Errorf("%w: empty field", ErrInvalidFormat)
		}
	}

	pairs, err := strconv.Atoi(parts[2])
	if err != nil {
		return BoxCode{}, fmt.Errorf("%w: expected pairs %q is not a number", ErrInvalidFormat, parts[2])
	}
	if pairs <= 0 {
		return BoxCode{}, fmt.Errorf("%w: expected pairs must be positive, got %d", ErrInvalidFormat, pairs)
	}

	return BoxCode{
		LabelID:        parts[0],
		SKU:            parts[1],
		ExpectedPairs:  pairs,
		SequenceNumber: parts[3],
	}, nil
}

// NormalizePairCode prepares a pair label payload for dedup and storage.
// Pair codes are opaque; only surrounding whitespace is stripped.
func NormalizePairCode(raw string) string {
	return strings.TrimSpace(raw)
}

// Normalize prepares a scanned payload for catalog lookups: surrounding
// whitespace stripped and upper-cased.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
