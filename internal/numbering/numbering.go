// Package numbering formats and parses business-facing document numbers
// such as Q-2026-0007 and INV-2026-0007.
package numbering

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type DocumentType string

const (
	Quotation DocumentType = "quotation"
	Invoice   DocumentType = "invoice"
)

var ErrMalformed = errors.New("malformed document number")

func (t DocumentType) Valid() bool {
	return t == Quotation || t == Invoice
}

func (t DocumentType) Prefix() string {
	switch t {
	case Quotation:
		return "Q"
	case Invoice:
		return "INV"
	default:
		return ""
	}
}

// Format renders <PREFIX>-<epoch>-<seq> with seq zero-padded to four digits.
func Format(t DocumentType, epoch int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", t.Prefix(), epoch, seq)
}

// Parse splits a document number into prefix, epoch and trailing sequence.
func Parse(number string) (prefix string, epoch int, seq int64, err error) {
	parts := strings.Split(strings.TrimSpace(number), "-")
	if len(parts) < 3 {
		return "", 0, 0, fmt.Errorf("%w: %q", ErrMalformed, number)
	}
	last := len(parts) - 1
	seq, err = strconv.ParseInt(parts[last], 10, 64)
	if err != nil || seq < 0 {
		return "", 0, 0, fmt.Errorf("%w: %q", ErrMalformed, number)
	}
	epoch, err = strconv.Atoi(parts[last-1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %q", ErrMalformed, number)
	}
	return strings.Join(parts[:last-1], "-"), epoch, seq, nil
}

// TypeOf returns the document type owning number's prefix.
func TypeOf(number string) (DocumentType, bool) {
	prefix, _, _, err := Parse(number)
	if err != nil {
		return "", false
	}
	switch strings.ToUpper(prefix) {
	case Quotation.Prefix():
		return Quotation, true
	case Invoice.Prefix():
		return Invoice, true
	default:
		return "", false
	}
}

// EpochOf is the numbering year for a document dated at date.
func EpochOf(date time.Time) int {
	if date.IsZero() {
		return time.Now().UTC().Year()
	}
	return date.Year()
}
