package elements

import (
	"errors"
	"fmt"
)

// Sentinel errors selecting the kind of a LoadError with errors.Is.
var (
	ErrSource         = errors.New("element source unreadable")
	ErrDecode         = errors.New("malformed element record")
	ErrInvalidElement = errors.New("invalid element")
)

// Kind classifies a LoadError.
type Kind int

const (
	KindSource Kind = iota
	KindDecode
	KindInvalidElement
)

// String returns the kind name for messages.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindDecode:
		return "decode"
	case KindInvalidElement:
		return "invalid element"
	default:
		return "unknown"
	}
}

// LoadError is returned for every failure while loading element records.
type LoadError struct {
	Kind   Kind
	Line   int    // 1-based CSV line, 0 when unknown
	Symbol string // offending symbol, when available
	Err    error
}

func (e *LoadError) Error() string {
	msg := e.Kind.String()
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Symbol != "" {
		msg += fmt.Sprintf(" %q", e.Symbol)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrSource:
		return e.Kind == KindSource
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrInvalidElement:
		return e.Kind == KindInvalidElement
	}
	return false
}
