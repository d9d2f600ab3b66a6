package engine

import "fmt"

// Kind classifies an extraction failure so callers can branch without
// parsing messages.
type Kind int

const (
	// KindExtraction is the generic failure for malformed or unparseable
	// documents.
	KindExtraction Kind = iota
	// KindIO covers file system and network failures.
	KindIO
	// KindEncoding covers character set conversion failures.
	KindEncoding
	// KindUnsupportedFormat means no parser matched the input.
	KindUnsupportedFormat
	// KindOCR covers optical character recognition failures.
	KindOCR
	// KindConfig covers invalid configuration values.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindExtraction:
		return "extraction"
	case KindIO:
		return "io"
	case KindEncoding:
		return "encoding"
	case KindUnsupportedFormat:
		return "unsupported format"
	case KindOCR:
		return "ocr"
	case KindConfig:
		return "config"
	}
	return "unknown"
}

// Error is the typed failure returned by every engine operation. The wrapped
// cause stays reachable through errors.Unwrap so callers can walk the chain.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func errorf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}
