package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"strings"
	"syscall"

	"github.com/wudi/extractkit/engine"
)

// Error codes returned across the boundary. The values are part of the ABI
// and mirror the EXTRACTKIT_* constants in include/extractkit.h.
const (
	codeOK                = 0
	codeNullPointer       = -1
	codeInvalidUTF8       = -2
	codeInvalidString     = -3
	codeExtractionFailed  = -4
	codeIOError           = -5
	codeInvalidConfig     = -6
	codeInvalidEnum       = -7
	codeUnsupportedFormat = -8
	codeOutOfMemory       = -9
	codeOCRFailed         = -10
)

func errorMessageText(code int) string {
	switch code {
	case codeOK:
		return "Success"
	case codeNullPointer:
		return "Null pointer provided"
	case codeInvalidUTF8:
		return "Invalid UTF-8 in input"
	case codeInvalidString:
		return "String conversion failed"
	case codeExtractionFailed:
		return "Extraction operation failed"
	case codeIOError:
		return "I/O error occurred"
	case codeInvalidConfig:
		return "Invalid configuration"
	case codeInvalidEnum:
		return "Invalid enum value"
	case codeUnsupportedFormat:
		return "Unsupported file format"
	case codeOutOfMemory:
		return "Memory allocation failed"
	case codeOCRFailed:
		return "OCR processing failed"
	}
	return fmt.Sprintf("Unknown error code: %d", code)
}

func errorCategoryText(code int) string {
	switch code {
	case codeOK:
		return "success"
	case codeNullPointer, codeInvalidUTF8, codeInvalidString, codeInvalidConfig, codeInvalidEnum:
		return "invalid_argument"
	case codeIOError:
		return "io_error"
	case codeExtractionFailed, codeUnsupportedFormat, codeOCRFailed:
		return "extraction_error"
	case codeOutOfMemory:
		return "resource_error"
	}
	return "unknown"
}

// codeForError maps an engine error to a boundary code. Structured error
// kinds win over message heuristics; the message heuristics win over the
// generic chain walk, so a wrapped I/O error whose text mentions OCR still
// reports an OCR failure.
func codeForError(err error) int {
	if err == nil {
		return codeOK
	}
	var ee *engine.Error
	if errors.As(err, &ee) {
		switch ee.Kind {
		case engine.KindIO:
			return codeIOError
		case engine.KindEncoding:
			return codeInvalidString
		case engine.KindUnsupportedFormat:
			return codeUnsupportedFormat
		case engine.KindOCR:
			return codeOCRFailed
		case engine.KindConfig:
			return codeInvalidConfig
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "ocr") || strings.Contains(msg, "tesseract"):
		return codeOCRFailed
	case strings.Contains(msg, "unsupported") || strings.Contains(msg, "unknown format"):
		return codeUnsupportedFormat
	case strings.Contains(msg, "memory") || strings.Contains(msg, "allocation"):
		return codeOutOfMemory
	}
	// errors.As and errors.Is walk the wrap chain, so deeply nested
	// OS-level failures still classify as I/O.
	var errno syscall.Errno
	var pathErr *fs.PathError
	var netErr net.Error
	if errors.As(err, &errno) || errors.As(err, &pathErr) || errors.As(err, &netErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return codeIOError
	}
	return codeExtractionFailed
}

// renderDebug builds the multi-section diagnostic string handed out by
// extractkit_error_get_last_debug: the display message, each cause in the
// wrap chain, then a structural dump of the root error value.
func renderDebug(err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", err)
	if cause := errors.Unwrap(err); cause != nil {
		b.WriteString("\nCaused by:\n")
		for i := 0; cause != nil; i++ {
			fmt.Fprintf(&b, "  %d: %s\n", i, cause)
			cause = errors.Unwrap(cause)
		}
	}
	fmt.Fprintf(&b, "\nDebug representation:\n%#v", err)
	return b.String()
}

// sanitizeContent makes extracted text safe to cross the boundary as a C
// string: invalid UTF-8 sequences and interior NUL bytes are replaced with
// U+FFFD so content is never truncated at the first stray byte.
func sanitizeContent(s string) string {
	s = strings.ToValidUTF8(s, "�")
	if strings.ContainsRune(s, 0) {
		s = strings.ReplaceAll(s, "\x00", "�")
	}
	return s
}
