package engine

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format identifies the parser family selected for a document.
type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
	FormatDOCX
	FormatHTML
	FormatMarkdown
	FormatPNG
	FormatJPEG
	FormatTIFF
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatTIFF:
		return "tiff"
	case FormatText:
		return "text"
	}
	return "unknown"
}

// DetectFormat picks a parser family from magic bytes, falling back to the
// file name extension and finally to a UTF-8 plain-text check. name may be
// empty for anonymous byte spans.
func DetectFormat(data []byte, name string) Format {
	if len(data) == 0 {
		return FormatUnknown
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return FormatPDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		if zipContains(data, "word/document.xml") {
			return FormatDOCX
		}
		return FormatUnknown
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return FormatJPEG
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return FormatTIFF
	}

	if looksLikeHTML(data) {
		return FormatHTML
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		if utf8.Valid(data) {
			return FormatMarkdown
		}
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	}

	if utf8.Valid(data) {
		return FormatText
	}
	return FormatUnknown
}

func zipContains(data []byte, name string) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

func looksLikeHTML(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	trimmed := strings.TrimLeft(string(head), " \t\r\n\uFEFF")
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
}
