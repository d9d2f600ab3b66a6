package engine

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetectFormatMagicBytes(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7 rest"), FormatPDF},
		{"png", []byte("\x89PNG\r\n\x1a\nrest"), FormatPNG},
		{"jpeg", []byte("\xff\xd8\xff\xe0rest"), FormatJPEG},
		{"tiff little endian", []byte("II*\x00rest"), FormatTIFF},
		{"tiff big endian", []byte("MM\x00*rest"), FormatTIFF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectFormat(tc.data, ""))
		})
	}
}

func TestDetectFormatZipContainers(t *testing.T) {
	docx := buildZip(t, map[string]string{"word/document.xml": "<w:document/>"})
	assert.Equal(t, FormatDOCX, DetectFormat(docx, ""))

	plain := buildZip(t, map[string]string{"readme.txt": "hi"})
	assert.Equal(t, FormatUnknown, DetectFormat(plain, "archive.zip"),
		"a zip without word/document.xml is not a supported document")
}

func TestDetectFormatHTMLSniff(t *testing.T) {
	assert.Equal(t, FormatHTML, DetectFormat([]byte("<!DOCTYPE html><html></html>"), ""))
	assert.Equal(t, FormatHTML, DetectFormat([]byte("  \n<html><body/></html>"), ""))
	assert.Equal(t, FormatHTML, DetectFormat([]byte("plain"), "page.html"))
}

func TestDetectFormatExtensionFallback(t *testing.T) {
	assert.Equal(t, FormatMarkdown, DetectFormat([]byte("# Title"), "notes.md"))
	assert.Equal(t, FormatMarkdown, DetectFormat([]byte("# Title"), "NOTES.MARKDOWN"))
	assert.Equal(t, FormatText, DetectFormat([]byte("# Title"), "notes.txt"),
		"markdown syntax without the extension stays plain text")
}

func TestDetectFormatTextAndUnknown(t *testing.T) {
	assert.Equal(t, FormatText, DetectFormat([]byte("hello, world"), ""))
	assert.Equal(t, FormatUnknown, DetectFormat([]byte{0x00, 0xff, 0xfe, 0x01}, ""))
	assert.Equal(t, FormatUnknown, DetectFormat(nil, "whatever.txt"))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "pdf", FormatPDF.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
	assert.Equal(t, "unknown", Format(99).String())
}
