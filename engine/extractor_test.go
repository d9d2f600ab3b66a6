package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	ext := New()
	assert.Equal(t, CharsetUTF8, ext.Encoding())
	assert.Equal(t, DefaultMaxStringLength, ext.ExtractStringMaxLength())
	assert.False(t, ext.XMLOutput())
}

func TestSettersIgnoreInvalidValues(t *testing.T) {
	ext := New()

	ext.SetEncoding(Charset(99))
	assert.Equal(t, CharsetUTF8, ext.Encoding(), "out-of-range charset is ignored")

	ext.SetEncoding(CharsetUTF16BE)
	assert.Equal(t, CharsetUTF16BE, ext.Encoding())

	ext.SetPdfConfig(nil)
	ext.SetOfficeConfig(nil)
	ext.SetOcrConfig(nil)
	ext.SetLogger(nil)
	ext.SetHTTPClient(nil)
}

func TestExtractBytesToStringEmptyInput(t *testing.T) {
	ext := New()
	_, _, err := ext.ExtractBytesToString(nil)
	require.Error(t, err)

	var ee *Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, KindUnsupportedFormat, ee.Kind)
}

func TestExtractBytesToStringPlainText(t *testing.T) {
	ext := New()
	content, md, err := ext.ExtractBytesToString([]byte("hello, world"))
	require.NoError(t, err)

	assert.Equal(t, "hello, world", content)
	assert.Equal(t, "text/plain", md.Get(MetaContentType))
	assert.Equal(t, strconv.Itoa(len(content)), md.Get(MetaContentLength))
}

func TestExtractBytesToStringBinaryGarbage(t *testing.T) {
	ext := New()
	_, _, err := ext.ExtractBytesToString([]byte{0xff, 0xfe, 0x00, 0x01})
	var ee *Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, KindUnsupportedFormat, ee.Kind)
}

func TestExtractBytesToStringRespectsMaxLength(t *testing.T) {
	ext := New()
	ext.SetExtractStringMaxLength(5)

	content, md, err := ext.ExtractBytesToString([]byte("abcdefghij"))
	require.NoError(t, err)
	assert.Equal(t, "abcde", content)
	assert.Equal(t, "5", md.Get(MetaContentLength),
		"content length reflects the truncated size")
}

func TestExtractBytesToStringUnboundedLength(t *testing.T) {
	ext := New()
	ext.SetExtractStringMaxLength(0)
	content, _, err := ext.ExtractBytesToString([]byte("abcdefghij"))
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij", content)
}

func TestTruncateStringRuneSafe(t *testing.T) {
	// "héllo": h=1 byte, é=2 bytes. A 2-byte limit falls inside é.
	assert.Equal(t, "h", truncateString("héllo", 2))
	assert.Equal(t, "hé", truncateString("héllo", 3))
	assert.Equal(t, "héllo", truncateString("héllo", 100))
	assert.Equal(t, "héllo", truncateString("héllo", 0), "non-positive limit means unbounded")
	assert.Equal(t, "héllo", truncateString("héllo", -1))
}

func TestExtractFileToString(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("file content"), 0o644))

	ext := New()
	content, md, err := ext.ExtractFileToString(path)
	require.NoError(t, err)
	assert.Equal(t, "file content", content)
	assert.Equal(t, "note.txt", md.Get(MetaResourceName))
}

func TestExtractFileToStringMissingFile(t *testing.T) {
	ext := New()
	_, _, err := ext.ExtractFileToString(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var ee *Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, KindIO, ee.Kind)
	assert.True(t, errors.Is(err, os.ErrNotExist), "the os cause stays reachable")
}

func TestExtractBytesStreamMatchesString(t *testing.T) {
	ext := New()
	content, _, err := ext.ExtractBytesToString([]byte("stream me"))
	require.NoError(t, err)

	reader, _, err := ext.ExtractBytes([]byte("stream me"))
	require.NoError(t, err)
	defer reader.Close()

	var sb strings.Builder
	buf := make([]byte, 4)
	for {
		n, rerr := reader.Read(buf)
		sb.Write(buf[:n])
		if rerr != nil {
			break
		}
	}
	assert.Equal(t, content, sb.String())
}

func TestExtractPDFOcrOnlyUnavailable(t *testing.T) {
	ext := New()
	cfg := NewPdfParserConfig()
	cfg.OcrStrategy = OcrStrategyOcrOnly
	ext.SetPdfConfig(cfg)

	_, _, err := ext.ExtractBytesToString([]byte("%PDF-1.4 stub"))
	require.Error(t, err)

	var ee *Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, KindOCR, ee.Kind)
}
