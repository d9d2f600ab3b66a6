package engine

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamReaderReadAndEOF(t *testing.T) {
	sr := NewStreamReader(strings.NewReader("abc"))
	buf := make([]byte, 2)

	n, err := sr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(buf[:n]))

	n, err = sr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "c", string(buf[:n]))

	_, err = sr.Read(buf)
	assert.Equal(t, io.EOF, err)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestStreamReaderClose(t *testing.T) {
	src := &closeTracker{Reader: strings.NewReader("x")}
	sr := NewStreamReader(src)
	require.NoError(t, sr.Close())
	assert.True(t, src.closed)

	// Non-closeable sources make Close a no-op.
	assert.NoError(t, NewStreamReader(strings.NewReader("x")).Close())
}

func TestContentStreamUTF8(t *testing.T) {
	ext := New()
	data, err := io.ReadAll(ext.contentStream("héllo"))
	require.NoError(t, err)
	assert.Equal(t, "héllo", string(data))
}

func TestContentStreamUTF16BE(t *testing.T) {
	ext := New()
	ext.SetEncoding(CharsetUTF16BE)

	data, err := io.ReadAll(ext.contentStream("AB"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 'A', 0x00, 'B'}, data)
}

func TestContentStreamASCII(t *testing.T) {
	ext := New()
	ext.SetEncoding(CharsetUSASCII)

	data, err := io.ReadAll(ext.contentStream("héllo"))
	require.NoError(t, err)
	assert.Equal(t, "h?llo", string(data))
}

func TestStreamReaderPropagatesFailure(t *testing.T) {
	boom := errors.New("source gone")
	sr := NewStreamReader(&errReader{err: boom})
	_, err := sr.Read(make([]byte, 4))
	assert.ErrorIs(t, err, boom)
}

type errReader struct{ err error }

func (e *errReader) Read([]byte) (int, error) { return 0, e.err }
