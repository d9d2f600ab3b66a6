package main

import (
	"bytes"
	"errors"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader serves at most chunk bytes per Read call.
type chunkReader struct {
	data  []byte
	chunk int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := c.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(c.data) {
		n = len(c.data)
	}
	copy(p, c.data[:n])
	c.data = c.data[n:]
	return n, nil
}

// flakyReader fails with EINTR a number of times before delegating.
type flakyReader struct {
	r         io.Reader
	interrupt int
}

func (f *flakyReader) Read(p []byte) (int, error) {
	if f.interrupt > 0 {
		f.interrupt--
		return 0, syscall.EINTR
	}
	return f.r.Read(p)
}

func TestReadExactAssemblesShortReads(t *testing.T) {
	src := &chunkReader{data: []byte("abcdefghij"), chunk: 3}
	buf := make([]byte, 10)

	n, err := readExact(src, buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "abcdefghij", string(buf))
}

func TestReadExactShortCountAtEOF(t *testing.T) {
	src := &chunkReader{data: []byte("abc"), chunk: 2}
	buf := make([]byte, 10)

	n, err := readExact(src, buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "exhaustion reports a short count, not an error")
}

func TestReadExactRetriesEINTR(t *testing.T) {
	src := &flakyReader{r: bytes.NewReader([]byte("data")), interrupt: 3}
	buf := make([]byte, 4)

	n, err := readExact(src, buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "data", string(buf))
}

func TestReadExactPropagatesFailure(t *testing.T) {
	boom := errors.New("wire cut")
	src := io.MultiReader(bytes.NewReader([]byte("ab")), &failReader{err: boom})
	buf := make([]byte, 8)

	n, err := readExact(src, buf)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, boom)
}

type failReader struct{ err error }

func (f *failReader) Read([]byte) (int, error) { return 0, f.err }
