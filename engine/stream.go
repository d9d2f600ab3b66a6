package engine

import (
	"io"
	"strings"

	"golang.org/x/text/transform"
)

// StreamReader is a pull-based, bounded-memory cursor over extraction
// output. It has no seek capability and is not safe for concurrent use.
type StreamReader struct {
	r io.Reader
}

// NewStreamReader wraps an arbitrary reader. Used by the extractor for
// encoded content streams and by tests for failure injection.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

// Read fills p with up to len(p) bytes. It returns io.EOF exactly like the
// underlying reader once the stream is exhausted.
func (s *StreamReader) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Close releases the underlying source when it is closeable.
func (s *StreamReader) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// contentStream returns a reader over content encoded in the extractor's
// configured charset. Transcoding happens lazily as the caller drains the
// stream.
func (e *Extractor) contentStream(content string) *StreamReader {
	var r io.Reader = strings.NewReader(content)
	if t := encoderFor(e.encoding); t != nil {
		r = transform.NewReader(r, t)
	}
	return NewStreamReader(r)
}
