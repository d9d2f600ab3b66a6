package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestValidCharset(t *testing.T) {
	assert.True(t, ValidCharset(CharsetUTF8))
	assert.True(t, ValidCharset(CharsetUSASCII))
	assert.True(t, ValidCharset(CharsetUTF16BE))
	assert.False(t, ValidCharset(Charset(-1)))
	assert.False(t, ValidCharset(Charset(3)))
}

func TestEncoderForUTF8IsIdentity(t *testing.T) {
	assert.Nil(t, encoderFor(CharsetUTF8))
}

func TestEncoderForASCIISubstitutes(t *testing.T) {
	enc := encoderFor(CharsetUSASCII)
	require.NotNil(t, enc)

	out, _, err := transform.String(enc, "héllo ⌘")
	require.NoError(t, err)
	assert.Equal(t, "h?llo ?", out)
}

func TestEncoderForUTF16BE(t *testing.T) {
	enc := encoderFor(CharsetUTF16BE)
	require.NotNil(t, enc)

	out, _, err := transform.String(enc, "AB")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 'A', 0x00, 'B'}, []byte(out), "big endian, no BOM")
}

func TestCharsetString(t *testing.T) {
	assert.Equal(t, "UTF-8", CharsetUTF8.String())
	assert.Equal(t, "US-ASCII", CharsetUSASCII.String())
	assert.Equal(t, "UTF-16BE", CharsetUTF16BE.String())
	assert.Equal(t, "invalid", Charset(7).String())
}
