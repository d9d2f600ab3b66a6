// Package main builds the extractkit shared library. Compile it with
// -buildmode=c-shared to produce libextractkit plus a generated header;
// include/extractkit.h is the documented header shipped to C callers.
//
// Every exported function follows the same conventions: handles returned by
// the *_new constructors stay valid until the matching *_free call, output
// parameters are written only when the function returns EXTRACTKIT_OK, and
// all returned strings and buffers are released with extractkit_string_free,
// extractkit_metadata_free or extractkit_buffer_free.
package main

import (
	_ "github.com/wudi/extractkit/ocr/tesseract"
)

func main() {}
