// Package engine implements the document extraction engine behind the
// extractkit C boundary. It turns a source document (file, byte span, or
// URL) plus the attached parser configurations into extracted text or
// structured markup and a string-keyed multi-valued metadata set.
//
// The engine is synchronous and an Extractor is not safe for concurrent use;
// callers confine each instance to one goroutine at a time or synchronize
// externally.
package engine
