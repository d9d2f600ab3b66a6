package main

/*
#include <stdlib.h>
#include "cabi.h"
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/wudi/extractkit/engine"
)

type metaEntry struct {
	key   string
	value string
}

// flattenEntries turns metadata into key-sorted entries, joining multi-value
// keys with commas. Entries whose key or joined value contains a NUL byte
// cannot cross the boundary as C strings and are dropped individually; the
// rest of the metadata survives.
func flattenEntries(md engine.Metadata) []metaEntry {
	entries := make([]metaEntry, 0, len(md))
	for _, k := range md.Keys() {
		joined := strings.Join(md.Values(k), ",")
		if strings.ContainsRune(k, 0) || strings.ContainsRune(joined, 0) {
			continue
		}
		entries = append(entries, metaEntry{key: k, value: joined})
	}
	return entries
}

// metadataToC allocates a CMetadata and its parallel key/value arrays on the
// C heap. Empty metadata produces NULL arrays with len 0, which
// extractkit_metadata_free accepts.
func metadataToC(md engine.Metadata) *C.CMetadata {
	m := (*C.CMetadata)(C.malloc(C.size_t(unsafe.Sizeof(C.CMetadata{}))))
	entries := flattenEntries(md)
	if len(entries) == 0 {
		m.keys = nil
		m.values = nil
		m.len = 0
		return m
	}
	n := len(entries)
	ptrBytes := C.size_t(n) * C.size_t(unsafe.Sizeof((*C.char)(nil)))
	keys := (**C.char)(C.malloc(ptrBytes))
	values := (**C.char)(C.malloc(ptrBytes))
	keySlice := unsafe.Slice(keys, n)
	valSlice := unsafe.Slice(values, n)
	for i, e := range entries {
		keySlice[i] = C.CString(e.key)
		valSlice[i] = C.CString(e.value)
	}
	m.keys = keys
	m.values = values
	m.len = C.size_t(n)
	return m
}

// metadataPairs copies the flattened C arrays back into a Go map, verifying
// round trips. The boundary itself never unflattens.
func metadataPairs(m *C.CMetadata) map[string]string {
	out := map[string]string{}
	if m == nil || m.len == 0 {
		return out
	}
	keys := unsafe.Slice(m.keys, int(m.len))
	values := unsafe.Slice(m.values, int(m.len))
	for i := range keys {
		out[C.GoString(keys[i])] = C.GoString(values[i])
	}
	return out
}

//export extractkit_metadata_free
func extractkit_metadata_free(m *C.CMetadata) {
	if m == nil {
		return
	}
	if m.keys != nil {
		for _, p := range unsafe.Slice(m.keys, int(m.len)) {
			C.free(unsafe.Pointer(p))
		}
		C.free(unsafe.Pointer(m.keys))
	}
	if m.values != nil {
		for _, p := range unsafe.Slice(m.values, int(m.len)) {
			C.free(unsafe.Pointer(p))
		}
		C.free(unsafe.Pointer(m.values))
	}
	C.free(unsafe.Pointer(m))
}

//export extractkit_string_free
func extractkit_string_free(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}
