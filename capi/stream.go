package main

/*
#include <stdlib.h>
#include "cabi.h"
*/
import "C"

import (
	"errors"
	"io"
	"syscall"
	"unsafe"

	"github.com/wudi/extractkit/engine"
)

func streamFromHandle(h *C.CStreamReader) *engine.StreamReader {
	reader, _ := handles.get(uintptr(unsafe.Pointer(h))).(*engine.StreamReader)
	return reader
}

// readExact fills buf completely unless the stream ends first, retrying
// interrupted reads. It returns the byte count and any non-EOF failure; a
// short count with a nil error means the stream is exhausted.
func readExact(r io.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err == io.EOF {
			return total, nil
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

//export extractkit_stream_read
func extractkit_stream_read(h *C.CStreamReader, buffer *C.uint8_t, bufferSize C.size_t, bytesRead *C.size_t) C.int {
	if buffer == nil || bytesRead == nil {
		return C.int(codeNullPointer)
	}
	reader := streamFromHandle(h)
	if reader == nil {
		return C.int(codeNullPointer)
	}
	if bufferSize == 0 {
		*bytesRead = 0
		return C.int(codeOK)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(bufferSize))
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		setLastError(err)
		*bytesRead = 0
		return C.int(codeIOError)
	}
	// Exhaustion is not an error: the caller sees bytes_read == 0 and stops.
	*bytesRead = C.size_t(n)
	return C.int(codeOK)
}

//export extractkit_stream_read_exact
func extractkit_stream_read_exact(h *C.CStreamReader, buffer *C.uint8_t, bufferSize C.size_t, bytesRead *C.size_t) C.int {
	if buffer == nil || bytesRead == nil {
		return C.int(codeNullPointer)
	}
	reader := streamFromHandle(h)
	if reader == nil {
		return C.int(codeNullPointer)
	}
	if bufferSize == 0 {
		*bytesRead = 0
		return C.int(codeOK)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(bufferSize))
	n, err := readExact(reader, buf)
	if err != nil {
		setLastError(err)
		*bytesRead = 0
		return C.int(codeIOError)
	}
	*bytesRead = C.size_t(n)
	return C.int(codeOK)
}

//export extractkit_stream_read_all
func extractkit_stream_read_all(h *C.CStreamReader, outBuffer **C.uint8_t, outSize *C.size_t) C.int {
	if outBuffer == nil || outSize == nil {
		return C.int(codeNullPointer)
	}
	reader := streamFromHandle(h)
	if reader == nil {
		return C.int(codeNullPointer)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		setLastError(err)
		return C.int(codeIOError)
	}
	*outBuffer = (*C.uint8_t)(C.CBytes(data))
	*outSize = C.size_t(len(data))
	return C.int(codeOK)
}

//export extractkit_buffer_free
func extractkit_buffer_free(buffer *C.uint8_t, size C.size_t) {
	_ = size
	if buffer != nil {
		C.free(unsafe.Pointer(buffer))
	}
}

//export extractkit_stream_free
func extractkit_stream_free(h *C.CStreamReader) {
	if reader, ok := handles.take(uintptr(unsafe.Pointer(h))).(*engine.StreamReader); ok {
		reader.Close()
	}
}
