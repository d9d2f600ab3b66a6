package main

/*
#include <stdlib.h>
#include "cabi.h"
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"

	"github.com/wudi/extractkit/engine"
)

func extractorFromHandle(h *C.CExtractor) *engine.Extractor {
	ext, _ := handles.get(uintptr(unsafe.Pointer(h))).(*engine.Extractor)
	return ext
}

//export extractkit_extractor_new
func extractkit_extractor_new() *C.CExtractor {
	id := handles.put(engine.New())
	return (*C.CExtractor)(unsafe.Pointer(id))
}

//export extractkit_extractor_set_extract_string_max_length
func extractkit_extractor_set_extract_string_max_length(h *C.CExtractor, maxLength C.int) {
	if ext := extractorFromHandle(h); ext != nil {
		ext.SetExtractStringMaxLength(int(maxLength))
	}
}

//export extractkit_extractor_set_encoding
func extractkit_extractor_set_encoding(h *C.CExtractor, charset C.int) {
	ext := extractorFromHandle(h)
	if ext == nil || !engine.ValidCharset(engine.Charset(charset)) {
		return
	}
	ext.SetEncoding(engine.Charset(charset))
}

//export extractkit_extractor_set_xml_output
func extractkit_extractor_set_xml_output(h *C.CExtractor, xmlOutput C.bool) {
	if ext := extractorFromHandle(h); ext != nil {
		ext.SetXMLOutput(bool(xmlOutput))
	}
}

// The three attach operations transfer ownership: the config handle is
// retired from the table, so a later *_config_free on it is a no-op and
// further setter calls through it stop taking effect. When the extractor
// handle is invalid the config is left untouched and still owned by the
// caller.

//export extractkit_extractor_set_pdf_config
func extractkit_extractor_set_pdf_config(h *C.CExtractor, config *C.CPdfParserConfig) {
	ext := extractorFromHandle(h)
	if ext == nil {
		return
	}
	cfg, _ := handles.take(uintptr(unsafe.Pointer(config))).(*engine.PdfParserConfig)
	if cfg == nil {
		return
	}
	ext.SetPdfConfig(cfg)
}

//export extractkit_extractor_set_office_config
func extractkit_extractor_set_office_config(h *C.CExtractor, config *C.COfficeParserConfig) {
	ext := extractorFromHandle(h)
	if ext == nil {
		return
	}
	cfg, _ := handles.take(uintptr(unsafe.Pointer(config))).(*engine.OfficeParserConfig)
	if cfg == nil {
		return
	}
	ext.SetOfficeConfig(cfg)
}

//export extractkit_extractor_set_ocr_config
func extractkit_extractor_set_ocr_config(h *C.CExtractor, config *C.CTesseractOcrConfig) {
	ext := extractorFromHandle(h)
	if ext == nil {
		return
	}
	cfg, _ := handles.take(uintptr(unsafe.Pointer(config))).(*engine.TesseractOcrConfig)
	if cfg == nil {
		return
	}
	ext.SetOcrConfig(cfg)
}

//export extractkit_extractor_free
func extractkit_extractor_free(h *C.CExtractor) {
	handles.take(uintptr(unsafe.Pointer(h)))
}

// goPath converts a C path or URL argument, distinguishing a missing
// pointer from malformed bytes so the two map to different codes.
func goPath(s *C.char) (string, int) {
	if s == nil {
		return "", codeNullPointer
	}
	v := C.GoString(s)
	if !utf8.ValidString(v) {
		return "", codeInvalidUTF8
	}
	return v, codeOK
}

func finishString(content string, md engine.Metadata, outContent **C.char, outMetadata **C.CMetadata) C.int {
	*outContent = C.CString(sanitizeContent(content))
	*outMetadata = metadataToC(md)
	return C.int(codeOK)
}

func finishStream(reader *engine.StreamReader, md engine.Metadata, outReader **C.CStreamReader, outMetadata **C.CMetadata) C.int {
	*outReader = (*C.CStreamReader)(unsafe.Pointer(handles.put(reader)))
	*outMetadata = metadataToC(md)
	return C.int(codeOK)
}

func failWith(err error) C.int {
	setLastError(err)
	return C.int(codeForError(err))
}

//export extractkit_extractor_extract_file_to_string
func extractkit_extractor_extract_file_to_string(h *C.CExtractor, path *C.char, outContent **C.char, outMetadata **C.CMetadata) C.int {
	if outContent == nil || outMetadata == nil {
		return C.int(codeNullPointer)
	}
	ext := extractorFromHandle(h)
	if ext == nil {
		return C.int(codeNullPointer)
	}
	p, code := goPath(path)
	if code != codeOK {
		return C.int(code)
	}
	beginExtraction()
	content, md, err := ext.ExtractFileToString(p)
	if err != nil {
		return failWith(err)
	}
	return finishString(content, md, outContent, outMetadata)
}

//export extractkit_extractor_extract_file
func extractkit_extractor_extract_file(h *C.CExtractor, path *C.char, outReader **C.CStreamReader, outMetadata **C.CMetadata) C.int {
	if outReader == nil || outMetadata == nil {
		return C.int(codeNullPointer)
	}
	ext := extractorFromHandle(h)
	if ext == nil {
		return C.int(codeNullPointer)
	}
	p, code := goPath(path)
	if code != codeOK {
		return C.int(code)
	}
	beginExtraction()
	reader, md, err := ext.ExtractFile(p)
	if err != nil {
		return failWith(err)
	}
	return finishStream(reader, md, outReader, outMetadata)
}

//export extractkit_extractor_extract_bytes_to_string
func extractkit_extractor_extract_bytes_to_string(h *C.CExtractor, data *C.uint8_t, dataLen C.size_t, outContent **C.char, outMetadata **C.CMetadata) C.int {
	if data == nil || outContent == nil || outMetadata == nil {
		return C.int(codeNullPointer)
	}
	ext := extractorFromHandle(h)
	if ext == nil {
		return C.int(codeNullPointer)
	}
	if !spanFits(uint64(dataLen)) {
		return C.int(codeOutOfMemory)
	}
	beginExtraction()
	buf := copySpan((*byte)(unsafe.Pointer(data)), int(dataLen))
	content, md, err := ext.ExtractBytesToString(buf)
	if err != nil {
		return failWith(err)
	}
	return finishString(content, md, outContent, outMetadata)
}

//export extractkit_extractor_extract_bytes
func extractkit_extractor_extract_bytes(h *C.CExtractor, data *C.uint8_t, dataLen C.size_t, outReader **C.CStreamReader, outMetadata **C.CMetadata) C.int {
	if data == nil || outReader == nil || outMetadata == nil {
		return C.int(codeNullPointer)
	}
	ext := extractorFromHandle(h)
	if ext == nil {
		return C.int(codeNullPointer)
	}
	if !spanFits(uint64(dataLen)) {
		return C.int(codeOutOfMemory)
	}
	beginExtraction()
	buf := copySpan((*byte)(unsafe.Pointer(data)), int(dataLen))
	reader, md, err := ext.ExtractBytes(buf)
	if err != nil {
		return failWith(err)
	}
	return finishStream(reader, md, outReader, outMetadata)
}

//export extractkit_extractor_extract_url_to_string
func extractkit_extractor_extract_url_to_string(h *C.CExtractor, url *C.char, outContent **C.char, outMetadata **C.CMetadata) C.int {
	if outContent == nil || outMetadata == nil {
		return C.int(codeNullPointer)
	}
	ext := extractorFromHandle(h)
	if ext == nil {
		return C.int(codeNullPointer)
	}
	u, code := goPath(url)
	if code != codeOK {
		return C.int(code)
	}
	beginExtraction()
	content, md, err := ext.ExtractURLToString(u)
	if err != nil {
		return failWith(err)
	}
	return finishString(content, md, outContent, outMetadata)
}

//export extractkit_extractor_extract_url
func extractkit_extractor_extract_url(h *C.CExtractor, url *C.char, outReader **C.CStreamReader, outMetadata **C.CMetadata) C.int {
	if outReader == nil || outMetadata == nil {
		return C.int(codeNullPointer)
	}
	ext := extractorFromHandle(h)
	if ext == nil {
		return C.int(codeNullPointer)
	}
	u, code := goPath(url)
	if code != codeOK {
		return C.int(code)
	}
	beginExtraction()
	reader, md, err := ext.ExtractURL(u)
	if err != nil {
		return failWith(err)
	}
	return finishStream(reader, md, outReader, outMetadata)
}
