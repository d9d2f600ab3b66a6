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

// Setters mutate the referenced config in place and return nothing; a stale
// handle, an out-of-range enum value or a malformed string makes the call a
// no-op rather than an error.

func pdfConfigFromHandle(h *C.CPdfParserConfig) *engine.PdfParserConfig {
	cfg, _ := handles.get(uintptr(unsafe.Pointer(h))).(*engine.PdfParserConfig)
	return cfg
}

func officeConfigFromHandle(h *C.COfficeParserConfig) *engine.OfficeParserConfig {
	cfg, _ := handles.get(uintptr(unsafe.Pointer(h))).(*engine.OfficeParserConfig)
	return cfg
}

func ocrConfigFromHandle(h *C.CTesseractOcrConfig) *engine.TesseractOcrConfig {
	cfg, _ := handles.get(uintptr(unsafe.Pointer(h))).(*engine.TesseractOcrConfig)
	return cfg
}

//export extractkit_pdf_config_new
func extractkit_pdf_config_new() *C.CPdfParserConfig {
	id := handles.put(engine.NewPdfParserConfig())
	return (*C.CPdfParserConfig)(unsafe.Pointer(id))
}

//export extractkit_pdf_config_set_ocr_strategy
func extractkit_pdf_config_set_ocr_strategy(h *C.CPdfParserConfig, strategy C.int) {
	cfg := pdfConfigFromHandle(h)
	if cfg == nil || !engine.ValidOcrStrategy(engine.OcrStrategy(strategy)) {
		return
	}
	cfg.OcrStrategy = engine.OcrStrategy(strategy)
}

//export extractkit_pdf_config_set_extract_inline_images
func extractkit_pdf_config_set_extract_inline_images(h *C.CPdfParserConfig, value C.bool) {
	if cfg := pdfConfigFromHandle(h); cfg != nil {
		cfg.ExtractInlineImages = bool(value)
	}
}

//export extractkit_pdf_config_set_extract_unique_inline_images_only
func extractkit_pdf_config_set_extract_unique_inline_images_only(h *C.CPdfParserConfig, value C.bool) {
	if cfg := pdfConfigFromHandle(h); cfg != nil {
		cfg.ExtractUniqueInlineImagesOnly = bool(value)
	}
}

//export extractkit_pdf_config_set_extract_marked_content
func extractkit_pdf_config_set_extract_marked_content(h *C.CPdfParserConfig, value C.bool) {
	if cfg := pdfConfigFromHandle(h); cfg != nil {
		cfg.ExtractMarkedContent = bool(value)
	}
}

//export extractkit_pdf_config_set_extract_annotation_text
func extractkit_pdf_config_set_extract_annotation_text(h *C.CPdfParserConfig, value C.bool) {
	if cfg := pdfConfigFromHandle(h); cfg != nil {
		cfg.ExtractAnnotationText = bool(value)
	}
}

//export extractkit_pdf_config_free
func extractkit_pdf_config_free(h *C.CPdfParserConfig) {
	handles.take(uintptr(unsafe.Pointer(h)))
}

//export extractkit_office_config_new
func extractkit_office_config_new() *C.COfficeParserConfig {
	id := handles.put(engine.NewOfficeParserConfig())
	return (*C.COfficeParserConfig)(unsafe.Pointer(id))
}

//export extractkit_office_config_set_extract_macros
func extractkit_office_config_set_extract_macros(h *C.COfficeParserConfig, value C.bool) {
	if cfg := officeConfigFromHandle(h); cfg != nil {
		cfg.ExtractMacros = bool(value)
	}
}

//export extractkit_office_config_set_include_deleted_content
func extractkit_office_config_set_include_deleted_content(h *C.COfficeParserConfig, value C.bool) {
	if cfg := officeConfigFromHandle(h); cfg != nil {
		cfg.IncludeDeletedContent = bool(value)
	}
}

//export extractkit_office_config_set_include_move_from_content
func extractkit_office_config_set_include_move_from_content(h *C.COfficeParserConfig, value C.bool) {
	if cfg := officeConfigFromHandle(h); cfg != nil {
		cfg.IncludeMoveFromContent = bool(value)
	}
}

//export extractkit_office_config_set_include_shape_based_content
func extractkit_office_config_set_include_shape_based_content(h *C.COfficeParserConfig, value C.bool) {
	if cfg := officeConfigFromHandle(h); cfg != nil {
		cfg.IncludeShapeBasedContent = bool(value)
	}
}

//export extractkit_office_config_free
func extractkit_office_config_free(h *C.COfficeParserConfig) {
	handles.take(uintptr(unsafe.Pointer(h)))
}

//export extractkit_ocr_config_new
func extractkit_ocr_config_new() *C.CTesseractOcrConfig {
	id := handles.put(engine.NewTesseractOcrConfig())
	return (*C.CTesseractOcrConfig)(unsafe.Pointer(id))
}

//export extractkit_ocr_config_set_language
func extractkit_ocr_config_set_language(h *C.CTesseractOcrConfig, language *C.char) {
	cfg := ocrConfigFromHandle(h)
	if cfg == nil || language == nil {
		return
	}
	lang := C.GoString(language)
	if !utf8.ValidString(lang) {
		return
	}
	cfg.Language = lang
}

//export extractkit_ocr_config_set_density
func extractkit_ocr_config_set_density(h *C.CTesseractOcrConfig, density C.int) {
	cfg := ocrConfigFromHandle(h)
	if cfg == nil || density <= 0 {
		return
	}
	cfg.Density = int(density)
}

//export extractkit_ocr_config_set_depth
func extractkit_ocr_config_set_depth(h *C.CTesseractOcrConfig, depth C.int) {
	cfg := ocrConfigFromHandle(h)
	if cfg == nil || depth <= 0 {
		return
	}
	cfg.Depth = int(depth)
}

//export extractkit_ocr_config_set_enable_image_preprocessing
func extractkit_ocr_config_set_enable_image_preprocessing(h *C.CTesseractOcrConfig, value C.bool) {
	if cfg := ocrConfigFromHandle(h); cfg != nil {
		cfg.EnableImagePreprocessing = bool(value)
	}
}

//export extractkit_ocr_config_set_timeout_seconds
func extractkit_ocr_config_set_timeout_seconds(h *C.CTesseractOcrConfig, seconds C.int) {
	cfg := ocrConfigFromHandle(h)
	if cfg == nil || seconds < 0 {
		return
	}
	cfg.TimeoutSeconds = int(seconds)
}

//export extractkit_ocr_config_free
func extractkit_ocr_config_free(h *C.CTesseractOcrConfig) {
	handles.take(uintptr(unsafe.Pointer(h)))
}
