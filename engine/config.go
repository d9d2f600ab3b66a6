package engine

// OcrStrategy selects how OCR participates in PDF extraction.
type OcrStrategy int

const (
	// OcrStrategyNoOcr extracts only embedded text.
	OcrStrategyNoOcr OcrStrategy = iota
	// OcrStrategyOcrOnly ignores embedded text and recognizes rendered pages.
	OcrStrategyOcrOnly
	// OcrStrategyOcrAndText combines embedded text with recognition output.
	OcrStrategyOcrAndText
	// OcrStrategyAuto lets the engine decide per document.
	OcrStrategyAuto
)

// ValidOcrStrategy reports whether s is a member of the closed strategy set.
func ValidOcrStrategy(s OcrStrategy) bool {
	return s >= OcrStrategyNoOcr && s <= OcrStrategyAuto
}

// PdfParserConfig controls PDF extraction behavior. Setters mutate in place;
// Clone produces an independent copy for ownership transfer.
type PdfParserConfig struct {
	OcrStrategy                   OcrStrategy
	ExtractInlineImages           bool
	ExtractUniqueInlineImagesOnly bool
	ExtractMarkedContent          bool
	ExtractAnnotationText         bool
}

// NewPdfParserConfig returns a config with the documented defaults: no OCR,
// no inline images, unique-image deduplication on, no marked content, no
// annotation text.
func NewPdfParserConfig() *PdfParserConfig {
	return &PdfParserConfig{ExtractUniqueInlineImagesOnly: true}
}

// Clone returns an independent copy.
func (c *PdfParserConfig) Clone() *PdfParserConfig {
	dup := *c
	return &dup
}

// OfficeParserConfig controls Office document extraction behavior.
type OfficeParserConfig struct {
	ExtractMacros            bool
	IncludeDeletedContent    bool
	IncludeMoveFromContent   bool
	IncludeShapeBasedContent bool
}

// NewOfficeParserConfig returns a config with the documented defaults: no
// macros, no deleted content, no move-from content, shape-based content on.
func NewOfficeParserConfig() *OfficeParserConfig {
	return &OfficeParserConfig{IncludeShapeBasedContent: true}
}

// Clone returns an independent copy.
func (c *OfficeParserConfig) Clone() *OfficeParserConfig {
	dup := *c
	return &dup
}

// TesseractOcrConfig controls the Tesseract OCR provider.
type TesseractOcrConfig struct {
	// Language is the trained-data selector; multiple languages are joined
	// with '+' (e.g. "eng+deu").
	Language string
	// Density is the processing DPI.
	Density int
	// Depth is the color depth in bits; 8 or less requests grayscale
	// preprocessing.
	Depth int
	// EnableImagePreprocessing normalizes input images before recognition.
	EnableImagePreprocessing bool
	// TimeoutSeconds bounds a single recognition run; 0 disables the bound.
	TimeoutSeconds int
}

// NewTesseractOcrConfig returns a config with the documented defaults:
// English, 300 DPI, 32-bit depth, preprocessing on, 300 second timeout.
func NewTesseractOcrConfig() *TesseractOcrConfig {
	return &TesseractOcrConfig{
		Language:                 "eng",
		Density:                  300,
		Depth:                    32,
		EnableImagePreprocessing: true,
		TimeoutSeconds:           300,
	}
}

// Clone returns an independent copy.
func (c *TesseractOcrConfig) Clone() *TesseractOcrConfig {
	dup := *c
	return &dup
}
