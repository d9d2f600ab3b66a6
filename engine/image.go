package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wudi/extractkit/ocr"
)

func (e *Extractor) extractImage(data []byte, format Format) (string, Metadata, error) {
	eng := ocr.DefaultEngine()
	if eng == nil {
		return "", nil, newError(KindOCR, "ocr", errNoOCREngine)
	}

	cfg := e.ocrConfig
	if cfg == nil {
		cfg = NewTesseractOcrConfig()
	}

	img := data
	imgFormat := imageFormatFor(format)
	if cfg.EnableImagePreprocessing {
		pre, err := ocr.Preprocess(data, cfg.Density, cfg.Depth <= 8)
		if err != nil {
			return "", nil, newError(KindOCR, "preprocess image", err)
		}
		img = pre
		imgFormat = ocr.ImageFormatPNG
	}

	ctx := context.Background()
	if cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	in := ocr.NewInput("document", img, imgFormat,
		ocr.WithDPI(cfg.Density),
		ocr.WithLanguages(splitLanguages(cfg.Language)...))
	results, err := ocr.Recognize(ctx, in)
	if err != nil {
		return "", nil, newError(KindOCR, "recognize", err)
	}
	if len(results) == 0 {
		return "", nil, errorf(KindOCR, "recognize", "provider returned no result")
	}
	res := results[0]

	md := Metadata{}
	md.Set(MetaContentType, string(imageFormatFor(format)))
	md.Set(MetaOCREngine, eng.Name())
	if cfg.Language != "" {
		md.Set(MetaOCRLanguage, cfg.Language)
	}
	if res.Confidence > 0 {
		md.Set("OCR-Confidence", fmt.Sprintf("%.2f", res.Confidence))
	}

	content := res.PlainText
	if e.xmlOutput {
		content = wrapXHTML(string(imageFormatFor(format)), content)
	}
	return content, md, nil
}

func imageFormatFor(format Format) ocr.ImageFormat {
	switch format {
	case FormatJPEG:
		return ocr.ImageFormatJPEG
	case FormatTIFF:
		return ocr.ImageFormatTIFF
	default:
		return ocr.ImageFormatPNG
	}
}

func splitLanguages(lang string) []string {
	if lang == "" {
		return nil
	}
	return strings.Split(lang, "+")
}
