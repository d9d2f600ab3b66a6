package engine

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/wudi/extractkit/observability"
)

// DefaultMaxStringLength caps extracted string content at 100 MB unless the
// caller configures another bound.
const DefaultMaxStringLength = 100 * 1024 * 1024

// Extractor is the engine entry point. Zero or one configuration of each
// kind can be attached; attached configurations are owned by the extractor.
type Extractor struct {
	encoding  Charset
	maxLength int
	xmlOutput bool

	pdfConfig    *PdfParserConfig
	officeConfig *OfficeParserConfig
	ocrConfig    *TesseractOcrConfig

	logger observability.Logger
	client *http.Client
}

// New returns an extractor with the documented defaults: UTF-8 output,
// 100 MB string bound, plain-text output, no configurations attached.
func New() *Extractor {
	return &Extractor{
		encoding:  CharsetUTF8,
		maxLength: DefaultMaxStringLength,
		logger:    observability.NopLogger{},
		client:    http.DefaultClient,
	}
}

// SetEncoding selects the output charset. Values outside the closed set are
// ignored.
func (e *Extractor) SetEncoding(c Charset) {
	if ValidCharset(c) {
		e.encoding = c
	}
}

// Encoding returns the configured output charset.
func (e *Extractor) Encoding() Charset { return e.encoding }

// SetExtractStringMaxLength bounds string extraction; values <= 0 mean
// unbounded.
func (e *Extractor) SetExtractStringMaxLength(n int) { e.maxLength = n }

// ExtractStringMaxLength returns the configured bound; <= 0 means unbounded.
func (e *Extractor) ExtractStringMaxLength() int { return e.maxLength }

// SetXMLOutput switches between plain text (false) and structured markup
// (true) output.
func (e *Extractor) SetXMLOutput(v bool) { e.xmlOutput = v }

// XMLOutput reports whether structured markup output is selected.
func (e *Extractor) XMLOutput() bool { return e.xmlOutput }

// SetPdfConfig attaches a PDF parser configuration. The extractor owns the
// config from this point on; a second attachment replaces the previous one.
func (e *Extractor) SetPdfConfig(c *PdfParserConfig) {
	if c != nil {
		e.pdfConfig = c
	}
}

// SetOfficeConfig attaches an Office parser configuration.
func (e *Extractor) SetOfficeConfig(c *OfficeParserConfig) {
	if c != nil {
		e.officeConfig = c
	}
}

// SetOcrConfig attaches a Tesseract OCR configuration.
func (e *Extractor) SetOcrConfig(c *TesseractOcrConfig) {
	if c != nil {
		e.ocrConfig = c
	}
}

// SetLogger installs a logger for per-extraction debug lines.
func (e *Extractor) SetLogger(l observability.Logger) {
	if l != nil {
		e.logger = l
	}
}

// SetHTTPClient overrides the client used for URL sources.
func (e *Extractor) SetHTTPClient(c *http.Client) {
	if c != nil {
		e.client = c
	}
}

// ExtractFileToString extracts the document at path into a string plus its
// metadata.
func (e *Extractor) ExtractFileToString(path string) (string, Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, newError(KindIO, "read file", err)
	}
	seed := Metadata{}
	seed.Set(MetaResourceName, filepath.Base(path))
	return e.extract(data, filepath.Base(path), seed)
}

// ExtractFile extracts the document at path into a stream plus its metadata.
func (e *Extractor) ExtractFile(path string) (*StreamReader, Metadata, error) {
	content, md, err := e.ExtractFileToString(path)
	if err != nil {
		return nil, nil, err
	}
	return e.contentStream(content), md, nil
}

// ExtractBytesToString extracts an in-memory document into a string plus its
// metadata. The span is treated as opaque binary, never as null-terminated
// text.
func (e *Extractor) ExtractBytesToString(data []byte) (string, Metadata, error) {
	return e.extract(data, "", nil)
}

// ExtractBytes extracts an in-memory document into a stream plus its
// metadata.
func (e *Extractor) ExtractBytes(data []byte) (*StreamReader, Metadata, error) {
	content, md, err := e.ExtractBytesToString(data)
	if err != nil {
		return nil, nil, err
	}
	return e.contentStream(content), md, nil
}

// ExtractURLToString downloads the document at rawURL and extracts it into a
// string plus its metadata.
func (e *Extractor) ExtractURLToString(rawURL string) (string, Metadata, error) {
	data, name, seed, err := e.fetchURL(rawURL)
	if err != nil {
		return "", nil, err
	}
	return e.extract(data, name, seed)
}

// ExtractURL downloads the document at rawURL and extracts it into a stream
// plus its metadata.
func (e *Extractor) ExtractURL(rawURL string) (*StreamReader, Metadata, error) {
	content, md, err := e.ExtractURLToString(rawURL)
	if err != nil {
		return nil, nil, err
	}
	return e.contentStream(content), md, nil
}

func (e *Extractor) extract(data []byte, name string, seed Metadata) (string, Metadata, error) {
	if len(data) == 0 {
		return "", nil, errorf(KindUnsupportedFormat, "detect", "empty input matches no supported format")
	}

	format := DetectFormat(data, name)

	var (
		content string
		md      Metadata
		err     error
	)
	switch format {
	case FormatPDF:
		content, md, err = e.extractPDF(data)
	case FormatDOCX:
		content, md, err = e.extractDOCX(data)
	case FormatHTML:
		content, md, err = e.extractHTML(data)
	case FormatMarkdown:
		content, md, err = e.extractMarkdown(data)
	case FormatPNG, FormatJPEG, FormatTIFF:
		content, md, err = e.extractImage(data, format)
	case FormatText:
		content = string(data)
		md = Metadata{}
		md.Set(MetaContentType, "text/plain")
	default:
		err = errorf(KindUnsupportedFormat, "detect", "unknown format for %q", name)
	}
	if err != nil {
		e.logger.Debug("extract failed",
			observability.String("format", format.String()),
			observability.Error("err", err))
		return "", nil, err
	}

	md.merge(seed)
	content = truncateString(content, e.maxLength)
	md.Set(MetaContentLength, strconv.Itoa(len(content)))

	e.logger.Debug("extract ok",
		observability.String("format", format.String()),
		observability.Int("bytes", len(content)),
		observability.Int("metadata", len(md)))
	return content, md, nil
}

// truncateString cuts s to at most limit bytes without splitting a rune.
// limit <= 0 means unbounded.
func truncateString(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := s[:limit]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

var errNoOCREngine = errors.New("no ocr engine registered")
