package engine

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// infoKeys are the document information dictionary entries surfaced as
// metadata when present.
var infoKeys = []string{"Title", "Author", "Subject", "Creator", "Producer"}

func (e *Extractor) extractPDF(data []byte) (content string, md Metadata, err error) {
	// The underlying parser panics on some malformed cross reference
	// tables; the boundary contract requires an error instead.
	defer func() {
		if p := recover(); p != nil {
			content, md = "", nil
			err = errorf(KindExtraction, "parse pdf", "parser panic: %v", p)
		}
	}()

	if cfg := e.pdfConfig; cfg != nil && cfg.OcrStrategy == OcrStrategyOcrOnly {
		return "", nil, errorf(KindOCR, "pdf ocr",
			"ocr-only strategy requires page rasterization, which this engine does not provide")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, newError(KindExtraction, "parse pdf", err)
	}

	md = Metadata{}
	md.Set(MetaContentType, "application/pdf")
	total := r.NumPage()
	md.Set(MetaPageCount, strconv.Itoa(total))

	var sb strings.Builder
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, perr := page.GetPlainText(nil)
		if perr != nil || text == "" {
			continue
		}
		sb.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			sb.WriteByte('\n')
		}
	}

	info := r.Trailer().Key("Info")
	if !info.IsNull() {
		for _, key := range infoKeys {
			if v := info.Key(key); v.Kind() == pdf.String {
				if s := v.Text(); s != "" {
					md.Add(key, s)
				}
			}
		}
	}

	content = sb.String()
	if e.xmlOutput {
		content = wrapXHTML("application/pdf", content)
	}
	return content, md, nil
}

// wrapXHTML renders plain text as the minimal structured markup document the
// xml output mode promises, one paragraph per line.
func wrapXHTML(contentType, text string) string {
	var sb strings.Builder
	sb.WriteString(`<html xmlns="http://www.w3.org/1999/xhtml">` + "\n")
	fmt.Fprintf(&sb, `<head><meta name="Content-Type" content=%q/></head>`+"\n", contentType)
	sb.WriteString("<body>\n")
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(&sb, "<p>%s</p>\n", xmlEscape(line))
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func xmlEscape(s string) string { return xmlEscaper.Replace(s) }
