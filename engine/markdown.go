package engine

import (
	"bytes"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

func (e *Extractor) extractMarkdown(data []byte) (string, Metadata, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(data, &buf); err != nil {
		return "", nil, newError(KindExtraction, "convert markdown", err)
	}

	md := Metadata{}
	md.Set(MetaContentType, "text/markdown")

	if e.xmlOutput {
		return buf.String(), md, nil
	}

	// Plain mode strips the markup the conversion produced instead of
	// returning raw markdown syntax.
	root, err := html.Parse(&buf)
	if err != nil {
		return "", nil, newError(KindExtraction, "parse converted markdown", err)
	}
	return htmlToText(root), md, nil
}
