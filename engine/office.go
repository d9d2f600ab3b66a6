package engine

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/gonfva/docxlib"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func (e *Extractor) extractDOCX(data []byte) (string, Metadata, error) {
	doc, err := docxlib.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, newError(KindExtraction, "parse docx", err)
	}

	cfg := e.officeConfig
	if cfg == nil {
		cfg = NewOfficeParserConfig()
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		var line strings.Builder
		for _, child := range para.Children() {
			if child.Run != nil && child.Run.Text != nil {
				line.WriteString(child.Run.Text.Text)
			}
		}
		if line.Len() > 0 {
			sb.WriteString(line.String())
			sb.WriteByte('\n')
		}
	}

	md := Metadata{}
	md.Set(MetaContentType, docxContentType)
	readCoreProperties(data, md)
	if cfg.ExtractMacros && zipContains(data, "word/vbaProject.bin") {
		md.Set("Has-Macros", "true")
	}

	content := sb.String()
	if e.xmlOutput {
		content = wrapXHTML(docxContentType, content)
	}
	return content, md, nil
}

// coreProperties mirrors the docProps/core.xml payload of an OOXML package.
// Namespace prefixes are irrelevant to encoding/xml local-name matching.
type coreProperties struct {
	XMLName  xml.Name `xml:"coreProperties"`
	Title    string   `xml:"title"`
	Subject  string   `xml:"subject"`
	Creator  string   `xml:"creator"`
	Keywords string   `xml:"keywords"`
}

func readCoreProperties(data []byte, md Metadata) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return
	}
	for _, f := range zr.File {
		if f.Name != "docProps/core.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return
		}
		var props coreProperties
		if err := xml.Unmarshal(raw, &props); err != nil {
			return
		}
		for key, value := range map[string]string{
			"Title":    props.Title,
			"Subject":  props.Subject,
			"Creator":  props.Creator,
			"Keywords": props.Keywords,
		} {
			if value != "" {
				md.Set(key, value)
			}
		}
		return
	}
}
