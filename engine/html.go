package engine

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

func (e *Extractor) extractHTML(data []byte) (string, Metadata, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", nil, newError(KindExtraction, "parse html", err)
	}

	md := Metadata{}
	md.Set(MetaContentType, "text/html")
	if title := findTitle(root); title != "" {
		md.Set("Title", title)
	}

	if e.xmlOutput {
		var buf bytes.Buffer
		if err := html.Render(&buf, root); err != nil {
			return "", nil, newError(KindExtraction, "render html", err)
		}
		return buf.String(), md, nil
	}
	return htmlToText(root), md, nil
}

// htmlToText linearizes the text nodes of a parsed document, skipping
// non-content subtrees and inserting line breaks at block boundaries.
func htmlToText(root *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "head":
				return
			}
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlockElement(n.Data) && sb.Len() > 0 {
			sb.WriteByte('\n')
		}
	}
	walk(root)
	return strings.TrimRight(cleanLines(sb.String()), "\n") + "\n"
}

func isBlockElement(name string) bool {
	switch name {
	case "p", "div", "br", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6", "section", "article", "blockquote", "pre":
		return true
	}
	return false
}

// cleanLines trims the space htmlToText inserts before a line break.
func cleanLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func findTitle(root *html.Node) string {
	var title string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return title
}
