package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wudi/extractkit/engine"
	"github.com/wudi/extractkit/observability"
	_ "github.com/wudi/extractkit/ocr/tesseract"
)

type options struct {
	source      string
	fromURL     bool
	xmlOutput   bool
	maxLength   int
	ocrLanguage string
	ocrStrategy string
	withMeta    bool
	verbose     bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "extractkit: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "extractkit: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: extractkit [flags] <file-or-url>\n")
		flag.PrintDefaults()
	}
	url := flag.Bool("url", false, "Treat the argument as an http(s) URL")
	xml := flag.Bool("xml", false, "Emit structured markup instead of plain text")
	maxLength := flag.Int("max-length", engine.DefaultMaxStringLength, "Content length bound in bytes; <= 0 removes the bound")
	ocrLanguage := flag.String("ocr-language", "", "Tesseract language selector, e.g. eng or eng+deu")
	ocrStrategy := flag.String("pdf-ocr", "", "PDF OCR strategy: no_ocr, ocr_only, ocr_and_text or auto")
	withMeta := flag.Bool("metadata", false, "Print document metadata as JSON after the content")
	verbose := flag.Bool("verbose", false, "Log extraction details to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing file or url")
	}
	opts.source = flag.Arg(0)
	opts.fromURL = *url
	opts.xmlOutput = *xml
	opts.maxLength = *maxLength
	opts.ocrLanguage = *ocrLanguage
	opts.ocrStrategy = *ocrStrategy
	opts.withMeta = *withMeta
	opts.verbose = *verbose
	return opts, nil
}

func run(opts options) error {
	ext := engine.New()
	ext.SetXMLOutput(opts.xmlOutput)
	ext.SetExtractStringMaxLength(opts.maxLength)

	if opts.verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer zl.Sync()
		ext.SetLogger(observability.NewZapLogger(zl))
	}

	if opts.ocrLanguage != "" {
		cfg := engine.NewTesseractOcrConfig()
		cfg.Language = opts.ocrLanguage
		ext.SetOcrConfig(cfg)
	}
	if opts.ocrStrategy != "" {
		strategy, err := parseOcrStrategy(opts.ocrStrategy)
		if err != nil {
			return err
		}
		cfg := engine.NewPdfParserConfig()
		cfg.OcrStrategy = strategy
		ext.SetPdfConfig(cfg)
	}

	var (
		content string
		md      engine.Metadata
		err     error
	)
	if opts.fromURL {
		content, md, err = ext.ExtractURLToString(opts.source)
	} else {
		content, md, err = ext.ExtractFileToString(opts.source)
	}
	if err != nil {
		return fmt.Errorf("extract %q: %w", opts.source, err)
	}

	fmt.Println(content)
	if opts.withMeta {
		data, err := json.MarshalIndent(md, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		fmt.Printf("== metadata ==\n%s\n", data)
	}
	return nil
}

func parseOcrStrategy(name string) (engine.OcrStrategy, error) {
	switch strings.ToLower(name) {
	case "no_ocr":
		return engine.OcrStrategyNoOcr, nil
	case "ocr_only":
		return engine.OcrStrategyOcrOnly, nil
	case "ocr_and_text":
		return engine.OcrStrategyOcrAndText, nil
	case "auto":
		return engine.OcrStrategyAuto, nil
	}
	return 0, fmt.Errorf("unknown ocr strategy %q", name)
}
