package extractors

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/fsociety-ai/doc-verifier/models"
)

// pdfExtractor reads PDF structure with pdfcpu (page count, version,
// encryption, document info dictionary) and renders per-page text with
// ledongthuc/pdf, skipping pages that fail individually.
type pdfExtractor struct {
	logger *slog.Logger
}

func (e *pdfExtractor) Extract(filename, fileType string, data []byte) models.ExtractionResult {
	md := baseMetadata(filename, fileType, len(data))

	ctx, err := api.ReadContext(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err == nil {
		err = api.ValidateContext(ctx)
	}
	if err != nil {
		// Encrypted bodies often refuse to open without a password; the raw
		// marker scan still flags them for the scorer.
		md["encrypted"] = bytes.Contains(data, []byte("/Encrypt"))
		e.logger.Warn("failed to read pdf structure", "filename", filename, "error", err)
	} else {
		md["page_count"] = ctx.PageCount
		md["encrypted"] = ctx.Encrypt != nil
		if ctx.HeaderVersion != nil {
			md["pdf_version"] = "PDF-" + ctx.HeaderVersion.String()
		}
		e.readInfoDict(ctx, filename, md)
	}

	text := e.pageText(filename, data)
	enrichLanguage(md, text)

	return models.ExtractionResult{Text: text, Metadata: md}
}

// readInfoDict copies string entries of the document info dictionary into
// metadata, with the leading name marker stripped and keys lower-cased.
func (e *pdfExtractor) readInfoDict(ctx *model.Context, filename string, md map[string]any) {
	if ctx.Info == nil {
		return
	}
	obj, err := ctx.Dereference(*ctx.Info)
	if err != nil {
		e.logger.Warn("failed to resolve pdf info dict", "filename", filename, "error", err)
		return
	}
	d, ok := obj.(types.Dict)
	if !ok {
		return
	}
	for key := range d {
		if s := d.StringEntry(key); s != nil {
			cleanKey := strings.ToLower(strings.TrimPrefix(key, "/"))
			md[cleanKey] = strings.TrimSpace(*s)
		}
	}
}

// pageText concatenates per-page plain text with newline separators.
// Page failures are skipped; reader failures or panics degrade to "".
func (e *pdfExtractor) pageText(filename string, data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("pdf text extraction panicked", "filename", filename, "panic", r)
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Warn("failed to open pdf for text extraction", "filename", filename, "error", err)
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("skipping unreadable pdf page", "filename", filename, "page", i, "error", err)
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String()
}
