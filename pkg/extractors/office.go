package extractors

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fsociety-ai/doc-verifier/models"
)

// officeExtractor reads DOCX packages: core properties from
// docProps/core.xml and paragraph text from word/document.xml.
type officeExtractor struct {
	logger *slog.Logger
}

// coreProps mirrors the OPC core-properties part. Bare XML names match the
// dc/dcterms/cp local names regardless of namespace prefix.
type coreProps struct {
	Title          string `xml:"title"`
	Creator        string `xml:"creator"`
	Created        string `xml:"created"`
	Modified       string `xml:"modified"`
	LastModifiedBy string `xml:"lastModifiedBy"`
	Revision       string `xml:"revision"`
}

func (e *officeExtractor) Extract(filename, fileType string, data []byte) models.ExtractionResult {
	md := baseMetadata(filename, fileType, len(data))

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Warn("failed to open docx package", "filename", filename, "error", err)
		return models.ExtractionResult{Metadata: md}
	}

	if props, err := e.readCoreProps(zr); err != nil {
		e.logger.Warn("failed to read docx core properties", "filename", filename, "error", err)
	} else {
		setIfPresent(md, "author", props.Creator)
		setIfPresent(md, "title", props.Title)
		setIfPresent(md, "last_modified_by", props.LastModifiedBy)
		if ts, ok := normalizeTimestamp(props.Created); ok {
			md["created"] = ts
		}
		if ts, ok := normalizeTimestamp(props.Modified); ok {
			md["modified"] = ts
		}
		if rev, err := strconv.Atoi(strings.TrimSpace(props.Revision)); err == nil {
			md["revision"] = rev
		}
	}

	paragraphs, err := e.readParagraphs(zr)
	if err != nil {
		e.logger.Warn("failed to read docx body", "filename", filename, "error", err)
	}
	md["paragraph_count"] = len(paragraphs)

	text := strings.Join(paragraphs, "\n")
	enrichLanguage(md, text)

	return models.ExtractionResult{Text: text, Metadata: md}
}

func (e *officeExtractor) readCoreProps(zr *zip.Reader) (*coreProps, error) {
	f, err := zr.Open("docProps/core.xml")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var props coreProps
	if err := xml.NewDecoder(f).Decode(&props); err != nil {
		return nil, err
	}
	return &props, nil
}

// readParagraphs streams word/document.xml, collecting the text runs of each
// paragraph. Tabs and soft line breaks keep a textual representation.
func (e *officeExtractor) readParagraphs(zr *zip.Reader) ([]string, error) {
	f, err := zr.Open("word/document.xml")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	var paragraphs []string
	var cur strings.Builder
	inParagraph := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return paragraphs, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				cur.Reset()
			case "t":
				if inParagraph {
					var runText string
					if err := dec.DecodeElement(&runText, &t); err == nil {
						cur.WriteString(runText)
					}
				}
			case "tab":
				if inParagraph {
					cur.WriteString("\t")
				}
			case "br":
				if inParagraph {
					cur.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				paragraphs = append(paragraphs, cur.String())
				inParagraph = false
			}
		}
	}
	return paragraphs, nil
}

func setIfPresent(md map[string]any, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		md[key] = v
	}
}

// normalizeTimestamp re-formats a core-properties timestamp as RFC 3339.
// Unparseable values are dropped rather than carried through raw.
func normalizeTimestamp(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC().Format(time.RFC3339), true
		}
	}
	return "", false
}
