// Package extract converts uploaded contract documents to plain text.
// Dispatch is by declared MIME type first, file-extension fallback second;
// anything unrecognized is decoded as raw UTF-8.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTXT  = "text/plain"

	// MinTextLength is the smallest extracted text the pipeline accepts;
	// anything shorter is rejected as "no meaningful text".
	MinTextLength = 100
)

// Supported reports whether the declared MIME type or filename extension is
// an accepted upload format.
func Supported(mimeType, filename string) bool {
	switch mimeType {
	case MimePDF, MimeDOCX, MimeTXT:
		return true
	}
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".pdf") ||
		strings.HasSuffix(lower, ".docx") ||
		strings.HasSuffix(lower, ".txt")
}

// Extract returns the plain text of an uploaded document.
func Extract(data []byte, mimeType, filename string) (string, error) {
	lower := strings.ToLower(filename)

	switch {
	case mimeType == MimePDF || strings.HasSuffix(lower, ".pdf"):
		return fromPDF(data)
	case mimeType == MimeDOCX || strings.HasSuffix(lower, ".docx"):
		return fromDOCX(data)
	default:
		// text/plain and the unrecognized fallback both decode as UTF-8.
		return string(data), nil
	}
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}
	return string(text), nil
}

// fromDOCX pulls the raw text out of the Office XML package: a DOCX file is
// a zip whose word/document.xml holds the text in <w:t> runs, with <w:p>
// marking paragraph boundaries.
func fromDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading docx container: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("reading docx container: no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("reading docx document: %w", err)
	}
	defer rc.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding docx document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
