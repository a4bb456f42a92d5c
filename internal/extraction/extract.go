// Package extraction pulls plain text out of uploaded resume files.
package extraction

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// Text extracts plain text from a resume file based on its extension.
// Supports: .pdf, .docx and .txt
func Text(fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Cause: err}
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Cause: err}
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", &ExtractionError{Format: "pdf", Cause: err}
	}
	return buf.String(), nil
}

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Cause: err}
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractionError{Format: "docx", Cause: err}
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", &ExtractionError{Format: "docx", Cause: err}
		}
		break
	}
	if len(docXML) == 0 {
		return "", &ExtractionError{Format: "docx", Cause: errors.New("no word/document.xml entry")}
	}
	xml := string(docXML)
	// Paragraph and tab markers become whitespace before the tags are stripped.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return xmlTagRe.ReplaceAllString(xml, " "), nil
}
