// Package pdftext extracts plain text from GCash statement PDFs. The
// statements GCash emails out are password-locked, so extraction accepts an
// optional password and reports a wrong or missing one as a distinct error
// the caller can surface to the user.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrInvalidPassword means the document is encrypted and the supplied
// password (possibly empty) did not unlock it.
var ErrInvalidPassword = errors.New("invalid or missing PDF password")

// IsPDF sniffs the magic header of an uploaded file.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// Extract returns the document text, one row per line, pages separated by a
// blank line. Row grouping matters: the classifier downstream works line by
// line, so text must not collapse into a single run.
func Extract(data []byte, password string) (text string, err error) {
	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := newReader(data, password)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", ErrInvalidPassword
		}

		return "", fmt.Errorf("open pdf: %w", err)
	}

	var pages []string

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		if text := pageTextByRow(page); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		// Row extraction came up empty; fall back to the plain-text walk.
		return plainText(r)
	}

	return strings.Join(pages, "\n\n"), nil
}

func newReader(data []byte, password string) (*pdf.Reader, error) {
	// The library keeps asking for passwords until the callback returns "";
	// offer the supplied one exactly once so a wrong password fails instead
	// of looping.
	attempted := false
	pw := func() string {
		if attempted {
			return ""
		}
		attempted = true

		return password
	}

	return pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), pw)
}

func pageTextByRow(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var lines []string

	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			parts = append(parts, word.S)
		}

		if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

func plainText(r *pdf.Reader) (string, error) {
	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}

	return buf.String(), nil
}
