package pdftext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcarlounavas/gcashtrack/internal/pdftext"
)

func TestIsPDF(t *testing.T) {
	assert.True(t, pdftext.IsPDF([]byte("%PDF-1.7\n...")))
	assert.False(t, pdftext.IsPDF([]byte("GCash Transaction History")))
	assert.False(t, pdftext.IsPDF(nil))
}

func TestExtract_NotAPDF(t *testing.T) {
	_, err := pdftext.Extract([]byte("plain text, not a pdf"), "")
	assert.Error(t, err)
}

func TestExtract_TruncatedPDF(t *testing.T) {
	_, err := pdftext.Extract([]byte("%PDF-1.7\ngarbage"), "")
	assert.Error(t, err)
}
