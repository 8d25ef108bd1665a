package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcarlounavas/gcashtrack/internal/encoding"
	"github.com/jcarlounavas/gcashtrack/internal/parser"
	"github.com/jcarlounavas/gcashtrack/internal/pdftext"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

var ErrEmptyFile = errors.New("uploaded file is empty")

// Input is one uploaded statement file. Password only matters for encrypted
// PDFs; plain-text exports ignore it.
type Input struct {
	FileName    string
	Data        []byte
	HomeAccount string
	Password    string
}

// Service turns an uploaded file into a stored statement. It handles both
// PDF statements and plain-text exports, hands the text to the wallet parser
// and persists the result.
type Service struct {
	parsers    *parser.Service
	statements *statement.Service
}

func NewService(parsers *parser.Service, statements *statement.Service) *Service {
	return &Service{
		parsers:    parsers,
		statements: statements,
	}
}

// Process extracts, parses and stores one statement file. The returned
// summary carries the per-line warnings that did not survive persistence.
func (s *Service) Process(ctx context.Context, in Input) (*statement.Statement, *statement.Summary, error) {
	text, err := s.extractText(in)
	if err != nil {
		return nil, nil, err
	}

	sum, err := s.parsers.Parse(parser.WalletGCash, text, in.HomeAccount)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing statement: %w", err)
	}

	st, err := s.statements.Save(ctx, in.HomeAccount, in.FileName, sum)
	if err != nil {
		return nil, nil, err
	}

	return st, sum, nil
}

func (s *Service) extractText(in Input) (string, error) {
	if len(in.Data) == 0 {
		return "", ErrEmptyFile
	}

	if pdftext.IsPDF(in.Data) {
		return pdftext.Extract(in.Data, in.Password)
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in.Data))
	if err != nil {
		return "", fmt.Errorf("detecting encoding: %w", err)
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding file: %w", err)
	}

	return string(text), nil
}
