package parser

import (
	"fmt"

	"github.com/jcarlounavas/gcashtrack/internal/parser/gcash"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

type Service struct {
	gcashParser Parser
}

func NewService() *Service {
	return &Service{
		gcashParser: gcash.NewParser(),
	}
}

func (s *Service) Parse(wallet Wallet, text, homeAccount string) (*statement.Summary, error) {
	var p Parser

	switch wallet {
	case WalletGCash:
		p = s.gcashParser
	default:
		return nil, fmt.Errorf("unknown wallet: %s", wallet)
	}

	return p.Parse(text, homeAccount)
}
