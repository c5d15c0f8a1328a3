package importer

import (
	"fmt"
	"io"

	"github.com/numeraai/numera/internal/importer/mpesa"
	"github.com/numeraai/numera/internal/sales"
)

type Service struct {
	importers map[Provider]Importer
}

func NewService() *Service {
	return &Service{
		importers: map[Provider]Importer{
			ProviderMPesa: mpesa.NewParser(nil),
		},
	}
}

func (s *Service) Import(provider Provider, r io.Reader) ([]sales.Sale, error) {
	importer, ok := s.importers[provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}

	return importer.Parse(r)
}
