// Package importer turns payment provider statements into sales.
package importer

import (
	"io"

	"github.com/numeraai/numera/internal/sales"
)

type Provider string

const (
	ProviderMPesa Provider = "mpesa"
)

type Importer interface {
	Parse(r io.Reader) ([]sales.Sale, error)
}
