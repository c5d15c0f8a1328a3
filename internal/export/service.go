package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/numeraai/numera/internal/finance"
)

type Format string

const (
	FormatText Format = "txt"
	FormatXLSX Format = "xlsx"
)

var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat defaults to text for an empty value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	return "text/plain; charset=utf-8"
}

type ExpenseLister interface {
	Expenses(ctx context.Context) ([]finance.Expense, error)
}

// Service builds financial reports from the recorded expenses.
type Service struct {
	expenses ExpenseLister
	now      func() time.Time
}

func NewService(expenses ExpenseLister) *Service {
	return &Service{expenses: expenses, now: time.Now}
}

func (s *Service) Report(ctx context.Context) (*Report, error) {
	expenses, err := s.expenses.Expenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return NewReport(SalesSummary(), expenses, s.now()), nil
}

// Export writes the report in the given format and returns a download name
// such as financial-report-2025-03-14.txt.
func (s *Service) Export(ctx context.Context, format Format, w io.Writer) (string, error) {
	r, err := s.Report(ctx)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatText:
		err = WriteText(w, r)
	case FormatXLSX:
		err = WriteXLSX(w, r)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return fmt.Sprintf("financial-report-%s.%s", r.GeneratedAt.Format("2006-01-02"), format), nil
}
