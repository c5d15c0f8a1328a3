// Package mpesa reads M-Pesa statement exports.
package mpesa

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	enc "github.com/numeraai/numera/internal/encoding"
	"github.com/numeraai/numera/internal/sales"
)

var ErrUnknownFormat = errors.New("no matching M-Pesa statement format found")

// Product is the product name given to sales taken from a statement, which
// only knows the payer and the amount.
const Product = "M-Pesa payment"

// Parser turns the money-in rows of a statement into sales. Money-out rows
// and incomplete transactions are skipped.
type Parser struct {
	loc *time.Location
}

// NewParser reads statement times in loc, East Africa Time when nil.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.FixedZone("EAT", 3*60*60)
	}

	return &Parser{loc: loc}
}

func (p *Parser) Parse(r io.Reader) ([]sales.Sale, error) {
	utf8r, charset, err := enc.Detect(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	slog.Debug("parsing mpesa statement", "charset", charset, "bytes", len(data))

	for _, comma := range []rune{',', ';'} {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		return p.parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
	}

	return nil, ErrUnknownFormat
}

func readRows(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func (p *Parser) parseRows(prof *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]sales.Sale, error) {
	var out []sales.Sale

	for i, row := range rows {
		rowNum := headerRowNum + i + 1

		receipt := cellValue(row, cols[prof.ReceiptCol])
		if receipt == "" {
			continue
		}

		ts, ok := p.parseTime(cellValue(row, cols[prof.TimeCol]))
		if !ok {
			continue
		}

		if !completed(prof, cols, row) {
			continue
		}

		amount, ok, err := paidIn(prof, cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if !ok {
			continue
		}

		total := amount.InexactFloat64()

		out = append(out, sales.Sale{
			ID:            receipt,
			Product:       Product,
			Quantity:      1,
			UnitPrice:     total,
			Total:         total,
			PaymentMethod: sales.MPesa,
			Timestamp:     ts,
			Customer:      Customer(cellValue(row, cols[prof.DetailsCol])),
		})
	}

	return out, nil
}

// paidIn returns the money-in amount of a row. ok is false for money out and
// empty amounts.
func paidIn(prof *Profile, cols colIndex, row []string) (decimal.Decimal, bool, error) {
	switch prof.AmountMode {
	case amountSplit:
		s := cellValue(row, cols[prof.PaidInCol])
		if s == "" {
			return decimal.Zero, false, nil
		}

		d, err := parseAmount(s)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("invalid paid in amount %q", s)
		}

		return d.Abs(), !d.IsZero(), nil
	case amountSingle:
		s := cellValue(row, cols[prof.AmountCol])
		if s == "" {
			return decimal.Zero, false, nil
		}

		d, err := parseAmount(s)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("invalid amount %q", s)
		}

		return d, d.IsPositive(), nil
	}

	return decimal.Zero, false, nil
}

// completed is true unless the profile has a status column and the row says
// something other than Completed.
func completed(prof *Profile, cols colIndex, row []string) bool {
	if prof.StatusCol == "" {
		return true
	}

	idx, ok := cols[prof.StatusCol]
	if !ok {
		return true
	}

	status := cellValue(row, idx)

	return status == "" || strings.EqualFold(status, "Completed")
}

func (p *Parser) parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, p.loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// Customer pulls the payer name out of statement details such as
// "Funds received from - 254712***678 MARY NJERI". Masked phone numbers are
// dropped. Details without a " - " separator yield an empty name.
func Customer(details string) string {
	idx := strings.LastIndex(details, " - ")
	if idx < 0 {
		return ""
	}

	var name []string

	for _, f := range strings.Fields(details[idx+3:]) {
		if strings.ContainsAny(f, "0123456789*") {
			continue
		}

		name = append(name, f)
	}

	return titleCase(strings.Join(name, " "))
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}

	return strings.Join(words, " ")
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
