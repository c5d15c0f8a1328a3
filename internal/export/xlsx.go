package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	expensesSheet = "Expenses"
)

// WriteXLSX renders the report as a two sheet workbook.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	if _, err := f.NewSheet(expensesSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	rows := [][]any{
		{"NUMERA AI - FINANCIAL REPORT"},
		{"Generated on", r.GeneratedAt.Format("2006-01-02")},
		{},
		{"Product", "Revenue", "Cost", "Profit"},
	}

	for _, s := range r.Sales {
		rows = append(rows, []any{s.Product, s.Revenue, s.Cost, s.Profit})
	}

	rows = append(rows,
		[]any{},
		[]any{"Total Revenue", r.TotalRevenue},
		[]any{"Total Expenses", r.TotalExpenses},
		[]any{"Net Profit", r.NetProfit},
	)

	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}

	if err := f.SetCellStyle(summarySheet, "A4", "D4", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	expenseRows := [][]any{{"Date", "Description", "Amount", "Category"}}
	for _, e := range r.Expenses {
		expenseRows = append(expenseRows, []any{e.Date.Format("2006-01-02"), e.Description, e.Amount, e.Category})
	}

	if err := writeRows(f, expensesSheet, expenseRows); err != nil {
		return err
	}

	if err := f.SetCellStyle(expensesSheet, "A1", "D1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("resolving cell: %w", err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}
