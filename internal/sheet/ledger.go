package sheet

import (
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/toybridge/toybridge-api/internal/domain"
)

var ledgerHeader = []any{
	"TimeStamp", "Brand", "Sub Brand", "Toy Name", "Toy Code", "Quantity", "School Name",
}

// LedgerRow is one cart line as it appears on the order ledger.
type LedgerRow struct {
	Timestamp string
	Brand     string
	SubBrand  string
	ToyName   string
	ToyCode   string
	Quantity  int
	School    string
}

// OrderLedger appends placed-order lines to the ledger workbook. The
// workbook keeps one worksheet per movement kind: the first for vendor
// restock orders, the second for vendor-to-school dispatches, the third
// for NGO-to-school dispatches.
type OrderLedger struct {
	mu   sync.Mutex
	path string
}

func NewOrderLedger(path string) *OrderLedger {
	return &OrderLedger{
		path: path,
	}
}

// Append writes the rows to the worksheet matching the order's from/to
// pair, creating the header row if the worksheet is empty.
func (l *OrderLedger) Append(from, to domain.PartyType, rows []LedgerRow) error {
	if len(rows) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := excelize.OpenFile(l.path)
	if err != nil {
		return fmt.Errorf("excelize.OpenFile -> %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	index := worksheetIndex(from, to)
	if index >= len(sheets) {
		return fmt.Errorf("ledger workbook %v has no worksheet %v", l.path, index)
	}
	sheetName := sheets[index]

	existing, err := file.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("file.GetRows -> %w", err)
	}

	next := len(existing) + 1
	if len(existing) == 0 {
		if err = writeRow(file, sheetName, next, ledgerHeader); err != nil {
			return err
		}
		next++
	}

	for _, row := range rows {
		values := []any{
			row.Timestamp, row.Brand, row.SubBrand, row.ToyName, row.ToyCode, row.Quantity, row.School,
		}
		if err = writeRow(file, sheetName, next, values); err != nil {
			return err
		}
		next++
	}

	if err = file.Save(); err != nil {
		return fmt.Errorf("file.Save -> %w", err)
	}

	return nil
}

func worksheetIndex(from, to domain.PartyType) int {
	switch {
	case from == domain.PartyVendor && to == domain.PartySchool:
		return 1
	case from == domain.PartyNGO && to == domain.PartySchool:
		return 2
	default:
		return 0
	}
}

func writeRow(file *excelize.File, sheetName string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
	}
	if err = file.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("file.SetSheetRow -> %w", err)
	}

	return nil
}
