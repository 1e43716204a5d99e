// Package sheet reads and writes the program's Excel workbooks: the
// school registration sheet that feeds School records, and the order
// ledger the NGO's field team works from.
package sheet

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/toybridge/toybridge-api/internal/domain"
)

// Registration sheet column titles, as the field form writes them.
const (
	colCompleted          = "Completed"
	colCode               = "Code"
	colTimestamp          = "Timestamp"
	colName               = "Name of the school/Institution"
	colBoard              = "Board affiliated to and Medium of instruction"
	colInstitutionType    = "Type of institution/school"
	colVillage            = "Village name  if any"
	colDistrict           = "District"
	colState              = "State"
	colFullAddress        = "Full address with pin code"
	colPrincipalName      = "Name of the Principal and Management"
	colPrincipalContact   = "Contact number of the Principal/Management"
	colCoordinatorName    = "Name of the teacher/coordinator for training and managing the library"
	colCoordinatorContact = "Contact details of the coordinator/teacher"
	colHasCupboard        = "Is there a cupboard/place for safekeeping of the toys"
	colHasLibraryRoom     = "Is there a room /place to set up the library"
	colLibraryPictures    = "Pictures of the library room and cupboard"
	colStudentsBalwadi    = "Number of Students - Balwadi - class 1"
	colStudentsClass2To4  = "Number of Students - class 2 - class 4"
	colStudentsClass5Up   = "Number of Students - class 5 and above"
	colReferredBy         = "Referred by"
)

var ErrNoWorksheets = errors.New("no worksheets in workbook")

// RegistrationRow is one unprocessed row of the registration sheet.
// RowIndex is the 1-based worksheet row, used to mark the row consumed.
type RegistrationRow struct {
	RowIndex int
	School   domain.School
}

// RegistrationWorkbook reads pending school registrations from an xlsx
// workbook and marks rows consumed in place. Access is serialized: the
// import is request-triggered and two imports must not interleave saves.
type RegistrationWorkbook struct {
	mu   sync.Mutex
	path string

	file      *excelize.File
	sheetName string
	header    map[string]int
}

func NewRegistrationWorkbook(path string) *RegistrationWorkbook {
	return &RegistrationWorkbook{
		path: path,
	}
}

// PendingRows re-reads the workbook and returns every row whose
// Completed cell is empty. Cells left blank come back as nil fields.
func (w *RegistrationWorkbook) PendingRows() ([]RegistrationRow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.open(); err != nil {
		return nil, err
	}

	rows, err := w.file.GetRows(w.sheetName)
	if err != nil {
		return nil, fmt.Errorf("w.file.GetRows -> %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	w.header = headerIndex(rows[0])

	var pending []RegistrationRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if cellValue(row, w.header, colCompleted) != nil {
			continue
		}

		code := cellValue(row, w.header, colCode)
		if code == nil {
			// A row without a code cannot be keyed; leave it for
			// manual cleanup rather than importing a broken record.
			continue
		}

		pending = append(pending, RegistrationRow{
			RowIndex: i + 1,
			School: domain.School{
				Code:                   *code,
				Timestamp:              cellValue(row, w.header, colTimestamp),
				Name:                   cellValue(row, w.header, colName),
				Board:                  cellValue(row, w.header, colBoard),
				InstitutionType:        cellValue(row, w.header, colInstitutionType),
				Village:                cellValue(row, w.header, colVillage),
				District:               cellValue(row, w.header, colDistrict),
				State:                  cellValue(row, w.header, colState),
				FullAddress:            cellValue(row, w.header, colFullAddress),
				PrincipalName:          cellValue(row, w.header, colPrincipalName),
				PrincipalContact:       cellValue(row, w.header, colPrincipalContact),
				CoordinatorName:        cellValue(row, w.header, colCoordinatorName),
				CoordinatorContact:     cellValue(row, w.header, colCoordinatorContact),
				HasCupboard:            cellValue(row, w.header, colHasCupboard),
				HasLibraryRoom:         cellValue(row, w.header, colHasLibraryRoom),
				LibraryPictures:        cellValue(row, w.header, colLibraryPictures),
				StudentsBalwadiClass1:  cellValue(row, w.header, colStudentsBalwadi),
				StudentsClass2To4:      cellValue(row, w.header, colStudentsClass2To4),
				StudentsClass5AndAbove: cellValue(row, w.header, colStudentsClass5Up),
				ReferredBy:             cellValue(row, w.header, colReferredBy),
			},
		})
	}

	return pending, nil
}

// MarkCompleted writes "True" into the row's Completed cell and saves
// the workbook. This write is not atomic with the database insert that
// precedes it; the import path tolerates replays of marked-but-crashed
// rows by skipping duplicate school codes.
func (w *RegistrationWorkbook) MarkCompleted(rowIndex int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return errors.New("workbook not open")
	}

	col, ok := w.header[colCompleted]
	if !ok {
		return fmt.Errorf("column %q not found in %v", colCompleted, w.path)
	}

	cell, err := excelize.CoordinatesToCellName(col+1, rowIndex)
	if err != nil {
		return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
	}
	if err = w.file.SetCellValue(w.sheetName, cell, "True"); err != nil {
		return fmt.Errorf("w.file.SetCellValue -> %w", err)
	}
	if err = w.file.Save(); err != nil {
		return fmt.Errorf("w.file.Save -> %w", err)
	}

	return nil
}

func (w *RegistrationWorkbook) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	err := w.file.Close()
	w.file = nil

	return err
}

func (w *RegistrationWorkbook) open() error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("w.file.Close -> %w", err)
		}
		w.file = nil
	}

	file, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("excelize.OpenFile -> %w", err)
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		_ = file.Close()
		return ErrNoWorksheets
	}

	w.file = file
	w.sheetName = sheets[0]

	return nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, title := range header {
		index[strings.TrimSpace(title)] = i
	}

	return index
}

func cellValue(row []string, header map[string]int, column string) *string {
	i, ok := header[column]
	if !ok || i >= len(row) {
		return nil
	}

	value := strings.TrimSpace(row[i])
	if value == "" {
		return nil
	}

	return &value
}
