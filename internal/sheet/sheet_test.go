package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toybridge/toybridge-api/internal/domain"
)

func TestWorksheetIndex(t *testing.T) {
	tests := []struct {
		name string
		from domain.PartyType
		to   domain.PartyType
		want int
	}{
		{"vendor restock", domain.PartyVendor, domain.PartyNGO, 0},
		{"vendor to school", domain.PartyVendor, domain.PartySchool, 1},
		{"ngo to school", domain.PartyNGO, domain.PartySchool, 2},
		{"school return", domain.PartySchool, domain.PartyNGO, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, worksheetIndex(tt.from, tt.to))
		})
	}
}

func TestCellValue(t *testing.T) {
	header := headerIndex([]string{"Code", "Name of the school/Institution", "Completed"})
	row := []string{"SCH-1", "  Green Valley  "}

	code := cellValue(row, header, "Code")
	assert.Equal(t, "SCH-1", *code)

	name := cellValue(row, header, "Name of the school/Institution")
	assert.Equal(t, "Green Valley", *name)

	// Short rows and unknown columns read as absent.
	assert.Nil(t, cellValue(row, header, "Completed"))
	assert.Nil(t, cellValue(row, header, "District"))
}
