package response

import (
	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/timefmt"
)

type StockEntry struct {
	domain.StockEntry
	CreatedAtIST string `json:"createdAtIST"`
	UpdatedAtIST string `json:"updatedAtIST"`
}

func NewStockEntry(entry domain.StockEntry) StockEntry {
	return StockEntry{
		StockEntry:   entry,
		CreatedAtIST: timefmt.IST(entry.CreatedAt),
		UpdatedAtIST: timefmt.IST(entry.UpdatedAt),
	}
}

func NewStockEntries(entries []domain.StockEntry) []StockEntry {
	views := make([]StockEntry, 0, len(entries))
	for _, entry := range entries {
		views = append(views, NewStockEntry(entry))
	}

	return views
}
