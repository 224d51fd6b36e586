// file: internals/features/pengujian/service/cost.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	model "silabku_backend/internals/features/pengujian/model"
)

// QuoteItem: input agregasi biaya — parameter terpilih + jumlah.
type QuoteItem struct {
	ParameterID uuid.UUID
	Quantity    int
}

// QuoteLine: satu baris hasil hitung. Subtotal = UnitPrice × Quantity,
// integer minor-unit, tanpa pembulatan.
type QuoteLine struct {
	ParameterID   uuid.UUID
	ParameterName string
	KlasterName   string
	UnitPrice     int64
	Quantity      int
	Subtotal      int64
}

// ComputeLineItem menghitung satu baris dari parameter yang sudah di-resolve.
func ComputeLineItem(p model.ResolvedParameter, quantity int) QuoteLine {
	return QuoteLine{
		ParameterID:   p.ParameterID,
		ParameterName: p.Name,
		KlasterName:   p.KlasterName,
		UnitPrice:     p.Harga,
		Quantity:      quantity,
		Subtotal:      p.Harga * int64(quantity),
	}
}

// ComputeTotals mengagregasi seluruh baris: subtotal per item, total per
// klaster (key = nama klaster saat resolve), dan grand total. Fungsi murni
// atas hasil resolve — idempoten untuk katalog yang sama.
func ComputeTotals(resolved map[uuid.UUID]model.ResolvedParameter, items []QuoteItem) ([]QuoteLine, map[string]int64, int64, error) {
	if len(items) == 0 {
		return nil, nil, 0, ErrItemsEmpty
	}

	lines := make([]QuoteLine, 0, len(items))
	perKlaster := make(map[string]int64)
	var grand int64

	for _, it := range items {
		if it.Quantity < 1 {
			return nil, nil, 0, ErrQuantityInvalid
		}
		p, ok := resolved[it.ParameterID]
		if !ok {
			return nil, nil, 0, fmt.Errorf("%w: %s", ErrParameterNotFound, it.ParameterID)
		}
		line := ComputeLineItem(p, it.Quantity)
		lines = append(lines, line)
		perKlaster[line.KlasterName] += line.Subtotal
		grand += line.Subtotal
	}

	return lines, perKlaster, grand, nil
}
