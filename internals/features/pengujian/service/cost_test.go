// file: internals/features/pengujian/service/cost_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "silabku_backend/internals/features/pengujian/model"
)

func resolvedFixture() (map[uuid.UUID]model.ResolvedParameter, uuid.UUID, uuid.UUID, uuid.UUID) {
	ph := uuid.New()      // pH, klaster Air
	logam := uuid.New()   // logam berat, klaster Air
	kebisingan := uuid.New() // klaster Udara

	resolved := map[uuid.UUID]model.ResolvedParameter{
		ph:         {ParameterID: ph, Name: "pH", Harga: 250000, KlasterName: "Air"},
		logam:      {ParameterID: logam, Name: "Logam Berat (Pb)", Harga: 350000, KlasterName: "Air"},
		kebisingan: {ParameterID: kebisingan, Name: "Kebisingan", Harga: 150000, KlasterName: "Udara"},
	}
	return resolved, ph, logam, kebisingan
}

func TestComputeLineItem(t *testing.T) {
	resolved, ph, _, _ := resolvedFixture()

	line := ComputeLineItem(resolved[ph], 2)

	assert.Equal(t, int64(250000), line.UnitPrice)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, int64(500000), line.Subtotal)
	assert.Equal(t, "Air", line.KlasterName)
}

func TestComputeTotals_GroupsPerKlaster(t *testing.T) {
	resolved, ph, logam, kebisingan := resolvedFixture()

	items := []QuoteItem{
		{ParameterID: ph, Quantity: 2},         // 500000 → Air
		{ParameterID: logam, Quantity: 1},      // 350000 → Air
		{ParameterID: kebisingan, Quantity: 3}, // 450000 → Udara
	}

	lines, perKlaster, grand, err := ComputeTotals(resolved, items)
	assert.NoError(t, err)

	assert.Len(t, lines, 3)
	assert.Equal(t, int64(850000), perKlaster["Air"])
	assert.Equal(t, int64(450000), perKlaster["Udara"])
	assert.Equal(t, int64(1300000), grand)

	// grand total = jumlah seluruh subtotal per klaster
	var sum int64
	for _, v := range perKlaster {
		sum += v
	}
	assert.Equal(t, grand, sum)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	resolved, _, _, _ := resolvedFixture()

	_, _, _, err := ComputeTotals(resolved, nil)
	assert.ErrorIs(t, err, ErrItemsEmpty)
}

func TestComputeTotals_QuantityInvalid(t *testing.T) {
	resolved, ph, _, _ := resolvedFixture()

	_, _, _, err := ComputeTotals(resolved, []QuoteItem{{ParameterID: ph, Quantity: 0}})
	assert.ErrorIs(t, err, ErrQuantityInvalid)
}

func TestComputeTotals_UnknownParameter(t *testing.T) {
	resolved, _, _, _ := resolvedFixture()

	_, _, _, err := ComputeTotals(resolved, []QuoteItem{{ParameterID: uuid.New(), Quantity: 1}})
	assert.ErrorIs(t, err, ErrParameterNotFound)
}

// Fungsi murni: katalog sama + input sama → hasil identik.
func TestComputeTotals_Idempotent(t *testing.T) {
	resolved, ph, logam, _ := resolvedFixture()
	items := []QuoteItem{
		{ParameterID: ph, Quantity: 4},
		{ParameterID: logam, Quantity: 2},
	}

	_, perA, grandA, errA := ComputeTotals(resolved, items)
	_, perB, grandB, errB := ComputeTotals(resolved, items)

	assert.NoError(t, errA)
	assert.NoError(t, errB)
	assert.Equal(t, grandA, grandB)
	assert.Equal(t, perA, perB)
}
