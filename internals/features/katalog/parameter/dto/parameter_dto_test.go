// file: internals/features/katalog/parameter/dto/parameter_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateLinks(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.NoError(t, ValidateLinks(nil))
	assert.NoError(t, ValidateLinks([]PeralatanLinkRequest{
		{PeralatanID: a, Quantity: 1},
		{PeralatanID: b, Quantity: 3},
	}))

	assert.Error(t, ValidateLinks([]PeralatanLinkRequest{{PeralatanID: uuid.Nil, Quantity: 1}}))
	assert.Error(t, ValidateLinks([]PeralatanLinkRequest{{PeralatanID: a, Quantity: 0}}))
	assert.Error(t, ValidateLinks([]PeralatanLinkRequest{
		{PeralatanID: a, Quantity: 1},
		{PeralatanID: a, Quantity: 2}, // alat sama dua kali dalam satu set
	}))
}

func TestCreateParameterRequest_HargaMustBePositive(t *testing.T) {
	v := validator.New()
	satuan := "mg/L"

	req := CreateParameterRequest{
		ParameterJenisPengujianID: uuid.New(),
		ParameterName:             "pH",
		ParameterSatuan:           &satuan,
		ParameterHarga:            250000,
	}
	req.Normalize()
	assert.NoError(t, req.Validate(v))

	req.ParameterHarga = 0
	assert.Error(t, req.Validate(v))

	req.ParameterHarga = -100
	assert.Error(t, req.Validate(v))
}

func TestUpdateParameterRequest_NilPeralatanLeavesLinksAlone(t *testing.T) {
	v := validator.New()

	// peralatan nil → valid tanpa menyentuh set link
	req := UpdateParameterRequest{}
	assert.NoError(t, req.Validate(v))

	// peralatan non-nil → set pengganti tetap divalidasi
	req.Peralatan = []PeralatanLinkRequest{{PeralatanID: uuid.Nil, Quantity: 1}}
	assert.Error(t, req.Validate(v))
}

func TestCreateParameterRequest_NormalizeTrims(t *testing.T) {
	satuan := "  NTU  "
	req := CreateParameterRequest{
		ParameterName:   "  Kekeruhan  ",
		ParameterSatuan: &satuan,
	}
	req.Normalize()

	assert.Equal(t, "Kekeruhan", req.ParameterName)
	assert.Equal(t, "NTU", *req.ParameterSatuan)
}
