// file: internals/features/katalog/parameter/dto/parameter_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	model "silabku_backend/internals/features/katalog/parameter/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   Peralatan links
   ========================================================= */

// PeralatanLinkRequest: satu entri ledger alokasi alat.
type PeralatanLinkRequest struct {
	PeralatanID uuid.UUID `json:"peralatan_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,min=1"`
}

// ValidateLinks: quantity >= 1 dan tidak ada peralatan_id ganda dalam satu set.
func ValidateLinks(links []PeralatanLinkRequest) error {
	seen := make(map[uuid.UUID]struct{}, len(links))
	for _, l := range links {
		if l.PeralatanID == uuid.Nil {
			return errors.New("peralatan_id wajib diisi")
		}
		if l.Quantity < 1 {
			return errors.New("quantity peralatan minimal 1")
		}
		if _, dup := seen[l.PeralatanID]; dup {
			return errors.New("peralatan_id duplikat dalam satu set")
		}
		seen[l.PeralatanID] = struct{}{}
	}
	return nil
}

/* =========================================================
   Requests
   ========================================================= */

type CreateParameterRequest struct {
	ParameterJenisPengujianID uuid.UUID `json:"parameter_jenis_pengujian_id" validate:"required"`
	ParameterName             string    `json:"parameter_name" validate:"required,max=150"`
	ParameterSatuan           *string   `json:"parameter_satuan" validate:"omitempty,max=50"`
	ParameterAcuan            *string   `json:"parameter_acuan" validate:"omitempty,max=200"`
	ParameterHarga            int64     `json:"parameter_harga" validate:"required,gt=0"`

	// Opsional: set awal kebutuhan peralatan
	Peralatan []PeralatanLinkRequest `json:"peralatan" validate:"omitempty,dive"`
}

func (r *CreateParameterRequest) Normalize() {
	r.ParameterName = strings.TrimSpace(r.ParameterName)
	r.ParameterSatuan = trimPtr(r.ParameterSatuan)
	r.ParameterAcuan = trimPtr(r.ParameterAcuan)
}

func (r *CreateParameterRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	return ValidateLinks(r.Peralatan)
}

func (r *CreateParameterRequest) ToModel() *model.Parameter {
	return &model.Parameter{
		ParameterJenisPengujianID: r.ParameterJenisPengujianID,
		ParameterName:             r.ParameterName,
		ParameterSatuan:           r.ParameterSatuan,
		ParameterAcuan:            r.ParameterAcuan,
		ParameterHarga:            r.ParameterHarga,
	}
}

// UpdateParameterRequest: partial. Peralatan non-nil berarti ganti seluruh
// set link (atomik); nil berarti set link tidak disentuh.
type UpdateParameterRequest struct {
	ParameterJenisPengujianID *uuid.UUID `json:"parameter_jenis_pengujian_id" validate:"omitempty"`
	ParameterName             *string    `json:"parameter_name" validate:"omitempty,min=1,max=150"`
	ParameterSatuan           *string    `json:"parameter_satuan" validate:"omitempty,max=50"`
	ParameterAcuan            *string    `json:"parameter_acuan" validate:"omitempty,max=200"`
	ParameterHarga            *int64     `json:"parameter_harga" validate:"omitempty,gt=0"`

	Peralatan []PeralatanLinkRequest `json:"peralatan" validate:"omitempty,dive"`
}

func (r *UpdateParameterRequest) Normalize() {
	if r.ParameterName != nil {
		v := strings.TrimSpace(*r.ParameterName)
		r.ParameterName = &v
	}
	r.ParameterSatuan = trimPtr(r.ParameterSatuan)
	r.ParameterAcuan = trimPtr(r.ParameterAcuan)
}

func (r *UpdateParameterRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.Peralatan != nil {
		return ValidateLinks(r.Peralatan)
	}
	return nil
}

func (r *UpdateParameterRequest) Apply(m *model.Parameter) {
	if r.ParameterJenisPengujianID != nil {
		m.ParameterJenisPengujianID = *r.ParameterJenisPengujianID
	}
	if r.ParameterName != nil {
		m.ParameterName = *r.ParameterName
	}
	if r.ParameterSatuan != nil {
		m.ParameterSatuan = r.ParameterSatuan
	}
	if r.ParameterAcuan != nil {
		m.ParameterAcuan = r.ParameterAcuan
	}
	if r.ParameterHarga != nil {
		m.ParameterHarga = *r.ParameterHarga
	}
}

// ReplacePeralatanRequest: body PUT /parameter/:id/peralatan
type ReplacePeralatanRequest struct {
	Peralatan []PeralatanLinkRequest `json:"peralatan" validate:"dive"`
}

func (r *ReplacePeralatanRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	return ValidateLinks(r.Peralatan)
}

/* =========================================================
   Response
   ========================================================= */

type PeralatanLinkResponse struct {
	PeralatanID string `json:"peralatan_id"`
	Quantity    int    `json:"quantity"`
}

type ParameterResponse struct {
	ParameterID               string    `json:"parameter_id"`
	ParameterJenisPengujianID string    `json:"parameter_jenis_pengujian_id"`
	ParameterName             string    `json:"parameter_name"`
	ParameterSatuan           *string   `json:"parameter_satuan,omitempty"`
	ParameterAcuan            *string   `json:"parameter_acuan,omitempty"`
	ParameterHarga            int64     `json:"parameter_harga"`
	ParameterCreatedAt        time.Time `json:"parameter_created_at"`
	ParameterUpdatedAt        time.Time `json:"parameter_updated_at"`

	Peralatan []PeralatanLinkResponse `json:"peralatan"`
}

func FromModel(m *model.Parameter) *ParameterResponse {
	links := make([]PeralatanLinkResponse, 0, len(m.ParameterPeralatan))
	for _, l := range m.ParameterPeralatan {
		links = append(links, PeralatanLinkResponse{
			PeralatanID: l.ParameterPeralatanPeralatanID.String(),
			Quantity:    l.ParameterPeralatanQuantity,
		})
	}
	return &ParameterResponse{
		ParameterID:               m.ParameterID.String(),
		ParameterJenisPengujianID: m.ParameterJenisPengujianID.String(),
		ParameterName:             m.ParameterName,
		ParameterSatuan:           m.ParameterSatuan,
		ParameterAcuan:            m.ParameterAcuan,
		ParameterHarga:            m.ParameterHarga,
		ParameterCreatedAt:        m.ParameterCreatedAt,
		ParameterUpdatedAt:        m.ParameterUpdatedAt,
		Peralatan:                 links,
	}
}

func FromModels(ms []model.Parameter) []*ParameterResponse {
	out := make([]*ParameterResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
