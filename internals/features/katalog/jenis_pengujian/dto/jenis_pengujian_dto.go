// file: internals/features/katalog/jenis_pengujian/dto/jenis_pengujian_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	model "silabku_backend/internals/features/katalog/jenis_pengujian/model"
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
   Requests
   ========================================================= */

type CreateJenisPengujianRequest struct {
	JenisPengujianKlasterID   uuid.UUID `json:"jenis_pengujian_klaster_id" validate:"required"`
	JenisPengujianName        string    `json:"jenis_pengujian_name" validate:"required,max=120"`
	JenisPengujianDescription *string   `json:"jenis_pengujian_description" validate:"omitempty,max=500"`
}

func (r *CreateJenisPengujianRequest) Normalize() {
	r.JenisPengujianName = strings.TrimSpace(r.JenisPengujianName)
	r.JenisPengujianDescription = trimPtr(r.JenisPengujianDescription)
}

func (r *CreateJenisPengujianRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateJenisPengujianRequest) ToModel() *model.JenisPengujian {
	return &model.JenisPengujian{
		JenisPengujianKlasterID:   r.JenisPengujianKlasterID,
		JenisPengujianName:        r.JenisPengujianName,
		JenisPengujianDescription: r.JenisPengujianDescription,
	}
}

// UpdateJenisPengujianRequest: partial — field nil tidak diubah. Pindah
// klaster diperbolehkan; keunikan (name, klaster_id) divalidasi ulang oleh
// unique index saat save.
type UpdateJenisPengujianRequest struct {
	JenisPengujianKlasterID   *uuid.UUID `json:"jenis_pengujian_klaster_id" validate:"omitempty"`
	JenisPengujianName        *string    `json:"jenis_pengujian_name" validate:"omitempty,min=1,max=120"`
	JenisPengujianDescription *string    `json:"jenis_pengujian_description" validate:"omitempty,max=500"`
}

func (r *UpdateJenisPengujianRequest) Normalize() {
	if r.JenisPengujianName != nil {
		v := strings.TrimSpace(*r.JenisPengujianName)
		r.JenisPengujianName = &v
	}
	r.JenisPengujianDescription = trimPtr(r.JenisPengujianDescription)
}

func (r *UpdateJenisPengujianRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpdateJenisPengujianRequest) Apply(m *model.JenisPengujian) {
	if r.JenisPengujianKlasterID != nil {
		m.JenisPengujianKlasterID = *r.JenisPengujianKlasterID
	}
	if r.JenisPengujianName != nil {
		m.JenisPengujianName = *r.JenisPengujianName
	}
	if r.JenisPengujianDescription != nil {
		m.JenisPengujianDescription = r.JenisPengujianDescription
	}
}

/* =========================================================
   Response
   ========================================================= */

type JenisPengujianResponse struct {
	JenisPengujianID          string    `json:"jenis_pengujian_id"`
	JenisPengujianKlasterID   string    `json:"jenis_pengujian_klaster_id"`
	JenisPengujianName        string    `json:"jenis_pengujian_name"`
	JenisPengujianDescription *string   `json:"jenis_pengujian_description,omitempty"`
	JenisPengujianCreatedAt   time.Time `json:"jenis_pengujian_created_at"`
	JenisPengujianUpdatedAt   time.Time `json:"jenis_pengujian_updated_at"`
}

func FromModel(m *model.JenisPengujian) *JenisPengujianResponse {
	return &JenisPengujianResponse{
		JenisPengujianID:          m.JenisPengujianID.String(),
		JenisPengujianKlasterID:   m.JenisPengujianKlasterID.String(),
		JenisPengujianName:        m.JenisPengujianName,
		JenisPengujianDescription: m.JenisPengujianDescription,
		JenisPengujianCreatedAt:   m.JenisPengujianCreatedAt,
		JenisPengujianUpdatedAt:   m.JenisPengujianUpdatedAt,
	}
}

func FromModels(ms []model.JenisPengujian) []*JenisPengujianResponse {
	out := make([]*JenisPengujianResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
