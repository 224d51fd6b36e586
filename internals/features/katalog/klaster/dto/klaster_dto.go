// file: internals/features/katalog/klaster/dto/klaster_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	model "silabku_backend/internals/features/katalog/klaster/model"
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
   Requests: CREATE
   ========================================================= */

type CreateKlasterRequest struct {
	KlasterName        string  `json:"klaster_name" validate:"required,max=100"`
	KlasterDescription *string `json:"klaster_description" validate:"omitempty,max=500"`
	KlasterIcon        *string `json:"klaster_icon" validate:"omitempty,max=120"`
}

func (r *CreateKlasterRequest) Normalize() {
	r.KlasterName = strings.TrimSpace(r.KlasterName)
	r.KlasterDescription = trimPtr(r.KlasterDescription)
	r.KlasterIcon = trimPtr(r.KlasterIcon)
}

func (r *CreateKlasterRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateKlasterRequest) ToModel() *model.Klaster {
	return &model.Klaster{
		KlasterName:        r.KlasterName,
		KlasterDescription: r.KlasterDescription,
		KlasterIcon:        r.KlasterIcon,
	}
}

/* =========================================================
   Requests: UPDATE (partial — field nil berarti tidak diubah)
   ========================================================= */

type UpdateKlasterRequest struct {
	KlasterName        *string `json:"klaster_name" validate:"omitempty,min=1,max=100"`
	KlasterDescription *string `json:"klaster_description" validate:"omitempty,max=500"`
	KlasterIcon        *string `json:"klaster_icon" validate:"omitempty,max=120"`
}

func (r *UpdateKlasterRequest) Normalize() {
	if r.KlasterName != nil {
		v := strings.TrimSpace(*r.KlasterName)
		r.KlasterName = &v
	}
	r.KlasterDescription = trimPtr(r.KlasterDescription)
	r.KlasterIcon = trimPtr(r.KlasterIcon)
}

func (r *UpdateKlasterRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpdateKlasterRequest) Apply(m *model.Klaster) {
	if r.KlasterName != nil {
		m.KlasterName = *r.KlasterName
	}
	if r.KlasterDescription != nil {
		m.KlasterDescription = r.KlasterDescription
	}
	if r.KlasterIcon != nil {
		m.KlasterIcon = r.KlasterIcon
	}
}

/* =========================================================
   Response
   ========================================================= */

type KlasterResponse struct {
	KlasterID          string    `json:"klaster_id"`
	KlasterName        string    `json:"klaster_name"`
	KlasterDescription *string   `json:"klaster_description,omitempty"`
	KlasterIcon        *string   `json:"klaster_icon,omitempty"`
	KlasterCreatedAt   time.Time `json:"klaster_created_at"`
	KlasterUpdatedAt   time.Time `json:"klaster_updated_at"`
}

func FromModel(m *model.Klaster) *KlasterResponse {
	return &KlasterResponse{
		KlasterID:          m.KlasterID.String(),
		KlasterName:        m.KlasterName,
		KlasterDescription: m.KlasterDescription,
		KlasterIcon:        m.KlasterIcon,
		KlasterCreatedAt:   m.KlasterCreatedAt,
		KlasterUpdatedAt:   m.KlasterUpdatedAt,
	}
}

func FromModels(ms []model.Klaster) []*KlasterResponse {
	out := make([]*KlasterResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
