// file: internals/features/pengujian/dto/pengujian_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	model "silabku_backend/internals/features/pengujian/model"
)

/* =========================================================
   Requests
   ========================================================= */

type PengujianItemRequest struct {
	ParameterID uuid.UUID `json:"parameter_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,min=1"`
}

type CreatePengujianRequest struct {
	PengujianCompany       string                 `json:"pengujian_company" validate:"required,max=150"`
	PengujianContactPerson string                 `json:"pengujian_contact_person" validate:"required,max=100"`
	PengujianPhone         string                 `json:"pengujian_phone" validate:"required,max=30"`
	PengujianLocation      string                 `json:"pengujian_location" validate:"required,max=200"`
	Items                  []PengujianItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *CreatePengujianRequest) Normalize() {
	r.PengujianCompany = strings.TrimSpace(r.PengujianCompany)
	r.PengujianContactPerson = strings.TrimSpace(r.PengujianContactPerson)
	r.PengujianPhone = strings.TrimSpace(r.PengujianPhone)
	r.PengujianLocation = strings.TrimSpace(r.PengujianLocation)
}

func (r *CreatePengujianRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// QuoteRequest: pratinjau harga sebelum submit (tanpa membuat order).
type QuoteRequest struct {
	Items []PengujianItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *QuoteRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// UpdateStatusRequest: body PATCH /pengujian/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}

func (r *UpdateStatusRequest) Normalize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

/* =========================================================
   Response
   ========================================================= */

type PengujianItemResponse struct {
	PengujianItemID string `json:"pengujian_item_id"`
	ParameterID     string `json:"parameter_id"`
	ParameterName   string `json:"parameter_name"`
	UnitPrice       int64  `json:"unit_price"`
	Quantity        int    `json:"quantity"`
	Subtotal        int64  `json:"subtotal"`
}

type PengujianResponse struct {
	PengujianID            string                  `json:"pengujian_id"`
	PengujianNomor         string                  `json:"pengujian_nomor"`
	PengujianCustomerID    string                  `json:"pengujian_customer_id"`
	PengujianCompany       string                  `json:"pengujian_company"`
	PengujianContactPerson string                  `json:"pengujian_contact_person"`
	PengujianPhone         string                  `json:"pengujian_phone"`
	PengujianLocation      string                  `json:"pengujian_location"`
	PengujianStatus        string                  `json:"pengujian_status"`
	PengujianTotal         int64                   `json:"pengujian_total"`
	Items                  []PengujianItemResponse `json:"items"`
	PengujianCreatedAt     time.Time               `json:"pengujian_created_at"`
	PengujianUpdatedAt     time.Time               `json:"pengujian_updated_at"`
}

func FromModel(m *model.Pengujian) *PengujianResponse {
	items := make([]PengujianItemResponse, 0, len(m.PengujianItems))
	for _, it := range m.PengujianItems {
		items = append(items, PengujianItemResponse{
			PengujianItemID: it.PengujianItemID.String(),
			ParameterID:     it.PengujianItemParameterID.String(),
			ParameterName:   it.PengujianItemParameterName,
			UnitPrice:       it.PengujianItemUnitPrice,
			Quantity:        it.PengujianItemQuantity,
			Subtotal:        it.PengujianItemSubtotal,
		})
	}
	return &PengujianResponse{
		PengujianID:            m.PengujianID.String(),
		PengujianNomor:         m.PengujianNomor,
		PengujianCustomerID:    m.PengujianCustomerID.String(),
		PengujianCompany:       m.PengujianCompany,
		PengujianContactPerson: m.PengujianContactPerson,
		PengujianPhone:         m.PengujianPhone,
		PengujianLocation:      m.PengujianLocation,
		PengujianStatus:        string(m.PengujianStatus),
		PengujianTotal:         m.PengujianTotal,
		Items:                  items,
		PengujianCreatedAt:     m.PengujianCreatedAt,
		PengujianUpdatedAt:     m.PengujianUpdatedAt,
	}
}

func FromModels(ms []model.Pengujian) []*PengujianResponse {
	out := make([]*PengujianResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// QuoteResponse: hasil agregasi biaya — subtotal per item, total per klaster,
// dan grand total (semua aritmetika integer minor-unit).
type QuoteResponse struct {
	Items            []QuoteLineResponse `json:"items"`
	PerKlasterTotals map[string]int64    `json:"per_klaster_totals"`
	GrandTotal       int64               `json:"grand_total"`
}

type QuoteLineResponse struct {
	ParameterID   string `json:"parameter_id"`
	ParameterName string `json:"parameter_name"`
	UnitPrice     int64  `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	Subtotal      int64  `json:"subtotal"`
}
