// file: internals/features/pengujian/controller/pengujian_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "silabku_backend/internals/features/pengujian/dto"
	model "silabku_backend/internals/features/pengujian/model"
	"silabku_backend/internals/features/pengujian/service"
	helper "silabku_backend/internals/helpers"
	helperAuth "silabku_backend/internals/helpers/auth"
)

type PengujianController struct {
	Service  *service.PengujianService
	Validate *validator.Validate
}

func NewPengujianController(svc *service.PengujianService, v *validator.Validate) *PengujianController {
	return &PengujianController{Service: svc, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// actor membangun identitas caller dari locals JWT.
func actor(c *fiber.Ctx) (service.Actor, error) {
	uid, err := helperAuth.UserID(c)
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{UserID: uid, IsStaff: helperAuth.IsStaff(c)}, nil
}

// mapServiceError memetakan sentinel service → envelope JSON standar.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrItemsEmpty),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrUnknownStatus):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrParameterNotFound):
		return helper.JsonValidationError(c, map[string][]string{
			"items": {err.Error()},
		})
	case errors.Is(err, service.ErrPengujianNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return helper.JsonError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeInvalidTransition, err.Error())
	case errors.Is(err, service.ErrNotCancellable):
		return helper.JsonError(c, http.StatusConflict, err.Error())
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func toQuoteItems(items []dto.PengujianItemRequest) []service.QuoteItem {
	out := make([]service.QuoteItem, 0, len(items))
	for _, it := range items {
		out = append(out, service.QuoteItem{ParameterID: it.ParameterID, Quantity: it.Quantity})
	}
	return out
}

func toQuoteResponse(q *service.QuoteResult) *dto.QuoteResponse {
	items := make([]dto.QuoteLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		items = append(items, dto.QuoteLineResponse{
			ParameterID:   l.ParameterID.String(),
			ParameterName: l.ParameterName,
			UnitPrice:     l.UnitPrice,
			Quantity:      l.Quantity,
			Subtotal:      l.Subtotal,
		})
	}
	return &dto.QuoteResponse{
		Items:            items,
		PerKlasterTotals: q.PerKlaster,
		GrandTotal:       q.GrandTotal,
	}
}

/* =========================
   Create (customer)
   POST /api/u/pengujian
   ========================= */

func (ctl *PengujianController) Create(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreatePengujianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	p, err := ctl.Service.Create(c.Context(), service.CreatePengujianInput{
		CustomerID:    act.UserID,
		Company:       req.PengujianCompany,
		ContactPerson: req.PengujianContactPerson,
		Phone:         req.PengujianPhone,
		Location:      req.PengujianLocation,
		Items:         toQuoteItems(req.Items),
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonCreated(c, "Pengujian created", dto.FromModel(p))
}

/* =========================
   Quote (customer)
   POST /api/u/pengujian/quote
   Hitung biaya dari katalog saat ini, tanpa membuat order.
   ========================= */

func (ctl *PengujianController) Quote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q, err := ctl.Service.Quote(c.Context(), toQuoteItems(req.Items))
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "ok", toQuoteResponse(q))
}

/* =========================
   List
   GET /api/u/pengujian?status=&page=&per_page=
   Staff melihat semua, customer hanya miliknya (dipaksa di service).
   ========================= */

func (ctl *PengujianController) GetAll(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	var status *model.PengujianStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := model.PengujianStatus(strings.ToUpper(raw))
		if !st.Valid() {
			return helper.JsonError(c, http.StatusBadRequest, "status pengujian tidak dikenal")
		}
		status = &st
	}

	list, total, err := ctl.Service.List(c.Context(), act, status, paging.Offset, paging.Limit)
	if err != nil {
		return mapServiceError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(list), &p)
}

/* =========================
   Detail
   GET /api/u/pengujian/:id
   ========================= */

func (ctl *PengujianController) GetByID(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id pengujian tidak valid")
	}

	p, err := ctl.Service.GetByID(c.Context(), id, act)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(p))
}

/* =========================
   Update status
   PATCH /api/u/pengujian/:id/status
   CANCELLED boleh oleh pemilik; selain itu staff-only (diputuskan service).
   ========================= */

func (ctl *PengujianController) UpdateStatus(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id pengujian tidak valid")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	p, err := ctl.Service.Transition(c.Context(), id, model.PengujianStatus(req.Status), act)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Status pengujian updated", dto.FromModel(p))
}

/* =========================
   Delete (cancel + soft delete)
   DELETE /api/u/pengujian/:id
   ========================= */

func (ctl *PengujianController) Delete(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id pengujian tidak valid")
	}

	if err := ctl.Service.Delete(c.Context(), id, act); err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Pengujian deleted", fiber.Map{"pengujian_id": id})
}
