// file: internals/features/katalog/jenis_pengujian/controller/jenis_pengujian_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "silabku_backend/internals/helpers"

	dto "silabku_backend/internals/features/katalog/jenis_pengujian/dto"
	model "silabku_backend/internals/features/katalog/jenis_pengujian/model"
	klasterModel "silabku_backend/internals/features/katalog/klaster/model"
	parameterModel "silabku_backend/internals/features/katalog/parameter/model"
)

type JenisPengujianController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewJenisPengujianController(db *gorm.DB, v *validator.Validate) *JenisPengujianController {
	return &JenisPengujianController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

// klasterExists: parent wajib ada sebelum insert/move.
func (ctl *JenisPengujianController) klasterExists(c *fiber.Ctx, id uuid.UUID) (bool, error) {
	var n int64
	err := ctl.DB.WithContext(c.Context()).
		Model(&klasterModel.Klaster{}).
		Where("klaster_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

/* =========================
   Create (staff)
   POST /api/a/jenis-pengujian
   ========================= */

func (ctl *JenisPengujianController) Create(c *fiber.Ctx) error {
	var req dto.CreateJenisPengujianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ok, err := ctl.klasterExists(c, req.JenisPengujianKlasterID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "klaster tidak ditemukan")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeDuplicateName, "nama jenis pengujian sudah dipakai di klaster ini")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "gagal menyimpan jenis pengujian")
	}

	return helper.JsonCreated(c, "Jenis pengujian created", dto.FromModel(m))
}

/* =========================
   Update (staff, partial)
   PUT /api/a/jenis-pengujian/:id
   ========================= */

func (ctl *JenisPengujianController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id jenis pengujian tidak valid")
	}

	var req dto.UpdateJenisPengujianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if req.JenisPengujianKlasterID != nil {
		ok, err := ctl.klasterExists(c, *req.JenisPengujianKlasterID)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if !ok {
			return helper.JsonError(c, http.StatusNotFound, "klaster tujuan tidak ditemukan")
		}
	}

	var m model.JenisPengujian
	if err := ctl.DB.WithContext(c.Context()).
		Where("jenis_pengujian_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "jenis pengujian tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.Apply(&m)

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeDuplicateName, "nama jenis pengujian sudah dipakai di klaster ini")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "gagal menyimpan jenis pengujian")
	}

	return helper.JsonUpdated(c, "Jenis pengujian updated", dto.FromModel(&m))
}

/* =========================
   Delete (staff)
   DELETE /api/a/jenis-pengujian/:id
   Cascade-forbid: tolak kalau masih punya parameter.
   ========================= */

func (ctl *JenisPengujianController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id jenis pengujian tidak valid")
	}

	var m model.JenisPengujian
	if err := ctl.DB.WithContext(c.Context()).
		Where("jenis_pengujian_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "jenis pengujian tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var children int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&parameterModel.Parameter{}).
		Where("parameter_jenis_pengujian_id = ?", id).
		Count(&children).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if children > 0 {
		return helper.JsonError(c, http.StatusConflict, "jenis pengujian masih memiliki parameter")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Jenis pengujian deleted", fiber.Map{"jenis_pengujian_id": id})
}

/* =========================
   List (public)
   GET /api/public/jenis-pengujian?klaster_id=&search=&page=&per_page=
   ========================= */

func (ctl *JenisPengujianController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.JenisPengujian{})
	if raw := strings.TrimSpace(c.Query("klaster_id")); raw != "" {
		kid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "klaster_id tidak valid")
		}
		q = q.Where("jenis_pengujian_klaster_id = ?", kid)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("jenis_pengujian_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.JenisPengujian
	if err := q.Order("jenis_pengujian_created_at, jenis_pengujian_id").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(list), &p)
}

/* =========================
   Detail (public)
   GET /api/public/jenis-pengujian/:id
   ========================= */

func (ctl *JenisPengujianController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id jenis pengujian tidak valid")
	}

	var m model.JenisPengujian
	if err := ctl.DB.WithContext(c.Context()).
		Where("jenis_pengujian_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "jenis pengujian tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}
