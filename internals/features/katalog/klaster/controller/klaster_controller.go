// file: internals/features/katalog/klaster/controller/klaster_controller.go
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

	jenisModel "silabku_backend/internals/features/katalog/jenis_pengujian/model"
	dto "silabku_backend/internals/features/katalog/klaster/dto"
	model "silabku_backend/internals/features/katalog/klaster/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type KlasterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewKlasterController(db *gorm.DB, v *validator.Validate) *KlasterController {
	return &KlasterController{DB: db, Validate: v}
}

/* =========================
   Small helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// isDuplicateKey: cek pelanggaran unique Postgres (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

/* =========================
   Create (staff)
   POST /api/a/klaster
   ========================= */

func (ctl *KlasterController) Create(c *fiber.Ctx) error {
	var req dto.CreateKlasterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeDuplicateName, "nama klaster sudah dipakai")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "gagal menyimpan klaster")
	}

	return helper.JsonCreated(c, "Klaster created", dto.FromModel(m))
}

/* =========================
   Update (staff, partial)
   PUT /api/a/klaster/:id
   ========================= */

func (ctl *KlasterController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id klaster tidak valid")
	}

	var req dto.UpdateKlasterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var m model.Klaster
	if err := ctl.DB.WithContext(c.Context()).
		Where("klaster_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "klaster tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.Apply(&m)

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeDuplicateName, "nama klaster sudah dipakai")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "gagal menyimpan klaster")
	}

	return helper.JsonUpdated(c, "Klaster updated", dto.FromModel(&m))
}

/* =========================
   Delete (staff)
   DELETE /api/a/klaster/:id
   Cascade-forbid: tolak kalau masih punya jenis pengujian.
   ========================= */

func (ctl *KlasterController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id klaster tidak valid")
	}

	var m model.Klaster
	if err := ctl.DB.WithContext(c.Context()).
		Where("klaster_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "klaster tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var children int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&jenisModel.JenisPengujian{}).
		Where("jenis_pengujian_klaster_id = ?", id).
		Count(&children).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if children > 0 {
		return helper.JsonError(c, http.StatusConflict, "klaster masih memiliki jenis pengujian, hapus/atau pindahkan dulu")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Klaster deleted", fiber.Map{"klaster_id": id})
}

/* =========================
   List (public)
   GET /api/public/klaster?search=&page=&per_page=
   ========================= */

func (ctl *KlasterController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.Klaster{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("klaster_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.Klaster
	if err := q.Order("klaster_created_at, klaster_id").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(list), &p)
}

/* =========================
   Detail (public)
   GET /api/public/klaster/:id
   ========================= */

func (ctl *KlasterController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id klaster tidak valid")
	}

	var m model.Klaster
	if err := ctl.DB.WithContext(c.Context()).
		Where("klaster_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "klaster tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}
