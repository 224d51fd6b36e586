// file: internals/features/katalog/parameter/controller/parameter_controller.go
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
	dto "silabku_backend/internals/features/katalog/parameter/dto"
	model "silabku_backend/internals/features/katalog/parameter/model"
	peralatanModel "silabku_backend/internals/features/peralatan/model"
)

type ParameterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParameterController(db *gorm.DB, v *validator.Validate) *ParameterController {
	return &ParameterController{DB: db, Validate: v}
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

func (ctl *ParameterController) jenisExists(c *fiber.Ctx, id uuid.UUID) (bool, error) {
	var n int64
	err := ctl.DB.WithContext(c.Context()).
		Model(&jenisModel.JenisPengujian{}).
		Where("jenis_pengujian_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

// replaceLinksTx mengganti SELURUH set link peralatan parameter secara
// atomik: validasi semua peralatan dulu, baru delete+insert. Gagal satu id
// berarti set lama utuh (rollback transaksi).
func replaceLinksTx(tx *gorm.DB, parameterID uuid.UUID, links []dto.PeralatanLinkRequest) error {
	for _, l := range links {
		var alat peralatanModel.Peralatan
		if err := tx.
			Where("peralatan_id = ?", l.PeralatanID).
			First(&alat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("peralatan %s tidak ditemukan", l.PeralatanID))
			}
			return err
		}
		if !alat.PeralatanStatus.AllowsNewAssignment() {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("peralatan %s berstatus %s, tidak bisa dipakai untuk asosiasi baru", alat.PeralatanName, alat.PeralatanStatus))
		}
	}

	if err := tx.
		Where("parameter_peralatan_parameter_id = ?", parameterID).
		Delete(&model.ParameterPeralatan{}).Error; err != nil {
		return err
	}

	for _, l := range links {
		row := model.ParameterPeralatan{
			ParameterPeralatanParameterID: parameterID,
			ParameterPeralatanPeralatanID: l.PeralatanID,
			ParameterPeralatanQuantity:    l.Quantity,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (ctl *ParameterController) reload(c *fiber.Ctx, id uuid.UUID) (*model.Parameter, error) {
	var m model.Parameter
	err := ctl.DB.WithContext(c.Context()).
		Preload("ParameterPeralatan").
		Where("parameter_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

/* =========================
   Create (staff)
   POST /api/a/parameter
   ========================= */

func (ctl *ParameterController) Create(c *fiber.Ctx) error {
	var req dto.CreateParameterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ok, err := ctl.jenisExists(c, req.ParameterJenisPengujianID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "jenis pengujian tidak ditemukan")
	}

	m := req.ToModel()

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if len(req.Peralatan) > 0 {
			return replaceLinksTx(tx, m.ParameterID, req.Peralatan)
		}
		return nil
	})
	if txErr != nil {
		if isDuplicateKey(txErr) {
			return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeDuplicateName, "nama parameter sudah dipakai di jenis pengujian ini")
		}
		return helper.FromFiberError(c, txErr)
	}

	out, err := ctl.reload(c, m.ParameterID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Parameter created", dto.FromModel(out))
}

/* =========================
   Update (staff, partial)
   PUT /api/a/parameter/:id
   Body boleh menyertakan "peralatan" untuk ganti set link sekalian.
   ========================= */

func (ctl *ParameterController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id parameter tidak valid")
	}

	var req dto.UpdateParameterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if req.ParameterJenisPengujianID != nil {
		ok, err := ctl.jenisExists(c, *req.ParameterJenisPengujianID)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if !ok {
			return helper.JsonError(c, http.StatusNotFound, "jenis pengujian tujuan tidak ditemukan")
		}
	}

	var m model.Parameter
	if err := ctl.DB.WithContext(c.Context()).
		Where("parameter_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "parameter tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.Apply(&m)

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if req.Peralatan != nil {
			return replaceLinksTx(tx, m.ParameterID, req.Peralatan)
		}
		return nil
	})
	if txErr != nil {
		if isDuplicateKey(txErr) {
			return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeDuplicateName, "nama parameter sudah dipakai di jenis pengujian ini")
		}
		return helper.FromFiberError(c, txErr)
	}

	out, err := ctl.reload(c, m.ParameterID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Parameter updated", dto.FromModel(out))
}

/* =========================
   Replace peralatan set (staff, atomik)
   PUT /api/a/parameter/:id/peralatan
   ========================= */

func (ctl *ParameterController) ReplacePeralatan(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id parameter tidak valid")
	}

	var req dto.ReplacePeralatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var m model.Parameter
	if err := ctl.DB.WithContext(c.Context()).
		Where("parameter_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "parameter tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		return replaceLinksTx(tx, id, req.Peralatan)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	out, err := ctl.reload(c, id)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Peralatan parameter updated", dto.FromModel(out))
}

/* =========================
   Delete (staff)
   DELETE /api/a/parameter/:id
   Soft delete — order historis pegang snapshot sendiri, aman.
   ========================= */

func (ctl *ParameterController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id parameter tidak valid")
	}

	var m model.Parameter
	if err := ctl.DB.WithContext(c.Context()).
		Where("parameter_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "parameter tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Parameter deleted", fiber.Map{"parameter_id": id})
}

/* =========================
   List (public)
   GET /api/public/parameter?klaster_id=&jenis_pengujian_id=&search=&sort=&page=&per_page=
   Search: substring case-insensitive atas name/satuan/acuan.
   Default urut sesuai insertion order; ?sort=name untuk urut nama.
   ========================= */

func (ctl *ParameterController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.Parameter{})

	if raw := strings.TrimSpace(c.Query("jenis_pengujian_id")); raw != "" {
		jid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "jenis_pengujian_id tidak valid")
		}
		q = q.Where("parameter_jenis_pengujian_id = ?", jid)
	}
	if raw := strings.TrimSpace(c.Query("klaster_id")); raw != "" {
		kid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "klaster_id tidak valid")
		}
		q = q.Where("parameter_jenis_pengujian_id IN (?)",
			ctl.DB.Model(&jenisModel.JenisPengujian{}).
				Select("jenis_pengujian_id").
				Where("jenis_pengujian_klaster_id = ?", kid))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("parameter_name ILIKE ? OR parameter_satuan ILIKE ? OR parameter_acuan ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	order := "parameter_created_at, parameter_id"
	if strings.EqualFold(strings.TrimSpace(c.Query("sort")), "name") {
		order = "parameter_name, parameter_id"
	}

	var list []model.Parameter
	if err := q.Preload("ParameterPeralatan").
		Order(order).
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(list), &p)
}

/* =========================
   Detail (public)
   GET /api/public/parameter/:id
   ========================= */

func (ctl *ParameterController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id parameter tidak valid")
	}

	m, err := ctl.reload(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "parameter tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromModel(m))
}
