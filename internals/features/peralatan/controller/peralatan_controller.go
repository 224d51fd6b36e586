// file: internals/features/peralatan/controller/peralatan_controller.go
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

	parameterModel "silabku_backend/internals/features/katalog/parameter/model"
	dto "silabku_backend/internals/features/peralatan/dto"
	model "silabku_backend/internals/features/peralatan/model"
	pengujianModel "silabku_backend/internals/features/pengujian/model"
)

type PeralatanController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPeralatanController(db *gorm.DB, v *validator.Validate) *PeralatanController {
	return &PeralatanController{DB: db, Validate: v}
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

type activeCountRow struct {
	PeralatanID uuid.UUID `gorm:"column:peralatan_id"`
	N           int64     `gorm:"column:n"`
}

// activeCounts: proyeksi jumlah pengujian aktif (CONFIRMED/IN_PROGRESS)
// per alat — lewat item order → link parameter_peralatan. Status tersimpan
// alat tidak diubah; pemakaian dihitung dari order, bukan dari flag.
func (ctl *PeralatanController) activeCounts(c *fiber.Ctx, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []activeCountRow
	err := ctl.DB.WithContext(c.Context()).
		Table("parameter_peralatan").
		Select("parameter_peralatan.parameter_peralatan_peralatan_id AS peralatan_id, COUNT(DISTINCT pengujian.pengujian_id) AS n").
		Joins("JOIN pengujian_item ON pengujian_item.pengujian_item_parameter_id = parameter_peralatan.parameter_peralatan_parameter_id").
		Joins("JOIN pengujian ON pengujian.pengujian_id = pengujian_item.pengujian_item_pengujian_id AND pengujian.pengujian_deleted_at IS NULL").
		Where("parameter_peralatan.parameter_peralatan_peralatan_id IN ?", ids).
		Where("pengujian.pengujian_status IN ?", pengujianModel.ActiveStatuses()).
		Group("parameter_peralatan.parameter_peralatan_peralatan_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.PeralatanID] = r.N
	}
	return out, nil
}

func (ctl *PeralatanController) activeCount(c *fiber.Ctx, id uuid.UUID) (int64, error) {
	counts, err := ctl.activeCounts(c, []uuid.UUID{id})
	if err != nil {
		return 0, err
	}
	return counts[id], nil
}

/* =========================
   Create (staff)
   POST /api/a/peralatan
   ========================= */

func (ctl *PeralatanController) Create(c *fiber.Ctx) error {
	var req dto.CreatePeralatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeDuplicateName, "nama peralatan sudah dipakai")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "gagal menyimpan peralatan")
	}

	return helper.JsonCreated(c, "Peralatan created", dto.FromModel(m, 0))
}

/* =========================
   Update (staff, partial)
   PUT /api/a/peralatan/:id
   ========================= */

func (ctl *PeralatanController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id peralatan tidak valid")
	}

	var req dto.UpdatePeralatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var m model.Peralatan
	if err := ctl.DB.WithContext(c.Context()).
		Where("peralatan_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "peralatan tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonErrorCode(c, http.StatusConflict, helper.CodeDuplicateName, "nama peralatan sudah dipakai")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "gagal menyimpan peralatan")
	}

	n, err := ctl.activeCount(c, m.PeralatanID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Peralatan updated", dto.FromModel(&m, n))
}

/* =========================
   Delete (staff)
   DELETE /api/a/peralatan/:id
   Tolak kalau masih dirujuk parameter aktif.
   ========================= */

func (ctl *PeralatanController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id peralatan tidak valid")
	}

	var m model.Peralatan
	if err := ctl.DB.WithContext(c.Context()).
		Where("peralatan_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "peralatan tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var refs int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&parameterModel.ParameterPeralatan{}).
		Where("parameter_peralatan_peralatan_id = ?", id).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if refs > 0 {
		return helper.JsonError(c, http.StatusConflict, "peralatan masih terasosiasi dengan parameter, lepaskan dulu")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Peralatan deleted", fiber.Map{"peralatan_id": id})
}

/* =========================
   List (public)
   GET /api/public/peralatan?status=&search=&page=&per_page=
   ========================= */

func (ctl *PeralatanController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.Peralatan{})
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := model.PeralatanStatus(strings.ToUpper(raw))
		if !st.Valid() {
			return helper.JsonError(c, http.StatusBadRequest, "status peralatan tidak dikenal")
		}
		q = q.Where("peralatan_status = ?", st)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("peralatan_name ILIKE ? OR peralatan_merk ILIKE ? OR peralatan_tipe ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.Peralatan
	if err := q.Order("peralatan_created_at, peralatan_id").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.PeralatanID)
	}
	counts, err := ctl.activeCounts(c, ids)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]*dto.PeralatanResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.FromModel(&list[i], counts[list[i].PeralatanID]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", items, &p)
}

/* =========================
   Detail (public)
   GET /api/public/peralatan/:id
   ========================= */

func (ctl *PeralatanController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id peralatan tidak valid")
	}

	var m model.Peralatan
	if err := ctl.DB.WithContext(c.Context()).
		Where("peralatan_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "peralatan tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	n, err := ctl.activeCount(c, id)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m, n))
}
