// file: internals/features/pengujian/repository/pengujian_repository.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "silabku_backend/internals/features/pengujian/model"
)

// ListFilter: filter daftar pengujian. CustomerID dipaksa oleh service untuk
// caller non-staff.
type ListFilter struct {
	CustomerID *uuid.UUID
	Status     *model.PengujianStatus
}

// IPengujianRepository mendefinisikan operasi data pengujian.
type IPengujianRepository interface {
	// ResolveParameters membaca harga & nama klaster parameter (read path,
	// untuk quote).
	ResolveParameters(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.ResolvedParameter, error)

	// CreateWithQuote me-resolve harga parameter FOR SHARE lalu menulis order
	// + item dalam SATU transaksi, sehingga update harga katalog yang
	// berbarengan tidak bisa menghasilkan unit_price ≠ subtotal. Callback
	// build mengisi item snapshot + total dari hasil resolve.
	CreateWithQuote(ctx context.Context, p *model.Pengujian, parameterIDs []uuid.UUID,
		build func(resolved map[uuid.UUID]model.ResolvedParameter) error) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Pengujian, error)
	List(ctx context.Context, f ListFilter, offset, limit int) ([]model.Pengujian, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.PengujianStatus) (*model.Pengujian, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// PengujianRepository: implementasi GORM.
type PengujianRepository struct {
	DB *gorm.DB
}

func NewPengujianRepository(db *gorm.DB) IPengujianRepository {
	return &PengujianRepository{DB: db}
}

type resolvedRow struct {
	ParameterID    uuid.UUID `gorm:"column:parameter_id"`
	ParameterName  string    `gorm:"column:parameter_name"`
	ParameterHarga int64     `gorm:"column:parameter_harga"`
	KlasterName    string    `gorm:"column:klaster_name"`
}

func resolveQuery(tx *gorm.DB, ids []uuid.UUID) *gorm.DB {
	return tx.Table("parameter").
		Select("parameter.parameter_id, parameter.parameter_name, parameter.parameter_harga, klaster.klaster_name").
		Joins("JOIN jenis_pengujian ON jenis_pengujian.jenis_pengujian_id = parameter.parameter_jenis_pengujian_id AND jenis_pengujian.jenis_pengujian_deleted_at IS NULL").
		Joins("JOIN klaster ON klaster.klaster_id = jenis_pengujian.jenis_pengujian_klaster_id AND klaster.klaster_deleted_at IS NULL").
		Where("parameter.parameter_id IN ? AND parameter.parameter_deleted_at IS NULL", ids)
}

func toResolvedMap(rows []resolvedRow) map[uuid.UUID]model.ResolvedParameter {
	out := make(map[uuid.UUID]model.ResolvedParameter, len(rows))
	for _, r := range rows {
		out[r.ParameterID] = model.ResolvedParameter{
			ParameterID: r.ParameterID,
			Name:        r.ParameterName,
			Harga:       r.ParameterHarga,
			KlasterName: r.KlasterName,
		}
	}
	return out
}

func (r *PengujianRepository) ResolveParameters(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.ResolvedParameter, error) {
	var rows []resolvedRow
	if err := resolveQuery(r.DB.WithContext(ctx), ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toResolvedMap(rows), nil
}

func (r *PengujianRepository) CreateWithQuote(ctx context.Context, p *model.Pengujian, parameterIDs []uuid.UUID,
	build func(resolved map[uuid.UUID]model.ResolvedParameter) error) error {

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []resolvedRow
		// FOR SHARE OF parameter: harga tidak boleh berubah di bawah kita
		// sampai order + snapshot-nya tertulis.
		if err := resolveQuery(tx, parameterIDs).
			Clauses(clause.Locking{Strength: "SHARE", Table: clause.Table{Name: "parameter"}}).
			Scan(&rows).Error; err != nil {
			return err
		}
		if err := build(toResolvedMap(rows)); err != nil {
			return err
		}
		// item ikut tertulis lewat asosiasi PengujianItems
		return tx.Create(p).Error
	})
}

func (r *PengujianRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Pengujian, error) {
	var p model.Pengujian
	err := r.DB.WithContext(ctx).
		Preload("PengujianItems").
		Where("pengujian_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PengujianRepository) List(ctx context.Context, f ListFilter, offset, limit int) ([]model.Pengujian, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.Pengujian{})
	if f.CustomerID != nil {
		q = q.Where("pengujian_customer_id = ?", *f.CustomerID)
	}
	if f.Status != nil {
		q = q.Where("pengujian_status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Pengujian
	err := q.Preload("PengujianItems").
		Order("pengujian_created_at DESC, pengujian_id").
		Offset(offset).Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *PengujianRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.PengujianStatus) (*model.Pengujian, error) {
	err := r.DB.WithContext(ctx).
		Model(&model.Pengujian{}).
		Where("pengujian_id = ?", id).
		Update("pengujian_status", status).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *PengujianRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("pengujian_id = ?", id).
		Delete(&model.Pengujian{}).Error
}

// IsDuplicateNomor: deteksi unique violation nomor pengujian (SQLSTATE 23505)
// untuk retry internal saat generate nomor tabrakan.
func IsDuplicateNomor(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "uq_pengujian_nomor") ||
		((strings.Contains(s, "duplicate key") || strings.Contains(s, "23505")) && strings.Contains(s, "pengujian_nomor"))
}
