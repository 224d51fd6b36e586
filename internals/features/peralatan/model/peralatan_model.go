// file: internals/features/peralatan/model/peralatan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PeralatanStatus string

const (
	StatusAvailable   PeralatanStatus = "AVAILABLE"
	StatusInUse       PeralatanStatus = "IN_USE"
	StatusMaintenance PeralatanStatus = "MAINTENANCE"
	StatusDamaged     PeralatanStatus = "DAMAGED"
)

func (s PeralatanStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance, StatusDamaged:
		return true
	}
	return false
}

// AllowsNewAssignment: alat MAINTENANCE/DAMAGED masih boleh tampil di
// asosiasi lama, tapi tidak boleh dipilih untuk asosiasi parameter baru.
// Satu aturan dipakai semua caller.
func (s PeralatanStatus) AllowsNewAssignment() bool {
	return s != StatusMaintenance && s != StatusDamaged
}

// Peralatan: instrumen fisik dengan metadata inventaris & kalibrasi (BMN).
type Peralatan struct {
	PeralatanID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:peralatan_id" json:"peralatan_id"`
	PeralatanName        string          `gorm:"type:varchar(150);not null;column:peralatan_name;uniqueIndex:uq_peralatan_name" json:"peralatan_name"`
	PeralatanDescription *string         `gorm:"type:varchar(500);column:peralatan_description" json:"peralatan_description"`
	PeralatanStatus      PeralatanStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE';column:peralatan_status;index:idx_peralatan_status" json:"peralatan_status"`

	PeralatanNomorAlat         *string `gorm:"type:varchar(64);column:peralatan_nomor_alat" json:"peralatan_nomor_alat"`
	PeralatanMerk              *string `gorm:"type:varchar(100);column:peralatan_merk" json:"peralatan_merk"`
	PeralatanTipe              *string `gorm:"type:varchar(100);column:peralatan_tipe" json:"peralatan_tipe"`
	PeralatanNomorSeri         *string `gorm:"type:varchar(100);column:peralatan_nomor_seri" json:"peralatan_nomor_seri"`
	PeralatanKodeBMN           *string `gorm:"type:varchar(64);column:peralatan_kode_bmn" json:"peralatan_kode_bmn"`
	PeralatanNUP               *string `gorm:"type:varchar(64);column:peralatan_nup" json:"peralatan_nup"`
	PeralatanLokasiPenyimpanan *string `gorm:"type:varchar(150);column:peralatan_lokasi_penyimpanan" json:"peralatan_lokasi_penyimpanan"`
	PeralatanKoreksi           *string `gorm:"type:varchar(100);column:peralatan_koreksi" json:"peralatan_koreksi"`

	PeralatanWaktuPengadaan   *datatypes.Date `gorm:"column:peralatan_waktu_pengadaan" json:"peralatan_waktu_pengadaan"`
	PeralatanTanggalKalibrasi *datatypes.Date `gorm:"column:peralatan_tanggal_kalibrasi" json:"peralatan_tanggal_kalibrasi"`

	PeralatanCreatedAt time.Time      `gorm:"column:peralatan_created_at;autoCreateTime" json:"peralatan_created_at"`
	PeralatanUpdatedAt time.Time      `gorm:"column:peralatan_updated_at;autoUpdateTime" json:"peralatan_updated_at"`
	PeralatanDeletedAt gorm.DeletedAt `gorm:"column:peralatan_deleted_at;index" json:"peralatan_deleted_at,omitempty"`
}

func (Peralatan) TableName() string { return "peralatan" }
