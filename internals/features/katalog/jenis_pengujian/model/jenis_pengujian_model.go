// file: internals/features/katalog/jenis_pengujian/model/jenis_pengujian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JenisPengujian: prosedur pengujian bernama di bawah satu Klaster.
// Nama boleh berulang antar klaster, tapi unik di dalam satu klaster
// (uniqueIndex komposit, ditegakkan di DB bukan cek-lalu-insert).
type JenisPengujian struct {
	JenisPengujianID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:jenis_pengujian_id" json:"jenis_pengujian_id"`
	JenisPengujianKlasterID   uuid.UUID `gorm:"type:uuid;not null;column:jenis_pengujian_klaster_id;uniqueIndex:uq_jenis_pengujian_klaster_name,priority:1;index:idx_jenis_pengujian_klaster" json:"jenis_pengujian_klaster_id"`
	JenisPengujianName        string    `gorm:"type:varchar(120);not null;column:jenis_pengujian_name;uniqueIndex:uq_jenis_pengujian_klaster_name,priority:2" json:"jenis_pengujian_name"`
	JenisPengujianDescription *string   `gorm:"type:varchar(500);column:jenis_pengujian_description" json:"jenis_pengujian_description"`

	JenisPengujianCreatedAt time.Time      `gorm:"column:jenis_pengujian_created_at;autoCreateTime" json:"jenis_pengujian_created_at"`
	JenisPengujianUpdatedAt time.Time      `gorm:"column:jenis_pengujian_updated_at;autoUpdateTime" json:"jenis_pengujian_updated_at"`
	JenisPengujianDeletedAt gorm.DeletedAt `gorm:"column:jenis_pengujian_deleted_at;index" json:"jenis_pengujian_deleted_at,omitempty"`
}

func (JenisPengujian) TableName() string { return "jenis_pengujian" }
