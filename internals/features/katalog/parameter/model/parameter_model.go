// file: internals/features/katalog/parameter/model/parameter_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Parameter: besaran terukur berharga di bawah satu JenisPengujian.
// Harga dalam satuan mata uang terkecil (int64) supaya bebas error float.
type Parameter struct {
	ParameterID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parameter_id" json:"parameter_id"`
	ParameterJenisPengujianID uuid.UUID `gorm:"type:uuid;not null;column:parameter_jenis_pengujian_id;uniqueIndex:uq_parameter_jenis_name,priority:1;index:idx_parameter_jenis" json:"parameter_jenis_pengujian_id"`
	ParameterName             string    `gorm:"type:varchar(150);not null;column:parameter_name;uniqueIndex:uq_parameter_jenis_name,priority:2" json:"parameter_name"`
	ParameterSatuan           *string   `gorm:"type:varchar(50);column:parameter_satuan" json:"parameter_satuan"`
	ParameterAcuan            *string   `gorm:"type:varchar(200);column:parameter_acuan" json:"parameter_acuan"`
	ParameterHarga            int64     `gorm:"not null;column:parameter_harga" json:"parameter_harga"`

	ParameterPeralatan []ParameterPeralatan `gorm:"foreignKey:ParameterPeralatanParameterID;references:ParameterID" json:"parameter_peralatan,omitempty"`

	ParameterCreatedAt time.Time      `gorm:"column:parameter_created_at;autoCreateTime" json:"parameter_created_at"`
	ParameterUpdatedAt time.Time      `gorm:"column:parameter_updated_at;autoUpdateTime" json:"parameter_updated_at"`
	ParameterDeletedAt gorm.DeletedAt `gorm:"column:parameter_deleted_at;index" json:"parameter_deleted_at,omitempty"`
}

func (Parameter) TableName() string { return "parameter" }

// ParameterPeralatan: ledger alokasi alat per parameter (many-to-many
// dengan quantity kebutuhan per satu run pengujian). Penggantian set link
// selalu atomik lewat transaksi di controller.
type ParameterPeralatan struct {
	ParameterPeralatanID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parameter_peralatan_id" json:"parameter_peralatan_id"`
	ParameterPeralatanParameterID uuid.UUID `gorm:"type:uuid;not null;column:parameter_peralatan_parameter_id;uniqueIndex:uq_parameter_peralatan,priority:1;index:idx_parameter_peralatan_parameter" json:"parameter_peralatan_parameter_id"`
	ParameterPeralatanPeralatanID uuid.UUID `gorm:"type:uuid;not null;column:parameter_peralatan_peralatan_id;uniqueIndex:uq_parameter_peralatan,priority:2;index:idx_parameter_peralatan_peralatan" json:"parameter_peralatan_peralatan_id"`
	ParameterPeralatanQuantity    int       `gorm:"not null;default:1;column:parameter_peralatan_quantity" json:"parameter_peralatan_quantity"`

	ParameterPeralatanCreatedAt time.Time `gorm:"column:parameter_peralatan_created_at;autoCreateTime" json:"parameter_peralatan_created_at"`
}

func (ParameterPeralatan) TableName() string { return "parameter_peralatan" }
