// file: internals/features/katalog/klaster/model/klaster_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Klaster: kategori layanan pengujian level teratas
// (mis. lingkungan kerja, keselamatan, kesehatan).
type Klaster struct {
	KlasterID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:klaster_id" json:"klaster_id"`
	KlasterName        string    `gorm:"type:varchar(100);not null;column:klaster_name;uniqueIndex:uq_klaster_name" json:"klaster_name"`
	KlasterDescription *string   `gorm:"type:varchar(500);column:klaster_description" json:"klaster_description"`
	KlasterIcon        *string   `gorm:"type:varchar(120);column:klaster_icon" json:"klaster_icon"`

	KlasterCreatedAt time.Time      `gorm:"column:klaster_created_at;autoCreateTime" json:"klaster_created_at"`
	KlasterUpdatedAt time.Time      `gorm:"column:klaster_updated_at;autoUpdateTime" json:"klaster_updated_at"`
	KlasterDeletedAt gorm.DeletedAt `gorm:"column:klaster_deleted_at;index" json:"klaster_deleted_at,omitempty"`
}

func (Klaster) TableName() string { return "klaster" }
