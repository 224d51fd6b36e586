// file: internals/features/pengujian/model/pengujian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pengujian: pengajuan pengujian milik customer — kumpulan parameter
// terpilih di satu lokasi, dengan snapshot harga beku saat dibuat.
type Pengujian struct {
	PengujianID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pengujian_id" json:"pengujian_id"`
	PengujianNomor         string          `gorm:"type:varchar(32);not null;column:pengujian_nomor;uniqueIndex:uq_pengujian_nomor" json:"pengujian_nomor"`
	PengujianCustomerID    uuid.UUID       `gorm:"type:uuid;not null;column:pengujian_customer_id;index:idx_pengujian_customer" json:"pengujian_customer_id"`
	PengujianCompany       string          `gorm:"type:varchar(150);not null;column:pengujian_company" json:"pengujian_company"`
	PengujianContactPerson string          `gorm:"type:varchar(100);not null;column:pengujian_contact_person" json:"pengujian_contact_person"`
	PengujianPhone         string          `gorm:"type:varchar(30);not null;column:pengujian_phone" json:"pengujian_phone"`
	PengujianLocation      string          `gorm:"type:varchar(200);not null;column:pengujian_location" json:"pengujian_location"`
	PengujianStatus        PengujianStatus `gorm:"type:varchar(20);not null;default:'PENDING';column:pengujian_status;index:idx_pengujian_status" json:"pengujian_status"`
	PengujianTotal         int64           `gorm:"not null;column:pengujian_total" json:"pengujian_total"`

	PengujianItems []PengujianItem `gorm:"foreignKey:PengujianItemPengujianID;references:PengujianID" json:"pengujian_items,omitempty"`

	PengujianCreatedAt time.Time      `gorm:"column:pengujian_created_at;autoCreateTime" json:"pengujian_created_at"`
	PengujianUpdatedAt time.Time      `gorm:"column:pengujian_updated_at;autoUpdateTime" json:"pengujian_updated_at"`
	PengujianDeletedAt gorm.DeletedAt `gorm:"column:pengujian_deleted_at;index" json:"pengujian_deleted_at,omitempty"`
}

func (Pengujian) TableName() string { return "pengujian" }

// PengujianItem: snapshot satu baris parameter saat order dibuat.
// Nama & harga satuan dibekukan — perubahan katalog setelahnya tidak
// boleh mengubah order historis.
type PengujianItem struct {
	PengujianItemID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pengujian_item_id" json:"pengujian_item_id"`
	PengujianItemPengujianID   uuid.UUID `gorm:"type:uuid;not null;column:pengujian_item_pengujian_id;index:idx_pengujian_item_pengujian" json:"pengujian_item_pengujian_id"`
	PengujianItemParameterID   uuid.UUID `gorm:"type:uuid;not null;column:pengujian_item_parameter_id;index:idx_pengujian_item_parameter" json:"pengujian_item_parameter_id"`
	PengujianItemParameterName string    `gorm:"type:varchar(150);not null;column:pengujian_item_parameter_name" json:"pengujian_item_parameter_name"`
	PengujianItemUnitPrice     int64     `gorm:"not null;column:pengujian_item_unit_price" json:"pengujian_item_unit_price"`
	PengujianItemQuantity      int       `gorm:"not null;column:pengujian_item_quantity" json:"pengujian_item_quantity"`
	PengujianItemSubtotal      int64     `gorm:"not null;column:pengujian_item_subtotal" json:"pengujian_item_subtotal"`

	PengujianItemCreatedAt time.Time `gorm:"column:pengujian_item_created_at;autoCreateTime" json:"pengujian_item_created_at"`
}

func (PengujianItem) TableName() string { return "pengujian_item" }

// ResolvedParameter: hasil resolve parameter dari katalog untuk penghitungan
// biaya / snapshot — dibaca dalam transaksi yang sama dengan penulisan order.
type ResolvedParameter struct {
	ParameterID uuid.UUID
	Name        string
	Harga       int64
	KlasterName string
}
