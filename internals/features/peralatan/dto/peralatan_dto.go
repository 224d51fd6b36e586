// file: internals/features/peralatan/dto/peralatan_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	model "silabku_backend/internals/features/peralatan/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// parse YYYY-MM-DD → datatypes.Date
func parseDatePtr(s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, errors.New("tanggal harus berformat YYYY-MM-DD")
	}
	d := datatypes.Date(t)
	return &d, nil
}

/* =========================================================
   Requests
   ========================================================= */

type CreatePeralatanRequest struct {
	PeralatanName        string  `json:"peralatan_name" validate:"required,max=150"`
	PeralatanDescription *string `json:"peralatan_description" validate:"omitempty,max=500"`
	PeralatanStatus      *string `json:"peralatan_status" validate:"omitempty,max=20"`

	PeralatanNomorAlat         *string `json:"peralatan_nomor_alat" validate:"omitempty,max=64"`
	PeralatanMerk              *string `json:"peralatan_merk" validate:"omitempty,max=100"`
	PeralatanTipe              *string `json:"peralatan_tipe" validate:"omitempty,max=100"`
	PeralatanNomorSeri         *string `json:"peralatan_nomor_seri" validate:"omitempty,max=100"`
	PeralatanKodeBMN           *string `json:"peralatan_kode_bmn" validate:"omitempty,max=64"`
	PeralatanNUP               *string `json:"peralatan_nup" validate:"omitempty,max=64"`
	PeralatanLokasiPenyimpanan *string `json:"peralatan_lokasi_penyimpanan" validate:"omitempty,max=150"`
	PeralatanKoreksi           *string `json:"peralatan_koreksi" validate:"omitempty,max=100"`

	PeralatanWaktuPengadaan   *string `json:"peralatan_waktu_pengadaan" validate:"omitempty"`   // YYYY-MM-DD
	PeralatanTanggalKalibrasi *string `json:"peralatan_tanggal_kalibrasi" validate:"omitempty"` // YYYY-MM-DD
}

func (r *CreatePeralatanRequest) Normalize() {
	r.PeralatanName = strings.TrimSpace(r.PeralatanName)
	r.PeralatanDescription = trimPtr(r.PeralatanDescription)
	r.PeralatanNomorAlat = trimPtr(r.PeralatanNomorAlat)
	r.PeralatanMerk = trimPtr(r.PeralatanMerk)
	r.PeralatanTipe = trimPtr(r.PeralatanTipe)
	r.PeralatanNomorSeri = trimPtr(r.PeralatanNomorSeri)
	r.PeralatanKodeBMN = trimPtr(r.PeralatanKodeBMN)
	r.PeralatanNUP = trimPtr(r.PeralatanNUP)
	r.PeralatanLokasiPenyimpanan = trimPtr(r.PeralatanLokasiPenyimpanan)
	r.PeralatanKoreksi = trimPtr(r.PeralatanKoreksi)
	if r.PeralatanStatus != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.PeralatanStatus))
		r.PeralatanStatus = &v
	}
}

func (r *CreatePeralatanRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.PeralatanStatus != nil && !model.PeralatanStatus(*r.PeralatanStatus).Valid() {
		return errors.New("peralatan_status tidak dikenal")
	}
	return nil
}

func (r *CreatePeralatanRequest) ToModel() (*model.Peralatan, error) {
	pengadaan, err := parseDatePtr(r.PeralatanWaktuPengadaan)
	if err != nil {
		return nil, err
	}
	kalibrasi, err := parseDatePtr(r.PeralatanTanggalKalibrasi)
	if err != nil {
		return nil, err
	}

	status := model.StatusAvailable
	if r.PeralatanStatus != nil {
		status = model.PeralatanStatus(*r.PeralatanStatus)
	}

	return &model.Peralatan{
		PeralatanName:              r.PeralatanName,
		PeralatanDescription:       r.PeralatanDescription,
		PeralatanStatus:            status,
		PeralatanNomorAlat:         r.PeralatanNomorAlat,
		PeralatanMerk:              r.PeralatanMerk,
		PeralatanTipe:              r.PeralatanTipe,
		PeralatanNomorSeri:         r.PeralatanNomorSeri,
		PeralatanKodeBMN:           r.PeralatanKodeBMN,
		PeralatanNUP:               r.PeralatanNUP,
		PeralatanLokasiPenyimpanan: r.PeralatanLokasiPenyimpanan,
		PeralatanKoreksi:           r.PeralatanKoreksi,
		PeralatanWaktuPengadaan:    pengadaan,
		PeralatanTanggalKalibrasi:  kalibrasi,
	}, nil
}

type UpdatePeralatanRequest struct {
	PeralatanName        *string `json:"peralatan_name" validate:"omitempty,min=1,max=150"`
	PeralatanDescription *string `json:"peralatan_description" validate:"omitempty,max=500"`
	PeralatanStatus      *string `json:"peralatan_status" validate:"omitempty,max=20"`

	PeralatanNomorAlat         *string `json:"peralatan_nomor_alat" validate:"omitempty,max=64"`
	PeralatanMerk              *string `json:"peralatan_merk" validate:"omitempty,max=100"`
	PeralatanTipe              *string `json:"peralatan_tipe" validate:"omitempty,max=100"`
	PeralatanNomorSeri         *string `json:"peralatan_nomor_seri" validate:"omitempty,max=100"`
	PeralatanKodeBMN           *string `json:"peralatan_kode_bmn" validate:"omitempty,max=64"`
	PeralatanNUP               *string `json:"peralatan_nup" validate:"omitempty,max=64"`
	PeralatanLokasiPenyimpanan *string `json:"peralatan_lokasi_penyimpanan" validate:"omitempty,max=150"`
	PeralatanKoreksi           *string `json:"peralatan_koreksi" validate:"omitempty,max=100"`

	PeralatanWaktuPengadaan   *string `json:"peralatan_waktu_pengadaan" validate:"omitempty"`
	PeralatanTanggalKalibrasi *string `json:"peralatan_tanggal_kalibrasi" validate:"omitempty"`
}

func (r *UpdatePeralatanRequest) Normalize() {
	if r.PeralatanName != nil {
		v := strings.TrimSpace(*r.PeralatanName)
		r.PeralatanName = &v
	}
	r.PeralatanDescription = trimPtr(r.PeralatanDescription)
	r.PeralatanNomorAlat = trimPtr(r.PeralatanNomorAlat)
	r.PeralatanMerk = trimPtr(r.PeralatanMerk)
	r.PeralatanTipe = trimPtr(r.PeralatanTipe)
	r.PeralatanNomorSeri = trimPtr(r.PeralatanNomorSeri)
	r.PeralatanKodeBMN = trimPtr(r.PeralatanKodeBMN)
	r.PeralatanNUP = trimPtr(r.PeralatanNUP)
	r.PeralatanLokasiPenyimpanan = trimPtr(r.PeralatanLokasiPenyimpanan)
	r.PeralatanKoreksi = trimPtr(r.PeralatanKoreksi)
	if r.PeralatanStatus != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.PeralatanStatus))
		r.PeralatanStatus = &v
	}
}

func (r *UpdatePeralatanRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.PeralatanStatus != nil && !model.PeralatanStatus(*r.PeralatanStatus).Valid() {
		return errors.New("peralatan_status tidak dikenal")
	}
	return nil
}

func (r *UpdatePeralatanRequest) Apply(m *model.Peralatan) error {
	if r.PeralatanName != nil {
		m.PeralatanName = *r.PeralatanName
	}
	if r.PeralatanDescription != nil {
		m.PeralatanDescription = r.PeralatanDescription
	}
	if r.PeralatanStatus != nil {
		m.PeralatanStatus = model.PeralatanStatus(*r.PeralatanStatus)
	}
	if r.PeralatanNomorAlat != nil {
		m.PeralatanNomorAlat = r.PeralatanNomorAlat
	}
	if r.PeralatanMerk != nil {
		m.PeralatanMerk = r.PeralatanMerk
	}
	if r.PeralatanTipe != nil {
		m.PeralatanTipe = r.PeralatanTipe
	}
	if r.PeralatanNomorSeri != nil {
		m.PeralatanNomorSeri = r.PeralatanNomorSeri
	}
	if r.PeralatanKodeBMN != nil {
		m.PeralatanKodeBMN = r.PeralatanKodeBMN
	}
	if r.PeralatanNUP != nil {
		m.PeralatanNUP = r.PeralatanNUP
	}
	if r.PeralatanLokasiPenyimpanan != nil {
		m.PeralatanLokasiPenyimpanan = r.PeralatanLokasiPenyimpanan
	}
	if r.PeralatanKoreksi != nil {
		m.PeralatanKoreksi = r.PeralatanKoreksi
	}
	if r.PeralatanWaktuPengadaan != nil {
		d, err := parseDatePtr(r.PeralatanWaktuPengadaan)
		if err != nil {
			return err
		}
		m.PeralatanWaktuPengadaan = d
	}
	if r.PeralatanTanggalKalibrasi != nil {
		d, err := parseDatePtr(r.PeralatanTanggalKalibrasi)
		if err != nil {
			return err
		}
		m.PeralatanTanggalKalibrasi = d
	}
	return nil
}

/* =========================================================
   Response
   ========================================================= */

type PeralatanResponse struct {
	PeralatanID          string  `json:"peralatan_id"`
	PeralatanName        string  `json:"peralatan_name"`
	PeralatanDescription *string `json:"peralatan_description,omitempty"`
	PeralatanStatus      string  `json:"peralatan_status"`

	PeralatanNomorAlat         *string `json:"peralatan_nomor_alat,omitempty"`
	PeralatanMerk              *string `json:"peralatan_merk,omitempty"`
	PeralatanTipe              *string `json:"peralatan_tipe,omitempty"`
	PeralatanNomorSeri         *string `json:"peralatan_nomor_seri,omitempty"`
	PeralatanKodeBMN           *string `json:"peralatan_kode_bmn,omitempty"`
	PeralatanNUP               *string `json:"peralatan_nup,omitempty"`
	PeralatanLokasiPenyimpanan *string `json:"peralatan_lokasi_penyimpanan,omitempty"`
	PeralatanKoreksi           *string `json:"peralatan_koreksi,omitempty"`

	PeralatanWaktuPengadaan   *string `json:"peralatan_waktu_pengadaan,omitempty"`
	PeralatanTanggalKalibrasi *string `json:"peralatan_tanggal_kalibrasi,omitempty"`

	// Proyeksi: jumlah pengujian aktif (CONFIRMED/IN_PROGRESS) yang
	// parameternya membutuhkan alat ini. Bukan field tersimpan.
	ActivePengujianCount int64 `json:"active_pengujian_count"`

	PeralatanCreatedAt time.Time `json:"peralatan_created_at"`
	PeralatanUpdatedAt time.Time `json:"peralatan_updated_at"`
}

func formatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format("2006-01-02")
	return &s
}

func FromModel(m *model.Peralatan, activeCount int64) *PeralatanResponse {
	return &PeralatanResponse{
		PeralatanID:                m.PeralatanID.String(),
		PeralatanName:              m.PeralatanName,
		PeralatanDescription:       m.PeralatanDescription,
		PeralatanStatus:            string(m.PeralatanStatus),
		PeralatanNomorAlat:         m.PeralatanNomorAlat,
		PeralatanMerk:              m.PeralatanMerk,
		PeralatanTipe:              m.PeralatanTipe,
		PeralatanNomorSeri:         m.PeralatanNomorSeri,
		PeralatanKodeBMN:           m.PeralatanKodeBMN,
		PeralatanNUP:               m.PeralatanNUP,
		PeralatanLokasiPenyimpanan: m.PeralatanLokasiPenyimpanan,
		PeralatanKoreksi:           m.PeralatanKoreksi,
		PeralatanWaktuPengadaan:    formatDatePtr(m.PeralatanWaktuPengadaan),
		PeralatanTanggalKalibrasi:  formatDatePtr(m.PeralatanTanggalKalibrasi),
		ActivePengujianCount:       activeCount,
		PeralatanCreatedAt:         m.PeralatanCreatedAt,
		PeralatanUpdatedAt:         m.PeralatanUpdatedAt,
	}
}
