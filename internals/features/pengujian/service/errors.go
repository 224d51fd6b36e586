// file: internals/features/pengujian/service/errors.go
package service

import "errors"

// Error sentinel untuk layer pemanggil (controller memetakan ke
// VALIDATION_ERROR / NOT_FOUND / INVALID_TRANSITION / CONFLICT / FORBIDDEN).
var (
	ErrItemsEmpty        = errors.New("pengujian harus memiliki minimal satu item")
	ErrQuantityInvalid   = errors.New("quantity item minimal 1")
	ErrParameterNotFound = errors.New("parameter tidak ditemukan")
	ErrPengujianNotFound = errors.New("pengujian tidak ditemukan")
	ErrUnknownStatus     = errors.New("status pengujian tidak dikenal")
	ErrInvalidTransition = errors.New("transisi status tidak diizinkan")
	ErrNotCancellable    = errors.New("pengujian sudah tidak bisa dibatalkan")
	ErrForbidden         = errors.New("tidak berhak mengakses pengujian ini")
)
