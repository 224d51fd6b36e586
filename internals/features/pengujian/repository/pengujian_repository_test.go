// file: internals/features/pengujian/repository/pengujian_repository_test.go
package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateNomor(t *testing.T) {
	assert.True(t, IsDuplicateNomor(errors.New(
		`ERROR: duplicate key value violates unique constraint "uq_pengujian_nomor" (SQLSTATE 23505)`)))
	assert.True(t, IsDuplicateNomor(errors.New(
		`duplicate key value: pengujian_nomor`)))

	// unique violation milik constraint lain bukan alasan retry nomor
	assert.False(t, IsDuplicateNomor(errors.New(
		`ERROR: duplicate key value violates unique constraint "uq_klaster_name" (SQLSTATE 23505)`)))
	assert.False(t, IsDuplicateNomor(errors.New("connection refused")))
	assert.False(t, IsDuplicateNomor(nil))
}
