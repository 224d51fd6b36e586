// file: internals/features/peralatan/model/peralatan_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeralatanStatus_Valid(t *testing.T) {
	for _, s := range []PeralatanStatus{StatusAvailable, StatusInUse, StatusMaintenance, StatusDamaged} {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, PeralatanStatus("available").Valid())
	assert.False(t, PeralatanStatus("RUSAK").Valid())
}

func TestPeralatanStatus_AllowsNewAssignment(t *testing.T) {
	// AVAILABLE dan IN_USE boleh dipakai di asosiasi parameter baru;
	// MAINTENANCE dan DAMAGED tidak.
	assert.True(t, StatusAvailable.AllowsNewAssignment())
	assert.True(t, StatusInUse.AllowsNewAssignment())

	assert.False(t, StatusMaintenance.AllowsNewAssignment())
	assert.False(t, StatusDamaged.AllowsNewAssignment())
}
