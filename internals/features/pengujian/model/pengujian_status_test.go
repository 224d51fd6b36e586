// file: internals/features/pengujian/model/pengujian_status_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tabel lengkap transisi status: setiap pasangan (from, to) dicek eksplisit
// supaya edge liar tidak lolos diam-diam.
func TestPengujianStatus_CanTransitionTo(t *testing.T) {
	all := []PengujianStatus{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled}

	allowed := map[PengujianStatus]map[PengujianStatus]bool{
		StatusPending:    {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed:  {StatusInProgress: true, StatusCancelled: true},
		StatusInProgress: {StatusCompleted: true, StatusCancelled: true},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransitionTo(to)
			want := allowed[from][to]
			assert.Equal(t, want, got, "transisi %s → %s", from, to)
		}
	}
}

func TestPengujianStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())

	// status tak dikenal bukan terminal, dia invalid
	assert.False(t, PengujianStatus("NGACO").IsTerminal())
}

func TestPengujianStatus_Cancellable(t *testing.T) {
	assert.True(t, StatusPending.Cancellable())
	assert.True(t, StatusConfirmed.Cancellable())
	assert.True(t, StatusInProgress.Cancellable())

	assert.False(t, StatusCompleted.Cancellable())
	assert.False(t, StatusCancelled.Cancellable())
}

func TestPengujianStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, PengujianStatus("pending").Valid()) // case-sensitive
	assert.False(t, PengujianStatus("").Valid())
}

func TestActiveStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]PengujianStatus{StatusConfirmed, StatusInProgress},
		ActiveStatuses())
}
