// file: internals/features/pengujian/model/pengujian_status.go
package model

type PengujianStatus string

const (
	StatusPending    PengujianStatus = "PENDING"
	StatusConfirmed  PengujianStatus = "CONFIRMED"
	StatusInProgress PengujianStatus = "IN_PROGRESS"
	StatusCompleted  PengujianStatus = "COMPLETED"
	StatusCancelled  PengujianStatus = "CANCELLED"
)

func (s PengujianStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions: tabel transisi lifecycle. Edge di luar tabel selalu ditolak;
// COMPLETED dan CANCELLED terminal.
var transitions = map[PengujianStatus][]PengujianStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s PengujianStatus) CanTransitionTo(target PengujianStatus) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s PengujianStatus) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// Cancellable: customer pemilik masih boleh membatalkan selama belum selesai.
func (s PengujianStatus) Cancellable() bool {
	return s.CanTransitionTo(StatusCancelled)
}

// ActiveStatuses: status yang dihitung sebagai "alat sedang terpakai" pada
// proyeksi ketersediaan peralatan.
func ActiveStatuses() []PengujianStatus {
	return []PengujianStatus{StatusConfirmed, StatusInProgress}
}
