// file: internals/features/pengujian/service/nomor.go
package service

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const nomorPrefix = "SLB"

// GenerateNomor membuat nomor pengujian "SLB-YYYYMMDD-XXXXXXXX".
// Token acak 32-bit; tabrakan ditangani retry internal saat insert
// (unique index di DB), bukan error ke user.
func GenerateNomor(now time.Time) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand hampir mustahil gagal; fallback ke uuid
		u := uuid.New()
		copy(b[:], u[:4])
	}
	return fmt.Sprintf("%s-%s-%08X", nomorPrefix, now.Format("20060102"), binary.BigEndian.Uint32(b[:]))
}
