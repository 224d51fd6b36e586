// file: internals/features/pengujian/service/nomor_test.go
package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNomor_Format(t *testing.T) {
	now := time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC)

	nomor := GenerateNomor(now)

	assert.Regexp(t, regexp.MustCompile(`^SLB-20260317-[0-9A-F]{8}$`), nomor)
}

func TestGenerateNomor_RandomSuffix(t *testing.T) {
	now := time.Now()

	// 32-bit acak: 100 nomor di tanggal yang sama praktis tidak boleh
	// semuanya identik.
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[GenerateNomor(now)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
