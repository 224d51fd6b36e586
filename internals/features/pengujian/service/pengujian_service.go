// file: internals/features/pengujian/service/pengujian_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"silabku_backend/internals/events"
	model "silabku_backend/internals/features/pengujian/model"
	"silabku_backend/internals/features/pengujian/repository"
)

// Actor: identitas caller yang sudah terautentikasi — selalu eksplisit,
// core tidak pernah membaca state global.
type Actor struct {
	UserID  uuid.UUID
	IsStaff bool
}

type CreatePengujianInput struct {
	CustomerID    uuid.UUID
	Company       string
	ContactPerson string
	Phone         string
	Location      string
	Items         []QuoteItem
}

// QuoteResult: hasil agregasi biaya tanpa membuat order.
type QuoteResult struct {
	Lines      []QuoteLine
	PerKlaster map[string]int64
	GrandTotal int64
}

// PengujianEvent: payload event lifecycle yang dipublish ke broker.
type PengujianEvent struct {
	Type        string `json:"type"`
	PengujianID string `json:"pengujian_id"`
	Nomor       string `json:"nomor"`
	Status      string `json:"status"`
	Total       int64  `json:"total"`
	At          string `json:"at"`
}

const maxNomorRetries = 3

// PengujianService mengorkestrasi lifecycle order: validasi, snapshot harga,
// mesin status, dan publish event.
type PengujianService struct {
	repo      repository.IPengujianRepository
	publisher events.Publisher
	topic     string
}

func NewPengujianService(repo repository.IPengujianRepository, pub events.Publisher, topic string) *PengujianService {
	return &PengujianService{
		repo:      repo,
		publisher: pub,
		topic:     topic,
	}
}

// Create membuat pengujian baru berstatus PENDING. Harga & nama parameter
// di-snapshot di dalam transaksi tulis; nomor yang tabrakan di-retry
// internal, tidak pernah bocor sebagai error user.
func (s *PengujianService) Create(ctx context.Context, in CreatePengujianInput) (*model.Pengujian, error) {
	if len(in.Items) == 0 {
		return nil, ErrItemsEmpty
	}
	ids := make([]uuid.UUID, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, ErrQuantityInvalid
		}
		ids = append(ids, it.ParameterID)
	}

	var lastErr error
	for attempt := 0; attempt < maxNomorRetries; attempt++ {
		p := &model.Pengujian{
			PengujianNomor:         GenerateNomor(time.Now()),
			PengujianCustomerID:    in.CustomerID,
			PengujianCompany:       in.Company,
			PengujianContactPerson: in.ContactPerson,
			PengujianPhone:         in.Phone,
			PengujianLocation:      in.Location,
			PengujianStatus:        model.StatusPending,
		}

		err := s.repo.CreateWithQuote(ctx, p, ids, func(resolved map[uuid.UUID]model.ResolvedParameter) error {
			lines, _, grand, err := ComputeTotals(resolved, in.Items)
			if err != nil {
				return err
			}
			for _, l := range lines {
				p.PengujianItems = append(p.PengujianItems, model.PengujianItem{
					PengujianItemParameterID:   l.ParameterID,
					PengujianItemParameterName: l.ParameterName,
					PengujianItemUnitPrice:     l.UnitPrice,
					PengujianItemQuantity:      l.Quantity,
					PengujianItemSubtotal:      l.Subtotal,
				})
			}
			p.PengujianTotal = grand
			return nil
		})
		if err == nil {
			s.publish("pengujian.created", p)
			return p, nil
		}
		if repository.IsDuplicateNomor(err) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("gagal generate nomor pengujian unik: %w", lastErr)
}

// Quote menghitung pratinjau biaya dari katalog saat ini (tanpa menulis apa pun).
func (s *PengujianService) Quote(ctx context.Context, items []QuoteItem) (*QuoteResult, error) {
	if len(items) == 0 {
		return nil, ErrItemsEmpty
	}
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, ErrQuantityInvalid
		}
		ids = append(ids, it.ParameterID)
	}

	resolved, err := s.repo.ResolveParameters(ctx, ids)
	if err != nil {
		return nil, err
	}
	lines, perKlaster, grand, err := ComputeTotals(resolved, items)
	if err != nil {
		return nil, err
	}
	return &QuoteResult{Lines: lines, PerKlaster: perKlaster, GrandTotal: grand}, nil
}

// LineItem menghitung satu baris harga (lookup katalog saat ini).
func (s *PengujianService) LineItem(ctx context.Context, parameterID uuid.UUID, quantity int) (*QuoteLine, error) {
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}
	resolved, err := s.repo.ResolveParameters(ctx, []uuid.UUID{parameterID})
	if err != nil {
		return nil, err
	}
	p, ok := resolved[parameterID]
	if !ok {
		return nil, ErrParameterNotFound
	}
	line := ComputeLineItem(p, quantity)
	return &line, nil
}

// Transition memindahkan order mengikuti tabel transisi. CANCELLED boleh oleh
// staff atau customer pemilik; transisi lainnya staff-only. Edge di luar
// tabel → ErrInvalidTransition.
func (s *PengujianService) Transition(ctx context.Context, id uuid.UUID, target model.PengujianStatus, actor Actor) (*model.Pengujian, error) {
	if !target.Valid() {
		return nil, ErrUnknownStatus
	}

	p, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if target == model.StatusCancelled {
		if !actor.IsStaff && actor.UserID != p.PengujianCustomerID {
			return nil, ErrForbidden
		}
	} else if !actor.IsStaff {
		return nil, ErrForbidden
	}

	if !p.PengujianStatus.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, p.PengujianStatus, target)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}
	s.publish("pengujian.status_changed", updated)
	return updated, nil
}

// Delete membatalkan lalu soft-delete — hanya selama order masih bisa dibatalkan.
func (s *PengujianService) Delete(ctx context.Context, id uuid.UUID, actor Actor) error {
	p, err := s.findExisting(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsStaff && actor.UserID != p.PengujianCustomerID {
		return ErrForbidden
	}
	if !p.PengujianStatus.Cancellable() {
		return ErrNotCancellable
	}
	cancelled, err := s.repo.UpdateStatus(ctx, id, model.StatusCancelled)
	if err != nil {
		return err
	}
	s.publish("pengujian.status_changed", cancelled)
	return s.repo.SoftDelete(ctx, id)
}

func (s *PengujianService) GetByID(ctx context.Context, id uuid.UUID, actor Actor) (*model.Pengujian, error) {
	p, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff && actor.UserID != p.PengujianCustomerID {
		return nil, ErrForbidden
	}
	return p, nil
}

// List: staff melihat semua (opsional filter status), customer hanya miliknya.
func (s *PengujianService) List(ctx context.Context, actor Actor, status *model.PengujianStatus, offset, limit int) ([]model.Pengujian, int64, error) {
	f := repository.ListFilter{Status: status}
	if !actor.IsStaff {
		cid := actor.UserID
		f.CustomerID = &cid
	}
	return s.repo.List(ctx, f, offset, limit)
}

func (s *PengujianService) findExisting(ctx context.Context, id uuid.UUID) (*model.Pengujian, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPengujianNotFound
		}
		return nil, err
	}
	return p, nil
}

// publish: kegagalan kirim event tidak menggagalkan operasi — order sudah
// tersimpan di DB.
func (s *PengujianService) publish(eventType string, p *model.Pengujian) {
	if s.publisher == nil {
		return
	}
	ev := PengujianEvent{
		Type:        eventType,
		PengujianID: p.PengujianID.String(),
		Nomor:       p.PengujianNomor,
		Status:      string(p.PengujianStatus),
		Total:       p.PengujianTotal,
		At:          time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.Publish(s.topic, ev.PengujianID, ev); err != nil {
		log.Printf("publish event %s gagal: %v", eventType, err)
	}
}
