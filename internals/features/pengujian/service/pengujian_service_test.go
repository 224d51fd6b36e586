// file: internals/features/pengujian/service/pengujian_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	model "silabku_backend/internals/features/pengujian/model"
	"silabku_backend/internals/features/pengujian/repository"
)

/* =========================
   Mocks
   ========================= */

// MockPengujianRepository: mock repository supaya service bisa diuji tanpa DB.
type MockPengujianRepository struct {
	mock.Mock
	resolved map[uuid.UUID]model.ResolvedParameter
}

func (m *MockPengujianRepository) ResolveParameters(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.ResolvedParameter, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]model.ResolvedParameter), args.Error(1)
}

// CreateWithQuote meniru kontrak repository: kalau insert "berhasil",
// callback build dipanggil dengan hasil resolve — persis seperti implementasi
// GORM-nya di dalam transaksi.
func (m *MockPengujianRepository) CreateWithQuote(ctx context.Context, p *model.Pengujian, parameterIDs []uuid.UUID,
	build func(resolved map[uuid.UUID]model.ResolvedParameter) error) error {

	args := m.Called(ctx, p, parameterIDs)
	if err := args.Error(0); err != nil {
		return err
	}
	return build(m.resolved)
}

func (m *MockPengujianRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Pengujian, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pengujian), args.Error(1)
}

func (m *MockPengujianRepository) List(ctx context.Context, f repository.ListFilter, offset, limit int) ([]model.Pengujian, int64, error) {
	args := m.Called(ctx, f, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Pengujian), args.Get(1).(int64), args.Error(2)
}

func (m *MockPengujianRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.PengujianStatus) (*model.Pengujian, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pengujian), args.Error(1)
}

func (m *MockPengujianRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPublisher merekam event yang dipublish service.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(topic, key string, payload any) error {
	args := m.Called(topic, key, payload)
	return args.Error(0)
}

func (m *MockPublisher) Close() {}

/* =========================
   Fixtures
   ========================= */

var dupNomorErr = errors.New(`ERROR: duplicate key value violates unique constraint "uq_pengujian_nomor" (SQLSTATE 23505)`)

func newServiceUnderTest(resolved map[uuid.UUID]model.ResolvedParameter) (*PengujianService, *MockPengujianRepository, *MockPublisher) {
	repo := &MockPengujianRepository{resolved: resolved}
	pub := new(MockPublisher)
	svc := NewPengujianService(repo, pub, "silab.pengujian")
	return svc, repo, pub
}

func testInput(items []QuoteItem) CreatePengujianInput {
	return CreatePengujianInput{
		CustomerID:    uuid.New(),
		Company:       "PT Tirta Jaya",
		ContactPerson: "Budi",
		Phone:         "081234567890",
		Location:      "Kawasan Industri Cikarang",
		Items:         items,
	}
}

/* =========================
   Create
   ========================= */

func TestCreate_Success_SnapshotsPriceAndTotal(t *testing.T) {
	resolved, ph, logam, _ := resolvedFixture()
	svc, repo, pub := newServiceUnderTest(resolved)

	repo.On("CreateWithQuote", mock.Anything, mock.AnythingOfType("*model.Pengujian"), mock.Anything).Return(nil)
	pub.On("Publish", "silab.pengujian", mock.Anything, mock.Anything).Return(nil)

	in := testInput([]QuoteItem{
		{ParameterID: ph, Quantity: 2},
		{ParameterID: logam, Quantity: 1},
	})
	p, err := svc.Create(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, p.PengujianStatus)
	assert.NotEmpty(t, p.PengujianNomor)
	assert.Equal(t, in.CustomerID, p.PengujianCustomerID)

	// snapshot: nama + harga satuan beku di item, subtotal = harga × qty
	assert.Len(t, p.PengujianItems, 2)
	assert.Equal(t, "pH", p.PengujianItems[0].PengujianItemParameterName)
	assert.Equal(t, int64(250000), p.PengujianItems[0].PengujianItemUnitPrice)
	assert.Equal(t, int64(500000), p.PengujianItems[0].PengujianItemSubtotal)
	assert.Equal(t, int64(850000), p.PengujianTotal)

	pub.AssertCalled(t, "Publish", "silab.pengujian", p.PengujianID.String(), mock.Anything)
}

func TestCreate_SnapshotSurvivesCatalogPriceChange(t *testing.T) {
	resolved, ph, _, _ := resolvedFixture()
	svc, repo, pub := newServiceUnderTest(resolved)

	repo.On("CreateWithQuote", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), testInput([]QuoteItem{{ParameterID: ph, Quantity: 2}}))
	assert.NoError(t, err)

	// katalog berubah setelah order dibuat — snapshot order tidak ikut bergerak
	bumped := resolved[ph]
	bumped.Harga = 999999
	resolved[ph] = bumped

	assert.Equal(t, int64(250000), p.PengujianItems[0].PengujianItemUnitPrice)
	assert.Equal(t, int64(500000), p.PengujianItems[0].PengujianItemSubtotal)
	assert.Equal(t, int64(500000), p.PengujianTotal)
}

func TestCreate_EmptyItems(t *testing.T) {
	svc, _, _ := newServiceUnderTest(nil)

	_, err := svc.Create(context.Background(), testInput(nil))
	assert.ErrorIs(t, err, ErrItemsEmpty)
}

func TestCreate_QuantityBelowOne(t *testing.T) {
	resolved, ph, _, _ := resolvedFixture()
	svc, _, _ := newServiceUnderTest(resolved)

	_, err := svc.Create(context.Background(), testInput([]QuoteItem{{ParameterID: ph, Quantity: 0}}))
	assert.ErrorIs(t, err, ErrQuantityInvalid)
}

func TestCreate_UnknownParameter(t *testing.T) {
	resolved, _, _, _ := resolvedFixture()
	svc, repo, _ := newServiceUnderTest(resolved)

	repo.On("CreateWithQuote", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), testInput([]QuoteItem{{ParameterID: uuid.New(), Quantity: 1}}))
	assert.ErrorIs(t, err, ErrParameterNotFound)
}

func TestCreate_RetriesOnNomorCollision(t *testing.T) {
	resolved, ph, _, _ := resolvedFixture()
	svc, repo, pub := newServiceUnderTest(resolved)

	// tabrakan sekali, sukses di percobaan kedua — user tidak melihat error
	repo.On("CreateWithQuote", mock.Anything, mock.Anything, mock.Anything).Return(dupNomorErr).Once()
	repo.On("CreateWithQuote", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), testInput([]QuoteItem{{ParameterID: ph, Quantity: 1}}))

	assert.NoError(t, err)
	assert.NotNil(t, p)
	repo.AssertNumberOfCalls(t, "CreateWithQuote", 2)
}

func TestCreate_GivesUpAfterRepeatedCollisions(t *testing.T) {
	resolved, ph, _, _ := resolvedFixture()
	svc, repo, _ := newServiceUnderTest(resolved)

	repo.On("CreateWithQuote", mock.Anything, mock.Anything, mock.Anything).Return(dupNomorErr)

	_, err := svc.Create(context.Background(), testInput([]QuoteItem{{ParameterID: ph, Quantity: 1}}))

	assert.Error(t, err)
	repo.AssertNumberOfCalls(t, "CreateWithQuote", maxNomorRetries)
}

/* =========================
   Quote
   ========================= */

func TestQuote_Success(t *testing.T) {
	resolved, ph, _, kebisingan := resolvedFixture()
	svc, repo, _ := newServiceUnderTest(resolved)

	repo.On("ResolveParameters", mock.Anything, mock.Anything).Return(resolved, nil)

	q, err := svc.Quote(context.Background(), []QuoteItem{
		{ParameterID: ph, Quantity: 2},
		{ParameterID: kebisingan, Quantity: 1},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(650000), q.GrandTotal)
	assert.Equal(t, int64(500000), q.PerKlaster["Air"])
	assert.Equal(t, int64(150000), q.PerKlaster["Udara"])
}

func TestLineItem_UnknownParameter(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	repo.On("ResolveParameters", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]model.ResolvedParameter{}, nil)

	_, err := svc.LineItem(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, ErrParameterNotFound)
}

/* =========================
   Transition
   ========================= */

func pengujianWith(status model.PengujianStatus, customerID uuid.UUID) *model.Pengujian {
	return &model.Pengujian{
		PengujianID:         uuid.New(),
		PengujianNomor:      "SLB-20260301-00ABCDEF",
		PengujianCustomerID: customerID,
		PengujianStatus:     status,
	}
}

func TestTransition_StaffConfirmsPending(t *testing.T) {
	svc, repo, pub := newServiceUnderTest(nil)

	p := pengujianWith(model.StatusPending, uuid.New())
	confirmed := *p
	confirmed.PengujianStatus = model.StatusConfirmed

	repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)
	repo.On("UpdateStatus", mock.Anything, p.PengujianID, model.StatusConfirmed).Return(&confirmed, nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Transition(context.Background(), p.PengujianID, model.StatusConfirmed,
		Actor{UserID: uuid.New(), IsStaff: true})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, got.PengujianStatus)
	pub.AssertCalled(t, "Publish", "silab.pengujian", p.PengujianID.String(), mock.Anything)
}

func TestTransition_SkippingStateRejected(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	p := pengujianWith(model.StatusPending, uuid.New())
	repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)

	_, err := svc.Transition(context.Background(), p.PengujianID, model.StatusCompleted,
		Actor{UserID: uuid.New(), IsStaff: true})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_TerminalIsFrozen(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	for _, terminal := range []model.PengujianStatus{model.StatusCompleted, model.StatusCancelled} {
		p := pengujianWith(terminal, uuid.New())
		repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)

		_, err := svc.Transition(context.Background(), p.PengujianID, model.StatusInProgress,
			Actor{UserID: uuid.New(), IsStaff: true})
		assert.ErrorIs(t, err, ErrInvalidTransition, "dari %s", terminal)
	}
}

func TestTransition_UnknownTargetStatus(t *testing.T) {
	svc, _, _ := newServiceUnderTest(nil)

	_, err := svc.Transition(context.Background(), uuid.New(), model.PengujianStatus("NGASAL"),
		Actor{UserID: uuid.New(), IsStaff: true})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTransition_NotFound(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Transition(context.Background(), id, model.StatusConfirmed,
		Actor{UserID: uuid.New(), IsStaff: true})
	assert.ErrorIs(t, err, ErrPengujianNotFound)
}

func TestTransition_OwnerMayCancel(t *testing.T) {
	svc, repo, pub := newServiceUnderTest(nil)

	owner := uuid.New()
	p := pengujianWith(model.StatusConfirmed, owner)
	cancelled := *p
	cancelled.PengujianStatus = model.StatusCancelled

	repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)
	repo.On("UpdateStatus", mock.Anything, p.PengujianID, model.StatusCancelled).Return(&cancelled, nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Transition(context.Background(), p.PengujianID, model.StatusCancelled,
		Actor{UserID: owner, IsStaff: false})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, got.PengujianStatus)
}

func TestTransition_StrangerMayNotCancel(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	p := pengujianWith(model.StatusPending, uuid.New())
	repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)

	_, err := svc.Transition(context.Background(), p.PengujianID, model.StatusCancelled,
		Actor{UserID: uuid.New(), IsStaff: false})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTransition_CustomerMayNotConfirm(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	owner := uuid.New()
	p := pengujianWith(model.StatusPending, owner)
	repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)

	// pemilik sekalipun tidak boleh menggerakkan status maju
	_, err := svc.Transition(context.Background(), p.PengujianID, model.StatusConfirmed,
		Actor{UserID: owner, IsStaff: false})
	assert.ErrorIs(t, err, ErrForbidden)
}

/* =========================
   Delete
   ========================= */

func TestDelete_CancelsThenSoftDeletes(t *testing.T) {
	svc, repo, pub := newServiceUnderTest(nil)

	owner := uuid.New()
	p := pengujianWith(model.StatusPending, owner)
	cancelled := *p
	cancelled.PengujianStatus = model.StatusCancelled

	repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)
	repo.On("UpdateStatus", mock.Anything, p.PengujianID, model.StatusCancelled).Return(&cancelled, nil)
	repo.On("SoftDelete", mock.Anything, p.PengujianID).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := svc.Delete(context.Background(), p.PengujianID, Actor{UserID: owner, IsStaff: false})

	assert.NoError(t, err)
	repo.AssertCalled(t, "SoftDelete", mock.Anything, p.PengujianID)
}

func TestDelete_CompletedNotCancellable(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	p := pengujianWith(model.StatusCompleted, uuid.New())
	repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)

	err := svc.Delete(context.Background(), p.PengujianID, Actor{UserID: uuid.New(), IsStaff: true})

	assert.ErrorIs(t, err, ErrNotCancellable)
	repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

/* =========================
   List & GetByID
   ========================= */

func TestList_CustomerScopedToOwnOrders(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	me := uuid.New()
	repo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ListFilter) bool {
		return f.CustomerID != nil && *f.CustomerID == me
	}), 0, 20).Return([]model.Pengujian{}, int64(0), nil)

	_, _, err := svc.List(context.Background(), Actor{UserID: me, IsStaff: false}, nil, 0, 20)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestList_StaffSeesEverything(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ListFilter) bool {
		return f.CustomerID == nil
	}), 0, 20).Return([]model.Pengujian{}, int64(0), nil)

	_, _, err := svc.List(context.Background(), Actor{UserID: uuid.New(), IsStaff: true}, nil, 0, 20)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetByID_StrangerForbidden(t *testing.T) {
	svc, repo, _ := newServiceUnderTest(nil)

	p := pengujianWith(model.StatusPending, uuid.New())
	repo.On("FindByID", mock.Anything, p.PengujianID).Return(p, nil)

	_, err := svc.GetByID(context.Background(), p.PengujianID, Actor{UserID: uuid.New(), IsStaff: false})
	assert.ErrorIs(t, err, ErrForbidden)
}
