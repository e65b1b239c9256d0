package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/application/usecase"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/infrastructure/memory"
)

func paymentFixture(t *testing.T) (*usecase.PaymentUseCase, *entity.Worker, *entity.Vendor) {
	t.Helper()
	workers := memory.NewWorkerRepository()
	vendors := memory.NewVendorRepository()
	payments := memory.NewPaymentRepository()

	worker := &entity.Worker{ID: uuid.New().String(), Name: "Ramesh", CreatedAt: time.Now()}
	require.NoError(t, workers.Create(worker))
	vendor := &entity.Vendor{ID: uuid.New().String(), Name: "Shree Timbers", CreatedAt: time.Now()}
	require.NoError(t, vendors.Create(vendor))

	return usecase.NewPaymentUseCase(payments, workers, vendors), worker, vendor
}

func TestRecordPaymentToWorker(t *testing.T) {
	uc, worker, _ := paymentFixture(t)

	out, err := uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeWorker,
		PayeeID:   worker.ID,
		Amount:    decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	// Exactly one payee reference is set, matching the type.
	require.NotNil(t, out.WorkerID)
	assert.Equal(t, worker.ID, *out.WorkerID)
	assert.Nil(t, out.VendorID)
	assert.Equal(t, "admin-1", out.PaidBy)
	assert.Equal(t, "₹5,000.00", out.AmountINR)
}

func TestRecordPaymentToVendor(t *testing.T) {
	uc, _, vendor := paymentFixture(t)

	out, err := uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeVendor,
		PayeeID:   vendor.ID,
		Amount:    decimal.RequireFromString("12500.50"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.VendorID)
	assert.Equal(t, vendor.ID, *out.VendorID)
	assert.Nil(t, out.WorkerID)
}

func TestRecordPaymentRejectsBadInput(t *testing.T) {
	uc, worker, _ := paymentFixture(t)

	_, err := uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeWorker, PayeeID: worker.ID, Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeWorker, PayeeID: worker.ID, Amount: decimal.NewFromInt(-100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: "contractor", PayeeID: worker.ID, Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeWorker, PayeeID: "", Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordPaymentUnknownPayee(t *testing.T) {
	uc, _, _ := paymentFixture(t)

	_, err := uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeWorker, PayeeID: uuid.New().String(), Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeVendor, PayeeID: uuid.New().String(), Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPaymentListReflectsRecords(t *testing.T) {
	uc, worker, vendor := paymentFixture(t)

	_, err := uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeWorker, PayeeID: worker.ID, Amount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	_, err = uc.Record("admin-1", dto.RecordPaymentRequest{
		PayeeType: entity.PayeeTypeVendor, PayeeID: vendor.ID, Amount: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}
