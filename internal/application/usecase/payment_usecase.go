package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
	"github.com/interiorhq/interman-api/pkg/currency"
)

// PaymentUseCase records and lists payments to workers and vendors.
type PaymentUseCase struct {
	repo       repository.PaymentRepository
	workerRepo repository.WorkerRepository
	vendorRepo repository.VendorRepository
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(
	repo repository.PaymentRepository,
	workerRepo repository.WorkerRepository,
	vendorRepo repository.VendorRepository,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, workerRepo: workerRepo, vendorRepo: vendorRepo}
}

// Record validates and persists a payment. Invariant: exactly one of worker_id /
// vendor_id is set, matching payee_type; the payee must exist; amount is positive.
// Nothing is written when validation fails.
func (uc *PaymentUseCase) Record(paidBy string, in dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if in.PayeeID == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	payment := &entity.Payment{
		ID:         uuid.New().String(),
		PayeeType:  in.PayeeType,
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Notes:      in.Notes,
		PaidBy:     paidBy,
		CreatedAt:  time.Now(),
	}

	switch in.PayeeType {
	case entity.PayeeTypeWorker:
		worker, err := uc.workerRepo.GetByID(in.PayeeID)
		if err != nil {
			return nil, err
		}
		if worker == nil {
			return nil, domain.ErrNotFound
		}
		payment.WorkerID = &in.PayeeID
	case entity.PayeeTypeVendor:
		vendor, err := uc.vendorRepo.GetByID(in.PayeeID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
		payment.VendorID = &in.PayeeID
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// List returns all payments.
func (uc *PaymentUseCase) List() (*dto.PaymentListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{Items: items}, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:         p.ID,
		PayeeType:  p.PayeeType,
		WorkerID:   p.WorkerID,
		VendorID:   p.VendorID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		AmountINR:  currency.FormatINR(p.Amount),
		Notes:      p.Notes,
		PaidBy:     p.PaidBy,
		CreatedAt:  p.CreatedAt,
	}
}
