package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

// PurchaseUseCase records and lists vendor purchases made for a customer's project.
type PurchaseUseCase struct {
	repo         repository.VendorPurchaseRepository
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
}

// NewPurchaseUseCase builds the use case.
func NewPurchaseUseCase(
	repo repository.VendorPurchaseRepository,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo, customerRepo: customerRepo, vendorRepo: vendorRepo}
}

// Record validates and persists a vendor purchase. The total is always computed
// here as quantity x rate; a client-supplied total would be ignored.
func (uc *PurchaseUseCase) Record(purchasedBy string, in dto.RecordPurchaseRequest) (*dto.VendorPurchaseResponse, error) {
	if in.CustomerID == "" || in.VendorID == "" || in.ItemDescription == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.Rate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	vendor, err := uc.vendorRepo.GetByID(in.VendorID)
	if err != nil {
		return nil, err
	}
	if customer == nil || vendor == nil {
		return nil, domain.ErrNotFound
	}

	qty := decimal.NewFromInt(int64(in.Quantity))
	purchase := &entity.VendorPurchase{
		ID:              uuid.New().String(),
		CustomerID:      in.CustomerID,
		VendorID:        in.VendorID,
		ItemDescription: in.ItemDescription,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		Rate:            in.Rate,
		TotalAmount:     qty.Mul(in.Rate),
		PurchasedBy:     purchasedBy,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(purchase); err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// List returns all vendor purchases.
func (uc *PurchaseUseCase) List() (*dto.VendorPurchaseListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorPurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.VendorPurchaseListResponse{Items: items}, nil
}

func toPurchaseResponse(p *entity.VendorPurchase) *dto.VendorPurchaseResponse {
	if p == nil {
		return nil
	}
	return &dto.VendorPurchaseResponse{
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		VendorID:        p.VendorID,
		ItemDescription: p.ItemDescription,
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		Rate:            p.Rate,
		TotalAmount:     p.TotalAmount,
		PurchasedBy:     p.PurchasedBy,
		CreatedAt:       p.CreatedAt,
	}
}
