package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rmussard/easyloc-api/internal/ident"
	"github.com/rmussard/easyloc-api/internal/model"
)

type ContractService struct {
	contracts ContractStore
	billings  BillingReferences
	customers DocumentChecker
	vehicles  DocumentChecker
	now       func() time.Time
}

func NewContractService(contracts ContractStore, billings BillingReferences, customers, vehicles DocumentChecker) *ContractService {
	return &ContractService{
		contracts: contracts,
		billings:  billings,
		customers: customers,
		vehicles:  vehicles,
		now:       time.Now,
	}
}

type CreateContractInput struct {
	VehicleID            string
	CustomerID           string
	SignDatetime         *time.Time
	LocBeginDatetime     time.Time
	LocEndDatetime       time.Time
	LocReturningDatetime *time.Time
	Price                float64
}

func (s *ContractService) List(ctx context.Context) ([]model.ContractView, error) {
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(contracts), nil
}

func (s *ContractService) Get(ctx context.Context, id string) (*model.ContractView, error) {
	contractID, err := ident.IntegerID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	contract, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contract with id:%d", ErrNotFound, contractID)
		}
		return nil, err
	}
	view := model.NewContractView(*contract, s.now())
	return &view, nil
}

func (s *ContractService) Create(ctx context.Context, input CreateContractInput) (*model.ContractView, error) {
	if err := s.checkVehicle(ctx, input.VehicleID); err != nil {
		return nil, err
	}
	if err := s.checkCustomer(ctx, input.CustomerID); err != nil {
		return nil, err
	}
	if input.LocBeginDatetime.IsZero() || input.LocEndDatetime.IsZero() {
		return nil, fmt.Errorf("%w: loc_begin_datetime and loc_end_datetime are required", ErrInvalidInput)
	}
	if input.LocEndDatetime.Before(input.LocBeginDatetime) {
		return nil, fmt.Errorf("%w: loc_end_datetime must not precede loc_begin_datetime", ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	sign := s.now()
	if input.SignDatetime != nil {
		sign = *input.SignDatetime
	}

	contract, err := s.contracts.Insert(ctx, model.Contract{
		VehicleID:            input.VehicleID,
		CustomerID:           input.CustomerID,
		SignDatetime:         sign,
		LocBeginDatetime:     input.LocBeginDatetime,
		LocEndDatetime:       input.LocEndDatetime,
		LocReturningDatetime: input.LocReturningDatetime,
		Price:                input.Price,
	})
	if err != nil {
		return nil, err
	}
	view := model.NewContractView(*contract, s.now())
	return &view, nil
}

func (s *ContractService) Update(ctx context.Context, id string, patch map[string]interface{}) (*model.ContractView, error) {
	contractID, err := ident.IntegerID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	fields, err := validatePatch(patch, map[string]fieldKind{
		"vehicle_id":             stringField,
		"customer_id":            stringField,
		"sign_datetime":          datetimeField,
		"loc_begin_datetime":     datetimeField,
		"loc_end_datetime":       datetimeField,
		"loc_returning_datetime": nullableDatetimeField,
		"price":                  floatField,
	})
	if err != nil {
		return nil, err
	}

	// Foreign keys in the payload are re-validated against the document
	// store right before the write.
	if vehicleID, ok := fields["vehicle_id"].(string); ok {
		if err := s.checkVehicle(ctx, vehicleID); err != nil {
			return nil, err
		}
	}
	if customerID, ok := fields["customer_id"].(string); ok {
		if err := s.checkCustomer(ctx, customerID); err != nil {
			return nil, err
		}
	}
	if price, ok := fields["price"].(float64); ok && price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	contract, err := s.contracts.UpdateByID(ctx, contractID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contract with id:%d", ErrNotFound, contractID)
		}
		return nil, err
	}
	view := model.NewContractView(*contract, s.now())
	return &view, nil
}

// Delete removes a contract unless billings still reference it. The guard
// mirrors the customer/vehicle one so no store ends up with dangling
// references in either direction.
func (s *ContractService) Delete(ctx context.Context, id string) (*model.ContractView, error) {
	contractID, err := ident.IntegerID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	referenced, err := s.billings.ExistsByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if referenced {
		return nil, fmt.Errorf("%w: contract with id:%d is referenced by billings", ErrConflict, contractID)
	}

	contract, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contract with id:%d", ErrNotFound, contractID)
		}
		return nil, err
	}
	if err := s.contracts.DeleteByID(ctx, contractID); err != nil {
		return nil, err
	}
	view := model.NewContractView(*contract, s.now())
	return &view, nil
}

func (s *ContractService) checkVehicle(ctx context.Context, id string) error {
	oid, err := ident.ObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: vehicle_id: %s", ErrInvalidInput, err)
	}
	exists, err := s.vehicles.ExistsByID(ctx, oid)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: vehicle with id:%s", ErrNotFound, id)
	}
	return nil
}

func (s *ContractService) checkCustomer(ctx context.Context, id string) error {
	oid, err := ident.ObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: customer_id: %s", ErrInvalidInput, err)
	}
	exists, err := s.customers.ExistsByID(ctx, oid)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: customer with id:%s", ErrNotFound, id)
	}
	return nil
}

func (s *ContractService) views(contracts []model.Contract) []model.ContractView {
	now := s.now()
	views := make([]model.ContractView, 0, len(contracts))
	for _, contract := range contracts {
		views = append(views, model.NewContractView(contract, now))
	}
	return views
}
