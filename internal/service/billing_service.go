package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rmussard/easyloc-api/internal/ident"
	"github.com/rmussard/easyloc-api/internal/model"
)

type BillingService struct {
	billings  BillingStore
	contracts ContractStore
}

func NewBillingService(billings BillingStore, contracts ContractStore) *BillingService {
	return &BillingService{billings: billings, contracts: contracts}
}

type CreateBillingInput struct {
	ContractID int64
	Amount     float64
}

func (s *BillingService) List(ctx context.Context) ([]model.Billing, error) {
	return s.billings.List(ctx)
}

func (s *BillingService) Get(ctx context.Context, id string) (*model.Billing, error) {
	billingID, err := ident.IntegerID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	billing, err := s.billings.FindByID(ctx, billingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: billing with id:%d", ErrNotFound, billingID)
		}
		return nil, err
	}
	return billing, nil
}

func (s *BillingService) Create(ctx context.Context, input CreateBillingInput) (*model.Billing, error) {
	if err := s.checkContract(ctx, input.ContractID); err != nil {
		return nil, err
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	return s.billings.Insert(ctx, model.Billing{
		ContractID: input.ContractID,
		Amount:     input.Amount,
	})
}

func (s *BillingService) Update(ctx context.Context, id string, patch map[string]interface{}) (*model.Billing, error) {
	billingID, err := ident.IntegerID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	fields, err := validatePatch(patch, map[string]fieldKind{
		"contract_id": intField,
		"amount":      floatField,
	})
	if err != nil {
		return nil, err
	}

	if contractID, ok := fields["contract_id"].(int64); ok {
		if err := s.checkContract(ctx, contractID); err != nil {
			return nil, err
		}
	}
	if amount, ok := fields["amount"].(float64); ok && amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	billing, err := s.billings.UpdateByID(ctx, billingID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: billing with id:%d", ErrNotFound, billingID)
		}
		return nil, err
	}
	return billing, nil
}

// Delete is unguarded: billings are leaf records with no dependents.
func (s *BillingService) Delete(ctx context.Context, id string) (*model.Billing, error) {
	billingID, err := ident.IntegerID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	billing, err := s.billings.FindByID(ctx, billingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: billing with id:%d", ErrNotFound, billingID)
		}
		return nil, err
	}
	if err := s.billings.DeleteByID(ctx, billingID); err != nil {
		return nil, err
	}
	return billing, nil
}

func (s *BillingService) checkContract(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: contract_id must be a positive integer", ErrInvalidInput)
	}
	_, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: contract with id:%d", ErrNotFound, id)
		}
		return err
	}
	return nil
}
