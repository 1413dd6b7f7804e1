package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rmussard/easyloc-api/internal/ident"
	"github.com/rmussard/easyloc-api/internal/model"
)

// customerFields is both the list-filter whitelist and the patch whitelist.
var customerFields = map[string]fieldKind{
	"first_name":    stringField,
	"last_name":     stringField,
	"address":       stringField,
	"permit_number": stringField,
}

type CustomerService struct {
	customers CustomerStore
	contracts ContractReferences
}

func NewCustomerService(customers CustomerStore, contracts ContractReferences) *CustomerService {
	return &CustomerService{customers: customers, contracts: contracts}
}

type CreateCustomerInput struct {
	FirstName    string
	LastName     string
	Address      string
	PermitNumber string
}

func (s *CustomerService) List(ctx context.Context, query url.Values) ([]model.Customer, error) {
	filter, sortField, sortDir := documentQuery(query, customerFields)
	return s.customers.Find(ctx, filter, sortField, sortDir)
}

func (s *CustomerService) GetByName(ctx context.Context, lastName, firstName string) (*model.Customer, error) {
	lastName = strings.TrimSpace(lastName)
	firstName = strings.TrimSpace(firstName)
	if lastName == "" || firstName == "" {
		return nil, fmt.Errorf("%w: last_name and first_name are required", ErrInvalidInput)
	}

	customer, err := s.customers.FindByName(ctx, lastName, firstName)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: customer %s %s", ErrNotFound, lastName, firstName)
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*model.Customer, error) {
	customer := model.Customer{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Address:      strings.TrimSpace(input.Address),
		PermitNumber: strings.TrimSpace(input.PermitNumber),
	}
	if customer.FirstName == "" || customer.LastName == "" || customer.Address == "" || customer.PermitNumber == "" {
		return nil, fmt.Errorf("%w: first_name, last_name, address and permit_number are required", ErrInvalidInput)
	}

	_, err := s.customers.FindByExactName(ctx, customer.FirstName, customer.LastName)
	if err == nil {
		return nil, fmt.Errorf("%w: customer already registered", ErrConflict)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return s.customers.Insert(ctx, customer)
}

func (s *CustomerService) Update(ctx context.Context, id string, patch map[string]interface{}) (*model.Customer, error) {
	oid, err := ident.ObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	fields, err := validatePatch(patch, customerFields)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.UpdateByID(ctx, oid, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: customer with id:%s", ErrNotFound, id)
		}
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer unless a contract in the relational store still
// points at it.
func (s *CustomerService) Delete(ctx context.Context, id string) (*model.Customer, error) {
	oid, err := ident.ObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	referenced, err := s.contracts.ExistsByCustomer(ctx, oid.Hex())
	if err != nil {
		return nil, err
	}
	if referenced {
		return nil, fmt.Errorf("%w: customer with id:%s is referenced by contracts", ErrConflict, id)
	}

	customer, err := s.customers.DeleteByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: customer with id:%s", ErrNotFound, id)
		}
		return nil, err
	}
	return customer, nil
}
