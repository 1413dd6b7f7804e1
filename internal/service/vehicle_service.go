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

// vehicleFields is both the list-filter whitelist and the patch whitelist.
// informations is optional-with-default-empty on create, so a patch may clear
// it back to empty.
var vehicleFields = map[string]fieldKind{
	"licence_plate": stringField,
	"informations":  optionalStringField,
	"km":            intField,
}

type VehicleService struct {
	vehicles  VehicleStore
	contracts ContractReferences
}

func NewVehicleService(vehicles VehicleStore, contracts ContractReferences) *VehicleService {
	return &VehicleService{vehicles: vehicles, contracts: contracts}
}

type CreateVehicleInput struct {
	LicencePlate string
	Informations string
	Km           int64
}

func (s *VehicleService) List(ctx context.Context, query url.Values) ([]model.Vehicle, error) {
	filter, sortField, sortDir := documentQuery(query, vehicleFields)
	return s.vehicles.Find(ctx, filter, sortField, sortDir)
}

func (s *VehicleService) GetByPlate(ctx context.Context, licencePlate string) (*model.Vehicle, error) {
	licencePlate = strings.TrimSpace(licencePlate)
	if licencePlate == "" {
		return nil, fmt.Errorf("%w: licence_plate is required", ErrInvalidInput)
	}

	vehicle, err := s.vehicles.FindByPlate(ctx, licencePlate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, licencePlate)
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Create(ctx context.Context, input CreateVehicleInput) (*model.Vehicle, error) {
	vehicle := model.Vehicle{
		LicencePlate: strings.TrimSpace(input.LicencePlate),
		Informations: strings.TrimSpace(input.Informations),
		Km:           input.Km,
	}
	if vehicle.LicencePlate == "" {
		return nil, fmt.Errorf("%w: licence_plate is required", ErrInvalidInput)
	}
	if vehicle.Km < 0 {
		return nil, fmt.Errorf("%w: km must not be negative", ErrInvalidInput)
	}

	_, err := s.vehicles.FindByExactPlate(ctx, vehicle.LicencePlate)
	if err == nil {
		return nil, fmt.Errorf("%w: vehicle already registered", ErrConflict)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return s.vehicles.Insert(ctx, vehicle)
}

func (s *VehicleService) Update(ctx context.Context, id string, patch map[string]interface{}) (*model.Vehicle, error) {
	oid, err := ident.ObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	fields, err := validatePatch(patch, vehicleFields)
	if err != nil {
		return nil, err
	}
	if km, ok := fields["km"].(int64); ok && km < 0 {
		return nil, fmt.Errorf("%w: km must not be negative", ErrInvalidInput)
	}

	vehicle, err := s.vehicles.UpdateByID(ctx, oid, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: vehicle with id:%s", ErrNotFound, id)
		}
		return nil, err
	}
	return vehicle, nil
}

// Delete removes a vehicle unless a contract in the relational store still
// points at it.
func (s *VehicleService) Delete(ctx context.Context, id string) (*model.Vehicle, error) {
	oid, err := ident.ObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	referenced, err := s.contracts.ExistsByVehicle(ctx, oid.Hex())
	if err != nil {
		return nil, err
	}
	if referenced {
		return nil, fmt.Errorf("%w: vehicle with id:%s is referenced by contracts", ErrConflict, id)
	}

	vehicle, err := s.vehicles.DeleteByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: vehicle with id:%s", ErrNotFound, id)
		}
		return nil, err
	}
	return vehicle, nil
}
