package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rmussard/easyloc-api/internal/model"
)

// Store interfaces are declared here, on the consumer side; the repository
// package implements them. Reference checks deliberately re-query on every
// call: the two stores share no transaction, so the check runs as close to
// the write as possible and the residual race is accepted.

type CustomerStore interface {
	Find(ctx context.Context, filter map[string]interface{}, sortField string, sortDir int) ([]model.Customer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	FindByName(ctx context.Context, lastName, firstName string) (*model.Customer, error)
	FindByExactName(ctx context.Context, firstName, lastName string) (*model.Customer, error)
	Insert(ctx context.Context, customer model.Customer) (*model.Customer, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.Customer, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error)
}

type VehicleStore interface {
	Find(ctx context.Context, filter map[string]interface{}, sortField string, sortDir int) ([]model.Vehicle, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	FindByPlate(ctx context.Context, licencePlate string) (*model.Vehicle, error)
	FindByExactPlate(ctx context.Context, licencePlate string) (*model.Vehicle, error)
	Insert(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.Vehicle, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error)
}

// DocumentChecker is the cross-store existence probe used while validating
// contract foreign keys.
type DocumentChecker interface {
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type ContractStore interface {
	List(ctx context.Context) ([]model.Contract, error)
	FindByID(ctx context.Context, id int64) (*model.Contract, error)
	Insert(ctx context.Context, contract model.Contract) (*model.Contract, error)
	UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) (*model.Contract, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByCustomer(ctx context.Context, customerID string) (bool, error)
	ExistsByVehicle(ctx context.Context, vehicleID string) (bool, error)
}

// ContractReferences is the reverse check behind the customer/vehicle
// deletion guard.
type ContractReferences interface {
	ExistsByCustomer(ctx context.Context, customerID string) (bool, error)
	ExistsByVehicle(ctx context.Context, vehicleID string) (bool, error)
}

type BillingStore interface {
	List(ctx context.Context) ([]model.Billing, error)
	FindByID(ctx context.Context, id int64) (*model.Billing, error)
	Insert(ctx context.Context, billing model.Billing) (*model.Billing, error)
	UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) (*model.Billing, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByContract(ctx context.Context, contractID int64) (bool, error)
}

// BillingReferences is the reverse check behind the contract deletion guard.
type BillingReferences interface {
	ExistsByContract(ctx context.Context, contractID int64) (bool, error)
}

type ReportStore interface {
	SearchContracts(ctx context.Context, filter model.ContractSearchFilter) ([]model.Contract, error)
	BillingsByContract(ctx context.Context, contractID int64) ([]model.Billing, error)
	ContractCountByCustomer(ctx context.Context) ([]model.CustomerContractCount, error)
	ContractCountByVehicle(ctx context.Context) ([]model.VehicleContractCount, error)
	SettlementByContract(ctx context.Context, filter model.SettlementFilter) ([]model.SettlementRow, error)
	DelayAverageByVehicle(ctx context.Context) ([]model.VehicleDelayAverage, error)
	DelayRateByCustomer(ctx context.Context, now time.Time) ([]model.CustomerDelayRate, error)
	LateCountInWindow(ctx context.Context, begin, end time.Time) (int64, error)
}
