package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/rmussard/easyloc-api/internal/model"
)

type fakeCustomerStore struct {
	customers map[string]model.Customer
	findCalls int
}

func newFakeCustomerStore(customers ...model.Customer) *fakeCustomerStore {
	store := &fakeCustomerStore{customers: map[string]model.Customer{}}
	for _, customer := range customers {
		store.customers[customer.ID.Hex()] = customer
	}
	return store
}

func (f *fakeCustomerStore) Find(_ context.Context, _ map[string]interface{}, _ string, _ int) ([]model.Customer, error) {
	result := make([]model.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		result = append(result, customer)
	}
	return result, nil
}

func (f *fakeCustomerStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Customer, error) {
	f.findCalls++
	customer, ok := f.customers[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &customer, nil
}

func (f *fakeCustomerStore) ExistsByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.findCalls++
	_, ok := f.customers[id.Hex()]
	return ok, nil
}

func (f *fakeCustomerStore) FindByName(_ context.Context, lastName, firstName string) (*model.Customer, error) {
	f.findCalls++
	for _, customer := range f.customers {
		if customer.LastName == lastName && customer.FirstName == firstName {
			return &customer, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCustomerStore) FindByExactName(ctx context.Context, firstName, lastName string) (*model.Customer, error) {
	return f.FindByName(ctx, lastName, firstName)
}

func (f *fakeCustomerStore) Insert(_ context.Context, customer model.Customer) (*model.Customer, error) {
	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	f.customers[customer.ID.Hex()] = customer
	return &customer, nil
}

func (f *fakeCustomerStore) UpdateByID(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.Customer, error) {
	customer, ok := f.customers[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if firstName, ok := fields["first_name"].(string); ok {
		customer.FirstName = firstName
	}
	if lastName, ok := fields["last_name"].(string); ok {
		customer.LastName = lastName
	}
	if address, ok := fields["address"].(string); ok {
		customer.Address = address
	}
	if permit, ok := fields["permit_number"].(string); ok {
		customer.PermitNumber = permit
	}
	f.customers[id.Hex()] = customer
	return &customer, nil
}

func (f *fakeCustomerStore) DeleteByID(_ context.Context, id primitive.ObjectID) (*model.Customer, error) {
	customer, ok := f.customers[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.customers, id.Hex())
	return &customer, nil
}

type fakeVehicleStore struct {
	vehicles map[string]model.Vehicle
}

func newFakeVehicleStore(vehicles ...model.Vehicle) *fakeVehicleStore {
	store := &fakeVehicleStore{vehicles: map[string]model.Vehicle{}}
	for _, vehicle := range vehicles {
		store.vehicles[vehicle.ID.Hex()] = vehicle
	}
	return store
}

func (f *fakeVehicleStore) Find(_ context.Context, _ map[string]interface{}, _ string, _ int) ([]model.Vehicle, error) {
	result := make([]model.Vehicle, 0, len(f.vehicles))
	for _, vehicle := range f.vehicles {
		result = append(result, vehicle)
	}
	return result, nil
}

func (f *fakeVehicleStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Vehicle, error) {
	vehicle, ok := f.vehicles[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &vehicle, nil
}

func (f *fakeVehicleStore) ExistsByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.vehicles[id.Hex()]
	return ok, nil
}

func (f *fakeVehicleStore) FindByPlate(_ context.Context, licencePlate string) (*model.Vehicle, error) {
	for _, vehicle := range f.vehicles {
		if vehicle.LicencePlate == licencePlate {
			return &vehicle, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeVehicleStore) FindByExactPlate(ctx context.Context, licencePlate string) (*model.Vehicle, error) {
	return f.FindByPlate(ctx, licencePlate)
}

func (f *fakeVehicleStore) Insert(_ context.Context, vehicle model.Vehicle) (*model.Vehicle, error) {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt
	f.vehicles[vehicle.ID.Hex()] = vehicle
	return &vehicle, nil
}

func (f *fakeVehicleStore) UpdateByID(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.Vehicle, error) {
	vehicle, ok := f.vehicles[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if plate, ok := fields["licence_plate"].(string); ok {
		vehicle.LicencePlate = plate
	}
	if informations, ok := fields["informations"].(string); ok {
		vehicle.Informations = informations
	}
	if km, ok := fields["km"].(int64); ok {
		vehicle.Km = km
	}
	f.vehicles[id.Hex()] = vehicle
	return &vehicle, nil
}

func (f *fakeVehicleStore) DeleteByID(_ context.Context, id primitive.ObjectID) (*model.Vehicle, error) {
	vehicle, ok := f.vehicles[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.vehicles, id.Hex())
	return &vehicle, nil
}

type fakeContractRefs struct {
	byCustomer map[string]bool
	byVehicle  map[string]bool
	calls      int
}

func (f *fakeContractRefs) ExistsByCustomer(_ context.Context, customerID string) (bool, error) {
	f.calls++
	return f.byCustomer[customerID], nil
}

func (f *fakeContractRefs) ExistsByVehicle(_ context.Context, vehicleID string) (bool, error) {
	f.calls++
	return f.byVehicle[vehicleID], nil
}

type fakeDocumentChecker struct {
	existing map[string]bool
	calls    int
}

func (f *fakeDocumentChecker) ExistsByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.calls++
	return f.existing[id.Hex()], nil
}

type fakeContractStore struct {
	contracts map[int64]model.Contract
	nextID    int64
}

func newFakeContractStore(contracts ...model.Contract) *fakeContractStore {
	store := &fakeContractStore{contracts: map[int64]model.Contract{}, nextID: 1}
	for _, contract := range contracts {
		store.contracts[contract.ID] = contract
		if contract.ID >= store.nextID {
			store.nextID = contract.ID + 1
		}
	}
	return store
}

func (f *fakeContractStore) List(_ context.Context) ([]model.Contract, error) {
	result := make([]model.Contract, 0, len(f.contracts))
	for _, contract := range f.contracts {
		result = append(result, contract)
	}
	return result, nil
}

func (f *fakeContractStore) FindByID(_ context.Context, id int64) (*model.Contract, error) {
	contract, ok := f.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (f *fakeContractStore) Insert(_ context.Context, contract model.Contract) (*model.Contract, error) {
	contract.ID = f.nextID
	f.nextID++
	contract.CreatedAt = time.Now()
	contract.UpdatedAt = contract.CreatedAt
	f.contracts[contract.ID] = contract
	return &contract, nil
}

func (f *fakeContractStore) UpdateByID(_ context.Context, id int64, fields map[string]interface{}) (*model.Contract, error) {
	contract, ok := f.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if vehicleID, ok := fields["vehicle_id"].(string); ok {
		contract.VehicleID = vehicleID
	}
	if customerID, ok := fields["customer_id"].(string); ok {
		contract.CustomerID = customerID
	}
	if end, ok := fields["loc_end_datetime"].(time.Time); ok {
		contract.LocEndDatetime = end
	}
	if returning, ok := fields["loc_returning_datetime"]; ok {
		if returning == nil {
			contract.LocReturningDatetime = nil
		} else if parsed, ok := returning.(time.Time); ok {
			contract.LocReturningDatetime = &parsed
		}
	}
	if price, ok := fields["price"].(float64); ok {
		contract.Price = price
	}
	f.contracts[id] = contract
	return &contract, nil
}

func (f *fakeContractStore) DeleteByID(_ context.Context, id int64) error {
	if _, ok := f.contracts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.contracts, id)
	return nil
}

func (f *fakeContractStore) ExistsByCustomer(_ context.Context, customerID string) (bool, error) {
	for _, contract := range f.contracts {
		if contract.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeContractStore) ExistsByVehicle(_ context.Context, vehicleID string) (bool, error) {
	for _, contract := range f.contracts {
		if contract.VehicleID == vehicleID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBillingStore struct {
	billings map[int64]model.Billing
	nextID   int64
}

func newFakeBillingStore(billings ...model.Billing) *fakeBillingStore {
	store := &fakeBillingStore{billings: map[int64]model.Billing{}, nextID: 1}
	for _, billing := range billings {
		store.billings[billing.ID] = billing
		if billing.ID >= store.nextID {
			store.nextID = billing.ID + 1
		}
	}
	return store
}

func (f *fakeBillingStore) List(_ context.Context) ([]model.Billing, error) {
	result := make([]model.Billing, 0, len(f.billings))
	for _, billing := range f.billings {
		result = append(result, billing)
	}
	return result, nil
}

func (f *fakeBillingStore) FindByID(_ context.Context, id int64) (*model.Billing, error) {
	billing, ok := f.billings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &billing, nil
}

func (f *fakeBillingStore) Insert(_ context.Context, billing model.Billing) (*model.Billing, error) {
	billing.ID = f.nextID
	f.nextID++
	billing.CreatedAt = time.Now()
	billing.UpdatedAt = billing.CreatedAt
	f.billings[billing.ID] = billing
	return &billing, nil
}

func (f *fakeBillingStore) UpdateByID(_ context.Context, id int64, fields map[string]interface{}) (*model.Billing, error) {
	billing, ok := f.billings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if contractID, ok := fields["contract_id"].(int64); ok {
		billing.ContractID = contractID
	}
	if amount, ok := fields["amount"].(float64); ok {
		billing.Amount = amount
	}
	f.billings[id] = billing
	return &billing, nil
}

func (f *fakeBillingStore) DeleteByID(_ context.Context, id int64) error {
	if _, ok := f.billings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.billings, id)
	return nil
}

func (f *fakeBillingStore) ExistsByContract(_ context.Context, contractID int64) (bool, error) {
	for _, billing := range f.billings {
		if billing.ContractID == contractID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBillingRefs struct {
	referenced map[int64]bool
}

func (f *fakeBillingRefs) ExistsByContract(_ context.Context, contractID int64) (bool, error) {
	return f.referenced[contractID], nil
}

type fakeReportStore struct {
	contracts      []model.Contract
	settlement     []model.SettlementRow
	delayRates     []model.CustomerDelayRate
	lateCount      int64
	searchCalls    int
	lastFilter     model.ContractSearchFilter
	lastSettlement model.SettlementFilter
}

func (f *fakeReportStore) SearchContracts(_ context.Context, filter model.ContractSearchFilter) ([]model.Contract, error) {
	f.searchCalls++
	f.lastFilter = filter
	return f.contracts, nil
}

func (f *fakeReportStore) BillingsByContract(_ context.Context, _ int64) ([]model.Billing, error) {
	return nil, nil
}

func (f *fakeReportStore) ContractCountByCustomer(_ context.Context) ([]model.CustomerContractCount, error) {
	return nil, nil
}

func (f *fakeReportStore) ContractCountByVehicle(_ context.Context) ([]model.VehicleContractCount, error) {
	return nil, nil
}

func (f *fakeReportStore) SettlementByContract(_ context.Context, filter model.SettlementFilter) ([]model.SettlementRow, error) {
	f.lastSettlement = filter
	return f.settlement, nil
}

func (f *fakeReportStore) DelayAverageByVehicle(_ context.Context) ([]model.VehicleDelayAverage, error) {
	return nil, nil
}

func (f *fakeReportStore) DelayRateByCustomer(_ context.Context, _ time.Time) ([]model.CustomerDelayRate, error) {
	return f.delayRates, nil
}

func (f *fakeReportStore) LateCountInWindow(_ context.Context, _, _ time.Time) (int64, error) {
	return f.lateCount, nil
}
