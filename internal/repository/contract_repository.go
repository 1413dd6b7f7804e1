package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rmussard/easyloc-api/internal/model"
)

const contractColumns = `
	id,
	vehicle_id,
	customer_id,
	sign_datetime,
	loc_begin_datetime,
	loc_end_datetime,
	loc_returning_datetime,
	price,
	created_at,
	updated_at
`

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) List(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM contracts
		ORDER BY id ASC
	`).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id int64) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *ContractRepository) Insert(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	var saved model.Contract
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (
			vehicle_id,
			customer_id,
			sign_datetime,
			loc_begin_datetime,
			loc_end_datetime,
			loc_returning_datetime,
			price,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+contractColumns,
		contract.VehicleID,
		contract.CustomerID,
		contract.SignDatetime,
		contract.LocBeginDatetime,
		contract.LocEndDatetime,
		contract.LocReturningDatetime,
		contract.Price,
		time.Now().UTC(),
		time.Now().UTC(),
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

var contractUpdateColumns = map[string]string{
	"vehicle_id":             "vehicle_id",
	"customer_id":            "customer_id",
	"sign_datetime":          "sign_datetime",
	"loc_begin_datetime":     "loc_begin_datetime",
	"loc_end_datetime":       "loc_end_datetime",
	"loc_returning_datetime": "loc_returning_datetime",
	"price":                  "price",
}

// UpdateByID applies a partial update. Fields must already be validated by
// the caller; unknown keys are a programming error here.
func (r *ContractRepository) UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) (*model.Contract, error) {
	sets := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+2)
	for key, value := range fields {
		column, ok := contractUpdateColumns[key]
		if !ok {
			return nil, fmt.Errorf("unknown contract column %q", key)
		}
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	var saved model.Contract
	err := r.db.WithContext(ctx).Raw(`
		UPDATE contracts
		SET `+strings.Join(sets, ", ")+`
		WHERE id = ?
		RETURNING `+contractColumns, args...,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *ContractRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM contracts WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) ExistsByCustomer(ctx context.Context, customerID string) (bool, error) {
	return r.existsWhere(ctx, "customer_id", customerID)
}

func (r *ContractRepository) ExistsByVehicle(ctx context.Context, vehicleID string) (bool, error) {
	return r.existsWhere(ctx, "vehicle_id", vehicleID)
}

func (r *ContractRepository) existsWhere(ctx context.Context, column, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM contracts WHERE `+column+` = ?`, value,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
