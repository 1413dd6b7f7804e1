package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rmussard/easyloc-api/internal/model"
)

const billingColumns = `
	id,
	contract_id,
	amount,
	created_at,
	updated_at
`

type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

func (r *BillingRepository) List(ctx context.Context) ([]model.Billing, error) {
	var billings []model.Billing
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + billingColumns + `
		FROM billings
		ORDER BY id ASC
	`).Scan(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *BillingRepository) FindByID(ctx context.Context, id int64) (*model.Billing, error) {
	var billing model.Billing
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+billingColumns+`
		FROM billings
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&billing).Error
	if err != nil {
		return nil, err
	}
	if billing.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &billing, nil
}

func (r *BillingRepository) Insert(ctx context.Context, billing model.Billing) (*model.Billing, error) {
	var saved model.Billing
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO billings (contract_id, amount, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING `+billingColumns,
		billing.ContractID,
		billing.Amount,
		time.Now().UTC(),
		time.Now().UTC(),
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

var billingUpdateColumns = map[string]string{
	"contract_id": "contract_id",
	"amount":      "amount",
}

func (r *BillingRepository) UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) (*model.Billing, error) {
	sets := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+2)
	for key, value := range fields {
		column, ok := billingUpdateColumns[key]
		if !ok {
			return nil, fmt.Errorf("unknown billing column %q", key)
		}
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	var saved model.Billing
	err := r.db.WithContext(ctx).Raw(`
		UPDATE billings
		SET `+strings.Join(sets, ", ")+`
		WHERE id = ?
		RETURNING `+billingColumns, args...,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *BillingRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM billings WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BillingRepository) ExistsByContract(ctx context.Context, contractID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM billings WHERE contract_id = ?`, contractID,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
