package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rmussard/easyloc-api/internal/model"
	"github.com/rmussard/easyloc-api/internal/report"
)

// latePredicate is the query-level form of the status classifier: still out
// past the grace hour, or returned past it. The single bound argument is the
// caller's notion of now.
const latePredicate = `(
	(loc_returning_datetime IS NULL AND ? > loc_end_datetime + INTERVAL '1 hour')
	OR loc_returning_datetime > loc_end_datetime + INTERVAL '1 hour'
)`

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// SearchContracts runs the filtered contract list: equality on foreign keys,
// logical status at query level, newest first.
func (r *ReportRepository) SearchContracts(ctx context.Context, filter model.ContractSearchFilter) ([]model.Contract, error) {
	where := report.NewClause()
	if filter.CustomerID != nil {
		where.Add("customer_id", report.Equal, *filter.CustomerID)
	}
	if filter.VehicleID != nil {
		where.Add("vehicle_id", report.Equal, *filter.VehicleID)
	}

	switch filter.Status {
	case model.StatusOngoing:
		where.Add("loc_returning_datetime", report.IsNull, nil)
	case model.StatusCompleted:
		where.Add("loc_returning_datetime", report.NotNull, nil)
	}

	query := `SELECT ` + contractColumns + ` FROM contracts`
	fragment, args := where.Render()
	if fragment != "" {
		query += " WHERE " + fragment
	}
	if filter.Status == model.StatusLate {
		if fragment == "" {
			query += " WHERE " + latePredicate
		} else {
			query += " AND " + latePredicate
		}
		args = append(args, filter.Now)
	}
	query += " ORDER BY created_at DESC"

	var contracts []model.Contract
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// BillingsByContract lists billings for one contract, newest first.
func (r *ReportRepository) BillingsByContract(ctx context.Context, contractID int64) ([]model.Billing, error) {
	var billings []model.Billing
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+billingColumns+`
		FROM billings
		WHERE contract_id = ?
		ORDER BY created_at DESC
	`, contractID).Scan(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *ReportRepository) ContractCountByCustomer(ctx context.Context) ([]model.CustomerContractCount, error) {
	var rows []model.CustomerContractCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT customer_id, COUNT(*) AS contract_count
		FROM contracts
		GROUP BY customer_id
		ORDER BY customer_id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) ContractCountByVehicle(ctx context.Context) ([]model.VehicleContractCount, error) {
	var rows []model.VehicleContractCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT vehicle_id, COUNT(*) AS contract_count
		FROM contracts
		GROUP BY vehicle_id
		ORDER BY vehicle_id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SettlementByContract groups billings per contract and aggregates the billed
// total against the contract price. The payment ratio, its rounding, the
// zero-price guard and the state filter all live in the service, which works
// on the rounded ratio the rows report.
func (r *ReportRepository) SettlementByContract(ctx context.Context, filter model.SettlementFilter) ([]model.SettlementRow, error) {
	having := report.NewClause()
	if filter.ContractID != nil {
		having.Add("MAX(b.contract_id)", report.Equal, *filter.ContractID)
	}

	query := `
		SELECT
			b.contract_id,
			MAX(c.price) AS price,
			SUM(b.amount) AS billed_amount
		FROM billings b
		JOIN contracts c ON c.id = b.contract_id
		GROUP BY b.contract_id
	`
	fragment, args := having.Render()
	if fragment != "" {
		query += " HAVING " + fragment
	}
	query += " ORDER BY b.contract_id ASC"

	var rows []model.SettlementRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DelayAverageByVehicle averages the return delay in minutes per vehicle.
// Contracts without a return date count as zero delay rather than being
// excluded, so open rentals pull a vehicle's average down.
func (r *ReportRepository) DelayAverageByVehicle(ctx context.Context) ([]model.VehicleDelayAverage, error) {
	var rows []struct {
		VehicleID            string
		LocEndDatetime       time.Time
		LocReturningDatetime *time.Time
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT vehicle_id, loc_end_datetime, loc_returning_datetime
		FROM contracts
		ORDER BY vehicle_id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := []model.VehicleDelayAverage{}
	sums := []float64{}
	for _, row := range rows {
		if len(result) == 0 || result[len(result)-1].VehicleID != row.VehicleID {
			result = append(result, model.VehicleDelayAverage{VehicleID: row.VehicleID})
			sums = append(sums, 0)
		}
		last := len(result) - 1
		result[last].ContractCount++
		if row.LocReturningDatetime != nil {
			sums[last] += row.LocReturningDatetime.Sub(row.LocEndDatetime).Minutes()
		}
	}
	for i := range result {
		result[i].AvgDelayMinutes = model.Round2(sums[i] / float64(result[i].ContractCount))
	}
	return result, nil
}

// DelayRateByCustomer counts late contracts per customer. The percentage is
// derived in the service.
func (r *ReportRepository) DelayRateByCustomer(ctx context.Context, now time.Time) ([]model.CustomerDelayRate, error) {
	var rows []model.CustomerDelayRate
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			COUNT(*) AS contract_count,
			COUNT(*) FILTER (WHERE `+latePredicate+`) AS late_count
		FROM contracts
		GROUP BY customer_id
		ORDER BY customer_id ASC
	`, now).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LateCountInWindow counts contracts due inside the inclusive range that came
// back after the deadline. No grace hour here: returned late is late.
func (r *ReportRepository) LateCountInWindow(ctx context.Context, begin, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM contracts
		WHERE loc_end_datetime >= ?
			AND loc_end_datetime <= ?
			AND loc_returning_datetime IS NOT NULL
			AND loc_returning_datetime > loc_end_datetime
	`, begin, end).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
