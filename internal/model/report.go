package model

import "time"

const (
	SettlementSettled     = "settled"
	SettlementOutstanding = "outstanding"
)

// ContractSearchFilter holds the already-validated filters for the contract
// search endpoint. Now is injected so the late predicate is deterministic.
type ContractSearchFilter struct {
	CustomerID *string
	VehicleID  *string
	Status     string
	Now        time.Time
}

// SettlementFilter narrows the billing group-by report to one contract. The
// settlement-state filter is not query-level: it compares the rounded ratio,
// which is derived after aggregation.
type SettlementFilter struct {
	ContractID *int64
}

type CustomerContractCount struct {
	CustomerID    string `json:"customer_id"`
	ContractCount int64  `json:"contract_count"`
}

type VehicleContractCount struct {
	VehicleID     string `json:"vehicle_id"`
	ContractCount int64  `json:"contract_count"`
}

type VehicleDelayAverage struct {
	VehicleID       string  `json:"vehicle_id"`
	ContractCount   int64   `json:"contract_count"`
	AvgDelayMinutes float64 `json:"avg_delay_minutes"`
}

type CustomerDelayRate struct {
	CustomerID    string  `json:"customer_id"`
	ContractCount int64   `json:"contract_count"`
	LateCount     int64   `json:"late_count"`
	LateRatePct   float64 `json:"late_rate_pct"`
}

type SettlementRow struct {
	ContractID   int64   `json:"contract_id"`
	Price        float64 `json:"price"`
	BilledAmount float64 `json:"billed_amount"`
	PaymentRatio float64 `json:"payment_ratio"`
	State        string  `json:"state"`
}

type LateWindowCount struct {
	DateBegin time.Time `json:"date_begin"`
	DateEnd   time.Time `json:"date_end"`
	LateCount int64     `json:"late_count"`
}

// SettlementReport is what the export generators render.
type SettlementReport struct {
	GeneratedAt time.Time
	Rows        []SettlementRow
}
