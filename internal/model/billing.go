package model

import "time"

type Billing struct {
	ID         int64     `json:"id"`
	ContractID int64     `json:"contract_id"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
