package model

import (
	"math"
	"time"
)

// LateGrace is how long past the rental deadline a return stays on time.
const LateGrace = time.Hour

const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusLate      = "late"
)

// Contract lives in the relational store. The vehicle and customer ids point
// at documents in the other store, so they are plain 24-hex strings here and
// integrity is enforced by the services, not by the database.
type Contract struct {
	ID                   int64      `json:"id"`
	VehicleID            string     `json:"vehicle_id"`
	CustomerID           string     `json:"customer_id"`
	SignDatetime         time.Time  `json:"sign_datetime"`
	LocBeginDatetime     time.Time  `json:"loc_begin_datetime"`
	LocEndDatetime       time.Time  `json:"loc_end_datetime"`
	LocReturningDatetime *time.Time `json:"loc_returning_datetime"`
	Price                float64    `json:"price"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ContractView is a contract enriched with the derived fields returned on
// reads. Nothing in it is persisted.
type ContractView struct {
	Contract
	Status              []string `json:"status"`
	CarReturnDelayHours float64  `json:"car_return_delay_hours"`
}

func NewContractView(c Contract, now time.Time) ContractView {
	return ContractView{
		Contract:            c,
		Status:              ContractStatus(c.LocEndDatetime, c.LocReturningDatetime, now),
		CarReturnDelayHours: ReturnDelayHours(c.LocEndDatetime, DelayReference(c.LocReturningDatetime, now)),
	}
}

// ContractStatus classifies a contract from its timestamps alone. A missing
// returning time means the vehicle is still out.
func ContractStatus(locEnd time.Time, locReturning *time.Time, now time.Time) []string {
	deadline := locEnd.Add(LateGrace)
	if locReturning == nil {
		if now.After(deadline) {
			return []string{StatusOngoing, StatusLate}
		}
		return []string{StatusOngoing}
	}
	if locReturning.After(deadline) {
		return []string{StatusCompleted, StatusLate}
	}
	return []string{StatusCompleted}
}

// DelayReference picks the timestamp the delay is measured against: the
// actual return when there is one, the clock otherwise.
func DelayReference(locReturning *time.Time, now time.Time) time.Time {
	if locReturning != nil {
		return *locReturning
	}
	return now
}

// ReturnDelayHours is the signed distance from the deadline in hours, rounded
// to 2 decimals. Early returns come out negative.
func ReturnDelayHours(locEnd, ref time.Time) float64 {
	return Round2(ref.Sub(locEnd).Hours())
}

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
