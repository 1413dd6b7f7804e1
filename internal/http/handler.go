package http

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/rmussard/easyloc-api/internal/service"
)

type Handler struct {
	customers *service.CustomerService
	vehicles  *service.VehicleService
	contracts *service.ContractService
	billings  *service.BillingService
	reports   *service.ReportService
	log       zerolog.Logger
}

func NewHandler(
	customers *service.CustomerService,
	vehicles *service.VehicleService,
	contracts *service.ContractService,
	billings *service.BillingService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		customers: customers,
		vehicles:  vehicles,
		contracts: contracts,
		billings:  billings,
		reports:   reports,
		log:       log,
	}
}

// parseDate delegates to the service layer so query parameters and JSON
// payloads accept exactly the same datetime formats.
func parseDate(raw string) (time.Time, error) {
	return service.ParseDatetime(raw)
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
