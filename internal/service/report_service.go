package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rmussard/easyloc-api/internal/ident"
	"github.com/rmussard/easyloc-api/internal/model"
)

// SettlementRenderer turns the settlement report into a downloadable file.
type SettlementRenderer interface {
	Generate(report model.SettlementReport) ([]byte, error)
}

type ReportService struct {
	store ReportStore
	excel SettlementRenderer
	pdf   SettlementRenderer
	now   func() time.Time
}

func NewReportService(store ReportStore, excel, pdf SettlementRenderer) *ReportService {
	return &ReportService{store: store, excel: excel, pdf: pdf, now: time.Now}
}

type ContractSearchParams struct {
	CustomerID string
	VehicleID  string
	Status     string
}

type SettlementParams struct {
	ContractID string
	State      string
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ReportService) SearchContracts(ctx context.Context, params ContractSearchParams) ([]model.ContractView, error) {
	filter := model.ContractSearchFilter{Now: s.now()}

	if params.CustomerID != "" {
		oid, err := ident.ObjectID(params.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("%w: customer_id: %s", ErrInvalidInput, err)
		}
		hex := oid.Hex()
		filter.CustomerID = &hex
	}
	if params.VehicleID != "" {
		oid, err := ident.ObjectID(params.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("%w: vehicle_id: %s", ErrInvalidInput, err)
		}
		hex := oid.Hex()
		filter.VehicleID = &hex
	}

	switch params.Status {
	case "", "all":
		filter.Status = ""
	case model.StatusOngoing, model.StatusCompleted, model.StatusLate:
		filter.Status = params.Status
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, params.Status)
	}

	contracts, err := s.store.SearchContracts(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]model.ContractView, 0, len(contracts))
	for _, contract := range contracts {
		views = append(views, model.NewContractView(contract, now))
	}
	return views, nil
}

func (s *ReportService) SearchBillings(ctx context.Context, contractID string) ([]model.Billing, error) {
	id, err := ident.IntegerID(contractID)
	if err != nil {
		return nil, fmt.Errorf("%w: contract_id: %s", ErrInvalidInput, err)
	}
	return s.store.BillingsByContract(ctx, id)
}

func (s *ReportService) ContractCountByCustomer(ctx context.Context) ([]model.CustomerContractCount, error) {
	return s.store.ContractCountByCustomer(ctx)
}

func (s *ReportService) ContractCountByVehicle(ctx context.Context) ([]model.VehicleContractCount, error) {
	return s.store.ContractCountByVehicle(ctx)
}

func (s *ReportService) DelayAverageByVehicle(ctx context.Context) ([]model.VehicleDelayAverage, error) {
	return s.store.DelayAverageByVehicle(ctx)
}

func (s *ReportService) DelayRateByCustomer(ctx context.Context) ([]model.CustomerDelayRate, error) {
	rows, err := s.store.DelayRateByCustomer(ctx, s.now())
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ContractCount > 0 {
			rows[i].LateRatePct = model.Round2(float64(rows[i].LateCount) / float64(rows[i].ContractCount) * 100)
		}
	}
	return rows, nil
}

// LateWindowCount counts late contracts due inside the inclusive range.
func (s *ReportService) LateWindowCount(ctx context.Context, begin, end time.Time) (*model.LateWindowCount, error) {
	if begin.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: date_begin and date_end are required", ErrInvalidInput)
	}
	if end.Before(begin) {
		return nil, fmt.Errorf("%w: date_end must not precede date_begin", ErrInvalidInput)
	}

	count, err := s.store.LateCountInWindow(ctx, begin, end)
	if err != nil {
		return nil, err
	}
	return &model.LateWindowCount{DateBegin: begin, DateEnd: end, LateCount: count}, nil
}

// Settlement derives the payment ratio and state for the grouped billing
// rows. The state filter runs here, against the rounded ratio the rows
// report, so a contract never comes back labeled with the state the filter
// excluded.
func (s *ReportService) Settlement(ctx context.Context, params SettlementParams) ([]model.SettlementRow, error) {
	filter, state, err := settlementFilter(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.SettlementByContract(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]model.SettlementRow, 0, len(rows))
	for _, row := range rows {
		row.PaymentRatio = paymentRatio(row.BilledAmount, row.Price)
		row.State = settlementState(row.PaymentRatio)
		if state != "" && row.State != state {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

func (s *ReportService) SettlementExcel(ctx context.Context, params SettlementParams) (*ExportResult, error) {
	return s.settlementExport(ctx, params, s.excel, "xlsx")
}

func (s *ReportService) SettlementPDF(ctx context.Context, params SettlementParams) (*ExportResult, error) {
	return s.settlementExport(ctx, params, s.pdf, "pdf")
}

func (s *ReportService) settlementExport(ctx context.Context, params SettlementParams, renderer SettlementRenderer, extension string) (*ExportResult, error) {
	rows, err := s.Settlement(ctx, params)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()
	content, err := renderer.Generate(model.SettlementReport{GeneratedAt: generatedAt, Rows: rows})
	if err != nil {
		return nil, err
	}
	fileName := fmt.Sprintf("settlement-%s.%s", generatedAt.Format("20060102-150405"), extension)
	return &ExportResult{FileName: fileName, Content: content}, nil
}

func settlementFilter(params SettlementParams) (model.SettlementFilter, string, error) {
	filter := model.SettlementFilter{}
	if params.ContractID != "" {
		id, err := ident.IntegerID(params.ContractID)
		if err != nil {
			return filter, "", fmt.Errorf("%w: contract_id: %s", ErrInvalidInput, err)
		}
		filter.ContractID = &id
	}
	switch params.State {
	case "", model.SettlementSettled, model.SettlementOutstanding:
	default:
		return filter, "", fmt.Errorf("%w: unknown state %q", ErrInvalidInput, params.State)
	}
	return filter, params.State, nil
}

func paymentRatio(billed, price float64) float64 {
	if price == 0 {
		return 0
	}
	return model.Round2(billed / price)
}

func settlementState(ratio float64) string {
	if ratio >= 1 {
		return model.SettlementSettled
	}
	return model.SettlementOutstanding
}
