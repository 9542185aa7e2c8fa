package insight

import (
	"context"
	"time"

	"github.com/VivekbirN/SDP-project/models"
)

var baseTime = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

// bill builds a bill created n minutes after baseTime.
func bill(id, month string, year int, utility string, units, amount float64, n int) models.Bill {
	return models.Bill{
		ID:            id,
		Month:         month,
		Year:          year,
		UtilityType:   utility,
		UnitsConsumed: units,
		Amount:        amount,
		CostPerUnit:   models.CostPerUnit(amount, units),
		CreatedAt:     baseTime.Add(time.Duration(n) * time.Minute),
	}
}

// stubReader serves a fixed slice of bills.
type stubReader struct {
	bills []models.Bill
	err   error
}

func (s *stubReader) ListAll(_ context.Context, filter models.BillFilter) ([]models.Bill, error) {
	if s.err != nil {
		return nil, s.err
	}
	return FilterByUtility(s.bills, filter.UtilityType), nil
}

func (s *stubReader) FindLatestCreated(_ context.Context, filter models.BillFilter) (*models.Bill, error) {
	if s.err != nil {
		return nil, s.err
	}
	return latestCreated(FilterByUtility(s.bills, filter.UtilityType)), nil
}
