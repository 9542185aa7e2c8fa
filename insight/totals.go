package insight

import (
	"github.com/VivekbirN/SDP-project/models"
	"github.com/samber/lo"
)

// UtilityTotals is the per-utility rollup shared by the analytics breakdown,
// the cost summary and the monthly summary.
type UtilityTotals struct {
	TotalUnits    float64 `json:"totalUnits"`
	TotalAmount   float64 `json:"totalAmount"`
	Count         int     `json:"count"`
	AverageUnits  float64 `json:"averageUnits"`
	AverageAmount float64 `json:"averageAmount"`
}

// totalsOf sums the bills and derives averages; averages stay 0 for no bills.
func totalsOf(bills []models.Bill) UtilityTotals {
	t := UtilityTotals{
		TotalUnits:  lo.SumBy(bills, unitsOf),
		TotalAmount: lo.SumBy(bills, amountOf),
		Count:       len(bills),
	}
	if t.Count > 0 {
		t.AverageUnits = t.TotalUnits / float64(t.Count)
		t.AverageAmount = t.TotalAmount / float64(t.Count)
	}
	return t
}

// breakdownByUtility groups bills by utility type. Only types present in
// the input appear in the result.
func breakdownByUtility(bills []models.Bill) map[string]UtilityTotals {
	breakdown := make(map[string]UtilityTotals)
	for utility, group := range lo.GroupBy(bills, func(b models.Bill) string { return b.UtilityType }) {
		breakdown[utility] = totalsOf(group)
	}
	return breakdown
}

// FilterByUtility keeps the bills of one utility type. An empty type keeps all.
func FilterByUtility(bills []models.Bill, utilityType string) []models.Bill {
	filter := models.BillFilter{UtilityType: utilityType}
	return lo.Filter(bills, func(b models.Bill, _ int) bool { return filter.Matches(b) })
}

// latestCreated returns the most recently created bill, or nil for none.
// Ties keep the earlier element.
func latestCreated(bills []models.Bill) *models.Bill {
	if len(bills) == 0 {
		return nil
	}
	latest := lo.MaxBy(bills, func(a, b models.Bill) bool { return a.CreatedAt.After(b.CreatedAt) })
	return &latest
}

func unitsOf(b models.Bill) float64  { return b.UnitsConsumed }
func amountOf(b models.Bill) float64 { return b.Amount }
