package insight

import (
	"sort"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/samber/lo"
)

// MonthTotal is one month's row of a yearly summary.
type MonthTotal struct {
	Month       string  `json:"month"`
	TotalUnits  float64 `json:"totalUnits"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int     `json:"count"`
}

// MonthlySummary breaks down the bills of exactly (month, year) per utility.
func MonthlySummary(bills []models.Bill, month string, year int) map[string]UtilityTotals {
	inPeriod := lo.Filter(bills, func(b models.Bill, _ int) bool {
		return b.Month == month && b.Year == year
	})
	return breakdownByUtility(inPeriod)
}

// YearlySummary totals the bills of a year per month, in calendar order.
func YearlySummary(bills []models.Bill, year int) []MonthTotal {
	inYear := lo.Filter(bills, func(b models.Bill, _ int) bool { return b.Year == year })
	months := make([]MonthTotal, 0, len(models.Months))
	for month, group := range lo.GroupBy(inYear, func(b models.Bill) string { return b.Month }) {
		t := totalsOf(group)
		months = append(months, MonthTotal{
			Month:       month,
			TotalUnits:  t.TotalUnits,
			TotalAmount: t.TotalAmount,
			Count:       t.Count,
		})
	}
	sort.Slice(months, func(i, j int) bool {
		return periodBefore(year, months[i].Month, year, months[j].Month)
	})
	return months
}
