package insight

import (
	"github.com/VivekbirN/SDP-project/models"
)

// CostSummary maps every supported utility type to its totals.
type CostSummary map[string]UtilityTotals

// ComputeCostSummary totals the whole bill collection per utility type. The
// result always holds one entry per models.UtilityTypes, zero-valued for a
// utility without bills.
func ComputeCostSummary(bills []models.Bill) CostSummary {
	summary := make(CostSummary, len(models.UtilityTypes))
	for _, utility := range models.UtilityTypes {
		summary[utility] = totalsOf(FilterByUtility(bills, utility))
	}
	return summary
}
