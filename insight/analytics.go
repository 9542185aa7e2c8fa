package insight

import (
	"math"
	"strconv"
	"strings"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/shopspring/decimal"
)

// DefaultThresholdFactor scales the average consumption of the analysed set
// into the high-consumption threshold when none is supplied.
const DefaultThresholdFactor = 1.5

// Alert flags a bill whose consumption exceeds the threshold.
type Alert struct {
	ID            string  `json:"id"`
	Month         string  `json:"month"`
	Year          int     `json:"year"`
	UtilityType   string  `json:"utilityType"`
	UnitsConsumed float64 `json:"unitsConsumed"`
	Amount        float64 `json:"amount"`
	Threshold     float64 `json:"threshold"`
	// Null when the threshold is zero and the percentage is undefined.
	PercentageAboveThreshold decimal.NullDecimal `json:"percentageAboveThreshold"`
}

// Analytics is the result of ComputeAnalytics.
type Analytics struct {
	AverageConsumption    decimal.Decimal          `json:"averageConsumption"`
	AverageAmount         decimal.Decimal          `json:"averageAmount"`
	TotalBills            int                      `json:"totalBills"`
	HighConsumptionAlerts []Alert                  `json:"highConsumptionAlerts"`
	UtilityBreakdown      map[string]UtilityTotals `json:"utilityBreakdown"`
	ThresholdUsed         float64                  `json:"thresholdUsed"`
}

// ParseThreshold reads an explicit threshold. It reports false for an empty
// or non-numeric value so the caller falls back to the default threshold.
// Zero and negative thresholds are accepted as-is.
func ParseThreshold(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ComputeAnalytics averages the given bills, flags those above the
// threshold and breaks them down per utility type. The bills should already
// be filtered by the caller; the default threshold is derived from exactly
// this set. An empty set yields the zero state.
func ComputeAnalytics(bills []models.Bill, threshold string) Analytics {
	if len(bills) == 0 {
		return Analytics{
			AverageConsumption:    decimal.Zero,
			AverageAmount:         decimal.Zero,
			HighConsumptionAlerts: []Alert{},
			UtilityBreakdown:      map[string]UtilityTotals{},
		}
	}

	overall := totalsOf(bills)
	effective, ok := ParseThreshold(threshold)
	if !ok {
		effective = overall.AverageUnits * DefaultThresholdFactor
	}

	alerts := []Alert{}
	for _, b := range bills {
		if b.UnitsConsumed > effective {
			alerts = append(alerts, newAlert(b, effective))
		}
	}

	return Analytics{
		AverageConsumption:    decimal.NewFromFloat(overall.AverageUnits).Round(2),
		AverageAmount:         decimal.NewFromFloat(overall.AverageAmount).Round(2),
		TotalBills:            overall.Count,
		HighConsumptionAlerts: alerts,
		UtilityBreakdown:      breakdownByUtility(bills),
		ThresholdUsed:         effective,
	}
}

func newAlert(b models.Bill, threshold float64) Alert {
	a := Alert{
		ID:            b.ID,
		Month:         b.Month,
		Year:          b.Year,
		UtilityType:   b.UtilityType,
		UnitsConsumed: b.UnitsConsumed,
		Amount:        b.Amount,
		Threshold:     threshold,
	}
	if threshold != 0 {
		pct := (b.UnitsConsumed - threshold) / threshold * 100
		a.PercentageAboveThreshold = decimal.NewNullDecimal(decimal.NewFromFloat(pct).Round(1))
	}
	return a
}
