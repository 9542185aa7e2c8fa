package insight

import (
	"testing"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thresholdBills() []models.Bill {
	return []models.Bill{
		bill("low", "January", 2024, "electricity", 100, 50, 0),
		bill("mid", "February", 2024, "electricity", 200, 90, 1),
		bill("high", "March", 2024, "electricity", 600, 260, 2),
	}
}

func TestComputeAnalytics_EmptyIsZeroState(t *testing.T) {
	res := ComputeAnalytics(nil, "")

	assert.True(t, res.AverageConsumption.IsZero())
	assert.True(t, res.AverageAmount.IsZero())
	assert.Equal(t, 0, res.TotalBills)
	assert.NotNil(t, res.HighConsumptionAlerts)
	assert.Empty(t, res.HighConsumptionAlerts)
	assert.NotNil(t, res.UtilityBreakdown)
	assert.Empty(t, res.UtilityBreakdown)
}

func TestComputeAnalytics_DefaultThreshold(t *testing.T) {
	res := ComputeAnalytics(thresholdBills(), "")

	assert.True(t, res.AverageConsumption.Equal(decimal.NewFromInt(300)), "got %s", res.AverageConsumption)
	assert.Equal(t, 3, res.TotalBills)
	assert.InDelta(t, 450, res.ThresholdUsed, 1e-9)

	require.Len(t, res.HighConsumptionAlerts, 1)
	alert := res.HighConsumptionAlerts[0]
	assert.Equal(t, "high", alert.ID)
	assert.Equal(t, "March", alert.Month)
	assert.InDelta(t, 450, alert.Threshold, 1e-9)
	require.True(t, alert.PercentageAboveThreshold.Valid)
	assert.Equal(t, "33.3", alert.PercentageAboveThreshold.Decimal.String())
}

func TestComputeAnalytics_ExplicitThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold string
		wantIDs   []string
		wantUsed  float64
	}{
		{name: "numeric", threshold: "150", wantIDs: []string{"mid", "high"}, wantUsed: 150},
		{name: "padded", threshold: " 150 ", wantIDs: []string{"mid", "high"}, wantUsed: 150},
		{name: "non-numeric falls back to default", threshold: "lots", wantIDs: []string{"high"}, wantUsed: 450},
		{name: "zero accepted", threshold: "0", wantIDs: []string{"low", "mid", "high"}, wantUsed: 0},
		{name: "negative accepted", threshold: "-10", wantIDs: []string{"low", "mid", "high"}, wantUsed: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ComputeAnalytics(thresholdBills(), tt.threshold)

			var ids []string
			for _, a := range res.HighConsumptionAlerts {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.InDelta(t, tt.wantUsed, res.ThresholdUsed, 1e-9)
		})
	}
}

func TestComputeAnalytics_ZeroThresholdLeavesPercentageNull(t *testing.T) {
	bills := append(thresholdBills(), bill("none", "April", 2024, "water", 0, 0, 3))

	res := ComputeAnalytics(bills, "0")

	require.Len(t, res.HighConsumptionAlerts, 3)
	for _, a := range res.HighConsumptionAlerts {
		assert.NotEqual(t, "none", a.ID)
		assert.False(t, a.PercentageAboveThreshold.Valid)
	}
}

func TestComputeAnalytics_DefaultThresholdUsesGivenSet(t *testing.T) {
	all := []models.Bill{
		bill("e1", "January", 2024, "electricity", 100, 50, 0),
		bill("e2", "February", 2024, "electricity", 400, 180, 1),
		bill("w1", "January", 2024, "water", 1000, 30, 2),
		bill("w2", "February", 2024, "water", 1000, 30, 3),
	}

	// Over everything the threshold is 937.5, which e2 stays under.
	assert.Equal(t, []string{"w1", "w2"}, alertIDs(ComputeAnalytics(all, "")))

	res := ComputeAnalytics(FilterByUtility(all, "electricity"), "")
	assert.InDelta(t, 375, res.ThresholdUsed, 1e-9)
	assert.Equal(t, []string{"e2"}, alertIDs(res))
}

func TestComputeAnalytics_RoundsDisplayAverages(t *testing.T) {
	bills := []models.Bill{
		bill("1", "January", 2024, "gas", 100, 10, 0),
		bill("2", "February", 2024, "gas", 101, 10, 1),
		bill("3", "March", 2024, "gas", 101, 10.01, 2),
	}

	res := ComputeAnalytics(bills, "")

	assert.Equal(t, "100.67", res.AverageConsumption.String())
	assert.Equal(t, "10", res.AverageAmount.String())
	// Full precision is kept for the comparison.
	assert.InDelta(t, 151, res.ThresholdUsed, 1e-9)
}

func TestComputeAnalytics_BreakdownPartitionsInput(t *testing.T) {
	bills := []models.Bill{
		bill("1", "January", 2024, "electricity", 300, 150.25, 0),
		bill("2", "January", 2024, "water", 20, 12.5, 1),
		bill("3", "February", 2024, "electricity", 100, 49.75, 2),
		bill("4", "February", 2024, "gas", 60, 45, 3),
		bill("5", "March", 2024, "water", 40, 17.5, 4),
	}

	res := ComputeAnalytics(bills, "")
	require.Len(t, res.UtilityBreakdown, 3)

	var sum, want float64
	for _, entry := range res.UtilityBreakdown {
		sum += entry.TotalAmount
	}
	for _, b := range bills {
		want += b.Amount
	}
	assert.InDelta(t, want, sum, 1e-9)

	electricity := res.UtilityBreakdown["electricity"]
	assert.Equal(t, 2, electricity.Count)
	assert.InDelta(t, 400, electricity.TotalUnits, 1e-9)
	assert.InDelta(t, 200, electricity.AverageUnits, 1e-9)
	assert.InDelta(t, 100, electricity.AverageAmount, 1e-9)
}

func TestParseThreshold(t *testing.T) {
	v, ok := ParseThreshold("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	for _, raw := range []string{"", "  ", "abc", "NaN", "Inf"} {
		_, ok := ParseThreshold(raw)
		assert.False(t, ok, raw)
	}
}

func alertIDs(res Analytics) []string {
	var ids []string
	for _, a := range res.HighConsumptionAlerts {
		ids = append(ids, a.ID)
	}
	return ids
}
