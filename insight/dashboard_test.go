package insight

import (
	"testing"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeDashboard(t *testing.T) {
	var bills []models.Bill
	for i := 0; i < 7; i++ {
		b := bill(string(rune('a'+i)), "May", 2024, models.UtilityTypes[i%3], 10, 10, i)
		b.IsPaid = i%2 == 0
		bills = append(bills, b)
	}

	d := ComputeDashboard(bills)

	assert.Equal(t, 7, d.TotalBills)
	assert.Equal(t, 4, d.PaidBills)
	assert.Equal(t, 3, d.UnpaidBills)
	assert.InDelta(t, 70, d.TotalAmount, 1e-9)
	assert.InDelta(t, 40, d.PaidAmount, 1e-9)
	assert.InDelta(t, 30, d.UnpaidAmount, 1e-9)
	assert.Equal(t, map[string]int{"electricity": 3, "water": 2, "gas": 2}, d.BillsByType)

	var recent []string
	for _, b := range d.RecentBills {
		recent = append(recent, b.ID)
	}
	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, recent)
	// The input order is left alone.
	assert.Equal(t, "a", bills[0].ID)
}

func TestComputeDashboard_Empty(t *testing.T) {
	d := ComputeDashboard(nil)

	assert.Equal(t, 0, d.TotalBills)
	assert.Empty(t, d.RecentBills)
	assert.Equal(t, map[string]int{"electricity": 0, "water": 0, "gas": 0}, d.BillsByType)
}
