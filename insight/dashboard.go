package insight

import (
	"sort"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/samber/lo"
)

// RecentBillsLimit caps Dashboard.RecentBills.
const RecentBillsLimit = 5

// Dashboard is the at-a-glance view of the bill collection.
type Dashboard struct {
	TotalBills   int            `json:"totalBills"`
	PaidBills    int            `json:"paidBills"`
	UnpaidBills  int            `json:"unpaidBills"`
	TotalAmount  float64        `json:"totalAmount"`
	PaidAmount   float64        `json:"paidAmount"`
	UnpaidAmount float64        `json:"unpaidAmount"`
	BillsByType  map[string]int `json:"billsByType"`
	RecentBills  []models.Bill  `json:"recentBills"`
}

// ComputeDashboard counts and totals the bills by payment status and lists
// the most recently created ones, newest first.
func ComputeDashboard(bills []models.Bill) Dashboard {
	paid, unpaid := lo.FilterReject(bills, func(b models.Bill, _ int) bool { return b.IsPaid })

	byType := make(map[string]int, len(models.UtilityTypes))
	for _, u := range models.UtilityTypes {
		byType[u] = 0
	}
	for _, b := range bills {
		byType[b.UtilityType]++
	}

	recent := make([]models.Bill, len(bills))
	copy(recent, bills)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > RecentBillsLimit {
		recent = recent[:RecentBillsLimit]
	}

	return Dashboard{
		TotalBills:   len(bills),
		PaidBills:    len(paid),
		UnpaidBills:  len(unpaid),
		TotalAmount:  lo.SumBy(bills, amountOf),
		PaidAmount:   lo.SumBy(paid, amountOf),
		UnpaidAmount: lo.SumBy(unpaid, amountOf),
		BillsByType:  byType,
		RecentBills:  recent,
	}
}
