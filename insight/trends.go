package insight

import (
	"sort"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/samber/lo"
)

// Trend aggregates all bills of one (year, month) period.
type Trend struct {
	Month         string   `json:"month"`
	Year          int      `json:"year"`
	UnitsConsumed float64  `json:"unitsConsumed"`
	Amount        float64  `json:"amount"`
	Period        string   `json:"period"`
	UtilityTypes  []string `json:"utilityTypes"`
	Count         int      `json:"count"`
}

type periodKey struct {
	year  int
	month string
}

// ComputeTrends groups bills by exact (year, month) and returns one Trend per
// period, ordered by year and then calendar month. Utility types keep the
// order in which they were first seen.
func ComputeTrends(bills []models.Bill) []Trend {
	groups := make(map[periodKey]*Trend)
	for _, b := range bills {
		key := periodKey{year: b.Year, month: b.Month}
		t, ok := groups[key]
		if !ok {
			t = &Trend{
				Month:        b.Month,
				Year:         b.Year,
				Period:       b.Period(),
				UtilityTypes: []string{},
			}
			groups[key] = t
		}
		t.UnitsConsumed += b.UnitsConsumed
		t.Amount += b.Amount
		t.Count++
		if !lo.Contains(t.UtilityTypes, b.UtilityType) {
			t.UtilityTypes = append(t.UtilityTypes, b.UtilityType)
		}
	}

	trends := make([]Trend, 0, len(groups))
	for _, t := range groups {
		trends = append(trends, *t)
	}
	sort.Slice(trends, func(i, j int) bool {
		return periodBefore(trends[i].Year, trends[i].Month, trends[j].Year, trends[j].Month)
	})
	return trends
}

// periodBefore orders periods by year, then calendar month. Unknown month
// names sort after December, by name.
func periodBefore(y1 int, m1 string, y2 int, m2 string) bool {
	if y1 != y2 {
		return y1 < y2
	}
	i1, j1 := monthRank(m1), monthRank(m2)
	if i1 != j1 {
		return i1 < j1
	}
	return m1 < m2
}

func monthRank(month string) int {
	if i, ok := models.MonthIndex(month); ok {
		return i
	}
	return len(models.Months) + 1
}
