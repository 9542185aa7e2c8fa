package models

import (
	"strconv"
	"strings"
	"time"
)

// Bill represents one recorded utility bill for a calendar month.
type Bill struct {
	ID            string     `json:"id"`
	Month         string     `json:"month"`
	Year          int        `json:"year"`
	UtilityType   string     `json:"utilityType"`
	UnitsConsumed float64    `json:"unitsConsumed"`
	Amount        float64    `json:"amount"`
	BillNumber    string     `json:"billNumber"`
	IsPaid        bool       `json:"isPaid"`
	PaymentDate   *time.Time `json:"paymentDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	// Computed fields
	CostPerUnit float64 `json:"costPerUnit"` // amount / unitsConsumed, 0 when no units
}

// Period returns the display label of the bill's period, e.g. "March 2024".
func (b Bill) Period() string {
	return b.Month + " " + strconv.Itoa(b.Year)
}

// Apply replaces the primary fields of b with the input and recomputes the
// derived cost per unit. Stores call it on every create and update.
func (b *Bill) Apply(in BillInput) {
	b.Month = in.Month
	b.Year = in.Year
	b.UtilityType = in.UtilityType
	if in.UnitsConsumed != nil {
		b.UnitsConsumed = *in.UnitsConsumed
	}
	if in.Amount != nil {
		b.Amount = *in.Amount
	}
	b.BillNumber = in.BillNumber
	b.CostPerUnit = CostPerUnit(b.Amount, b.UnitsConsumed)
}

// CostPerUnit is amount divided by units, or 0 when no units were consumed.
func CostPerUnit(amount, units float64) float64 {
	if units > 0 {
		return amount / units
	}
	return 0
}

// BillFilter narrows a bill query. The zero value matches every bill.
type BillFilter struct {
	UtilityType string
}

// Matches reports whether the bill passes the filter.
func (f BillFilter) Matches(b Bill) bool {
	return f.UtilityType == "" || b.UtilityType == f.UtilityType
}

// BillInput is used for creating/updating bills.
type BillInput struct {
	Month         string   `json:"month" validate:"required,month"`
	Year          int      `json:"year" validate:"required,min=2000,max=2100"`
	UtilityType   string   `json:"utilityType" validate:"required,oneof=electricity water gas"`
	UnitsConsumed *float64 `json:"unitsConsumed" validate:"required,gte=0"`
	Amount        *float64 `json:"amount" validate:"required,gte=0"`
	BillNumber    string   `json:"billNumber" validate:"max=64"`
}

// Normalize lowercases the utility type and maps the month onto its
// canonical calendar name when it matches one case-insensitively.
func (b *BillInput) Normalize() {
	b.UtilityType = strings.ToLower(strings.TrimSpace(b.UtilityType))
	if name, ok := CanonicalMonth(b.Month); ok {
		b.Month = name
	}
	b.BillNumber = strings.TrimSpace(b.BillNumber)
}

func (b *BillInput) Validate() string {
	b.Normalize()
	return validationMessage(validate.Struct(b))
}

// PaymentInput is used for marking a bill as paid.
type PaymentInput struct {
	PaymentDate *time.Time `json:"paymentDate"`
}
