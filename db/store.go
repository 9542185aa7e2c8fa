package db

import (
	"context"
	"errors"
	"time"

	"github.com/VivekbirN/SDP-project/models"
)

// ErrNotFound is returned when no bill has the requested id.
var ErrNotFound = errors.New("bill not found")

// BillStore persists bills. Implementations compute CostPerUnit through
// models.Bill.Apply on every create and update.
type BillStore interface {
	// ListAll returns the bills matching the filter, in no particular order.
	ListAll(ctx context.Context, filter models.BillFilter) ([]models.Bill, error)
	// FindLatestCreated returns the most recently created matching bill, or
	// nil when there is none.
	FindLatestCreated(ctx context.Context, filter models.BillFilter) (*models.Bill, error)
	Get(ctx context.Context, id string) (models.Bill, error)
	Create(ctx context.Context, in models.BillInput) (models.Bill, error)
	Update(ctx context.Context, id string, in models.BillInput) (models.Bill, error)
	Delete(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (models.Bill, error)
}

var (
	_ BillStore = (*MemoryBillStore)(nil)
	_ BillStore = (*SQLBillStore)(nil)
)
