package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/google/uuid"
)

const billColumns = `id, month, year, utility_type, units_consumed, amount, cost_per_unit,
	bill_number, is_paid, payment_date, created_at, updated_at`

const billSelectQuery = `SELECT ` + billColumns + ` FROM bills`

// SQLBillStore stores bills in PostgreSQL.
type SQLBillStore struct {
	db *sql.DB
}

// NewSQLBillStore wraps an open database. Run Migrate first.
func NewSQLBillStore(db *sql.DB) *SQLBillStore {
	return &SQLBillStore{db: db}
}

func scanBill(scanner interface{ Scan(...any) error }) (models.Bill, error) {
	var b models.Bill
	var paymentDate sql.NullTime
	err := scanner.Scan(&b.ID, &b.Month, &b.Year, &b.UtilityType, &b.UnitsConsumed, &b.Amount,
		&b.CostPerUnit, &b.BillNumber, &b.IsPaid, &paymentDate, &b.CreatedAt, &b.UpdatedAt)
	if err == nil && paymentDate.Valid {
		b.PaymentDate = &paymentDate.Time
	}
	return b, err
}

// filterClause builds the WHERE clause for a filter, numbering placeholders
// from 1.
func filterClause(filter models.BillFilter) (string, []any) {
	if filter.UtilityType == "" {
		return "", nil
	}
	return " WHERE utility_type = $1", []any{filter.UtilityType}
}

func (s *SQLBillStore) ListAll(ctx context.Context, filter models.BillFilter) ([]models.Bill, error) {
	where, args := filterClause(filter)
	rows, err := s.db.QueryContext(ctx, billSelectQuery+where, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	return bills, nil
}

func (s *SQLBillStore) FindLatestCreated(ctx context.Context, filter models.BillFilter) (*models.Bill, error) {
	where, args := filterClause(filter)
	b, err := scanBill(s.db.QueryRowContext(ctx, billSelectQuery+where+" ORDER BY created_at DESC LIMIT 1", args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding latest bill: %w", err)
	}
	return &b, nil
}

func (s *SQLBillStore) Get(ctx context.Context, id string) (models.Bill, error) {
	b, err := scanBill(s.db.QueryRowContext(ctx, billSelectQuery+" WHERE id = $1", id))
	return b, notFound(err, "getting bill")
}

func (s *SQLBillStore) Create(ctx context.Context, in models.BillInput) (models.Bill, error) {
	b := models.Bill{ID: uuid.NewString()}
	b.Apply(in)

	created, err := scanBill(s.db.QueryRowContext(ctx, `INSERT INTO bills
		(id, month, year, utility_type, units_consumed, amount, cost_per_unit, bill_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+billColumns,
		b.ID, b.Month, b.Year, b.UtilityType, b.UnitsConsumed, b.Amount, b.CostPerUnit, b.BillNumber))
	if err != nil {
		return models.Bill{}, fmt.Errorf("creating bill: %w", err)
	}
	return created, nil
}

func (s *SQLBillStore) Update(ctx context.Context, id string, in models.BillInput) (models.Bill, error) {
	var b models.Bill
	b.Apply(in)

	updated, err := scanBill(s.db.QueryRowContext(ctx, `UPDATE bills SET month = $1, year = $2, utility_type = $3,
		units_consumed = $4, amount = $5, cost_per_unit = $6, bill_number = $7, updated_at = now()
		WHERE id = $8 RETURNING `+billColumns,
		b.Month, b.Year, b.UtilityType, b.UnitsConsumed, b.Amount, b.CostPerUnit, b.BillNumber, id))
	return updated, notFound(err, "updating bill")
}

func (s *SQLBillStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLBillStore) MarkPaid(ctx context.Context, id string, paidAt time.Time) (models.Bill, error) {
	b, err := scanBill(s.db.QueryRowContext(ctx, `UPDATE bills SET is_paid = TRUE, payment_date = $1, updated_at = now()
		WHERE id = $2 RETURNING `+billColumns, paidAt, id))
	return b, notFound(err, "marking bill paid")
}

// notFound maps sql.ErrNoRows to ErrNotFound and wraps anything else.
func notFound(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
