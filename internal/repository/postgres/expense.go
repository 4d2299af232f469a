package postgres

import (
	"context"
	"database/sql"

	"fleetops/internal/domain"
	"fleetops/internal/repository"
)

// ExpenseRepository is a PostgreSQL implementation of repository.ExpenseRepository.
type ExpenseRepository struct {
	q Querier
}

// NewExpenseRepository creates a new PostgreSQL expense repository.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{q: db}
}

// Create persists a new expense entry.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (id, vehicle_id, liters, cost, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		expense.ID,
		expense.VehicleID,
		expense.Liters,
		expense.Cost,
		expense.Date,
	)

	return err
}

// GetAll retrieves all expense entries, newest first. The result is
// unbounded: cost metrics sum every expense, so no row may be dropped here.
func (r *ExpenseRepository) GetAll(ctx context.Context) ([]*domain.Expense, error) {
	query := `
		SELECT id, vehicle_id, liters, cost, date
		FROM expenses ORDER BY date DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.VehicleID, &expense.Liters, &expense.Cost, &expense.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, &expense)
	}

	return expenses, rows.Err()
}

// Ensure ExpenseRepository implements repository.ExpenseRepository.
var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
