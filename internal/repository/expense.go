package repository

import (
	"context"

	"fleetops/internal/domain"
)

// ExpenseRepository defines the persistence operations for expenses.
// Expenses are append-only; there is no update or delete.
type ExpenseRepository interface {
	// Create persists a new expense entry.
	Create(ctx context.Context, expense *domain.Expense) error

	// GetAll retrieves all expense entries.
	GetAll(ctx context.Context) ([]*domain.Expense, error)
}
