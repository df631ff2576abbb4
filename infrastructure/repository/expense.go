package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/founderhq/founderhq-api/infrastructure/database/postgres"
	"github.com/founderhq/founderhq-api/internal/domain"
)

const (
	expensesTable = "expenses"
)

type ExpenseRepository interface {
	Create(expense *domain.Expense) error
	GetByWorkspace(workspaceID string) ([]*domain.Expense, error)
	GetByDateRange(workspaceID, startDate, endDate string) ([]*domain.Expense, error)
	DeleteOlderThan(workspaceID string, days int) (int64, error)
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) Create(expense *domain.Expense) error {
	query, args, err := squirrel.
		Insert(expensesTable).
		Columns("id", "workspace_id", "date", "category", "amount", "description", "vendor", "payment_method").
		Values(
			expense.ID,
			expense.WorkspaceID,
			expense.Date,
			expense.Category,
			expense.Amount,
			expense.Description,
			expense.Vendor,
			expense.PaymentMethod,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *expenseRepository) GetByWorkspace(workspaceID string) ([]*domain.Expense, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExpenses(query, args...)
}

func (r *expenseRepository) GetByDateRange(workspaceID, startDate, endDate string) ([]*domain.Expense, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"date": startDate}).
		Where(squirrel.LtOrEq{"date": endDate}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExpenses(query, args...)
}

func (r *expenseRepository) DeleteOlderThan(workspaceID string, days int) (int64, error) {
	query, args, err := squirrel.
		Delete(expensesTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		Where(fmt.Sprintf("date < (CURRENT_DATE - INTERVAL '%d days')::text", days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *expenseRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select("id, workspace_id, date, category, amount, description, vendor, payment_method, created_at, updated_at").
		From(expensesTable)
}

func (r *expenseRepository) queryExpenses(query string, args ...interface{}) ([]*domain.Expense, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense := &domain.Expense{}
		err := rows.Scan(
			&expense.ID,
			&expense.WorkspaceID,
			&expense.Date,
			&expense.Category,
			&expense.Amount,
			&expense.Description,
			&expense.Vendor,
			&expense.PaymentMethod,
			&expense.CreatedAt,
			&expense.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}
