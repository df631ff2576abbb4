package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/founderhq/founderhq-api/infrastructure/database/postgres"
	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/lib/pq"
)

const (
	revenueTransactionsTable = "revenue_transactions"
)

type RevenueTransactionRepository interface {
	Create(tx *domain.RevenueTransaction) error
	GetByWorkspace(workspaceID string) ([]*domain.RevenueTransaction, error)
	GetByDateRange(workspaceID, startDate, endDate string) ([]*domain.RevenueTransaction, error)
	GetByStatus(workspaceID, status string) ([]*domain.RevenueTransaction, error)
}

type revenueTransactionRepository struct {
	conn *postgres.Connection
}

func NewRevenueTransactionRepository(conn *postgres.Connection) RevenueTransactionRepository {
	return &revenueTransactionRepository{
		conn: conn,
	}
}

func (r *revenueTransactionRepository) Create(tx *domain.RevenueTransaction) error {
	query, args, err := squirrel.
		Insert(revenueTransactionsTable).
		Columns(
			"id", "workspace_id", "transaction_date", "amount", "currency",
			"transaction_type", "status", "crm_item_id", "contact_id",
			"revenue_category", "product_service_id", "quantity", "unit_price",
		).
		Values(
			tx.ID,
			tx.WorkspaceID,
			tx.TransactionDate,
			tx.Amount,
			tx.Currency,
			tx.TransactionType,
			tx.Status,
			tx.CRMItemID,
			tx.ContactID,
			tx.RevenueCategory,
			tx.ProductServiceID,
			tx.Quantity,
			tx.UnitPrice,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *revenueTransactionRepository) GetByWorkspace(workspaceID string) ([]*domain.RevenueTransaction, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("transaction_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryTransactions(query, args...)
}

func (r *revenueTransactionRepository) GetByDateRange(workspaceID, startDate, endDate string) ([]*domain.RevenueTransaction, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"transaction_date": startDate}).
		Where(squirrel.LtOrEq{"transaction_date": endDate}).
		OrderBy("transaction_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryTransactions(query, args...)
}

func (r *revenueTransactionRepository) GetByStatus(workspaceID, status string) ([]*domain.RevenueTransaction, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"workspace_id": workspaceID, "status": status}).
		OrderBy("transaction_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryTransactions(query, args...)
}

func (r *revenueTransactionRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"id, workspace_id, transaction_date, amount, currency, transaction_type, " +
				"status, crm_item_id, contact_id, revenue_category, product_service_id, " +
				"quantity, unit_price, created_at, updated_at",
		).
		From(revenueTransactionsTable)
}

func (r *revenueTransactionRepository) queryTransactions(query string, args ...interface{}) ([]*domain.RevenueTransaction, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.RevenueTransaction, 0)
	for rows.Next() {
		tx := &domain.RevenueTransaction{}
		err := rows.Scan(
			&tx.ID,
			&tx.WorkspaceID,
			&tx.TransactionDate,
			&tx.Amount,
			&tx.Currency,
			&tx.TransactionType,
			&tx.Status,
			&tx.CRMItemID,
			&tx.ContactID,
			&tx.RevenueCategory,
			&tx.ProductServiceID,
			&tx.Quantity,
			&tx.UnitPrice,
			&tx.CreatedAt,
			&tx.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear revenue transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}
