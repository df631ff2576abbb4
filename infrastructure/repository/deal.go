package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/founderhq/founderhq-api/infrastructure/database/postgres"
	"github.com/founderhq/founderhq-api/internal/domain"
)

const (
	dealsTable = "deals"
)

type DealRepository interface {
	Create(deal *domain.Deal) error
	GetByWorkspace(workspaceID string) ([]*domain.Deal, error)
	GetByStage(workspaceID, stage string) ([]*domain.Deal, error)
}

type dealRepository struct {
	conn *postgres.Connection
}

func NewDealRepository(conn *postgres.Connection) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

func (r *dealRepository) Create(deal *domain.Deal) error {
	query, args, err := squirrel.
		Insert(dealsTable).
		Columns(
			"id", "workspace_id", "name", "stage", "value", "total_value",
			"probability", "expected_close_date", "product_service_id",
		).
		Values(
			deal.ID,
			deal.WorkspaceID,
			deal.Name,
			deal.Stage,
			deal.Value,
			deal.TotalValue,
			deal.Probability,
			deal.ExpectedCloseDate,
			deal.ProductServiceID,
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

func (r *dealRepository) GetByWorkspace(workspaceID string) ([]*domain.Deal, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryDeals(query, args...)
}

func (r *dealRepository) GetByStage(workspaceID, stage string) ([]*domain.Deal, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"workspace_id": workspaceID, "stage": stage}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryDeals(query, args...)
}

func (r *dealRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"id, workspace_id, name, stage, value, total_value, probability, " +
				"expected_close_date, product_service_id, created_at, updated_at",
		).
		From(dealsTable)
}

func (r *dealRepository) queryDeals(query string, args ...interface{}) ([]*domain.Deal, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal := &domain.Deal{}
		err := rows.Scan(
			&deal.ID,
			&deal.WorkspaceID,
			&deal.Name,
			&deal.Stage,
			&deal.Value,
			&deal.TotalValue,
			&deal.Probability,
			&deal.ExpectedCloseDate,
			&deal.ProductServiceID,
			&deal.CreatedAt,
			&deal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear deal: %w", err)
		}
		deals = append(deals, deal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}
