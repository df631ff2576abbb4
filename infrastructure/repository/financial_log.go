package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/founderhq/founderhq-api/infrastructure/database/postgres"
	"github.com/founderhq/founderhq-api/internal/domain"
)

const (
	financialLogsTable = "financial_logs"
)

type FinancialLogRepository interface {
	Create(log *domain.FinancialLog) error
	GetByWorkspace(workspaceID string) ([]*domain.FinancialLog, error)
	GetByDateRange(workspaceID, startDate, endDate string) ([]*domain.FinancialLog, error)
	ListWorkspaces() ([]string, error)
}

type financialLogRepository struct {
	conn *postgres.Connection
}

func NewFinancialLogRepository(conn *postgres.Connection) FinancialLogRepository {
	return &financialLogRepository{
		conn: conn,
	}
}

func (r *financialLogRepository) Create(log *domain.FinancialLog) error {
	query, args, err := squirrel.
		Insert(financialLogsTable).
		Columns("id", "workspace_id", "date", "mrr", "gmv", "signups").
		Values(log.ID, log.WorkspaceID, log.Date, log.MRR, log.GMV, log.Signups).
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

func (r *financialLogRepository) GetByWorkspace(workspaceID string) ([]*domain.FinancialLog, error) {
	query, args, err := squirrel.
		Select("id, workspace_id, date, mrr, gmv, signups, created_at, updated_at").
		From(financialLogsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("date ASC, created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLogs(query, args...)
}

func (r *financialLogRepository) GetByDateRange(workspaceID, startDate, endDate string) ([]*domain.FinancialLog, error) {
	query, args, err := squirrel.
		Select("id, workspace_id, date, mrr, gmv, signups, created_at, updated_at").
		From(financialLogsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"date": startDate}).
		Where(squirrel.LtOrEq{"date": endDate}).
		OrderBy("date ASC, created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLogs(query, args...)
}

// ListWorkspaces retorna os workspaces distintos que possuem registros financeiros
func (r *financialLogRepository) ListWorkspaces() ([]string, error) {
	query, _, err := squirrel.
		Select("DISTINCT workspace_id").
		From(financialLogsTable).
		OrderBy("workspace_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	workspaces := make([]string, 0)
	for rows.Next() {
		var workspaceID string
		if err := rows.Scan(&workspaceID); err != nil {
			return nil, fmt.Errorf("erro ao escanear workspace: %w", err)
		}
		workspaces = append(workspaces, workspaceID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return workspaces, nil
}

func (r *financialLogRepository) queryLogs(query string, args ...interface{}) ([]*domain.FinancialLog, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.FinancialLog, 0)
	for rows.Next() {
		entry := &domain.FinancialLog{}
		err := rows.Scan(
			&entry.ID,
			&entry.WorkspaceID,
			&entry.Date,
			&entry.MRR,
			&entry.GMV,
			&entry.Signups,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear financial log: %w", err)
		}
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}
