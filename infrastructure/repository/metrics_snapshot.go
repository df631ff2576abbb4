package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/founderhq/founderhq-api/infrastructure/database/postgres"
	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/lib/pq"
)

const (
	metricsSnapshotsTable = "metrics_snapshots ms"
)

type MetricsSnapshotRepository interface {
	GetByWorkspaceAndPeriod(workspaceID, period string) (*domain.MetricsSnapshot, error)
	GetByWorkspace(workspaceID string) ([]*domain.MetricsSnapshot, error)
	SaveOrUpdate(snapshot *domain.MetricsSnapshot) error
	GetAllPeriods() ([]string, error)
	DeleteOlderThan(months int) (int64, error)
}

type metricsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricsSnapshotRepository(conn *postgres.Connection) MetricsSnapshotRepository {
	return &metricsSnapshotRepository{
		conn: conn,
	}
}

func (r *metricsSnapshotRepository) GetByWorkspaceAndPeriod(workspaceID, period string) (*domain.MetricsSnapshot, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.workspace_id, ms.period, ms.metrics, ms.created_at, ms.updated_at").
		From(metricsSnapshotsTable).
		Where(squirrel.Eq{"ms.workspace_id": workspaceID, "ms.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshotRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *metricsSnapshotRepository) GetByWorkspace(workspaceID string) ([]*domain.MetricsSnapshot, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.workspace_id, ms.period, ms.metrics, ms.created_at, ms.updated_at").
		From(metricsSnapshotsTable).
		Where(squirrel.Eq{"ms.workspace_id": workspaceID}).
		OrderBy("ms.period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricsSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear metrics snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *metricsSnapshotRepository) SaveOrUpdate(snapshot *domain.MetricsSnapshot) error {
	var metricsJSON []byte
	var err error

	if snapshot.Metrics != nil {
		metricsJSON, err = json.Marshal(snapshot.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar SaaSMetrics para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("metrics_snapshots").
		Columns("workspace_id", "period", "metrics").
		Values(
			snapshot.WorkspaceID,
			snapshot.Period,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (workspace_id, period) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *metricsSnapshotRepository) GetAllPeriods() ([]string, error) {
	query, _, err := squirrel.
		Select("DISTINCT ms.period").
		From(metricsSnapshotsTable).
		OrderBy("ms.period ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *metricsSnapshotRepository) DeleteOlderThan(months int) (int64, error) {
	query, args, err := squirrel.
		Delete("metrics_snapshots").
		Where(fmt.Sprintf("period < to_char(CURRENT_DATE - INTERVAL '%d months', 'YYYY-MM')", months)).
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

func (r *metricsSnapshotRepository) scanSnapshotRow(row *sql.Row) (*domain.MetricsSnapshot, error) {
	snapshot := &domain.MetricsSnapshot{}
	var metricsJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.WorkspaceID,
		&snapshot.Period,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		metrics := &domain.SaaSMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		snapshot.Metrics = metrics
	}

	return snapshot, nil
}

func (r *metricsSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.MetricsSnapshot, error) {
	snapshot := &domain.MetricsSnapshot{}
	var metricsJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.WorkspaceID,
		&snapshot.Period,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		metrics := &domain.SaaSMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		snapshot.Metrics = metrics
	}

	return snapshot, nil
}
