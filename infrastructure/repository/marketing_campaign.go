package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/founderhq/founderhq-api/infrastructure/database/postgres"
	"github.com/founderhq/founderhq-api/internal/domain"
)

const (
	marketingCampaignsTable = "marketing_campaigns"
)

type MarketingCampaignRepository interface {
	Create(campaign *domain.MarketingCampaign) error
	GetByWorkspace(workspaceID string) ([]*domain.MarketingCampaign, error)
}

type marketingCampaignRepository struct {
	conn *postgres.Connection
}

func NewMarketingCampaignRepository(conn *postgres.Connection) MarketingCampaignRepository {
	return &marketingCampaignRepository{
		conn: conn,
	}
}

func (r *marketingCampaignRepository) Create(campaign *domain.MarketingCampaign) error {
	query, args, err := squirrel.
		Insert(marketingCampaignsTable).
		Columns("id", "workspace_id", "name", "status", "channel", "due_date").
		Values(
			campaign.ID,
			campaign.WorkspaceID,
			campaign.Name,
			campaign.Status,
			campaign.Channel,
			campaign.DueDate,
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

func (r *marketingCampaignRepository) GetByWorkspace(workspaceID string) ([]*domain.MarketingCampaign, error) {
	query, args, err := squirrel.
		Select("id, workspace_id, name, status, channel, due_date, created_at, updated_at").
		From(marketingCampaignsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at ASC").
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

	campaigns := make([]*domain.MarketingCampaign, 0)
	for rows.Next() {
		campaign := &domain.MarketingCampaign{}
		err := rows.Scan(
			&campaign.ID,
			&campaign.WorkspaceID,
			&campaign.Name,
			&campaign.Status,
			&campaign.Channel,
			&campaign.DueDate,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear marketing campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
