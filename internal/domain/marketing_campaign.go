package domain

import "time"

// Status possíveis de uma campanha de marketing
const (
	CampaignStatusPlanned    = "Planned"
	CampaignStatusInProgress = "In Progress"
	CampaignStatusPublished  = "Published"
	CampaignStatusArchived   = "Archived"
)

// MarketingCampaign representa uma campanha de marketing planejada ou em execução
type MarketingCampaign struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Channel     *string    `json:"channel,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsActive indica se a campanha está ativa (em execução ou publicada)
func (c *MarketingCampaign) IsActive() bool {
	return c.Status == CampaignStatusInProgress || c.Status == CampaignStatusPublished
}
