package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

const (
	campaignAccessesTable = "autobot.campanha_acessos ca"
	campaignFormsTable    = "autobot.formulario f"
	campaignAccessesJoin  = "autobot.campanhas c ON c.id = ca.campanha_id"
	campaignFormsJoin     = "autobot.campanhas c ON c.id = f.campanha_id"
	flowbizCampaignColumn = "c.id_campanha_flowbiz"
)

type CampaignStatsRepository interface {
	GetStatsByFlowbizID(ctx context.Context, flowbizID string) (*domain.CampaignStats, error)
}

type campaignStatsRepository struct {
	conn postgres.Queryer
}

func NewCampaignStatsRepository(conn postgres.Queryer) CampaignStatsRepository {
	return &campaignStatsRepository{
		conn: conn,
	}
}

// GetStatsByFlowbizID conta acessos e formulários da campanha pelo id do Flowbiz
func (r *campaignStatsRepository) GetStatsByFlowbizID(ctx context.Context, flowbizID string) (*domain.CampaignStats, error) {
	accessQuery, accessArgs, err := buildAccessCountQuery(flowbizID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var accesses int
	if err := r.conn.QueryRowContext(ctx, accessQuery, accessArgs...).Scan(&accesses); err != nil {
		return nil, errors.Wrapf(err, "erro ao contar acessos da campanha %s", flowbizID)
	}

	leadQuery, leadArgs, err := buildLeadCountQuery(flowbizID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var leads int
	if err := r.conn.QueryRowContext(ctx, leadQuery, leadArgs...).Scan(&leads); err != nil {
		return nil, errors.Wrapf(err, "erro ao contar leads da campanha %s", flowbizID)
	}

	return &domain.CampaignStats{
		Accesses: accesses,
		Leads:    leads,
	}, nil
}

func buildAccessCountQuery(flowbizID string) (string, []any, error) {
	return squirrel.
		Select("COUNT(*)").
		From(campaignAccessesTable).
		Join(campaignAccessesJoin).
		Where(squirrel.Eq{flowbizCampaignColumn: flowbizID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildLeadCountQuery(flowbizID string) (string, []any, error) {
	return squirrel.
		Select("COUNT(*)").
		From(campaignFormsTable).
		Join(campaignFormsJoin).
		Where(squirrel.Eq{flowbizCampaignColumn: flowbizID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
