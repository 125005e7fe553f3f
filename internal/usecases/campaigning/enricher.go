package campaigning

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

type Enricher interface {
	Enrich(ctx context.Context, campaign domain.Campaign) domain.Campaign
}

type StatsEnricher struct {
	statsRepo repository.CampaignStatsRepository
}

// NewEnricher cria o enriquecedor. Sem repositório os contadores locais ficam zerados.
func NewEnricher(statsRepo repository.CampaignStatsRepository) *StatsEnricher {
	return &StatsEnricher{
		statsRepo: statsRepo,
	}
}

// Enrich completa a campanha com a origem, os contadores locais e as métricas
// normalizadas. Nunca falha: erros de banco viram contadores zerados.
func (e *StatsEnricher) Enrich(ctx context.Context, campaign domain.Campaign) domain.Campaign {
	if campaign == nil {
		return campaign
	}

	if !utils.IsTruthy(campaign[domain.Origin]) {
		campaign[domain.Origin] = originFromLabel(campaign.String(domain.OriginAPI))
	}

	campaign[domain.QtdLeads] = 0
	campaign[domain.QtdAcessos] = 0

	if campaignID := campaign.String(domain.CampaignID); campaignID != "" && e.statsRepo != nil {
		stats, err := e.statsRepo.GetStatsByFlowbizID(ctx, campaignID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("Erro ao buscar contadores locais da campanha")
			metrics.StatsLookupErrors.Inc()
		} else if stats != nil {
			campaign[domain.QtdLeads] = stats.Leads
			campaign[domain.QtdAcessos] = stats.Accesses
		}
	}

	normalizeDeliveryMetrics(campaign)

	return campaign
}

func originFromLabel(label string) string {
	if label == "" {
		return domain.OriginPlaceholder
	}
	return strings.TrimPrefix(label, config.AccountKeyPrefix)
}

// normalizeDeliveryMetrics só grava quando algum valor é positivo.
// Um valor que não converte para inteiro deixa as três métricas zeradas.
func normalizeDeliveryMetrics(campaign domain.Campaign) {
	clicksValue, hasUniqueClicks := campaign[domain.UniqueClicks]
	if !hasUniqueClicks {
		clicksValue = campaign[domain.TotalClicks]
	}

	sent, errSent := utils.ToInt(campaign[domain.TotalSent])
	opens, errOpens := utils.ToInt(campaign[domain.TotalOpens])
	clicks, errClicks := utils.ToInt(clicksValue)
	if errSent != nil || errOpens != nil || errClicks != nil {
		sent, opens, clicks = 0, 0, 0
	}

	if sent > 0 || opens > 0 || clicks > 0 {
		campaign[domain.EmailsSent] = sent
		campaign[domain.TotalOpens] = opens
		campaign[domain.TotalClicks] = clicks
	}
}
