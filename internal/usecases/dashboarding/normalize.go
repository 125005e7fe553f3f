package dashboarding

import (
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Campos alternativos de estatísticas, em ordem de preferência
var (
	clickStatisticsFields = []string{"ClickStatistics", "ClickStats", "Clicks"}
	openStatisticsFields  = []string{"OpenStatistics", "OpenStats", "Opens"}
)

// NormalizeCampaign converte um registro do Flowbiz na linha do painel.
// Valores que não convertem para inteiro viram zero.
func NormalizeCampaign(campaign domain.Campaign) domain.DashboardRow {
	row := domain.DashboardRow{
		CampaignID:   campaign.String(domain.CampaignID),
		CampaignName: campaign.String(domain.CampaignName),
		Origin:       campaign.String(domain.Origin),
		EmailsSent:   utils.ToIntOrZero(firstTruthy(campaign, domain.TotalSent, domain.EmailsSent)),
		UniqueClicks: uniqueClicks(campaign),
		TotalOpens:   totalOpens(campaign),
		QtdLeads:     utils.ToIntOrZero(campaign[domain.QtdLeads]),
		QtdAcessos:   utils.ToIntOrZero(campaign[domain.QtdAcessos]),
	}

	if row.Origin == "" {
		row.Origin = campaign.String(domain.OriginAPI)
	}

	row.TotalClicks = row.UniqueClicks
	if value := campaign[domain.TotalClicks]; value != nil {
		if clicks, err := utils.ToInt(value); err == nil {
			row.TotalClicks = clicks
		}
	}

	if sendDate, ok := utils.FirstParsableDate(campaign); ok {
		row.SendDate = &sendDate
	}

	return row
}

func NormalizeCampaigns(campaigns []domain.Campaign) []domain.DashboardRow {
	rows := make([]domain.DashboardRow, 0, len(campaigns))
	for _, campaign := range campaigns {
		rows = append(rows, NormalizeCampaign(campaign))
	}
	return rows
}

func firstTruthy(campaign domain.Campaign, fields ...string) any {
	for _, field := range fields {
		if value := campaign[field]; utils.IsTruthy(value) {
			return value
		}
	}
	return nil
}

// uniqueClicks usa UniqueClicks quando presente; senão soma as estatísticas de cliques
func uniqueClicks(campaign domain.Campaign) int {
	if value := campaign[domain.UniqueClicks]; value != nil {
		return utils.ToIntOrZero(value)
	}

	total, err := sumStatistics(firstTruthy(campaign, clickStatisticsFields...), "Unique", "Total", "Clicks")
	if err != nil {
		return 0
	}
	return total
}

// totalOpens usa TotalOpens quando preenchido; senão soma as estatísticas de aberturas
func totalOpens(campaign domain.Campaign) int {
	if value := campaign[domain.TotalOpens]; utils.IsTruthy(value) {
		return utils.ToIntOrZero(value)
	}

	stats, isMap := firstTruthy(campaign, openStatisticsFields...).(map[string]any)
	if !isMap {
		return 0
	}

	total, err := sumStatistics(stats, "Unique", "Total")
	if err != nil {
		return 0
	}
	return total
}

// sumStatistics soma estatísticas em objeto ou lista. Em objetos, valores
// simples que não convertem são ignorados; itens objeto usam o primeiro
// campo presente de keys.
func sumStatistics(stats any, keys ...string) (int, error) {
	total := 0

	switch typed := stats.(type) {
	case map[string]any:
		for _, value := range typed {
			if item, ok := value.(map[string]any); ok {
				count, err := utils.ToInt(firstPresent(item, keys[:min(len(keys), 2)]...))
				if err != nil {
					return 0, err
				}
				total += count
				continue
			}
			if count, err := utils.ToInt(value); err == nil {
				total += count
			}
		}
	case []any:
		for _, value := range typed {
			item, ok := value.(map[string]any)
			if !ok {
				continue
			}
			count, err := utils.ToInt(firstPresent(item, keys...))
			if err != nil {
				return 0, err
			}
			total += count
		}
	}

	return total, nil
}

func firstPresent(item map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := item[key]; ok {
			return value
		}
	}
	return nil
}
