package dashboarding

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
)

const (
	topCampaignsLimit = 15
	opensLabel        = "Aberturas"
	uniqueClicksLabel = "Cliques (únicos)"
	statusTimeLayout  = "15:04:05"
)

type Dashboard interface {
	Metrics(ctx context.Context, filters domain.DashboardFilters) (*domain.DashboardMetrics, error)
	FilterOptions(ctx context.Context) (*domain.DashboardFilterOptions, error)
	Count(ctx context.Context) (int, error)
	RefreshSnapshot(ctx context.Context) (int, error)
}

type Service struct {
	aggregator        campaigning.Aggregator
	recordsPerAccount int
	useSnapshot       bool
	snapshot          *SnapshotStore
	now               func() time.Time
}

// NewService cria o painel. Com a sincronização ligada, as leituras usam a
// última busca do agendador e só consultam o Flowbiz enquanto ela não existe.
func NewService(cfg *config.Config, aggregator campaigning.Aggregator, snapshot *SnapshotStore) *Service {
	records := cfg.Aggregation.DashboardRecordsPerAccount
	if records <= 0 {
		records = 100
	}

	return &Service{
		aggregator:        aggregator,
		recordsPerAccount: records,
		useSnapshot:       cfg.DashboardSnapshotSync.Enabled && snapshot != nil,
		snapshot:          snapshot,
		now:               time.Now,
	}
}

// campaigns retorna a fonte de dados do painel: a última busca guardada ou uma busca nova
func (s *Service) campaigns(ctx context.Context) ([]domain.Campaign, []domain.FailedAccount, error) {
	if s.useSnapshot {
		if campaigns, failed, ok := s.snapshot.Load(); ok {
			return campaigns, failed, nil
		}
	}

	result, err := s.aggregator.FetchAll(ctx, s.recordsPerAccount, nil)
	if err != nil {
		return nil, nil, err
	}

	if s.useSnapshot {
		s.snapshot.Store(result.Campaigns, result.FailedAccounts, s.now())
	}

	return result.Campaigns, result.FailedAccounts, nil
}

// RefreshSnapshot refaz a busca agregada e substitui a cópia guardada
func (s *Service) RefreshSnapshot(ctx context.Context) (int, error) {
	result, err := s.aggregator.FetchAll(ctx, s.recordsPerAccount, nil)
	if err != nil {
		return 0, err
	}

	if s.snapshot != nil {
		s.snapshot.Store(result.Campaigns, result.FailedAccounts, s.now())
	}

	return len(result.Campaigns), nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	campaigns, _, err := s.campaigns(ctx)
	if err != nil {
		return 0, err
	}
	return len(campaigns), nil
}

// Metrics monta gráficos, tabela e status a partir das campanhas filtradas
func (s *Service) Metrics(ctx context.Context, filters domain.DashboardFilters) (*domain.DashboardMetrics, error) {
	campaigns, failed, err := s.campaigns(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().Format(statusTimeLayout)

	if len(campaigns) == 0 {
		logrus.Info("Painel sem campanhas para mostrar")
		return &domain.DashboardMetrics{
			EmailsSentTop:   []domain.DashboardRow{},
			OpensVsClicks:   []domain.ChartPoint{},
			UniqueClicksTop: []domain.DashboardRow{},
			Table:           []domain.DashboardRow{},
			Status:          fmt.Sprintf("⚠️ %s — 0 campanhas encontradas", now),
			FailedAccounts:  failed,
		}, nil
	}

	rows, dateIgnored := ApplyFilters(NormalizeCampaigns(campaigns), filters)
	if dateIgnored {
		logrus.Warn("Filtro de data ignorado: nenhuma campanha com data de envio")
	}

	totalOpens, totalUniqueClicks := 0, 0
	for _, row := range rows {
		totalOpens += row.TotalOpens
		totalUniqueClicks += row.UniqueClicks
	}

	return &domain.DashboardMetrics{
		EmailsSentTop: topBy(rows, func(row domain.DashboardRow) int { return row.EmailsSent }),
		OpensVsClicks: []domain.ChartPoint{
			{Label: opensLabel, Value: totalOpens},
			{Label: uniqueClicksLabel, Value: totalUniqueClicks},
		},
		UniqueClicksTop:   topBy(rows, func(row domain.DashboardRow) int { return row.UniqueClicks }),
		Table:             sortByDate(rows),
		TotalCampaigns:    len(rows),
		Status:            fmt.Sprintf("✓ %s — %d campanhas", now, len(rows)),
		DateFilterIgnored: dateIgnored,
		FailedAccounts:    failed,
	}, nil
}

// FilterOptions lista as origens e os nomes de campanha disponíveis, em ordem alfabética
func (s *Service) FilterOptions(ctx context.Context) (*domain.DashboardFilterOptions, error) {
	campaigns, _, err := s.campaigns(ctx)
	if err != nil {
		return nil, err
	}

	origins := make(map[string]bool)
	names := make(map[string]bool)
	for _, row := range NormalizeCampaigns(campaigns) {
		if row.Origin != "" {
			origins[row.Origin] = true
		}
		if row.CampaignName != "" {
			names[row.CampaignName] = true
		}
	}

	return &domain.DashboardFilterOptions{
		Origins:   selectOptions(origins),
		Campaigns: selectOptions(names),
	}, nil
}

func selectOptions(values map[string]bool) []domain.SelectOption {
	sorted := make([]string, 0, len(values))
	for value := range values {
		sorted = append(sorted, value)
	}
	sort.Strings(sorted)

	options := make([]domain.SelectOption, 0, len(sorted))
	for _, value := range sorted {
		options = append(options, domain.SelectOption{Label: value, Value: value})
	}
	return options
}

// ApplyFilters aplica origem, nomes, busca e período nessa ordem.
// O período só vale quando alguma linha restante tem data; o retorno indica se foi ignorado.
func ApplyFilters(rows []domain.DashboardRow, filters domain.DashboardFilters) ([]domain.DashboardRow, bool) {
	filtered := make([]domain.DashboardRow, 0, len(rows))

	search := strings.ToLower(strings.TrimSpace(filters.Search))
	for _, row := range rows {
		if filters.Origin != "" && row.Origin != filters.Origin {
			continue
		}
		if len(filters.CampaignNames) > 0 && !slices.Contains(filters.CampaignNames, row.CampaignName) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(row.CampaignName), search) {
			continue
		}
		filtered = append(filtered, row)
	}

	if filters.StartDate == nil && filters.EndDate == nil {
		return filtered, false
	}

	hasDates := slices.ContainsFunc(filtered, func(row domain.DashboardRow) bool {
		return row.SendDate != nil
	})
	if !hasDates {
		return filtered, true
	}

	inPeriod := make([]domain.DashboardRow, 0, len(filtered))
	for _, row := range filtered {
		if row.SendDate == nil {
			continue
		}
		if filters.StartDate != nil && row.SendDate.Before(*filters.StartDate) {
			continue
		}
		// A data final inclui o dia inteiro
		if filters.EndDate != nil && !row.SendDate.Before(filters.EndDate.AddDate(0, 0, 1)) {
			continue
		}
		inPeriod = append(inPeriod, row)
	}

	return inPeriod, false
}

// topBy retorna as maiores linhas pelo valor, mantendo a ordem original nos empates
func topBy(rows []domain.DashboardRow, value func(domain.DashboardRow) int) []domain.DashboardRow {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b domain.DashboardRow) int {
		return cmp.Compare(value(b), value(a))
	})
	return sorted[:min(len(sorted), topCampaignsLimit)]
}

// sortByDate ordena da mais recente para a mais antiga; linhas sem data ficam no fim
func sortByDate(rows []domain.DashboardRow) []domain.DashboardRow {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b domain.DashboardRow) int {
		switch {
		case a.SendDate == nil && b.SendDate == nil:
			return 0
		case a.SendDate == nil:
			return 1
		case b.SendDate == nil:
			return -1
		}
		return b.SendDate.Compare(*a.SendDate)
	})
	return sorted
}
