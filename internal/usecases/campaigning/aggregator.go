package campaigning

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Limites de registros pedidos a cada conta na listagem agregada
const (
	recordsMultiplier    = 10
	minRecordsPerAccount = 100
	maxRecordsPerAccount = 500
)

type Aggregator interface {
	FetchAll(ctx context.Context, recordsPerAccount int, status any) (*FetchResult, error)
	ListCampaigns(ctx context.Context, query domain.CampaignListQuery) (*domain.CampaignPage, error)
}

// FetchResult é a união das campanhas de todas as contas, na ordem das contas
type FetchResult struct {
	Campaigns      []domain.Campaign
	FailedAccounts []domain.FailedAccount
}

type CampaignAggregator struct {
	accounts   *config.AccountRegistry
	integrator flowbiz.FlowbizIntegrator
	attempts   int
	backoff    time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewAggregator(cfg *config.Config, integrator flowbiz.FlowbizIntegrator) *CampaignAggregator {
	attempts := cfg.Aggregation.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &CampaignAggregator{
		accounts:   cfg.Accounts,
		integrator: integrator,
		attempts:   attempts,
		backoff:    time.Duration(cfg.Aggregation.RetryBackoffSeconds) * time.Second,
		sleep:      sleepContext,
	}
}

// RecordsPerAccount pede mais registros que a página para que a ordenação
// da união ainda traga as campanhas mais recentes de cada conta.
func RecordsPerAccount(pageSize int) int {
	return min(max(pageSize*recordsMultiplier, minRecordsPerAccount), maxRecordsPerAccount)
}

// FetchAll busca as campanhas de cada conta em sequência.
// Uma conta que esgota as tentativas não entra na união e fica registrada como falha.
func (a *CampaignAggregator) FetchAll(ctx context.Context, recordsPerAccount int, status any) (*FetchResult, error) {
	result := &FetchResult{
		Campaigns:      make([]domain.Campaign, 0),
		FailedAccounts: make([]domain.FailedAccount, 0),
	}

	for _, account := range a.accounts.Accounts() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		campaigns, err := a.fetchAccount(ctx, account, recordsPerAccount, status)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			logrus.WithFields(logrus.Fields{
				"account":  account.Label,
				"attempts": a.attempts,
				"error":    err.Error(),
			}).Warn("Conta esgotou as tentativas de busca de campanhas")

			metrics.AggregationAccountFailures.WithLabelValues(account.DisplayName()).Inc()
			result.FailedAccounts = append(result.FailedAccounts, domain.FailedAccount{
				Account: account.Label,
				Error:   err.Error(),
			})
			continue
		}

		logrus.WithFields(logrus.Fields{
			"account":   account.Label,
			"campaigns": len(campaigns),
			"requested": recordsPerAccount,
		}).Debug("Campanhas recebidas da conta")

		for _, campaign := range campaigns {
			campaign[domain.OriginAPI] = account.Label
			campaign[domain.Origin] = account.DisplayName()
			result.Campaigns = append(result.Campaigns, campaign)
		}
	}

	if len(result.FailedAccounts) > 0 {
		logrus.WithField("failed_accounts", result.FailedAccounts).Warn("Algumas contas falharam ao buscar campanhas")
	}

	metrics.AggregatedCampaigns.Set(float64(len(result.Campaigns)))

	return result, nil
}

// fetchAccount tenta a listagem de uma conta com espera exponencial entre as tentativas
func (a *CampaignAggregator) fetchAccount(ctx context.Context, account config.Account, records int, status any) ([]domain.Campaign, error) {
	backoff := a.backoff
	var lastErr error

	for attempt := 1; attempt <= a.attempts; attempt++ {
		resp, err := a.integrator.GetCampaigns(ctx, account.APIKey, records, status)
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			lastErr = fmt.Errorf("%w: HTTP %d", ErrUnexpectedStatus, resp.StatusCode)
		default:
			return resp.Campaigns, nil
		}

		logrus.WithFields(logrus.Fields{
			"account": account.Label,
			"attempt": attempt,
			"error":   lastErr.Error(),
		}).Warn("Falha ao buscar campanhas da conta")

		if attempt < a.attempts {
			metrics.AggregationRetries.WithLabelValues(account.DisplayName()).Inc()
			if err := a.sleep(ctx, backoff); err != nil {
				return nil, err
			}
			backoff *= 2
		}
	}

	return nil, lastErr
}

// ListCampaigns agrega, ordena da mais recente para a mais antiga e pagina a união
func (a *CampaignAggregator) ListCampaigns(ctx context.Context, query domain.CampaignListQuery) (*domain.CampaignPage, error) {
	pageSize := max(query.PageSize, 0)
	offset := max(query.Offset, 0)

	fetched, err := a.FetchAll(ctx, RecordsPerAccount(pageSize), query.Status)
	if err != nil {
		return nil, err
	}

	sorted := SortByRecency(fetched.Campaigns)

	return &domain.CampaignPage{
		TotalCampaigns: len(sorted),
		Campaigns:      Paginate(sorted, offset, pageSize),
		FailedAccounts: fetched.FailedAccounts,
	}, nil
}

// SortByRecency ordena de forma estável pela data de envio, decrescente.
// Campanhas sem data válida ficam no fim, na ordem original.
func SortByRecency(campaigns []domain.Campaign) []domain.Campaign {
	type keyed struct {
		campaign domain.Campaign
		at       time.Time
	}

	items := make([]keyed, len(campaigns))
	for i, campaign := range campaigns {
		items[i] = keyed{campaign: campaign, at: utils.CampaignSortDate(campaign)}
	}

	slices.SortStableFunc(items, func(x, y keyed) int {
		return y.at.Compare(x.at)
	})

	sorted := make([]domain.Campaign, len(items))
	for i, item := range items {
		sorted[i] = item.campaign
	}
	return sorted
}

// Paginate retorna [offset, offset+limit) limitado ao tamanho da lista
func Paginate(campaigns []domain.Campaign, offset, limit int) []domain.Campaign {
	if offset >= len(campaigns) || limit <= 0 {
		return []domain.Campaign{}
	}
	end := min(offset+limit, len(campaigns))
	return campaigns[offset:end]
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
