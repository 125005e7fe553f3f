package dashboarding

import (
	"sync"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// SnapshotStore guarda a última busca agregada feita pelo agendador
type SnapshotStore struct {
	mu             sync.RWMutex
	campaigns      []domain.Campaign
	failedAccounts []domain.FailedAccount
	updatedAt      time.Time
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Store(campaigns []domain.Campaign, failedAccounts []domain.FailedAccount, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaigns = campaigns
	s.failedAccounts = failedAccounts
	s.updatedAt = at
}

// Load retorna false enquanto nenhuma busca foi armazenada.
// As campanhas são somente leitura para quem recebe.
func (s *SnapshotStore) Load() ([]domain.Campaign, []domain.FailedAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.updatedAt.IsZero() {
		return nil, nil, false
	}
	return s.campaigns, s.failedAccounts, true
}

func (s *SnapshotStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
