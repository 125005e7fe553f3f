package config

import (
	"sort"
	"strings"
)

// AccountKeyPrefix identifica as variáveis de ambiente com chaves do Flowbiz
const AccountKeyPrefix = "FLOWBIZ_API_KEY_"

// Account é uma conta do Flowbiz identificada pelo nome completo da variável
type Account struct {
	Label  string
	APIKey string
}

// DisplayName é o rótulo sem o prefixo, exibido como origem da campanha
func (a Account) DisplayName() string {
	return strings.TrimPrefix(a.Label, AccountKeyPrefix)
}

// AccountRegistry guarda as contas carregadas na inicialização.
// A ordem de iteração é a ordem alfabética dos rótulos.
type AccountRegistry struct {
	accounts []Account
	byLabel  map[string]int
}

// LoadAccounts lê as entradas FLOWBIZ_API_KEY_* de um ambiente no formato KEY=VALUE
func LoadAccounts(environ []string) *AccountRegistry {
	accounts := make([]Account, 0)
	for _, entry := range environ {
		label, value, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(label, AccountKeyPrefix) {
			continue
		}
		accounts = append(accounts, Account{Label: label, APIKey: value})
	}

	return NewAccountRegistry(accounts...)
}

// NewAccountRegistry limpa as chaves, descarta as vazias e ordena por rótulo.
// Rótulos repetidos ficam com o último valor informado.
func NewAccountRegistry(accounts ...Account) *AccountRegistry {
	byLabel := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		key := sanitizeKey(acc.APIKey)
		if acc.Label == "" || key == "" {
			continue
		}
		byLabel[acc.Label] = key
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	registry := &AccountRegistry{
		accounts: make([]Account, 0, len(labels)),
		byLabel:  make(map[string]int, len(labels)),
	}
	for i, label := range labels {
		registry.accounts = append(registry.accounts, Account{Label: label, APIKey: byLabel[label]})
		registry.byLabel[label] = i
	}

	return registry
}

func sanitizeKey(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"'`)
	return strings.TrimSpace(value)
}

// Accounts retorna uma cópia das contas na ordem do registro
func (r *AccountRegistry) Accounts() []Account {
	if r == nil {
		return nil
	}
	out := make([]Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

func (r *AccountRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.accounts)
}

func (r *AccountRegistry) Get(label string) (Account, bool) {
	if r == nil {
		return Account{}, false
	}
	i, ok := r.byLabel[label]
	if !ok {
		return Account{}, false
	}
	return r.accounts[i], true
}

// Key aceita tanto o rótulo completo quanto o nome de exibição
func (r *AccountRegistry) Key(name string) (string, bool) {
	if acc, ok := r.Get(name); ok {
		return acc.APIKey, true
	}
	if acc, ok := r.Get(AccountKeyPrefix + name); ok {
		return acc.APIKey, true
	}
	return "", false
}
