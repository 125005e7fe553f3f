package domain

import "time"

// DashboardRow é uma campanha normalizada para gráficos e tabela do painel
type DashboardRow struct {
	CampaignID   string     `json:"CampaignID,omitempty"`
	CampaignName string     `json:"CampaignName"`
	Origin       string     `json:"Origin"`
	EmailsSent   int        `json:"EmailsSent"`
	TotalOpens   int        `json:"TotalOpens"`
	UniqueClicks int        `json:"UniqueClicks"`
	TotalClicks  int        `json:"TotalClicks"`
	QtdLeads     int        `json:"QtdLeads"`
	QtdAcessos   int        `json:"QtdAcessos"`
	SendDate     *time.Time `json:"send_date"`
}

// DashboardFilters são os filtros do painel; datas no formato AAAA-MM-DD
type DashboardFilters struct {
	Origin        string
	CampaignNames []string
	Search        string
	StartDate     *time.Time
	EndDate       *time.Time
}

// ChartPoint é uma barra ou fatia de gráfico
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DashboardMetrics é o conteúdo completo do painel de métricas de e-mails
type DashboardMetrics struct {
	EmailsSentTop     []DashboardRow  `json:"emails_sent_top"`
	OpensVsClicks     []ChartPoint    `json:"opens_vs_clicks"`
	UniqueClicksTop   []DashboardRow  `json:"unique_clicks_top"`
	Table             []DashboardRow  `json:"table"`
	TotalCampaigns    int             `json:"total_campaigns"`
	Status            string          `json:"status"`
	DateFilterIgnored bool            `json:"date_filter_ignored,omitempty"`
	FailedAccounts    []FailedAccount `json:"failed_accounts,omitempty"`
}

// SelectOption é uma opção de filtro do painel
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DashboardFilterOptions são as opções de origem e campanha disponíveis
type DashboardFilterOptions struct {
	Origins   []SelectOption `json:"origins"`
	Campaigns []SelectOption `json:"campaigns"`
}
