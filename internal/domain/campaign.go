package domain

import "fmt"

// Campos das campanhas usados pela agregação e pelo enriquecimento
const (
	CampaignID            = "CampaignID"
	CampaignName          = "CampaignName"
	SendProcessFinishedOn = "SendProcessFinishedOn"
	SendDate              = "SendDate"
	CreateDateTime        = "CreateDateTime"
	TotalSent             = "TotalSent"
	TotalOpens            = "TotalOpens"
	UniqueClicks          = "UniqueClicks"
	TotalClicks           = "TotalClicks"
	EmailsSent            = "EmailsSent"
	OriginAPI             = "_origin_api"
	Origin                = "Origin"
	QtdLeads              = "QtdLeads"
	QtdAcessos            = "QtdAcessos"
)

// OriginPlaceholder é usado quando a campanha não tem conta de origem
const OriginPlaceholder = "-"

// Campaign é o registro retornado pelo Flowbiz, sem esquema fixo
type Campaign map[string]any

// String retorna o campo como texto, vazio quando ausente
func (c Campaign) String(field string) string {
	v, ok := c[field]
	if !ok || v == nil {
		return ""
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprint(v)
}

// CampaignListQuery são os parâmetros da listagem agregada
type CampaignListQuery struct {
	PageSize   int
	Offset     int
	Status     any
	OrderField string
	OrderType  string
}

// Valores padrão da listagem
const (
	DefaultPageSize   = 10
	DefaultOffset     = 0
	DefaultOrderField = SendProcessFinishedOn
	DefaultOrderType  = "DESC"
)

// CampaignPage é uma página da união das campanhas de todas as contas
type CampaignPage struct {
	TotalCampaigns int             `json:"TotalCampaigns"`
	Campaigns      []Campaign      `json:"Campaigns"`
	FailedAccounts []FailedAccount `json:"-"`
}

// FailedAccount registra a conta que esgotou as tentativas
type FailedAccount struct {
	Account string `json:"account"`
	Error   string `json:"error"`
}

// CampaignStats são os contadores locais de uma campanha
type CampaignStats struct {
	Accesses int
	Leads    int
}
