package utils

import (
	"fmt"
	"strings"
	"time"
)

// Ordem das tentativas de parse após a normalização do texto
var campaignDateLayouts = []string{
	"2006-1-2 15:04:05",
	"2006-1-2T15:04:05",
	"2006-1-2",
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2-1-2006",
}

// Formatos ISO aceitos na última tentativa, sobre o texto original
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
}

// CampaignDateFields são os campos de data em ordem de preferência
var CampaignDateFields = []string{"SendProcessFinishedOn", "SendDate", "CreateDateTime"}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseFlexibleDate interpreta datas como "10/02/2026 - 09:32" ou "2024-03-01 10:00:00".
// Retorna false quando nenhum formato conhecido se aplica.
func ParseFlexibleDate(value string) (time.Time, bool) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, false
	}

	clean := strings.ReplaceAll(raw, " - ", " ")
	clean = strings.ReplaceAll(clean, "/", "-")
	clean = strings.ReplaceAll(clean, ".", "-")

	for _, layout := range campaignDateLayouts {
		if parsed, err := time.Parse(layout, clean); err == nil {
			return parsed, true
		}
	}

	iso := strings.ReplaceAll(raw, " ", "T")
	for _, layout := range isoDateLayouts {
		if parsed, err := time.Parse(layout, iso); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// CampaignSortDate usa o primeiro campo de data preenchido do registro.
// Registros sem data válida recebem o tempo zero e vão para o fim da ordenação decrescente.
func CampaignSortDate(record map[string]any) time.Time {
	for _, field := range CampaignDateFields {
		value, ok := record[field]
		if !ok || !IsTruthy(value) {
			continue
		}
		parsed, _ := ParseFlexibleDate(fmt.Sprint(value))
		return parsed
	}
	return time.Time{}
}

// FirstParsableDate percorre todos os campos de data e retorna o primeiro que pode ser interpretado
func FirstParsableDate(record map[string]any) (time.Time, bool) {
	for _, field := range CampaignDateFields {
		value, ok := record[field]
		if !ok || !IsTruthy(value) {
			continue
		}
		if parsed, ok := ParseFlexibleDate(fmt.Sprint(value)); ok {
			return parsed, true
		}
	}
	return time.Time{}, false
}
