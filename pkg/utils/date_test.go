package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "Data brasileira com hífen separando a hora",
			input:    "10/02/2026 - 09:32",
			expected: time.Date(2026, 2, 10, 9, 32, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Ano-mês-dia com hora",
			input:    "2024-03-01 10:20:30",
			expected: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Ano-mês-dia com T",
			input:    "2024-03-01T10:20:30",
			expected: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Somente data",
			input:    "2024-02-15",
			expected: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Dia-mês-ano com pontos",
			input:    "01.03.2024",
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Dia-mês-ano com segundos",
			input:    "05/01/2025 08:00:01",
			expected: time.Date(2025, 1, 5, 8, 0, 1, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "ISO com fuso usa o texto original",
			input:    "2024-03-01T10:20:30Z",
			expected: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "ISO com frações de segundo",
			input:    "2024-03-01 10:20:30.5",
			expected: time.Date(2024, 3, 1, 10, 20, 30, 500000000, time.UTC),
			ok:       true,
		},
		{
			name:  "Texto inválido",
			input: "ontem",
			ok:    false,
		},
		{
			name:  "Texto vazio",
			input: "  ",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseFlexibleDate(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(parsed), "esperado %s, obtido %s", tt.expected, parsed)
			} else {
				assert.True(t, parsed.IsZero())
			}
		})
	}
}

func TestCampaignSortDate(t *testing.T) {
	t.Run("Usa o primeiro campo preenchido", func(t *testing.T) {
		record := map[string]any{
			"SendProcessFinishedOn": "",
			"SendDate":              "2024-02-15",
			"CreateDateTime":        "2023-01-01",
		}
		assert.True(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC).Equal(CampaignSortDate(record)))
	})

	t.Run("Primeiro campo preenchido inválido não tenta os seguintes", func(t *testing.T) {
		record := map[string]any{
			"SendProcessFinishedOn": "pendente",
			"SendDate":              "2024-02-15",
		}
		assert.True(t, CampaignSortDate(record).IsZero())
	})

	t.Run("Sem data retorna zero", func(t *testing.T) {
		assert.True(t, CampaignSortDate(map[string]any{"CampaignID": json.Number("1")}).IsZero())
	})
}

func TestFirstParsableDate(t *testing.T) {
	record := map[string]any{
		"SendProcessFinishedOn": "pendente",
		"SendDate":              "15/02/2024",
	}

	parsed, ok := FirstParsableDate(record)

	assert.True(t, ok)
	assert.True(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC).Equal(parsed))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-05-20")
	assert.NoError(t, err)
	assert.Equal(t, 2024, date.Year())

	_, err = ParseDate("20/05/2024")
	assert.Error(t, err)
}
