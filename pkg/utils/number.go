package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToInt converte valores vindos do JSON do Flowbiz para inteiro.
// nil e texto vazio valem zero. Texto não numérico é erro.
func ToInt(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case float32:
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("valor numérico inválido %q: %w", v.String(), err)
		}
		return int(f), nil
	case string:
		return integerText(v)
	default:
		return 0, fmt.Errorf("tipo numérico não suportado: %T", value)
	}
}

// Texto só é aceito como inteiro; "3.5" é erro
func integerText(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("valor numérico inválido %q: %w", text, err)
	}
	return n, nil
}

// ToIntOrZero ignora erros de conversão
func ToIntOrZero(value any) int {
	n, err := ToInt(value)
	if err != nil {
		return 0
	}
	return n
}

// IsTruthy segue a noção de valor preenchido: nil, texto vazio, zero e coleções vazias são falsos
func IsTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
