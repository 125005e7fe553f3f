package flowbizclient

import (
	stdjson "encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

const (
	APIKeyParam         = "APIKey"
	ResponseFormatParam = "ResponseFormat"
)

// BuildPayload monta o formulário: chave, comando e formato de resposta primeiro,
// depois os parâmetros do chamador, que vencem qualquer colisão.
func BuildPayload(apiKey, methodParam, responseFormat, command string, params map[string]any) url.Values {
	form := url.Values{}
	form.Set(APIKeyParam, apiKey)
	form.Set(methodParam, command)
	form.Set(ResponseFormatParam, responseFormat)

	for key, value := range params {
		values, ok := encodeValue(value)
		if !ok {
			continue
		}
		form[key] = values
	}

	return form
}

// encodeValue converte um valor do JSON para campos de formulário.
// Listas viram chaves repetidas, objetos viram texto JSON e nil é omitido.
func encodeValue(value any) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []string:
		return v, true
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			values = append(values, scalarText(item))
		}
		return values, true
	default:
		return []string{scalarText(v)}, true
	}
}

func scalarText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case stdjson.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}
