package domain

import "fmt"

// Campos das respostas do Flowbiz
const (
	FieldSuccess           = "Success"
	FieldErrorText         = "ErrorText"
	FieldListID            = "ListID"
	FieldSegmentID         = "SegmentID"
	FieldCampaigns         = "Campaigns"
	FieldCampaign          = "Campaign"
	FieldCampaignID        = "CampaignID"
	FieldFieldName         = "FieldName"
	FieldFieldType         = "FieldType"
	FieldListName          = "ListName"
	FieldSegmentName       = "SegmentName"
	FieldRecordsPerRequest = "RecordsPerRequest"
	FieldCampaignStatus    = "CampaignStatus"
)

// CustomFieldTypeText é o tipo usado nos campos criados pelo mapeamento de colunas
const CustomFieldTypeText = "text"

// Result é o corpo de resposta de um comando como objeto JSON
type Result map[string]any

// Success segue a verdade do campo Success (true, 1, "true")
func (r Result) Success() bool {
	switch v := r[FieldSuccess].(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false" && v != "0"
	case nil:
		return false
	default:
		return fmt.Sprint(v) != "0"
	}
}

// ListID retorna o identificador da lista quando presente e preenchido
func (r Result) ListID() (any, bool) {
	return r.present(FieldListID)
}

func (r Result) SegmentID() (any, bool) {
	return r.present(FieldSegmentID)
}

// ErrorText retorna o texto de erro do Flowbiz ou o valor padrão
func (r Result) ErrorText(fallback string) string {
	if v, ok := r.present(FieldErrorText); ok {
		return fmt.Sprint(v)
	}
	return fallback
}

func (r Result) present(field string) (any, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && s == "" {
		return nil, false
	}
	return v, true
}
