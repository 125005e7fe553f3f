package campaigning

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-dashboard-api/internal/config"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação
	ErrInvalidAction         = errors.New("Invalid action")
	ErrCreateFieldsRequired  = errors.New("CampaignName e Subject são obrigatórios")
	ErrCloneFieldsRequired   = errors.New("CloneCampaignID and CampaignName are required")
	ErrInvalidPagination     = errors.New("parâmetros de paginação inválidos")
	ErrInvalidCampaignFields = errors.New("campos da campanha em formato inválido")

	// Erros do Flowbiz
	ErrListCreation     = errors.New("Erro ao criar lista")
	ErrFlowbizRequest   = errors.New("Flowbiz request failed")
	ErrUnexpectedStatus = errors.New("status inesperado do Flowbiz")

	// Erros de configuração
	ErrMissingCredential = config.ErrMissingCredential
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
	Data    any    // Dados extras devolvidos ao cliente
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewCampaignErrorWithData cria um CampaignError com dados extras para o cliente
func NewCampaignErrorWithData(err error, code string, details string, data any) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
		Data:    data,
	}
}
