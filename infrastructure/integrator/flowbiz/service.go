package flowbiz

import (
	"context"

	flowbizdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz/domain"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz/flowbizclient"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

type FlowbizIntegrator interface {
	Call(ctx context.Context, apiKey, command string, params map[string]any) (*flowbizclient.Response, error)
	GetCampaigns(ctx context.Context, apiKey string, recordsPerRequest int, status any) (*CampaignsResult, error)
	GetCampaign(ctx context.Context, apiKey string, campaignID any) (*flowbizclient.Response, error)
	CreateCampaign(ctx context.Context, apiKey string, params map[string]any) (*flowbizclient.Response, error)
	CreateList(ctx context.Context, apiKey, listName string) (*flowbizclient.Response, error)
	CreateCustomField(ctx context.Context, apiKey string, listID any, fieldName string) (*flowbizclient.Response, error)
	CreateSegment(ctx context.Context, apiKey string, listID any, segmentName string) (*flowbizclient.Response, error)
}

// CampaignsResult é a listagem de campanhas de uma conta
type CampaignsResult struct {
	StatusCode int
	Campaigns  []domain.Campaign
}

type FlowbizService struct {
	cfg    *config.Config
	Client flowbizclient.Client
}

func New(cfg *config.Config, client flowbizclient.Client) FlowbizIntegrator {
	return &FlowbizService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *FlowbizService) Call(ctx context.Context, apiKey, command string, params map[string]any) (*flowbizclient.Response, error) {
	return s.Client.Call(ctx, apiKey, command, params)
}

// GetCampaigns lista as campanhas de uma conta. Status nil não é enviado.
// Itens da lista que não são objetos são descartados.
func (s *FlowbizService) GetCampaigns(ctx context.Context, apiKey string, recordsPerRequest int, status any) (*CampaignsResult, error) {
	params := map[string]any{
		flowbizdomain.FieldRecordsPerRequest: recordsPerRequest,
	}
	if status != nil {
		params[flowbizdomain.FieldCampaignStatus] = status
	}

	resp, err := s.Client.Call(ctx, apiKey, flowbizdomain.CommandCampaignsGet, params)
	if err != nil {
		return nil, err
	}

	result := &CampaignsResult{
		StatusCode: resp.StatusCode,
		Campaigns:  make([]domain.Campaign, 0),
	}

	body, ok := resp.Object()
	if !ok {
		return result, nil
	}

	items, _ := body[flowbizdomain.FieldCampaigns].([]any)
	for _, item := range items {
		if record, isObject := item.(map[string]any); isObject {
			result.Campaigns = append(result.Campaigns, domain.Campaign(record))
		}
	}

	return result, nil
}

func (s *FlowbizService) GetCampaign(ctx context.Context, apiKey string, campaignID any) (*flowbizclient.Response, error) {
	return s.Client.Call(ctx, apiKey, flowbizdomain.CommandCampaignGet, map[string]any{
		flowbizdomain.FieldCampaignID: campaignID,
	})
}

func (s *FlowbizService) CreateCampaign(ctx context.Context, apiKey string, params map[string]any) (*flowbizclient.Response, error) {
	return s.Client.Call(ctx, apiKey, flowbizdomain.CommandCampaignCreate, params)
}

func (s *FlowbizService) CreateList(ctx context.Context, apiKey, listName string) (*flowbizclient.Response, error) {
	return s.Client.Call(ctx, apiKey, flowbizdomain.CommandListCreate, map[string]any{
		flowbizdomain.FieldListName: listName,
	})
}

func (s *FlowbizService) CreateCustomField(ctx context.Context, apiKey string, listID any, fieldName string) (*flowbizclient.Response, error) {
	return s.Client.Call(ctx, apiKey, flowbizdomain.CommandCustomFieldCreate, map[string]any{
		flowbizdomain.FieldFieldName: fieldName,
		flowbizdomain.FieldFieldType: flowbizdomain.CustomFieldTypeText,
		flowbizdomain.FieldListID:    listID,
	})
}

func (s *FlowbizService) CreateSegment(ctx context.Context, apiKey string, listID any, segmentName string) (*flowbizclient.Response, error) {
	return s.Client.Call(ctx, apiKey, flowbizdomain.CommandSegmentCreate, map[string]any{
		flowbizdomain.FieldSegmentName: segmentName,
		flowbizdomain.FieldListID:      listID,
	})
}
