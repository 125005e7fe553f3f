package campaigning

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz/flowbizclient"
	flowbizmocks "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz/mocks"
	repomocks "github.com/vfg2006/campaign-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type managerFixture struct {
	manager    *CampaignManager
	integrator *flowbizmocks.MockFlowbizIntegrator
	repo       *repomocks.MockCampaignStatsRepository
}

func newManagerFixture(t *testing.T, cfg *config.Config) managerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	integrator := flowbizmocks.NewMockFlowbizIntegrator(ctrl)
	repo := repomocks.NewMockCampaignStatsRepository(ctrl)
	aggregator, _ := newTestAggregator(cfg, integrator)

	return managerFixture{
		manager:    NewManager(cfg, integrator, aggregator, NewEnricher(repo)),
		integrator: integrator,
		repo:       repo,
	}
}

func okResponse(body map[string]any) *flowbizclient.Response {
	return &flowbizclient.Response{StatusCode: http.StatusOK, Body: body}
}

func requireCampaignError(t *testing.T, err error, code string) *CampaignError {
	t.Helper()
	var campaignErr *CampaignError
	require.ErrorAs(t, err, &campaignErr)
	assert.Equal(t, code, campaignErr.Code)
	return campaignErr
}

func TestCampaignManager_Manage_InvalidAction(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()...))

	result, err := f.manager.Manage(context.Background(), map[string]any{"action": "explode"})

	assert.Nil(t, result)
	campaignErr := requireCampaignError(t, err, apiErrors.ErrInvalidAction)
	assert.Equal(t, "Invalid action", campaignErr.Error())
	assert.Equal(t, map[string]any{
		"allowed": []string{"archive-url", "create", "delete", "get", "list", "update"},
	}, campaignErr.Data)
}

func TestCampaignManager_Manage_CreateFieldsRequireAction(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{name: "Sem ação com ListName", data: map[string]any{"CampaignName": "Promo", "Subject": "Oi", "ListName": "Lista"}},
		{name: "Sem ação com FieldMappings", data: map[string]any{"FieldMappings": map[string]any{"tel": "Telefone"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newManagerFixture(t, newTestConfig(twoAccounts()...))

			result, err := f.manager.Manage(context.Background(), tt.data)

			assert.Nil(t, result)
			requireCampaignError(t, err, apiErrors.ErrInvalidAction)
		})
	}
}

func TestCampaignManager_CreateOrchestrated_SkipsReservedFields(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()...))

	gomock.InOrder(
		f.integrator.EXPECT().CreateList(gomock.Any(), "key-a", "Lista").
			Return(okResponse(map[string]any{"Success": true, "ListID": "5"}), nil),
		f.integrator.EXPECT().CreateCustomField(gomock.Any(), "key-a", "5", "Telefone").
			Return(okResponse(map[string]any{"Success": true}), nil),
		f.integrator.EXPECT().CreateCampaign(gomock.Any(), "key-a", map[string]any{
			"CampaignName": "Promo",
			"Subject":      "Oi",
			"ListID":       "5",
		}).Return(okResponse(map[string]any{"Success": true}), nil),
	)

	result, err := f.manager.Manage(context.Background(), map[string]any{
		"action":        "create",
		"CampaignName":  "Promo",
		"Subject":       "Oi",
		"ListName":      "Lista",
		"FieldMappings": map[string]any{"mail": "email", "tel": "Telefone"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Empty(t, result.Warnings)
}

func TestCampaignManager_Manage_PassThrough(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()...))

	f.integrator.EXPECT().
		Call(gomock.Any(), "key-a", "Campaign.Get", map[string]any{"CampaignID": "10"}).
		Return(&flowbizclient.Response{StatusCode: http.StatusNotFound, Body: map[string]any{"Success": false}}, nil)

	result, err := f.manager.Manage(context.Background(), map[string]any{"action": " GET ", "CampaignID": "10"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, map[string]any{"Success": false}, result.Body)
}

func TestCampaignManager_Manage_PassThroughTransportError(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()...))

	f.integrator.EXPECT().
		Call(gomock.Any(), "key-a", "Campaigns.Delete", gomock.Any()).
		Return(nil, &flowbizclient.TransportError{Command: "Campaigns.Delete", Err: errors.New("timeout")})

	_, err := f.manager.Manage(context.Background(), map[string]any{"action": "delete", "Campaigns": "1,2"})

	campaignErr := requireCampaignError(t, err, apiErrors.ErrUpstreamTransport)
	assert.ErrorIs(t, campaignErr, ErrFlowbizRequest)
}

func TestCampaignManager_Manage_MissingCredential(t *testing.T) {
	cfg := newTestConfig(twoAccounts()...)
	cfg.Flowbiz.DefaultAccount = "Inexistente"
	f := newManagerFixture(t, cfg)

	_, err := f.manager.Manage(context.Background(), map[string]any{"action": "archive-url", "CampaignID": 1})

	campaignErr := requireCampaignError(t, err, apiErrors.ErrMissingConfiguration)
	assert.ErrorIs(t, campaignErr, ErrMissingCredential)
}

func TestCampaignManager_Manage_List(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()[0]))

	f.integrator.EXPECT().GetCampaigns(gomock.Any(), "key-a", 100, "Sent").Return(campaignsResult(
		domain.Campaign{"CampaignID": "1", "SendDate": "2024-01-01", "TotalSent": 50},
		domain.Campaign{"CampaignID": "2", "SendDate": "2024-02-01"},
	), nil)
	f.repo.EXPECT().GetStatsByFlowbizID(gomock.Any(), "2").Return(&domain.CampaignStats{Accesses: 7, Leads: 1}, nil)

	result, err := f.manager.Manage(context.Background(), map[string]any{
		"action":            "list",
		"RecordsPerRequest": json.Number("1"),
		"RecordsFrom":       "0",
		"CampaignStatus":    "Sent",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)

	page, ok := result.Body.(*domain.CampaignPage)
	require.True(t, ok)
	assert.Equal(t, 2, page.TotalCampaigns)
	require.Len(t, page.Campaigns, 1)
	assert.Equal(t, "2", page.Campaigns[0].String(domain.CampaignID))
	assert.Equal(t, "A", page.Campaigns[0][domain.Origin])
	assert.Equal(t, 7, page.Campaigns[0][domain.QtdAcessos])
}

func TestCampaignManager_Manage_ListInvalidPagination(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()...))

	_, err := f.manager.Manage(context.Background(), map[string]any{"action": "list", "RecordsPerRequest": "dez"})

	campaignErr := requireCampaignError(t, err, apiErrors.ErrInvalidFormat)
	assert.ErrorIs(t, campaignErr, ErrInvalidPagination)
}

func TestCampaignManager_CreateOrchestrated(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()...))

	gomock.InOrder(
		f.integrator.EXPECT().CreateList(gomock.Any(), "key-a", "Leads Março").
			Return(okResponse(map[string]any{"Success": true, "ListID": json.Number("321")}), nil),
		f.integrator.EXPECT().CreateCustomField(gomock.Any(), "key-a", json.Number("321"), "Cidade").
			Return(okResponse(map[string]any{"Success": true}), nil),
		f.integrator.EXPECT().CreateCustomField(gomock.Any(), "key-a", json.Number("321"), "Telefone").
			Return(nil, &flowbizclient.TransportError{Command: "CustomField.Create", Err: errors.New("timeout")}),
		f.integrator.EXPECT().CreateCustomField(gomock.Any(), "key-a", json.Number("321"), "Origem").
			Return(okResponse(map[string]any{"Success": true}), nil),
		f.integrator.EXPECT().CreateSegment(gomock.Any(), "key-a", json.Number("321"), "Quentes").
			Return(okResponse(map[string]any{"Success": true, "SegmentID": "44"}), nil),
		f.integrator.EXPECT().CreateCampaign(gomock.Any(), "key-a", map[string]any{
			"CampaignName": "Promo",
			"Subject":      "Oferta",
			"ListID":       json.Number("321"),
			"SegmentID":    "44",
			"FromEmail":    "contato@empresa.com",
		}).Return(okResponse(map[string]any{"Success": true, "CampaignID": "900"}), nil),
	)

	result, err := f.manager.Manage(context.Background(), map[string]any{
		"action":       "create",
		"CampaignName": "Promo",
		"Subject":      "Oferta",
		"ListName":     "Leads Março",
		"SegmentName":  "Quentes",
		"FromEmail":    "contato@empresa.com",
		"FieldMappings": map[string]any{
			"cidade":   "Cidade",
			"email":    "Email",
			"nome":     "nome",
			"telefone": "Telefone",
		},
		"CustomFields": []any{"Origem", " "},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Telefone")

	body, ok := result.Body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "900", body["CampaignID"])
	assert.Equal(t, result.Warnings, body["Warnings"])
}

func TestCampaignManager_CreateOrchestrated_Errors(t *testing.T) {
	tests := []struct {
		name         string
		data         map[string]any
		setup        func(f managerFixture)
		expectedCode string
		expectedMsg  string
	}{
		{
			name:         "Sem assunto retorna erro de validação",
			data:         map[string]any{"action": "create", "CampaignName": "Promo", "ListName": "Lista"},
			setup:        func(f managerFixture) {},
			expectedCode: apiErrors.ErrMissingRequiredData,
			expectedMsg:  "CampaignName e Subject são obrigatórios",
		},
		{
			name: "Lista recusada interrompe a criação",
			data: map[string]any{"action": "create", "CampaignName": "Promo", "Subject": "Oi", "ListName": "Lista"},
			setup: func(f managerFixture) {
				f.integrator.EXPECT().CreateList(gomock.Any(), "key-a", "Lista").
					Return(okResponse(map[string]any{"Success": false, "ErrorText": "Nome duplicado"}), nil)
			},
			expectedCode: apiErrors.ErrUpstreamApplication,
			expectedMsg:  "Erro ao criar lista: Nome duplicado",
		},
		{
			name: "Lista recusada sem texto de erro",
			data: map[string]any{"action": "create", "CampaignName": "Promo", "Subject": "Oi", "ListName": "Lista"},
			setup: func(f managerFixture) {
				f.integrator.EXPECT().CreateList(gomock.Any(), "key-a", "Lista").
					Return(okResponse(map[string]any{}), nil)
			},
			expectedCode: apiErrors.ErrUpstreamApplication,
			expectedMsg:  "Erro ao criar lista: Desconhecido",
		},
		{
			name: "Falha de transporte na campanha retorna 502",
			data: map[string]any{"action": "create", "CampaignName": "Promo", "Subject": "Oi", "FieldMappings": map[string]any{}},
			setup: func(f managerFixture) {
				f.integrator.EXPECT().CreateCampaign(gomock.Any(), "key-a", gomock.Any()).
					Return(nil, &flowbizclient.TransportError{Command: "Campaign.Create", Err: errors.New("refused")})
			},
			expectedCode: apiErrors.ErrUpstreamTransport,
			expectedMsg:  "Flowbiz request failed: falha na chamada Campaign.Create ao Flowbiz: refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newManagerFixture(t, newTestConfig(twoAccounts()...))
			tt.setup(f)

			result, err := f.manager.Manage(context.Background(), tt.data)

			assert.Nil(t, result)
			campaignErr := requireCampaignError(t, err, tt.expectedCode)
			assert.Equal(t, tt.expectedMsg, campaignErr.Error())
		})
	}
}

func TestCampaignManager_CreateOrchestrated_WithoutList(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()...))

	f.integrator.EXPECT().CreateCampaign(gomock.Any(), "key-a", map[string]any{
		"CampaignName": "Promo",
		"Subject":      "Oi",
	}).Return(okResponse(map[string]any{"Success": true}), nil)

	result, err := f.manager.Manage(context.Background(), map[string]any{
		"action":        "create",
		"CampaignName":  "Promo",
		"Subject":       "Oi",
		"SegmentName":   "Sem lista não cria",
		"FieldMappings": map[string]any{"cidade": "Cidade"},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.NotContains(t, result.Body, "Warnings")
}

func TestCampaignManager_Clone(t *testing.T) {
	tests := []struct {
		name           string
		req            CloneRequest
		source         map[string]any
		expectedParams map[string]any
	}{
		{
			name:   "Copia os campos da campanha de origem",
			req:    CloneRequest{CloneCampaignID: "10", CampaignName: "Cópia"},
			source: map[string]any{"Subject": "Original", "ListID": "5", "FromEmail": "a@b.com"},
			expectedParams: map[string]any{
				"CampaignName": "Cópia",
				"Subject":      "Original",
				"ListID":       "5",
				"FromEmail":    "a@b.com",
			},
		},
		{
			name:   "Lê os campos do objeto Campaign aninhado",
			req:    CloneRequest{CloneCampaignID: json.Number("10"), CampaignName: "Cópia", Subject: "Novo assunto"},
			source: map[string]any{"Campaign": map[string]any{"Subject": "Original", "ListID": json.Number("6")}},
			expectedParams: map[string]any{
				"CampaignName": "Cópia",
				"Subject":      "Novo assunto",
				"ListID":       json.Number("6"),
			},
		},
		{
			name:   "Lista informada substitui a da origem",
			req:    CloneRequest{CloneCampaignID: 10, CampaignName: "Cópia", ListID: "99"},
			source: map[string]any{"Subject": "Original", "ListID": "5"},
			expectedParams: map[string]any{
				"CampaignName": "Cópia",
				"Subject":      "Original",
				"ListID":       "99",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newManagerFixture(t, newTestConfig(twoAccounts()...))

			f.integrator.EXPECT().GetCampaign(gomock.Any(), "key-a", tt.req.CloneCampaignID).Return(okResponse(tt.source), nil)
			f.integrator.EXPECT().CreateCampaign(gomock.Any(), "key-a", tt.expectedParams).
				Return(&flowbizclient.Response{StatusCode: http.StatusCreated, Body: map[string]any{"CampaignID": "11"}}, nil)

			result, err := f.manager.Clone(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, result.StatusCode)
		})
	}
}

func TestCampaignManager_Clone_Validation(t *testing.T) {
	f := newManagerFixture(t, newTestConfig(twoAccounts()...))

	_, err := f.manager.Clone(context.Background(), CloneRequest{CampaignName: "Sem origem"})

	campaignErr := requireCampaignError(t, err, apiErrors.ErrMissingRequiredData)
	assert.Equal(t, "CloneCampaignID and CampaignName are required", campaignErr.Error())
}

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, "archive-url", normalizeAction(" Archive_URL "))
	assert.Equal(t, "list", normalizeAction("LIST"))
	assert.Equal(t, "", normalizeAction(nil))
}

func TestDecodeCloneRequest(t *testing.T) {
	req, err := DecodeCloneRequest(map[string]any{
		"CloneCampaignID": json.Number("15"),
		"CampaignName":    "  Cópia  ",
		"Subject":         123,
	})

	require.NoError(t, err)
	assert.Equal(t, json.Number("15"), req.CloneCampaignID)
	assert.Equal(t, "Cópia", req.CampaignName)
	assert.Equal(t, "123", req.Subject)
}
