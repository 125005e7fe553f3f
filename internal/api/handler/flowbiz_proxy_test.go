package handler

import (
	stdjson "encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	campaignmocks "github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/proxying"
	proxymocks "github.com/vfg2006/campaign-dashboard-api/internal/usecases/proxying/mocks"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestRouter(routes ...[]router.Route) http.Handler {
	configs := make([]router.ConfigRouter, 0, len(routes)+1)
	for _, group := range routes {
		configs = append(configs, router.WithRoutes(group...))
	}
	configs = append(configs, router.WithNotFound(NotFound()))
	return router.New(configs...)
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestListRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proxy := proxymocks.NewMockProxy(ctrl)
	manager := campaignmocks.NewMockManager(ctrl)
	proxy.EXPECT().Routes().Return([]string{"campaign/get", "subscribers/get"})

	rec := serve(newTestRouter(FlowbizAPI(proxy, manager)), http.MethodGet, "/api", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"routes": []any{"campaign/get", "subscribers/get"}}, decodeResponse(t, rec))
}

func TestDispatchRoute(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           string
		setup          func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager)
		expectedStatus int
		validate       func(t *testing.T, body map[string]any)
	}{
		{
			name:   "Rota mapeada é encaminhada com o corpo recebido",
			target: "/api/subscribers/get",
			body:   `{"ListID":"5","SubscriberID":"9"}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				proxy.EXPECT().
					Forward(gomock.Any(), "subscribers/get", map[string]any{"ListID": "5", "SubscriberID": "9"}).
					Return(&proxying.ProxyResult{StatusCode: http.StatusOK, Body: map[string]any{"Success": true}}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["Success"])
			},
		},
		{
			name:   "Status do Flowbiz é repassado ao cliente",
			target: "/api/campaign/delete",
			body:   `{"Campaigns":"3"}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				proxy.EXPECT().
					Forward(gomock.Any(), "campaign/delete", gomock.Any()).
					Return(&proxying.ProxyResult{StatusCode: http.StatusServiceUnavailable, Body: map[string]any{"Success": false}}, nil)
			},
			expectedStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["Success"])
			},
		},
		{
			name:   "JSON inválido vira objeto vazio",
			target: "/api/lists/get",
			body:   `{oops`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				proxy.EXPECT().
					Forward(gomock.Any(), "lists/get", map[string]any{}).
					Return(&proxying.ProxyResult{StatusCode: http.StatusOK, Body: map[string]any{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Corpo que não é objeto é rejeitado",
			target:         "/api/lists/get",
			body:           `[1,2]`,
			setup:          func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrInvalidRequest, body["code"])
				assert.Equal(t, "Invalid JSON body, expected object", body["message"])
			},
		},
		{
			name:   "Rota desconhecida retorna 404 com a rota",
			target: "/api/nao/existe",
			body:   `{}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				proxy.EXPECT().
					Forward(gomock.Any(), "nao/existe", map[string]any{}).
					Return(nil, &proxying.ProxyError{
						Err:  proxying.ErrUnknownRoute,
						Code: apiErrors.ErrUnknownRoute,
						Data: map[string]any{"route": "nao/existe"},
					})
			},
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrUnknownRoute, body["code"])
				assert.Equal(t, "Unknown route", body["message"])
				assert.Equal(t, map[string]any{"route": "nao/existe"}, body["details"])
			},
		},
		{
			name:   "Falha de transporte retorna 502",
			target: "/api/campaign/get",
			body:   `{"CampaignID":"1"}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				proxy.EXPECT().
					Forward(gomock.Any(), "campaign/get", gomock.Any()).
					Return(nil, &proxying.ProxyError{
						Err:  proxying.ErrFlowbizRequest,
						Code: apiErrors.ErrUpstreamTransport,
						Data: map[string]any{"detail": "timeout"},
					})
			},
			expectedStatus: http.StatusBadGateway,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Flowbiz request failed", body["message"])
				assert.Equal(t, map[string]any{"detail": "timeout"}, body["details"])
			},
		},
		{
			name:   "Gerenciamento de campanhas vai para o gerenciador",
			target: "/api/campaigns/manage",
			body:   `{"action":"list","RecordsPerRequest":"2"}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				manager.EXPECT().
					Manage(gomock.Any(), map[string]any{"action": "list", "RecordsPerRequest": "2"}).
					Return(&campaigning.ManageResult{
						StatusCode: http.StatusOK,
						Body: &domain.CampaignPage{
							TotalCampaigns: 1,
							Campaigns:      []domain.Campaign{{"CampaignID": "10"}},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, float64(1), body["TotalCampaigns"])
				assert.Len(t, body["Campaigns"], 1)
			},
		},
		{
			name:   "Ação inválida lista as ações permitidas",
			target: "/api/campaigns/manage",
			body:   `{"action":"explode"}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				manager.EXPECT().
					Manage(gomock.Any(), gomock.Any()).
					Return(nil, campaigning.NewCampaignErrorWithData(campaigning.ErrInvalidAction, apiErrors.ErrInvalidAction, "", map[string]any{
						"allowed": []string{"get", "list"},
					}))
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrInvalidAction, body["code"])
				assert.Equal(t, "Invalid action", body["message"])
				assert.Equal(t, map[string]any{"allowed": []any{"get", "list"}}, body["details"])
			},
		},
		{
			name:   "Clonagem decodifica o corpo para o gerenciador",
			target: "/api/campaigns/clone",
			body:   `{"CloneCampaignID":10,"CampaignName":"  Cópia  ","ListID":"7"}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				manager.EXPECT().
					Clone(gomock.Any(), campaigning.CloneRequest{
						CloneCampaignID: stdjson.Number("10"),
						CampaignName:    "Cópia",
						ListID:          "7",
					}).
					Return(&campaigning.ManageResult{StatusCode: http.StatusOK, Body: map[string]any{"CampaignID": "11"}}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "11", body["CampaignID"])
			},
		},
		{
			name:   "Clonagem sem campos obrigatórios retorna 400",
			target: "/api/campaigns/clone",
			body:   `{}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				manager.EXPECT().
					Clone(gomock.Any(), campaigning.CloneRequest{}).
					Return(nil, campaigning.NewCampaignError(campaigning.ErrCloneFieldsRequired, apiErrors.ErrMissingRequiredData, ""))
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "CloneCampaignID and CampaignName are required", body["message"])
			},
		},
		{
			name:   "Erro desconhecido vira erro interno",
			target: "/api/campaigns/manage",
			body:   `{"action":"get"}`,
			setup: func(proxy *proxymocks.MockProxy, manager *campaignmocks.MockManager) {
				manager.EXPECT().Manage(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrInternalServer, body["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			proxy := proxymocks.NewMockProxy(ctrl)
			manager := campaignmocks.NewMockManager(ctrl)
			tt.setup(proxy, manager)

			rec := serve(newTestRouter(FlowbizAPI(proxy, manager)), http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.validate != nil {
				tt.validate(t, decodeResponse(t, rec))
			}
		})
	}
}

func TestManageCampaignsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proxy := proxymocks.NewMockProxy(ctrl)
	manager := campaignmocks.NewMockManager(ctrl)
	manager.EXPECT().
		Manage(gomock.Any(), map[string]any{"action": "list", "RecordsPerRequest": "5", "RecordsFrom": "10"}).
		Return(&campaigning.ManageResult{StatusCode: http.StatusOK, Body: &domain.CampaignPage{Campaigns: []domain.Campaign{}}}, nil)

	rec := serve(newTestRouter(FlowbizAPI(proxy, manager)), http.MethodGet, "/api/campaigns/manage?action=list&RecordsPerRequest=5&RecordsFrom=10&RecordsFrom=99", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeResponse(t, rec)["TotalCampaigns"])
}

func TestNotFound(t *testing.T) {
	rec := serve(newTestRouter(Healthcheck()), http.MethodGet, "/nada", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeResponse(t, rec)["code"])
}
