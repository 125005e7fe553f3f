package proxying

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz"
	flowbizdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
)

type Proxy interface {
	Routes() []string
	Forward(ctx context.Context, routeKey string, data map[string]any) (*ProxyResult, error)
}

// ProxyResult é a resposta do Flowbiz repassada sem alteração
type ProxyResult struct {
	StatusCode int
	Body       any
}

type RouteProxy struct {
	cfg        *config.Config
	integrator flowbiz.FlowbizIntegrator
	routes     map[string]string
}

func NewProxy(cfg *config.Config, integrator flowbiz.FlowbizIntegrator) *RouteProxy {
	return &RouteProxy{
		cfg:        cfg,
		integrator: integrator,
		routes:     flowbizdomain.RouteCommands,
	}
}

// Routes lista as rotas aceitas em ordem alfabética
func (p *RouteProxy) Routes() []string {
	return flowbizdomain.SortedKeys(p.routes)
}

// Forward envia o corpo ao comando mapeado para a rota usando a conta padrão
func (p *RouteProxy) Forward(ctx context.Context, routeKey string, data map[string]any) (*ProxyResult, error) {
	routeKey = strings.Trim(routeKey, "/")

	command, ok := p.routes[routeKey]
	if !ok {
		return nil, &ProxyError{
			Err:  ErrUnknownRoute,
			Code: apiErrors.ErrUnknownRoute,
			Data: map[string]any{"route": routeKey},
		}
	}

	apiKey, err := p.cfg.DefaultAPIKey()
	if err != nil {
		return nil, &ProxyError{
			Err:  err,
			Code: apiErrors.ErrMissingConfiguration,
		}
	}

	if data == nil {
		data = map[string]any{}
	}

	resp, err := p.integrator.Call(ctx, apiKey, command, data)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"route":   routeKey,
			"command": command,
			"error":   err.Error(),
		}).Error("Falha ao encaminhar requisição ao Flowbiz")

		return nil, &ProxyError{
			Err:  ErrFlowbizRequest,
			Code: apiErrors.ErrUpstreamTransport,
			Data: map[string]any{"detail": err.Error()},
		}
	}

	logrus.WithFields(logrus.Fields{
		"route":   routeKey,
		"command": command,
		"status":  resp.StatusCode,
	}).Debug("Requisição encaminhada ao Flowbiz")

	return &ProxyResult{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}
