package flowbizclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"golang.org/x/time/rate"
)

// Números chegam como json.Number para não perder IDs longos
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

type Client interface {
	Call(ctx context.Context, apiKey, command string, params map[string]any) (*Response, error)
}

type FlowbizClient struct {
	httpClient *http.Client
	config     config.Flowbiz
	limiter    *rate.Limiter
}

// NewClient cria o cliente HTTP do Flowbiz com o timeout configurado.
// Quando o circuit breaker está habilitado o cliente é envolvido por ele.
func NewClient(cfg *config.Config) Client {
	var limiter *rate.Limiter
	if cfg.Flowbiz.RateLimitRPS > 0 {
		burst := int(cfg.Flowbiz.RateLimitRPS)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.Flowbiz.RateLimitRPS), burst)
	}

	var client Client = &FlowbizClient{
		httpClient: &http.Client{
			Timeout: cfg.Flowbiz.Timeout(),
		},
		config:  cfg.Flowbiz,
		limiter: limiter,
	}

	if cfg.Flowbiz.BreakerEnabled {
		client = NewCircuitBreakerClient(client, cfg.Flowbiz)
	}

	return client
}

// Response é o corpo decodificado e o status devolvido pelo Flowbiz
type Response struct {
	StatusCode int
	Body       any
}

// Object retorna o corpo como objeto JSON quando for o caso
func (r *Response) Object() (map[string]any, bool) {
	if r == nil {
		return nil, false
	}
	obj, ok := r.Body.(map[string]any)
	return obj, ok
}

func (r *Response) IsSuccessStatus() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}
