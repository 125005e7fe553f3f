package flowbizclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
)

// CircuitBreakerClient mantém um circuit breaker por chave de API,
// assim uma conta fora do ar não bloqueia as demais.
// Só falhas de transporte contam; respostas HTTP de erro não abrem o circuito.
type CircuitBreakerClient struct {
	client   Client
	settings config.Flowbiz

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*Response]
}

func NewCircuitBreakerClient(client Client, cfg config.Flowbiz) *CircuitBreakerClient {
	return &CircuitBreakerClient{
		client:   client,
		settings: cfg,
		breakers: make(map[string]*gobreaker.CircuitBreaker[*Response]),
	}
}

func (c *CircuitBreakerClient) Call(ctx context.Context, apiKey, command string, params map[string]any) (*Response, error) {
	cb := c.breakerFor(apiKey)

	resp, err := cb.Execute(func() (*Response, error) {
		return c.client.Call(ctx, apiKey, command, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			logrus.WithFields(logrus.Fields{
				"command": command,
				"breaker": cb.Name(),
			}).Warn("Circuit breaker aberto, chamada ao Flowbiz recusada")
			transportErr := &TransportError{Command: command, Err: err}
			metrics.UpstreamTransportErrors.WithLabelValues(command, transportErr.Kind()).Inc()
			return nil, transportErr
		}
		return nil, err
	}

	return resp, nil
}

func (c *CircuitBreakerClient) breakerFor(apiKey string) *gobreaker.CircuitBreaker[*Response] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[apiKey]; ok {
		return cb
	}

	name := breakerName(apiKey)
	maxFailures := c.settings.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openFor := time.Duration(c.settings.BreakerOpenSeconds) * time.Second
	if openFor <= 0 {
		openFor = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !IsTransportError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker mudou de estado")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	c.breakers[apiKey] = cb
	return cb
}

// State expõe o estado do circuito de uma chave
func (c *CircuitBreakerClient) State(apiKey string) gobreaker.State {
	return c.breakerFor(apiKey).State()
}

// O nome não pode expor a chave inteira nas métricas
func breakerName(apiKey string) string {
	suffix := apiKey
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return "flowbiz-" + suffix
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
