package flowbizclient

import (
	"context"
	"errors"
	"fmt"
	"net"

	gobreaker "github.com/sony/gobreaker/v2"
)

// TransportError é uma falha antes de existir resposta HTTP (conexão, timeout, circuito aberto)
type TransportError struct {
	Command string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("falha na chamada %s ao Flowbiz: %v", e.Command, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout informa se a falha foi por tempo esgotado
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// Kind classifica a falha para métricas
func (e *TransportError) Kind() string {
	switch {
	case e.Timeout():
		return "timeout"
	case errors.Is(e.Err, context.Canceled):
		return "canceled"
	case errors.Is(e.Err, gobreaker.ErrOpenState), errors.Is(e.Err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	default:
		return "connection"
	}
}

// IsTransportError é um atalho para errors.As
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
