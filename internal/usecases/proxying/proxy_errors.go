package proxying

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRoute   = errors.New("Unknown route")
	ErrFlowbizRequest = errors.New("Flowbiz request failed")
)

// ProxyError carrega o código da API e os dados extras devolvidos ao cliente
type ProxyError struct {
	Err     error
	Code    string
	Details string
	Data    any
}

func (e *ProxyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProxyError) Unwrap() error {
	return e.Err
}
