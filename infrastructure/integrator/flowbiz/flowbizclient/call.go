package flowbizclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
)

// Call envia um único POST de formulário ao Flowbiz.
// Corpo que não é JSON volta como {"raw": texto} com o status original.
func (c *FlowbizClient) Call(ctx context.Context, apiKey, command string, params map[string]any) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Command: command, Err: err}
		}
	}

	form := BuildPayload(apiKey, c.config.MethodParam, c.config.ResponseFormat, command, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(command), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErr := &TransportError{Command: command, Err: err}
		metrics.UpstreamTransportErrors.WithLabelValues(command, transportErr.Kind()).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(command, metrics.StatusClass(0)).Observe(time.Since(startTime).Seconds())
		return nil, transportErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		transportErr := &TransportError{Command: command, Err: err}
		metrics.UpstreamTransportErrors.WithLabelValues(command, transportErr.Kind()).Inc()
		return nil, transportErr
	}

	metrics.UpstreamRequestDuration.WithLabelValues(command, metrics.StatusClass(resp.StatusCode)).Observe(time.Since(startTime).Seconds())

	logrus.WithFields(logrus.Fields{
		"command":     command,
		"status_code": resp.StatusCode,
		"duration":    time.Since(startTime).String(),
	}).Debug("Resposta recebida do Flowbiz")

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       decodeBody(body),
	}, nil
}

func (c *FlowbizClient) endpoint(command string) string {
	if !c.config.ShouldAppendMethodPath() {
		return c.config.Endpoint
	}
	return strings.TrimRight(c.config.Endpoint, "/") + "/" + command
}

func decodeBody(body []byte) any {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return map[string]any{"raw": string(body)}
	}
	return decoded
}
