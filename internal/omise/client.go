package omise

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// client is the transport shim between the orchestrator and the
// provider. It never surfaces Go errors for provider interaction:
// every call yields a JSON object for the classifier, substituting a
// synthetic error object when the call fails outright or the body is
// not JSON.
type client struct {
	http   *resty.Client
	logger *slog.Logger
}

func newClient(timeout time.Duration, logger *slog.Logger) *client {
	return &client{
		http:   resty.New().SetTimeout(timeout),
		logger: logger,
	}
}

// request performs one signed call. The key goes out as HTTP Basic
// auth with an empty password; non-2xx bodies are returned to the
// caller just like 2xx ones, since the provider encodes failures in
// the body, not the status line.
func (c *client) request(ctx context.Context, method, url string, params map[string]any, key string) map[string]any {
	var body []byte
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return jsonError(err.Error())
		}
		body = data
	}

	requestID := uuid.NewString()
	c.logger.Debug("provider request",
		"request_id", requestID,
		"method", method,
		"url", url,
		"body", Scrub(string(body)),
	)

	req := c.http.R().
		SetContext(ctx).
		SetBasicAuth(key, "").
		SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		c.logger.Debug("provider request failed",
			"request_id", requestID,
			"error", err,
		)
		return jsonError(err.Error())
	}

	raw := resp.Body()
	c.logger.Debug("provider response",
		"request_id", requestID,
		"status", resp.StatusCode(),
		"body", Scrub(string(raw)),
	)

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return jsonError(string(raw))
	}
	return parsed
}
