package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for one generation call. Nil
// Temperature/MaxTokens fall back to the task's configured defaults.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64
	MaxTokens    *int
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model for text generation.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the backing model server is reachable.
	Available(ctx context.Context) bool
}

// ollamaClient implements Client against a local Ollama instance's HTTP
// API. Each attempt gets its own deadline derived from the task's
// configured timeout, so one slow attempt does not consume the retry
// budget of the ones after it; only cancellation of the caller's context
// stops the retry loop early.
type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a Client that talks to a local Ollama instance.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	dialer := &net.Dialer{Timeout: 5 * time.Second}
	return &ollamaClient{
		cfg:      cfg,
		http:     &http.Client{Transport: &http.Transport{DialContext: dialer.DialContext}},
		observer: observer,
	}
}

// generateBody is the wire format for POST /api/generate.
type generateBody struct {
	Model   string      `json:"model"`
	System  string      `json:"system,omitempty"`
	Prompt  string      `json:"prompt"`
	Stream  bool        `json:"stream"`
	Options modelParams `json:"options,omitempty"`
}

type modelParams struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// generateReply is the non-streaming reply from POST /api/generate.
type generateReply struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !c.cfg.Enabled {
		return nil, ErrDisabled
	}

	start := time.Now()
	body := c.buildBody(req)
	attemptTimeout := time.Duration(c.cfg.TaskTimeout(req.Task)) * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		reply, err := c.attempt(ctx, body, attemptTimeout)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.report(req.Task, latency, nil)
			return &GenerateResponse{Text: reply.Response, Model: reply.Model, LatencyMs: latency}, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	err := classify(lastErr)
	c.report(req.Task, time.Since(start).Milliseconds(), err)
	return nil, err
}

func (c *ollamaClient) buildBody(req GenerateRequest) generateBody {
	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return generateBody{
		Model:   c.cfg.Model,
		System:  req.SystemPrompt,
		Prompt:  req.UserPrompt,
		Stream:  false,
		Options: modelParams{Temperature: temp, NumPredict: maxTok},
	}
}

func (c *ollamaClient) attempt(parent context.Context, body generateBody, timeout time.Duration) (*generateReply, error) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, msg)
	}

	var reply generateReply
	if err := json.NewDecoder(httpResp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &reply, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *ollamaClient) report(task TaskType, latencyMs int64, err error) {
	event := CallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: latencyMs,
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorCode = errorCode(err)
	}
	c.observer.OnCallComplete(event)
}

// classify maps a raw transport failure onto the package's sentinel
// errors so callers can branch without inspecting error strings.
func classify(err error) error {
	var netErr *net.OpError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.As(err, &netErr):
		return ErrOllamaUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
