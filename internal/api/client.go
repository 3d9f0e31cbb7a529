// Package api 是远程求值服务的 HTTP JSON 客户端。
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"evalterm/internal/logger"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// 服务端接口路径。
const (
	PathExecute      = "/api/execute"
	PathVars         = "/api/vars"
	PathHistory      = "/api/history"
	PathClearHistory = "/api/clear-history"
	PathHealth       = "/health"
)

// RequestIDHeader 携带每个请求的关联 ID。
const RequestIDHeader = "X-Request-ID"

const maxBodyBytes = 8 << 20

type Options struct {
	BaseURL string
	// Timeout 为 0 表示不设置请求超时。
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logger.HTTPLogger
	Metrics    *Metrics
}

type Client struct {
	baseURL string
	http    *http.Client
	log     logger.HTTPLogger
	metrics *Metrics
}

func New(opts Options) (*Client, error) {
	base, err := normalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NoopHTTPLogger{}
	}
	return &Client{
		baseURL: base,
		http:    hc,
		log:     log,
		metrics: opts.Metrics,
	}, nil
}

// BaseURL 返回规范化后的服务地址。
func (c *Client) BaseURL() string {
	return c.baseURL
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidURL, raw, err)
	}
	scheme := strings.ToLower(parsed.Scheme)
	if (scheme != "http" && scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w %q: scheme=%q host=%q", ErrInvalidURL, raw, parsed.Scheme, parsed.Host)
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return strings.TrimRight(parsed.String(), "/"), nil
}

// Execute 发送一条命令并返回结果或服务端错误。传输层失败返回 *TransportError。
func (c *Client) Execute(ctx context.Context, input string) (Outcome, error) {
	payload, err := json.Marshal(struct {
		Input string `json:"input"`
	}{Input: input})
	if err != nil {
		return Outcome{}, &TransportError{Op: "execute", Err: err}
	}
	start := time.Now()
	status, body, err := c.do(ctx, http.MethodPost, PathExecute, payload)
	if err != nil {
		c.metrics.observe("execute", OutcomeError, time.Since(start))
		return Outcome{}, &TransportError{Op: "execute", Err: err}
	}
	out, err := decodeOutcome(body)
	if err != nil {
		c.metrics.observe("execute", OutcomeError, time.Since(start))
		return Outcome{}, &TransportError{Op: "execute", Err: bodyError(status, err)}
	}
	label := OutcomeSuccess
	if _, failed := out.Failure(); failed {
		label = OutcomeFailure
	}
	c.metrics.observe("execute", label, time.Since(start))
	return out, nil
}

// Variables 返回变量表的原始 JSON。
func (c *Client) Variables(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()
	status, body, err := c.do(ctx, http.MethodGet, PathVars, nil)
	if err == nil && !gjson.ValidBytes(body) {
		err = bodyError(status, ErrMalformedResponse)
	}
	if err != nil {
		c.metrics.observe("vars", OutcomeError, time.Since(start))
		return nil, &TransportError{Op: "vars", Err: err}
	}
	c.metrics.observe("vars", OutcomeSuccess, time.Since(start))
	return json.RawMessage(bytes.TrimSpace(body)), nil
}

// History 返回历史命令，最早的在前。
func (c *Client) History(ctx context.Context) ([]string, error) {
	start := time.Now()
	status, body, err := c.do(ctx, http.MethodGet, PathHistory, nil)
	var items []string
	if err == nil {
		items, err = decodeHistory(body)
		if err != nil {
			err = bodyError(status, err)
		}
	}
	if err != nil {
		c.metrics.observe("history", OutcomeError, time.Since(start))
		return nil, &TransportError{Op: "history", Err: err}
	}
	c.metrics.observe("history", OutcomeSuccess, time.Since(start))
	return items, nil
}

// ClearHistory 清空服务端的命令历史。
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.expectOK(ctx, "clear-history", http.MethodPost, PathClearHistory)
}

// Health 检查服务是否在线。
func (c *Client) Health(ctx context.Context) error {
	return c.expectOK(ctx, "health", http.MethodGet, PathHealth)
}

func (c *Client) expectOK(ctx context.Context, op, method, path string) error {
	start := time.Now()
	status, _, err := c.do(ctx, method, path, nil)
	if err == nil && (status < 200 || status > 299) {
		err = statusError(status)
	}
	if err != nil {
		c.metrics.observe(op, OutcomeError, time.Since(start))
		return &TransportError{Op: op, Err: err}
	}
	c.metrics.observe(op, OutcomeSuccess, time.Since(start))
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := uuid.NewString()
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Request(requestID, method, path, string(payload))
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(requestID, err, time.Since(start))
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Error(requestID, err, time.Since(start))
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	c.log.Response(requestID, resp.StatusCode, string(body), time.Since(start))
	return resp.StatusCode, body, nil
}

// bodyError 在响应体无法解析时优先报告异常状态码。
func bodyError(status int, err error) error {
	if status >= 400 {
		return fmt.Errorf("%w: %w", statusError(status), err)
	}
	return err
}
