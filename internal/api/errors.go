package api

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse 表示响应体不是合法 JSON。
	ErrMalformedResponse = errors.New("malformed response")
	// ErrStatus 表示服务返回了非 2xx 状态且没有可用的 JSON 响应体。
	ErrStatus = errors.New("unexpected status")

	ErrInvalidURL = errors.New("invalid base url")
)

// TransportError 表示在拿到可用的 JSON 响应之前请求就已失败。
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func statusError(code int) error {
	return fmt.Errorf("%w %d", ErrStatus, code)
}
