package api

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Outcome 是 /api/execute 的结果：要么是服务端计算结果，要么是服务端报告的错误。
type Outcome struct {
	failed  bool
	message string
	result  json.RawMessage
}

// Success 构造结果分支；raw 为空表示响应中既没有 result 也没有 error。
func Success(raw json.RawMessage) Outcome {
	return Outcome{result: raw}
}

// Failure 构造错误分支。
func Failure(message string) Outcome {
	return Outcome{failed: true, message: message}
}

// Failure 返回服务端错误信息。
func (o Outcome) Failure() (string, bool) {
	return o.message, o.failed
}

// Result 返回原始 JSON 结果，保留字段顺序。
func (o Outcome) Result() (json.RawMessage, bool) {
	if o.failed {
		return nil, false
	}
	return o.result, true
}

// Undefined 表示响应中既无 result 也无 error。
func (o Outcome) Undefined() bool {
	return !o.failed && len(o.result) == 0
}

// decodeOutcome 在解码边界上构造 Outcome；只有“真值”的 error 字段才算失败。
func decodeOutcome(body []byte) (Outcome, error) {
	if !gjson.ValidBytes(body) {
		return Outcome{}, ErrMalformedResponse
	}
	doc := gjson.ParseBytes(body)
	if errField := doc.Get("error"); truthy(errField) {
		if errField.Type == gjson.String {
			return Failure(errField.Str), nil
		}
		return Failure(errField.Raw), nil
	}
	if res := doc.Get("result"); res.Exists() {
		return Success(json.RawMessage(res.Raw)), nil
	}
	return Success(nil), nil
}

func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.True, gjson.JSON:
		return true
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	default:
		return false
	}
}

// decodeHistory 读取命令列表；非数组按空列表处理，非字符串元素保留其 JSON 文本。
func decodeHistory(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedResponse
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return nil, nil
	}
	items := doc.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == gjson.String {
			out = append(out, item.Str)
			continue
		}
		out = append(out, item.Raw)
	}
	return out, nil
}
