package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type undefined struct{}

// Undefined stands for a response that carried neither a result nor an error.
var Undefined any = undefined{}

const indent = "  "

// Format serializes a value into line text. Strings pass through unchanged, raw JSON keeps
// its key order, everything else is marshalled with a two-space indent.
func Format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case json.RawMessage:
		return formatRaw(v)
	case []byte:
		return formatRaw(v)
	case fmt.Stringer:
		return v.String()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(value); err != nil {
		return fmt.Sprint(value)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func formatRaw(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "undefined"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", indent); err != nil {
		return string(trimmed)
	}
	return buf.String()
}
