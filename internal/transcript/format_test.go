package transcript

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type named string

func (n named) String() string { return "named:" + string(n) }

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string passes through", value: "a < b", want: "a < b"},
		{name: "nil", value: nil, want: "null"},
		{name: "undefined", value: Undefined, want: "undefined"},
		{name: "raw object keeps key order", value: json.RawMessage(`{"z":1,"a":[1,2]}`), want: "{\n  \"z\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}"},
		{name: "raw string stays quoted", value: json.RawMessage(`"hi"`), want: `"hi"`},
		{name: "raw empty", value: json.RawMessage(` `), want: "undefined"},
		{name: "raw invalid", value: []byte(`{oops`), want: "{oops"},
		{name: "map", value: map[string]int{"x": 1}, want: "{\n  \"x\": 1\n}"},
		{name: "no html escaping", value: []string{"<b>"}, want: "[\n  \"<b>\"\n]"},
		{name: "number", value: 3.5, want: "3.5"},
		{name: "stringer", value: named("v"), want: "named:v"},
		{name: "unmarshalable", value: func() {}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.value)
			if tt.name == "unmarshalable" {
				assert.NotEmpty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEscapeAndDisplay(t *testing.T) {
	raw := `<script>alert('x')</script> "&"`
	escaped := Escape(raw)
	assert.Equal(t, "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt; &quot;&amp;&quot;", escaped)
	assert.Equal(t, raw, Display(escaped))

	assert.Equal(t, "red\n", Display(Escape("\x1b[31mred\x1b[0m\r\n")))
}
