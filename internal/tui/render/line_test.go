package render

import (
	"strings"
	"testing"
	"time"

	"evalterm/internal/transcript"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLine(t *testing.T) {
	store := transcript.NewStore(func() time.Time { return time.Unix(0, 0) })
	store.Append("<b>x</b> & y", transcript.Options{Kind: transcript.KindResult})
	line, _ := store.Last()

	rows := RenderLine(line, 40, LineState{})
	require.Len(t, rows, 1)
	assert.Equal(t, "  <b>x</b> & y", ansi.Strip(rows[0]))
}

func TestRenderLineCaretWhileRevealing(t *testing.T) {
	store := transcript.NewStore(nil)
	l := store.Append("hello world", transcript.Options{Animated: true})
	store.Advance(l.Index, store.Epoch())
	line, _ := store.Last()

	rows := RenderLine(line, 40, LineState{CaretOn: true})
	assert.Equal(t, CaretGlyph+" h", ansi.Strip(rows[0]))

	rows = RenderLine(line, 40, LineState{CaretOn: false})
	assert.Equal(t, "  h", ansi.Strip(rows[0]))

	for store.Advance(l.Index, store.Epoch()) {
	}
	line, _ = store.Last()
	rows = RenderLine(line, 40, LineState{CaretOn: true})
	assert.False(t, strings.Contains(rows[0], CaretGlyph))
}

func TestRenderLineWrapsMultilineJSON(t *testing.T) {
	store := transcript.NewStore(nil)
	store.Append(map[string]int{"x": 1}, transcript.Options{Kind: transcript.KindResult})
	line, _ := store.Last()

	rows := RenderLine(line, 40, LineState{Entering: true})
	var plain []string
	for _, r := range rows {
		plain = append(plain, ansi.Strip(r))
	}
	assert.Equal(t, []string{"  {", `    "x": 1`, "  }"}, plain)
}
