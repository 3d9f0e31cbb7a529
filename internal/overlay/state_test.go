package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLabels = Labels{Command: "Command", PlaceholderTitle: "History", PlaceholderBody: "Empty"}

var openedAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func commands(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Command)
	}
	return out
}

func TestOpenReversesItems(t *testing.T) {
	var s State
	s.Open([]string{"a", "b", "c"}, openedAt, testLabels)

	require.True(t, s.Visible())
	cards := s.Cards()
	assert.Equal(t, []string{"c", "b", "a"}, commands(cards))
	assert.Equal(t, "Command • 2024-05-01 09:30:00", cards[0].Label)
}

func TestOpenEmptyRendersOnePlaceholder(t *testing.T) {
	for _, items := range [][]string{nil, {}} {
		var s State
		s.Open(items, openedAt, testLabels)
		cards := s.Cards()
		require.Len(t, cards, 1)
		assert.True(t, cards[0].Placeholder)
		assert.Equal(t, "History", cards[0].Label)
		assert.Equal(t, "Empty", cards[0].Command)

		_, ok := s.Selected()
		assert.False(t, ok, "placeholder must not be selectable")
	}
}

func TestNavigationAndSelection(t *testing.T) {
	var s State
	s.Open([]string{"a", "b", "c"}, openedAt, testLabels)

	s.MoveDown()
	card, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", card.Command)

	s.MoveUp()
	s.MoveUp()
	card, _ = s.Selected()
	assert.Equal(t, "a", card.Command, "moving up from the top wraps")

	assert.True(t, s.SetCursor(0))
	assert.False(t, s.SetCursor(3))
	card, _ = s.Selected()
	assert.Equal(t, "c", card.Command)
}

func TestCloseClearsEverything(t *testing.T) {
	var s State
	s.Open([]string{"a"}, openedAt, testLabels)
	s.SetQuery("a")
	s.Close()

	assert.False(t, s.Visible())
	assert.Empty(t, s.Cards())
	assert.Equal(t, "", s.Query())
	assert.Equal(t, 0, s.Cursor())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestSetQueryFiltersKeepingOrder(t *testing.T) {
	var s State
	s.Open([]string{"x = 1", "y = 2", "x + y"}, openedAt, testLabels)

	s.SetQuery("x")
	assert.Equal(t, []string{"x + y", "x = 1"}, commands(s.Cards()))
	assert.NotEmpty(t, s.Highlights(0))

	s.SetQuery("zzz")
	assert.Empty(t, s.Cards())
	_, ok := s.Selected()
	assert.False(t, ok)

	s.SetQuery("")
	assert.Len(t, s.Cards(), 3)
}

func TestReopenResetsQuery(t *testing.T) {
	var s State
	s.Open([]string{"a", "b"}, openedAt, testLabels)
	s.SetQuery("a")
	s.MoveDown()

	s.Open([]string{"a", "b", "c"}, openedAt, testLabels)
	assert.Equal(t, "", s.Query())
	assert.Equal(t, 0, s.Cursor())
	assert.Len(t, s.Cards(), 3)
}
