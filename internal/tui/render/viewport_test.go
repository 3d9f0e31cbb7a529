package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportSetLinesKeepsBottom(t *testing.T) {
	vp := NewViewport(10, 2)
	vp.SetLines([]string{"a", "b"}, false)
	vp.GotoBottom()

	vp.SetLines([]string{"a", "b", "c"}, false)
	assert.True(t, vp.AtBottom(), "viewport should stay anchored at bottom after append")
	assert.Equal(t, []string{"a", "b", "c"}, vp.Lines())
}

func TestViewportStickForcesBottom(t *testing.T) {
	vp := NewViewport(10, 2)
	vp.SetLines([]string{"a", "b", "c", "d"}, false)
	vp.GotoTop()
	assert.False(t, vp.AtBottom())

	vp.SetLines([]string{"a", "b", "c", "d", "e"}, true)
	assert.True(t, vp.AtBottom())
}

func TestViewportScrolledUpStaysPut(t *testing.T) {
	vp := NewViewport(10, 2)
	vp.SetLines([]string{"a", "b", "c", "d"}, false)
	vp.GotoTop()

	vp.SetLines([]string{"a", "b", "c", "d", "e"}, false)
	assert.Equal(t, 0, vp.YOffset)
}

func TestViewportScrollLineDown(t *testing.T) {
	t.Run("adjusts offset", func(t *testing.T) {
		vp := NewViewport(8, 2)
		vp.SetLines([]string{"a", "b", "c"}, false)
		vp.SetYOffset(0)

		vp.ScrollLineDown(1)
		assert.Equal(t, 1, vp.YOffset)
	})

	t.Run("ignore extra scroll when at bottom", func(t *testing.T) {
		vp := NewViewport(8, 2)
		vp.SetLines([]string{"a", "b"}, false)
		vp.GotoBottom()

		vp.ScrollLineDown(1)
		assert.True(t, vp.AtBottom())
	})
}

func TestViewportResizeInvalidatesOnWidthChange(t *testing.T) {
	vp := NewViewport(8, 2)
	vp.SetLines([]string{"a"}, false)
	vp.Resize(8, 3)
	assert.Equal(t, []string{"a"}, vp.Lines())
	vp.Resize(9, 3)
	assert.Empty(t, vp.Lines())
}
