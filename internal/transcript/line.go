package transcript

import "time"

// Kind classifies a transcript line for styling.
type Kind int

const (
	KindPlain Kind = iota
	KindResult
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindResult:
		return "result"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Options controls how a line is appended.
type Options struct {
	Kind     Kind
	Animated bool
}

// Line is one rendered transcript entry. RenderedText is always HTML-escaped.
type Line struct {
	Index        int
	Kind         Kind
	RenderedText string
	Animated     bool
	// Revealing is true while the typing animation still has characters to show.
	Revealing bool
	CreatedAt time.Time
}

// EntranceAt is when the line should finish its entrance, staggered by index.
func (l Line) EntranceAt(stagger time.Duration) time.Time {
	return l.CreatedAt.Add(time.Duration(l.Index) * stagger)
}
