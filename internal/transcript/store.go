package transcript

import "time"

// reveal is the progress cursor of one animated line.
type reveal struct {
	line     *Line
	source   []rune
	revealed int
}

// Store is the ordered, append-only sequence of lines.
type Store struct {
	lines   []*Line
	next    int
	epoch   uint64
	pending map[int]*reveal
	now     func() time.Time
}

// NewStore returns an empty store. A nil clock falls back to time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{pending: make(map[int]*reveal), now: now}
}

// Append formats value, allocates the next index and attaches the line at once. Animated
// lines start empty and are filled by Advance.
func (s *Store) Append(value any, opts Options) Line {
	text := Format(value)
	s.next++
	line := &Line{
		Index:     s.next,
		Kind:      opts.Kind,
		Animated:  opts.Animated,
		CreatedAt: s.now(),
	}
	if opts.Animated {
		line.Revealing = true
		s.pending[line.Index] = &reveal{line: line, source: []rune(text)}
	} else {
		line.RenderedText = Escape(text)
	}
	s.lines = append(s.lines, line)
	return *line
}

// Advance reveals one more character of the line at index. It reports whether more
// characters remain. Calls carrying an epoch older than the last Clear are ignored.
func (s *Store) Advance(index int, epoch uint64) bool {
	if epoch != s.epoch {
		return false
	}
	r, ok := s.pending[index]
	if !ok {
		return false
	}
	if r.revealed < len(r.source) {
		r.revealed++
		r.line.RenderedText = Escape(string(r.source[:r.revealed]))
	}
	if r.revealed >= len(r.source) {
		r.line.Revealing = false
		delete(s.pending, index)
		return false
	}
	return true
}

// Clear drops all lines, resets the index counter and cancels every reveal in flight.
// It returns the number of cancelled reveals.
func (s *Store) Clear() int {
	cancelled := len(s.pending)
	s.lines = nil
	s.next = 0
	s.epoch++
	s.pending = make(map[int]*reveal)
	return cancelled
}

// Epoch identifies the current generation of lines; it changes on every Clear.
func (s *Store) Epoch() uint64 {
	return s.epoch
}

// Lines returns a snapshot of all lines in order.
func (s *Store) Lines() []Line {
	out := make([]Line, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, *l)
	}
	return out
}

// Last returns the newest line.
func (s *Store) Last() (Line, bool) {
	if len(s.lines) == 0 {
		return Line{}, false
	}
	return *s.lines[len(s.lines)-1], true
}

func (s *Store) Len() int {
	return len(s.lines)
}

// Pending returns how many lines are still being revealed.
func (s *Store) Pending() int {
	return len(s.pending)
}
