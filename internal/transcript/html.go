package transcript

import (
	"bufio"
	"fmt"
	"io"
)

// WriteHTML writes the transcript as an HTML fragment. Lines still being revealed are
// written as far as they have been typed.
func (s *Store) WriteHTML(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `<div class="terminal">`)
	for _, l := range s.lines {
		fmt.Fprintf(bw, "<div class=\"line %s\" data-index=\"%d\"><span class=\"prompt\">$</span><pre class=\"content\">%s</pre></div>\n",
			l.Kind, l.Index, l.RenderedText)
	}
	fmt.Fprintln(bw, `</div>`)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
