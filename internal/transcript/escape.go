package transcript

import (
	"html"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces & < > " ' with their character references.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// Display turns escaped line text back into the characters the user typed, with terminal
// control sequences removed so remote content cannot restyle or move the cursor.
func Display(rendered string) string {
	return strings.ReplaceAll(ansi.Strip(html.UnescapeString(rendered)), "\r", "")
}
