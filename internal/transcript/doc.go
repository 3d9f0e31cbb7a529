// Package transcript holds the append-only log of rendered interaction lines.
//
// A Store owns every Line and the reveal cursor of each line whose text is still being
// typed out. Text is stored HTML-escaped; callers that draw to a terminal decode it with
// Display. The Store is not safe for concurrent use and is meant to be driven from a single
// event loop.
package transcript
