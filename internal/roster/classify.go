package roster

import "callsheet/internal/config"

// Classify maps a row to its status category key. The dedicated status
// badge is consulted first; rows without a badge fall back to a keyword
// scan over the full row text. Keyword precedence follows the configured
// status order. Missing or empty text yields the empty key.
func Classify(e *Entry) string {
	text, ok := e.Badge()
	if !ok {
		text = e.FlatText()
	}
	if s := config.Global().StatusFor(text); s != nil {
		return s.Key
	}
	return ""
}
