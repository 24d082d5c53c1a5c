package dropzone

// SplitPayload splits a raw drag-and-drop payload into individual
// paths. Payloads are space- or newline-delimited, and paths that
// contain spaces arrive wrapped in braces. A small two-state machine
// (plain token / braced token) keeps the contract explicit.
func SplitPayload(data string) []string {
	var (
		items   []string
		token   []rune
		inBrace bool
	)

	flush := func() {
		if len(token) > 0 {
			items = append(items, string(token))
			token = token[:0]
		}
	}

	for _, ch := range data {
		switch {
		case ch == '{':
			// An opening brace always restarts the token, even inside
			// a braced run; braces never appear literally in paths.
			inBrace = true
			token = token[:0]
		case ch == '}':
			inBrace = false
			items = append(items, string(token))
			token = token[:0]
		case (ch == ' ' || ch == '\n' || ch == '\r') && !inBrace:
			flush()
		default:
			token = append(token, ch)
		}
	}
	flush()

	return items
}
