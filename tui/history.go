package tui

// history keeps recent commands for up/down recall. offset counts back
// from the newest entry: 0 means not navigating, 1 the newest, and so on.
type history struct {
	entries []string
	limit   int
	offset  int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

// Add records a command, dropping the oldest past the limit.
// Repeating the previous command records nothing.
func (h *history) Add(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
}

// Older steps back toward the oldest entry.
func (h *history) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.offset < len(h.entries) {
		h.offset++
	}
	return h.entries[len(h.entries)-h.offset], true
}

// Newer steps forward; past the newest entry it returns ("", false) and
// navigation ends.
func (h *history) Newer() (string, bool) {
	if h.offset <= 1 {
		h.offset = 0
		return "", false
	}
	h.offset--
	return h.entries[len(h.entries)-h.offset], true
}

// Reset ends navigation, so the next Older starts at the newest entry.
func (h *history) Reset() {
	h.offset = 0
}
