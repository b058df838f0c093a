package nav

// History is the session's navigation stack. It mirrors the browser
// contract: Push drops any forward entries, and Back/Forward move the
// cursor first and then report the now-current location — by the time a
// caller reacts, the history has already changed.
type History struct {
	entries []Location
	cur     int
}

// NewHistory creates a history whose single entry is the initial location
// (the deep link the session was opened with, or Home).
func NewHistory(initial Location) *History {
	return &History{entries: []Location{initial}}
}

// Current returns the entry under the cursor.
func (h *History) Current() Location {
	return h.entries[h.cur]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Push appends loc after the cursor, dropping any forward entries.
// Pushing the current location again is a no-op, so redundant
// navigations never create duplicate entries.
func (h *History) Push(loc Location) {
	if loc == h.Current() {
		return
	}
	h.entries = append(h.entries[:h.cur+1], loc)
	h.cur = len(h.entries) - 1
}

// CanBack reports whether an older entry exists.
func (h *History) CanBack() bool {
	return h.cur > 0
}

// CanForward reports whether a newer entry exists.
func (h *History) CanForward() bool {
	return h.cur < len(h.entries)-1
}

// Back moves the cursor one entry older and returns the new current
// location. It reports false, without moving, when already at the oldest.
func (h *History) Back() (Location, bool) {
	if !h.CanBack() {
		return h.Current(), false
	}
	h.cur--
	return h.Current(), true
}

// Forward moves the cursor one entry newer and returns the new current
// location. It reports false, without moving, when already at the newest.
func (h *History) Forward() (Location, bool) {
	if !h.CanForward() {
		return h.Current(), false
	}
	h.cur++
	return h.Current(), true
}
