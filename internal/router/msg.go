package router

// frameMsg advances one fade frame of the transition with a matching
// sequence number. Frames from a superseded transition are dropped.
type frameMsg struct {
	seq int
}

// loadedMsg delivers the content fetch result for the loading phase of
// the transition with a matching sequence number.
type loadedMsg struct {
	seq     int
	content Content
}
