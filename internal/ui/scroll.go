package ui

// scrollState is one panel's scroll position. Movement commands do not
// clamp the offset from above; the upper bound depends on the wrapped
// line count, which shifts with every resize and every appended chunk,
// so it is applied by reconcile once per frame instead.
type scrollState struct {
	offset     int
	autoscroll bool
}

func (s *scrollState) lineUp() {
	if s.offset > 0 {
		s.offset--
	}
	s.autoscroll = false
}

func (s *scrollState) lineDown() {
	s.offset++
	s.autoscroll = false
}

func (s *scrollState) pageUp(page int) {
	s.offset -= page
	if s.offset < 0 {
		s.offset = 0
	}
	s.autoscroll = false
}

func (s *scrollState) pageDown(page int) {
	s.offset += page
	s.autoscroll = false
}

func (s *scrollState) toTop() {
	s.offset = 0
	s.autoscroll = false
}

func (s *scrollState) toBottom() {
	s.autoscroll = true
}

// reconcile settles the position against the current content: scrolling
// to (or past) the tail re-engages autoscroll, and autoscroll pins the
// last wrapped line into view.
func (s *scrollState) reconcile(total, height int) {
	if s.offset+height >= total {
		s.autoscroll = true
	}
	if s.autoscroll {
		s.offset = total - height
		if s.offset < 0 {
			s.offset = 0
		}
	}
}

// pageSize is the stride for page scrolling at the given terminal height.
// The fallback covers startup, before the first size report arrives.
func pageSize(termHeight int) int {
	if termHeight <= 0 {
		return 10
	}
	return termHeight / 3
}
