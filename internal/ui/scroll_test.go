package ui

import "testing"

func TestScrollCommands(t *testing.T) {
	cases := []struct {
		name           string
		start          scrollState
		op             func(*scrollState)
		wantOffset     int
		wantAutoscroll bool
	}{
		{"line up", scrollState{offset: 5, autoscroll: true}, (*scrollState).lineUp, 4, false},
		{"line up at top", scrollState{offset: 0, autoscroll: true}, (*scrollState).lineUp, 0, false},
		{"line down", scrollState{offset: 5}, (*scrollState).lineDown, 6, false},
		{"page up", scrollState{offset: 49, autoscroll: true}, func(s *scrollState) { s.pageUp(3) }, 46, false},
		{"page up clamps at top", scrollState{offset: 2}, func(s *scrollState) { s.pageUp(10) }, 0, false},
		{"page down past end stays unclamped", scrollState{offset: 95}, func(s *scrollState) { s.pageDown(10) }, 105, false},
		{"top", scrollState{offset: 42, autoscroll: true}, (*scrollState).toTop, 0, false},
		{"bottom keeps offset", scrollState{offset: 17}, (*scrollState).toBottom, 17, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.start
			tc.op(&s)
			if s.offset != tc.wantOffset || s.autoscroll != tc.wantAutoscroll {
				t.Fatalf("got offset=%d autoscroll=%v, want offset=%d autoscroll=%v",
					s.offset, s.autoscroll, tc.wantOffset, tc.wantAutoscroll)
			}
		})
	}
}

func TestReconcileResumesAtTail(t *testing.T) {
	s := scrollState{offset: 43}
	s.reconcile(50, 7)
	if !s.autoscroll || s.offset != 43 {
		t.Fatalf("got offset=%d autoscroll=%v, want 43/true", s.offset, s.autoscroll)
	}
}

func TestReconcileClampsPastEnd(t *testing.T) {
	s := scrollState{offset: 200}
	s.reconcile(50, 7)
	if !s.autoscroll || s.offset != 43 {
		t.Fatalf("got offset=%d autoscroll=%v, want 43/true", s.offset, s.autoscroll)
	}
}

func TestReconcileFollowsGrowth(t *testing.T) {
	s := scrollState{autoscroll: true}

	s.reconcile(3, 7)
	if s.offset != 0 || !s.autoscroll {
		t.Fatalf("short content: got offset=%d autoscroll=%v", s.offset, s.autoscroll)
	}

	s.reconcile(30, 7)
	if s.offset != 23 {
		t.Fatalf("after growth: got offset=%d, want 23", s.offset)
	}

	s.reconcile(31, 7)
	if s.offset != 24 {
		t.Fatalf("after more growth: got offset=%d, want 24", s.offset)
	}
}

func TestReconcileHoldsWhenScrolledBack(t *testing.T) {
	s := scrollState{offset: 10}
	s.reconcile(50, 7)
	if s.offset != 10 || s.autoscroll {
		t.Fatalf("got offset=%d autoscroll=%v, want 10/false", s.offset, s.autoscroll)
	}
}

func TestPageSize(t *testing.T) {
	cases := []struct{ h, want int }{
		{0, 10},
		{-1, 10},
		{2, 0},
		{9, 3},
		{10, 3},
		{24, 8},
	}
	for _, tc := range cases {
		if got := pageSize(tc.h); got != tc.want {
			t.Errorf("pageSize(%d) = %d, want %d", tc.h, got, tc.want)
		}
	}
}
