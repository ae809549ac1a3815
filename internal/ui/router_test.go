package ui

import "testing"

func TestStackPushPop(t *testing.T) {
	s := NewStack(RouteHome)
	if s.Current().Route != RouteHome {
		t.Fatalf("root = %s", s.Current().Route)
	}

	s.Push(RouteGroup, Params{GroupID: "g1", GroupName: "Trip"})
	if got := s.Current(); got.Route != RouteGroup || got.Params.GroupID != "g1" {
		t.Errorf("top = %+v", got)
	}

	if !s.Pop() {
		t.Error("Pop() = false, want true")
	}
	if s.Current().Route != RouteHome {
		t.Errorf("after pop: %s", s.Current().Route)
	}
	if s.Pop() {
		t.Error("popping the root should fail")
	}
}

func TestStackReplaceSkipsFormOnBack(t *testing.T) {
	s := NewStack(RouteHome)
	s.Push(RouteNewGroup, Params{})
	s.Replace(RouteGroup, Params{GroupID: "g1", GroupName: "Trip"})

	if got := s.Current(); got.Route != RouteGroup || got.Params.GroupName != "Trip" {
		t.Fatalf("top = %+v", got)
	}
	if s.Depth() != 2 {
		t.Errorf("depth = %d, want 2", s.Depth())
	}

	// Back from the detail view lands on home, not the creation form.
	s.Pop()
	if s.Current().Route != RouteHome {
		t.Errorf("after back: %s", s.Current().Route)
	}
}
