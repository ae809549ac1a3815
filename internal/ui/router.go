package ui

// Route identifies a screen.
type Route string

const (
	RouteLogin    Route = "login"
	RouteHome     Route = "home"
	RouteGroup    Route = "group"
	RouteNewGroup Route = "new_group"
)

// Params carries typed route parameters between screens. Only the group
// detail route uses them.
type Params struct {
	GroupID   string
	GroupName string
}

// Frame is one entry in a navigation stack.
type Frame struct {
	Route  Route
	Params Params
}

// Stack is a navigation history with push, replace, and pop. The root frame
// cannot be popped.
type Stack struct {
	frames []Frame
}

// NewStack creates a stack rooted at the given route.
func NewStack(root Route) *Stack {
	return &Stack{frames: []Frame{{Route: root}}}
}

// Current returns the top frame.
func (s *Stack) Current() Frame {
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Push adds a frame on top.
func (s *Stack) Push(route Route, params Params) {
	s.frames = append(s.frames, Frame{Route: route, Params: params})
}

// Replace swaps the top frame, so "back" skips the replaced screen.
func (s *Stack) Replace(route Route, params Params) {
	s.frames[len(s.frames)-1] = Frame{Route: route, Params: params}
}

// Pop removes the top frame. Returns false at the root, which stays put.
func (s *Stack) Pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return true
}
