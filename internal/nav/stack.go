package nav

// Stack is the navigation back stack. The top entry is the visible
// screen. Not safe for concurrent use; the Navigator serializes access.
type Stack struct {
	routes []Route
}

// NewStack creates a stack with the given initial route.
func NewStack(initial Route) *Stack {
	return &Stack{routes: []Route{initial}}
}

// Current returns the visible route.
func (s *Stack) Current() Route {
	return s.routes[len(s.routes)-1]
}

// Push makes r the visible route.
func (s *Stack) Push(r Route) {
	s.routes = append(s.routes, r)
}

// Pop removes the visible route and returns whether anything was popped.
// The root entry never pops; back on the root is a no-op here (the shell
// decides whether that exits the app).
func (s *Stack) Pop() bool {
	if len(s.routes) <= 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// PopUpTo removes entries from the top down to the newest entry named
// name; with inclusive set, that entry is removed too. Popping to a name
// not on the stack leaves it unchanged.
func (s *Stack) PopUpTo(name string, inclusive bool) {
	for i := len(s.routes) - 1; i >= 0; i-- {
		if s.routes[i].Name() != name {
			continue
		}
		end := i + 1
		if inclusive {
			end = i
		}
		s.routes = s.routes[:end]
		return
	}
}

// Contains reports whether any entry on the stack has the given name.
func (s *Stack) Contains(name string) bool {
	for _, r := range s.routes {
		if r.Name() == name {
			return true
		}
	}
	return false
}

// Depth returns the number of entries on the stack.
func (s *Stack) Depth() int {
	return len(s.routes)
}

// Reset discards the stack and starts over with the given root. Used by
// logout.
func (s *Stack) Reset(root Route) {
	s.routes = s.routes[:0]
	s.routes = append(s.routes, root)
}
