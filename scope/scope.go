/*
File: lumen/scope/scope.go

A pure index-based scope stack: index 0 is the global frame, the top of
the stack is the innermost. No parent-chain, no Copy()-for-closures — the
teacher's scope/scope.go builds closures by snapshotting the enclosing
frame into every new one (its Copy method, its Parent-walking Assign);
this language deliberately has no true closures, so
that whole mechanism is replaced by a flat stack that function calls
reset to exactly [global, call-frame] on entry.
*/
package scope

import (
	"fmt"

	"github.com/akashmaji946/lumen/value"
)

// Frame is a single scope's bindings.
type Frame map[string]value.Value

// Stack is the interpreter's scope stack. A fresh Stack starts with just
// the global frame at index 0.
type Stack struct {
	frames []Frame
}

// New returns a Stack containing only the global frame.
func New() *Stack {
	return &Stack{frames: []Frame{make(Frame)}}
}

// Push adds a new, empty frame on top of the stack.
func (s *Stack) Push() {
	s.frames = append(s.frames, make(Frame))
}

// Pop removes the innermost frame. Every Push must be matched by exactly
// one Pop, including on the early-return path.
func (s *Stack) Pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// Lookup searches frames innermost-first and returns the bound value.
func (s *Stack) Lookup(name string) (value.Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Bind introduces or overwrites a binding in the innermost (current)
// frame — the semantics an `Assignment` / `Declaration` node needs.
func (s *Stack) Bind(name string, v value.Value) {
	s.frames[len(s.frames)-1][name] = v
}

// BindGlobal introduces or overwrites a binding in the global frame
// directly, regardless of how many frames are currently pushed —
// used by the hoisting pass, which always targets the global scope.
func (s *Stack) BindGlobal(name string, v value.Value) {
	s.frames[0][name] = v
}

// Reassign finds the nearest enclosing frame that already binds name and
// overwrites it there. Returns an error if no such binding exists,
// matching `Reassignment`'s "fail if not found" contract.
func (s *Stack) Reassign(name string, v value.Value) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i][name]; ok {
			s.frames[i][name] = v
			return nil
		}
	}
	return fmt.Errorf("identifier not found: %s", name)
}

// Snapshot and Restore let a function call temporarily replace the
// active stack with exactly [global, call-frame] — a call's body sees
// only its own frame plus the global one below it, never the caller's
// intermediate frames.
func (s *Stack) Snapshot() []Frame {
	return s.frames
}

func (s *Stack) Restore(frames []Frame) {
	s.frames = frames
}

// EnterCall replaces the active stack with [global, frame] for the
// duration of a function body's evaluation. Callers must Restore the
// prior snapshot afterward (on every path, including early return).
func (s *Stack) EnterCall(frame Frame) {
	s.frames = []Frame{s.frames[0], frame}
}
