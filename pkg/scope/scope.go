package scope

import (
	"github.com/arthur-debert/grugui/pkg/errors"
)

// Kind tags a close-action so owners can interpret it without closures
type Kind int

const (
	// KindSentinel marks the base of the stack
	KindSentinel Kind = iota
	// KindSession closes the session itself
	KindSession
	// KindCloseTag closes a markup element
	KindCloseTag
	// KindPopRule closes a style rule
	KindPopRule
	// KindNoOp closes a compound with nothing to undo
	KindNoOp
	// KindCustom is interpreted by the owning statement set via Data
	KindCustom
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindSentinel:
		return "sentinel"
	case KindSession:
		return "session"
	case KindCloseTag:
		return "close-tag"
	case KindPopRule:
		return "pop-rule"
	case KindNoOp:
		return "no-op"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Closer is implemented by whoever pushes actions onto the stack
type Closer interface {
	// CloseCompound undoes the compound described by a
	CloseCompound(a Action) error
}

// Action is one pending close-action
type Action struct {
	Kind  Kind
	Owner Closer
	// Tag is the element name for KindCloseTag
	Tag string
	// Data is owner-defined state carried until the compound closes
	Data interface{}
}

// Stack is the ordered sequence of pending close-actions
type Stack struct {
	actions []Action
}

// NewStack creates a stack holding only the sentinel
func NewStack() *Stack {
	return &Stack{
		actions: []Action{{Kind: KindSentinel}},
	}
}

// Push registers a close-action for a compound that just opened
func (s *Stack) Push(a Action) {
	s.actions = append(s.actions, a)
}

// Depth returns the number of open compounds above the sentinel
func (s *Stack) Depth() int {
	return len(s.actions) - 1
}

// Top returns the innermost action, the sentinel when nothing is open
func (s *Stack) Top() Action {
	return s.actions[len(s.actions)-1]
}

// Pop removes the innermost action without running it
func (s *Stack) Pop() (Action, error) {
	if s.Depth() == 0 {
		return Action{}, errors.New(errors.ErrUnbalancedScope,
			"end called with no open compound").
			WithDetail("depth", 0)
	}

	last := len(s.actions) - 1
	a := s.actions[last]
	s.actions[last] = Action{}
	s.actions = s.actions[:last]
	return a, nil
}

// End pops the innermost action and dispatches it to its owner
func (s *Stack) End() error {
	a, err := s.Pop()
	if err != nil {
		return err
	}

	if a.Kind == KindNoOp || a.Owner == nil {
		return nil
	}
	return a.Owner.CloseCompound(a)
}

// Reset drops every action above the sentinel
func (s *Stack) Reset() {
	for i := 1; i < len(s.actions); i++ {
		s.actions[i] = Action{}
	}
	s.actions = s.actions[:1]
}

// Kinds lists the kinds from the base to the top, sentinel included
func (s *Stack) Kinds() []Kind {
	kinds := make([]Kind, len(s.actions))
	for i, a := range s.actions {
		kinds[i] = a.Kind
	}
	return kinds
}
