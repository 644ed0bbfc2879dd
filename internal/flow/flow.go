// Package flow is the navigation state machine of the demo: which screen is
// visible and which country is selected. Step is pure; the UI layer turns
// its effects into screen stack operations.
package flow

// Screen identifies the visible screen.
type Screen int

const (
	ListVisible Screen = iota
	DetailVisible
)

func (s Screen) String() string {
	switch s {
	case ListVisible:
		return "list"
	case DetailVisible:
		return "detail"
	default:
		return "unknown"
	}
}

// ChangeContext carries the choice control's change flags.
type ChangeContext uint8

const (
	// ContextChangeOption marks a change the user confirmed, as opposed to
	// one made while browsing the options.
	ContextChangeOption ChangeContext = 1 << iota
)

// State is owned by the UI loop and only replaced through Step.
type State struct {
	Screen   Screen
	Selected int
	// Size is the number of choices. Indices outside [0, Size) are clamped.
	Size int
}

// New returns the initial state with selection clamped into range.
func New(size, selected int) State {
	s := State{Screen: ListVisible, Size: size}
	s.Selected = s.clamp(selected)
	return s
}

func (s State) clamp(i int) int {
	if s.Size <= 0 || i < 0 {
		return 0
	}
	if i >= s.Size {
		return s.Size - 1
	}
	return i
}

// Event is one of SelectionChanged, SelectionCommitted, ViewRequested or
// BackRequested.
type Event interface{ event() }

// SelectionChanged is the raw choice control notification.
type SelectionChanged struct {
	Index   int
	Context ChangeContext
}

// SelectionCommitted is a change confirmed by the user.
type SelectionCommitted struct {
	Index int
}

// ViewRequested is the menu "View" command. It carries no payload.
type ViewRequested struct{}

// BackRequested is back navigation from whichever screen is visible.
type BackRequested struct{}

func (SelectionChanged) event()   {}
func (SelectionCommitted) event() {}
func (ViewRequested) event()      {}
func (BackRequested) event()      {}

// Effect is an instruction for the host.
type Effect interface{ effect() }

// LoadDetail asks the detail screen to show record Index.
type LoadDetail struct{ Index int }

// PushDetail shows the detail screen on top of the list.
type PushDetail struct{}

// PopScreen returns to the previous screen.
type PopScreen struct{}

// Exit closes the application. There is never a save prompt.
type Exit struct{}

func (LoadDetail) effect() {}
func (PushDetail) effect() {}
func (PopScreen) effect()  {}
func (Exit) effect()       {}

// Step applies ev to s.
func Step(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case SelectionChanged:
		if ev.Context&ContextChangeOption != 0 {
			return Step(s, SelectionCommitted{Index: ev.Index})
		}
		if s.Screen != ListVisible {
			return s, nil
		}
		s.Selected = s.clamp(ev.Index)
		return s, nil
	case SelectionCommitted:
		if s.Screen != ListVisible {
			return s, nil
		}
		s.Selected = s.clamp(ev.Index)
		return showDetail(s)
	case ViewRequested:
		if s.Screen != ListVisible {
			return s, nil
		}
		return showDetail(s)
	case BackRequested:
		if s.Screen == DetailVisible {
			s.Screen = ListVisible
			return s, []Effect{PopScreen{}}
		}
		return s, []Effect{Exit{}}
	}
	return s, nil
}

func showDetail(s State) (State, []Effect) {
	s.Screen = DetailVisible
	return s, []Effect{LoadDetail{Index: s.Selected}, PushDetail{}}
}
