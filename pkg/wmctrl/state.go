package wmctrl

import "fmt"

// Action selects how a state change is applied to a window property.
type Action int

const (
	Add Action = iota
	Remove
	Toggle
)

// String returns the action keyword wmctrl's -b option expects.
func (a Action) String() string {
	switch a {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Toggle:
		return "toggle"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction maps an action keyword to its Action value.
func ParseAction(s string) (Action, error) {
	switch s {
	case "add":
		return Add, nil
	case "remove":
		return Remove, nil
	case "toggle":
		return Toggle, nil
	default:
		return 0, fmt.Errorf("unknown action %q (want add, remove, or toggle)", s)
	}
}

// Property is a window-manager hint from the closed vocabulary wmctrl
// accepts. The wrapper does not validate combinations; wmctrl owns that.
type Property int

const (
	Modal Property = iota
	Sticky
	MaximizedVert
	MaximizedHorz
	Shaded
	SkipTaskbar
	SkipPager
	Hidden
	Fullscreen
	Above
	Below
)

// propertyNames holds the canonical spellings wmctrl expects. Indexed by
// Property value.
var propertyNames = [...]string{
	Modal:         "modal",
	Sticky:        "sticky",
	MaximizedVert: "maximized_vert",
	MaximizedHorz: "maximized_horz",
	Shaded:        "shaded",
	SkipTaskbar:   "skip_taskbar",
	SkipPager:     "skip_pager",
	Hidden:        "hidden",
	Fullscreen:    "fullscreen",
	Above:         "above",
	Below:         "below",
}

// String returns the property's canonical wmctrl spelling.
func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("property(%d)", int(p))
	}
	return propertyNames[p]
}

// ParseProperty maps a canonical property name to its Property value.
func ParseProperty(s string) (Property, error) {
	for p, name := range propertyNames {
		if s == name {
			return Property(p), nil
		}
	}
	return 0, fmt.Errorf("unknown property %q", s)
}

// Properties returns the full property vocabulary in canonical order.
func Properties() []Property {
	props := make([]Property, len(propertyNames))
	for i := range propertyNames {
		props[i] = Property(i)
	}
	return props
}

// State pairs an Action with a Property for wmctrl's -b option.
type State struct {
	Action   Action
	Property Property
}

// NewState builds a State.
func NewState(action Action, property Property) State {
	return State{Action: action, Property: property}
}

// String renders the two-token argument wmctrl expects, e.g. "add,fullscreen".
func (s State) String() string {
	return s.Action.String() + "," + s.Property.String()
}
