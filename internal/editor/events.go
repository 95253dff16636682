package editor

import (
	"fmt"
	"image"

	"zonedrawer/internal/scenario"
)

// Event is a user input already stripped of any toolkit detail. All
// positions are canvas pixels.
type Event interface{ isEvent() }

// Press is a primary button press. Snap is set while the snap modifier
// is held or latched.
type Press struct {
	At   image.Point
	Snap bool
}

// Move is pointer motion with no button held.
type Move struct {
	At   image.Point
	Snap bool
}

// DragTo is pointer motion with the primary button held.
type DragTo struct {
	At image.Point
}

// Release ends any drag in progress.
type Release struct{}

// SecondaryClick deletes the zone under the pointer.
type SecondaryClick struct {
	At image.Point
}

type SetMode struct {
	Mode Mode
}

// Cancel drops the pending construction points.
type Cancel struct{}

// Clear empties the store.
type Clear struct{}

// Load swaps in a decoded scenario.
type Load struct {
	Store *scenario.Store
}

func (Press) isEvent()          {}
func (Move) isEvent()           {}
func (DragTo) isEvent()         {}
func (Release) isEvent()        {}
func (SecondaryClick) isEvent() {}
func (SetMode) isEvent()        {}
func (Cancel) isEvent()         {}
func (Clear) isEvent()          {}
func (Load) isEvent()           {}

// Effect tells the UI layer what changed as a result of an event.
type Effect interface {
	isEffect()
	fmt.Stringer
}

// Redraw asks for the canvas to be repainted.
type Redraw struct{}

// Status is a one-line message for the user.
type Status struct {
	Text string
}

type ZoneAdded struct{ Index int }
type ZoneRemoved struct{ Index int }
type ZoneChanged struct{ Index int }

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorFinish
)

func (a Anchor) String() string {
	if a == AnchorFinish {
		return "finish"
	}
	return "start"
}

type AnchorMoved struct{ Anchor Anchor }

func (Redraw) isEffect()      {}
func (Status) isEffect()      {}
func (ZoneAdded) isEffect()   {}
func (ZoneRemoved) isEffect() {}
func (ZoneChanged) isEffect() {}
func (AnchorMoved) isEffect() {}

func (Redraw) String() string        { return "redraw" }
func (s Status) String() string      { return "status: " + s.Text }
func (z ZoneAdded) String() string   { return fmt.Sprintf("zone %d added", z.Index) }
func (z ZoneRemoved) String() string { return fmt.Sprintf("zone %d removed", z.Index) }
func (z ZoneChanged) String() string { return fmt.Sprintf("zone %d changed", z.Index) }
func (a AnchorMoved) String() string { return a.Anchor.String() + " moved" }
