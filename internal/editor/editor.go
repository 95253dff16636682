// Package editor turns pointer and key events into changes of the zone
// store. The transient part of the interaction (mode, points collected
// for a zone under construction, the vertex being dragged) lives in a
// State value that each handler replaces.
package editor

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"zonedrawer/internal/geom"
	"zonedrawer/internal/log"
	"zonedrawer/internal/scenario"
)

type Mode int

const (
	ModeZone Mode = iota
	ModeStart
	ModeFinish
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeFinish:
		return "finish"
	default:
		return "zone"
	}
}

// DragSession identifies the vertex held by the pointer.
type DragSession struct {
	Zone, Vertex int
}

type State struct {
	Mode Mode
	// Pending holds the 0-2 world points clicked so far for a new zone.
	Pending []geom.Point
	// Cursor is the last hover position in world units, snapped when the
	// snap modifier was active.
	Cursor    geom.Point
	HasCursor bool
	Drag      *DragSession
}

// Editor binds a State to the store it edits and the canvas mapping the
// events are expressed in.
type Editor struct {
	State        State
	Store        *scenario.Store
	Mapper       geom.Mapper
	HandleRadius int

	lg *log.Logger
}

func New(store *scenario.Store, m geom.Mapper, handleRadius int, lg *log.Logger) *Editor {
	return &Editor{
		Store:        store,
		Mapper:       m,
		HandleRadius: max(1, handleRadius),
		lg:           lg,
	}
}

// SetMapper replaces the canvas mapping, e.g. after a resize. Stored
// zones are in world units and need no update.
func (e *Editor) SetMapper(m geom.Mapper) { e.Mapper = m }

// Handle applies ev and returns the effects the UI should act on.
func (e *Editor) Handle(ev Event) []Effect {
	var fx []Effect
	switch ev := ev.(type) {
	case Press:
		e.State, fx = e.press(e.State, ev)
	case Move:
		e.State, fx = e.move(e.State, ev)
	case DragTo:
		e.State, fx = e.drag(e.State, ev)
	case Release:
		e.State, fx = release(e.State)
	case SecondaryClick:
		e.State, fx = e.secondary(e.State, ev)
	case SetMode:
		e.State, fx = setMode(e.State, ev.Mode)
	case Cancel:
		e.State, fx = cancel(e.State)
	case Clear:
		e.Store.Clear()
		e.State = State{Mode: e.State.Mode}
		fx = []Effect{Status{"cleared"}, Redraw{}}
	case Load:
		e.Store.Replace(ev.Store)
		e.State = State{Mode: e.State.Mode}
		fx = []Effect{Status{fmt.Sprintf("loaded %d zones", e.Store.Len())}, Redraw{}}
	}
	for _, f := range fx {
		if _, ok := f.(Redraw); !ok {
			e.lg.Debug("editor effect", slog.String("effect", f.String()))
		}
	}
	return fx
}

func (e *Editor) world(at image.Point) geom.Point {
	return e.Mapper.ToWorld(e.Mapper.Clamp(at))
}

func (e *Editor) press(s State, ev Press) (State, []Effect) {
	if h, ok := e.HandleAt(ev.At); ok {
		s.Drag = &DragSession{Zone: h.Zone, Vertex: h.Vertex}
		return s, []Effect{Status{fmt.Sprintf("dragging zone %d vertex %d", h.Zone+1, h.Vertex+1)}}
	}

	p := e.world(ev.At)
	switch s.Mode {
	case ModeStart:
		e.Store.SetStart(p)
		return s, []Effect{AnchorMoved{AnchorStart}, Redraw{}}
	case ModeFinish:
		e.Store.SetFinish(p)
		return s, []Effect{AnchorMoved{AnchorFinish}, Redraw{}}
	}

	switch len(s.Pending) {
	case 0:
		s.Pending = []geom.Point{p}
		return s, []Effect{Redraw{}}
	case 1:
		if ev.Snap {
			p = geom.Snap(s.Pending[0], p)
		}
		if e.Mapper.ToCanvas(p) == e.Mapper.ToCanvas(s.Pending[0]) {
			return s, []Effect{Status{"second point must differ from the first"}}
		}
		s.Pending = append(slices.Clone(s.Pending), p)
		return s, []Effect{Redraw{}}
	default:
		z := geom.BuildRect(s.Pending[0], s.Pending[1], p)
		if z.Degenerate(0.5 / e.Mapper.Scale()) {
			return s, []Effect{Status{"zone has no width, pick a point off the first edge"}}
		}
		i := e.Store.AddZone(z)
		s.Pending = nil
		s.HasCursor = false
		return s, []Effect{ZoneAdded{i}, Redraw{}}
	}
}

func (e *Editor) move(s State, ev Move) (State, []Effect) {
	p := e.world(ev.At)
	if len(s.Pending) == 1 && ev.Snap {
		p = geom.Snap(s.Pending[0], p)
	}
	s.Cursor, s.HasCursor = p, true
	if len(s.Pending) == 0 {
		return s, nil
	}
	return s, []Effect{Redraw{}}
}

func (e *Editor) drag(s State, ev DragTo) (State, []Effect) {
	if s.Drag == nil {
		return s, nil
	}
	d := *s.Drag
	if _, err := e.Store.ReplaceZoneVertex(d.Zone, d.Vertex, e.world(ev.At)); err != nil {
		e.lg.Warn("drag target vanished", slog.Int("zone", d.Zone), slog.Int("vertex", d.Vertex), slog.Any("error", err))
		s.Drag = nil
		return s, []Effect{Redraw{}}
	}
	return s, []Effect{ZoneChanged{d.Zone}, Redraw{}}
}

// release always ends the drag; the last reconciled rectangle stays.
func release(s State) (State, []Effect) {
	if s.Drag == nil {
		return s, nil
	}
	s.Drag = nil
	return s, []Effect{Redraw{}}
}

func (e *Editor) secondary(s State, ev SecondaryClick) (State, []Effect) {
	i, ok := e.Store.RemoveZoneContaining(e.world(ev.At))
	if !ok {
		return s, []Effect{Status{"no zone here"}}
	}
	if s.Drag != nil {
		switch {
		case s.Drag.Zone == i:
			s.Drag = nil
		case s.Drag.Zone > i:
			s.Drag = &DragSession{Zone: s.Drag.Zone - 1, Vertex: s.Drag.Vertex}
		}
	}
	return s, []Effect{ZoneRemoved{i}, Redraw{}}
}

func setMode(s State, m Mode) (State, []Effect) {
	if m != ModeZone {
		s.Pending = nil
		s.HasCursor = false
	}
	s.Mode = m
	return s, []Effect{Status{"mode: " + m.String()}, Redraw{}}
}

func cancel(s State) (State, []Effect) {
	if len(s.Pending) == 0 {
		return s, nil
	}
	s.Pending = nil
	return s, []Effect{Status{"zone cancelled"}, Redraw{}}
}
