// Package scenario holds the editable scenario (zones plus start and
// finish anchors) and its text file format.
package scenario

import (
	"errors"
	"fmt"
	"slices"

	"zonedrawer/internal/geom"
)

var ErrZoneIndex = errors.New("zone index out of range")

// Store owns the zones and anchors of one editing session. Coordinates
// are world units. Every mutation replaces whole values, so a reader
// never sees a zone with only some of its vertices updated.
type Store struct {
	zones     []geom.Zone
	start     geom.Point
	finish    geom.Point
	hasStart  bool
	hasFinish bool
}

func NewStore() *Store { return &Store{} }

func (s *Store) Len() int { return len(s.zones) }

// Zones returns a copy of the zones in insertion order.
func (s *Store) Zones() []geom.Zone { return slices.Clone(s.zones) }

func (s *Store) Zone(i int) (geom.Zone, error) {
	if err := s.checkIndex(i); err != nil {
		return geom.Zone{}, err
	}
	return s.zones[i], nil
}

func (s *Store) Start() (geom.Point, bool)  { return s.start, s.hasStart }
func (s *Store) Finish() (geom.Point, bool) { return s.finish, s.hasFinish }

func (s *Store) AddZone(z geom.Zone) int {
	s.zones = append(s.zones, z)
	return len(s.zones) - 1
}

func (s *Store) RemoveZoneAt(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.zones = slices.Delete(s.zones, i, i+1)
	return nil
}

// ZoneAt returns the index of the first zone, in insertion order, whose
// polygon contains p.
func (s *Store) ZoneAt(p geom.Point) (int, bool) {
	for i, z := range s.zones {
		if z.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// RemoveZoneContaining deletes the first zone containing p. Overlapping
// zones further down the list are left alone.
func (s *Store) RemoveZoneContaining(p geom.Point) (int, bool) {
	i, ok := s.ZoneAt(p)
	if ok {
		s.zones = slices.Delete(s.zones, i, i+1)
	}
	return i, ok
}

func (s *Store) SetStart(p geom.Point) {
	s.start, s.hasStart = p, true
}

func (s *Store) SetFinish(p geom.Point) {
	s.finish, s.hasFinish = p, true
}

// ReplaceZoneVertex moves vertex vi of zone zi to p and stores the
// reconciled rectangle.
func (s *Store) ReplaceZoneVertex(zi, vi int, p geom.Point) (geom.Zone, error) {
	if err := s.checkIndex(zi); err != nil {
		return geom.Zone{}, err
	}
	if vi < 0 || vi >= 4 {
		return geom.Zone{}, fmt.Errorf("vertex %d: %w", vi, ErrZoneIndex)
	}
	z := geom.MoveVertex(s.zones[zi], vi, p)
	s.zones[zi] = z
	return z, nil
}

func (s *Store) Clear() {
	*s = Store{}
}

// Replace swaps in the contents of other, used to commit a fully
// decoded file in one step.
func (s *Store) Replace(other *Store) {
	*s = Store{
		zones:     slices.Clone(other.zones),
		start:     other.start,
		finish:    other.finish,
		hasStart:  other.hasStart,
		hasFinish: other.hasFinish,
	}
}

func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.zones) {
		return fmt.Errorf("zone %d of %d: %w", i, len(s.zones), ErrZoneIndex)
	}
	return nil
}
