package machine

import (
	"fmt"
	"sort"
)

// LayerResolution replaces the base mapping for a single access, returned
// by a Layer's Resolver when it claims an address (§4.4).
type LayerResolution struct {
	Target       BusTarget
	PhysicalBase Addr
	Perms        PagePerms
	Context      MemoryContext
}

// Resolver decides whether a Layer claims address a for the given intent.
// It must answer in O(1) from state the layer already has cached — no
// scanning, no allocation (§4.4: "Step 1 is the hot path").
type Resolver func(a Addr, intent AccessIntent) (LayerResolution, bool)

// Layer is a transient overlay that can re-resolve a sub-range of the base
// address space, toggled on and off by soft switches at runtime (§3).
type Layer struct {
	Name     string
	Priority int32
	Active   bool
	Start    Addr
	Size     Addr
	Resolve  Resolver
}

func (l *Layer) End() Addr { return l.Start + l.Size }

func (l *Layer) contains(a Addr) bool { return a >= l.Start && a < l.End() }

// LayerStack holds the ordered set of layers active over a profile's
// address space, consulted top-down by priority before falling back to the
// base region table (§4.4).
type LayerStack struct {
	bound  Addr // base address space size, every layer must fit within it
	layers []*Layer
}

// NewLayerStack builds an empty stack bound to an address space of size
// bound bytes (§3 invariant: "a layer's range is fully contained within the
// base address space").
func NewLayerStack(bound Addr) *LayerStack {
	return &LayerStack{bound: bound}
}

// Add registers a layer and keeps the stack sorted by descending priority.
// It rejects layers that spill outside the base address space or whose
// priority collides with another *currently active* layer over an
// overlapping range (§3 invariant: deterministic resolution).
func (s *LayerStack) Add(l *Layer) error {
	if l.Start+l.Size > s.bound {
		return ErrLayerOutOfBounds
	}
	if l.Active {
		if err := s.checkPriorityCollision(l); err != nil {
			return err
		}
	}

	s.layers = append(s.layers, l)
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Priority > s.layers[j].Priority
	})
	return nil
}

func (s *LayerStack) checkPriorityCollision(candidate *Layer) error {
	for _, l := range s.layers {
		if l == candidate || !l.Active {
			continue
		}
		if l.Priority != candidate.Priority {
			continue
		}
		if rangesOverlap(l.Start, l.End(), candidate.Start, candidate.End()) {
			return ErrLayerPriority
		}
	}
	return nil
}

func rangesOverlap(aStart, aEnd, bStart, bEnd Addr) bool {
	return aStart < bEnd && bStart < aEnd
}

// SetActive flips a layer (by name) on or off. Re-checks the priority
// invariant on activation.
func (s *LayerStack) SetActive(name string, active bool) error {
	for _, l := range s.layers {
		if l.Name != name {
			continue
		}
		if active && !l.Active {
			l.Active = true
			if err := s.checkPriorityCollision(l); err != nil {
				l.Active = false
				return err
			}
			return nil
		}
		l.Active = active
		return nil
	}
	return fmt.Errorf("machine: no layer named %q", name)
}

// Resolve walks active, in-range layers in priority order and returns the
// first resolution offered. ok is false when every layer passes (the
// caller should fall back to the base region table).
func (s *LayerStack) Resolve(a Addr, intent AccessIntent) (LayerResolution, bool) {
	for _, l := range s.layers {
		if !l.Active || !l.contains(a) {
			continue
		}
		if res, ok := l.Resolve(a, intent); ok {
			return res, true
		}
	}
	return LayerResolution{}, false
}

// Layers returns the layers in priority order. Callers must not mutate the
// returned slice.
func (s *LayerStack) Layers() []*Layer { return s.layers }
