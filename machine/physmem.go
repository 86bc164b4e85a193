package machine

import "fmt"

// PhysicalMemory is a named, owned, fixed-size byte buffer. It is the only
// storage in the core that actually holds state; everything else (regions,
// layers, targets) is a view into one of these.
//
// Multiple virtual regions may alias disjoint or overlapping windows into
// the same PhysicalMemory — used, for example, to make text page 1 visible
// from both main and auxiliary memory banks.
type PhysicalMemory struct {
	name string
	data []byte
}

// NewPhysicalMemory creates a named buffer of size bytes, optionally
// pre-loaded with initial. initial may be shorter than size; the remainder
// stays zeroed.
func NewPhysicalMemory(name string, size int, initial []byte) (*PhysicalMemory, error) {
	if size <= 0 {
		return nil, fmt.Errorf("machine: physical memory %q: size must be positive", name)
	}
	if len(initial) > size {
		return nil, fmt.Errorf("machine: physical memory %q: initial image (%d bytes) exceeds size (%d bytes)", name, len(initial), size)
	}

	m := &PhysicalMemory{name: name, data: make([]byte, size)}
	copy(m.data, initial)
	return m, nil
}

// NewNullROM builds a minimal physical memory of size bytes filled with a
// single repeated byte. It stands in for firmware images a profile doesn't
// supply (e.g. a default expansion ROM) so election/dispatch machinery
// stays exercisable without a real ROM dump.
func NewNullROM(name string, size int, fill byte) *PhysicalMemory {
	data := make([]byte, size)
	for i := range data {
		data[i] = fill
	}
	return &PhysicalMemory{name: name, data: data}
}

func (m *PhysicalMemory) Name() string { return m.name }

func (m *PhysicalMemory) Size() int { return len(m.data) }

// Read returns the byte at offset, or OpenBus if offset is out of range.
func (m *PhysicalMemory) Read(offset Addr) byte {
	if int(offset) >= len(m.data) {
		return OpenBus
	}
	return m.data[offset]
}

// Write stores v at offset. The physical block itself is always mutable —
// ROM write-protection is enforced by the BusTarget wrapping it, not here,
// so tooling can hot-load character ROMs at runtime (§4.2).
func (m *PhysicalMemory) Write(offset Addr, v byte) {
	if int(offset) >= len(m.data) {
		return
	}
	m.data[offset] = v
}

// Bytes exposes the backing slice directly, for bulk image loads by
// tooling. Callers must not retain it past the memory's lifetime.
func (m *PhysicalMemory) Bytes() []byte { return m.data }
