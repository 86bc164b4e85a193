package machine

// WriteResult is the sum-type outcome of a BusTarget write (§9: "exceptions
// for control flow... are out of scope" — this carries the answer a panic
// or bool-out-param would otherwise hide).
type WriteResult int

const (
	Written WriteResult = iota
	Rejected
)

// BusTarget is the leaf interface every variant of §3's BusTarget sum type
// implements: Ram, Rom, Composite, Null. The region table and layer stack
// dispatch to one of these at physical_base+offset; none of them know
// anything about virtual addresses or permissions, both of which are
// resolved one level up in Bus.
type BusTarget interface {
	Read8(offset Addr, intent AccessIntent) byte
	Write8(offset Addr, intent AccessIntent, v byte) WriteResult
}

// ramTarget answers reads and writes against a window of a PhysicalMemory
// starting at baseOffset.
type ramTarget struct {
	mem        *PhysicalMemory
	baseOffset Addr
}

// NewRAM builds a Ram bus target viewing mem starting at baseOffset.
func NewRAM(mem *PhysicalMemory, baseOffset Addr) BusTarget {
	return &ramTarget{mem: mem, baseOffset: baseOffset}
}

func (t *ramTarget) Read8(offset Addr, intent AccessIntent) byte {
	return t.mem.Read(t.baseOffset + offset)
}

func (t *ramTarget) Write8(offset Addr, intent AccessIntent, v byte) WriteResult {
	t.mem.Write(t.baseOffset+offset, v)
	return Written
}

// romTarget answers reads the same way RAM does but rejects every write
// that isn't a debug-intent poke, per §4.2/§4.3.
type romTarget struct {
	mem        *PhysicalMemory
	baseOffset Addr
}

// NewROM builds a Rom bus target viewing mem starting at baseOffset. mem
// must already carry its initial image (§3 invariant: "Physical memory
// referenced by a ROM target must have been initialized before any
// access") — NewROM itself can't enforce that since PhysicalMemory doesn't
// track whether it was ever loaded, so callers (machine.Build) are
// responsible for it.
func NewROM(mem *PhysicalMemory, baseOffset Addr) BusTarget {
	return &romTarget{mem: mem, baseOffset: baseOffset}
}

func (t *romTarget) Read8(offset Addr, intent AccessIntent) byte {
	return t.mem.Read(t.baseOffset + offset)
}

func (t *romTarget) Write8(offset Addr, intent AccessIntent, v byte) WriteResult {
	if intent == IntentDebugWrite {
		t.mem.Write(t.baseOffset+offset, v)
		return Written
	}
	return Rejected
}

// nullTarget answers every read with open bus and drops every write. It's
// the target of last resort: an unpopulated slot ROM window, a deselected
// expansion ROM with no default configured, etc.
type nullTarget struct{}

// NewNull returns the shared Null bus target.
func NewNull() BusTarget { return nullTarget{} }

func (nullTarget) Read8(offset Addr, intent AccessIntent) byte { return OpenBus }

func (nullTarget) Write8(offset Addr, intent AccessIntent, v byte) WriteResult { return Rejected }

// CompositeDispatch picks which child BusTarget answers an access within a
// Composite target's range, and the offset to hand that child (which may
// differ from the composite's own offset — e.g. the I/O page dispatches by
// absolute sub-range but each child addresses itself from zero).
type CompositeDispatch func(offset Addr, intent AccessIntent) (child BusTarget, childOffset Addr)

// compositeTarget is used exclusively for the $C000-$CFFF soft-switch page,
// whose sub-ranges have entirely heterogeneous semantics (§4.3).
type compositeTarget struct {
	dispatch CompositeDispatch
}

// NewComposite builds a Composite bus target that routes every access
// through dispatch.
func NewComposite(dispatch CompositeDispatch) BusTarget {
	return &compositeTarget{dispatch: dispatch}
}

func (t *compositeTarget) Read8(offset Addr, intent AccessIntent) byte {
	child, childOffset := t.dispatch(offset, intent)
	if child == nil {
		return OpenBus
	}
	return child.Read8(childOffset, intent)
}

func (t *compositeTarget) Write8(offset Addr, intent AccessIntent, v byte) WriteResult {
	child, childOffset := t.dispatch(offset, intent)
	if child == nil {
		return Rejected
	}
	return child.Write8(childOffset, intent, v)
}
