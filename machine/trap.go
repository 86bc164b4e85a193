package machine

import "fmt"

// TrapOperation is the kind of CPU/bus event a trap can stand in for (§4.8).
type TrapOperation uint8

const (
	TrapCall TrapOperation = iota
	TrapReadByte
	TrapWriteByte
	TrapExecute
)

func (op TrapOperation) String() string {
	switch op {
	case TrapCall:
		return "call"
	case TrapReadByte:
		return "read-byte"
	case TrapWriteByte:
		return "write-byte"
	case TrapExecute:
		return "execute"
	default:
		return "unknown"
	}
}

// TrapCategory groups traps so a whole family can be disabled at once
// (e.g. every ROM-routine stand-in, or every trap belonging to a
// particular peripheral card).
type TrapCategory string

// TrapContext is the event_ctx handed to a trap handler: which address and
// operation triggered it, and the cycle the CPU was on when it did.
type TrapContext struct {
	Address   Addr
	Operation TrapOperation
	Cycle     Cycle
}

// TrapOutcome is the sum-type result of a trap lookup.
type TrapOutcome uint8

const (
	NotHandled TrapOutcome = iota
	Handled
)

// TrapResult is what a handler (or TryExecute on its behalf) reports back.
//
// Value is populated by ReadByte handlers to supply the byte the bus
// access should resolve to; it's an addition to the fields spec.md's
// TrapEntry/TrapResult data model names explicitly, needed because a
// ReadByte trap has to produce a value somehow and the handler contract
// otherwise only lets it mutate CPU/bus state as a side effect (see
// DESIGN.md for the rationale — this isn't one of the two flagged open
// questions, just a necessary elaboration of the wire format).
type TrapResult struct {
	Outcome         TrapOutcome
	CyclesConsumed  Cycle
	SkipInstruction bool
	Value           byte
}

// TrapHandler is the native stand-in for a ROM routine or a bus-level
// instrumentation hook. It sees the instant-of-call CPU state (for Call
// traps, PC points at the opcode byte that triggered it) and may read and
// write through the bus using debug intents to avoid re-triggering traps
// or soft switches on its own accesses, adjust CPU registers directly, and
// report its cost back through TrapResult. Handlers must not block; a
// panic inside one is a bug and is left to propagate and abort the host
// (§7).
type TrapHandler func(cpu *CPU, bus *Bus, ctx TrapContext) TrapResult

// TrapEntry is a single registered trap (§4.8).
type TrapEntry struct {
	Address              Addr
	Operation            TrapOperation
	Name                 string
	Category             TrapCategory
	Handler              TrapHandler
	IsEnabled            bool
	SlotNumber           *uint8 // nil when not slot-scoped
	RequiresExpansionROM bool
	Description          string
}

type trapKey struct {
	addr Addr
	op   TrapOperation
}

// TrapRegistry is the context-aware O(1) lookup mapping (address,
// operation) → native handler (§4.8).
type TrapRegistry struct {
	entries  map[trapKey]*TrapEntry
	disabled map[TrapCategory]bool

	slots *SlotManager  // for slot-scoped gating; may be nil
	lc    *LanguageCard // for the $D000+ ROM-visibility gate; may be nil
}

// NewTrapRegistry builds an empty registry. Bind the slot manager and
// Language Card controller with SetSlotManager/SetLanguageCard once they
// exist — machine.Build wires them up after construction to break the
// ordering cycle between Bus, SlotManager and LanguageCard.
func NewTrapRegistry() *TrapRegistry {
	return &TrapRegistry{
		entries:  make(map[trapKey]*TrapEntry),
		disabled: make(map[TrapCategory]bool),
	}
}

func (r *TrapRegistry) SetSlotManager(s *SlotManager)   { r.slots = s }
func (r *TrapRegistry) SetLanguageCard(lc *LanguageCard) { r.lc = lc }

// Register adds a trap. Registering the same (address, operation) twice is
// an error (§4.8: "idempotent-failing").
func (r *TrapRegistry) Register(e TrapEntry) error {
	key := trapKey{addr: e.Address, op: e.Operation}
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("%w: %s %s", ErrTrapConflict, e.Address, e.Operation)
	}
	entry := e
	r.entries[key] = &entry
	return nil
}

// Unregister removes a single (address, operation) trap.
func (r *TrapRegistry) Unregister(addr Addr, op TrapOperation) error {
	key := trapKey{addr: addr, op: op}
	if _, exists := r.entries[key]; !exists {
		return fmt.Errorf("%w: %s %s", ErrTrapNotFound, addr, op)
	}
	delete(r.entries, key)
	return nil
}

// UnregisterSlot removes every trap belonging to slotNumber, so slot
// removal can tear down its traps in one call.
func (r *TrapRegistry) UnregisterSlot(slotNumber uint8) {
	for key, e := range r.entries {
		if e.SlotNumber != nil && *e.SlotNumber == slotNumber {
			delete(r.entries, key)
		}
	}
}

// SetCategoryEnabled enables or disables an entire category of traps.
func (r *TrapRegistry) SetCategoryEnabled(cat TrapCategory, enabled bool) {
	r.disabled[cat] = !enabled
}

// Lookup returns the entry for (addr, op), if any, without running its
// eligibility checks.
func (r *TrapRegistry) Lookup(addr Addr, op TrapOperation) (*TrapEntry, bool) {
	e, ok := r.entries[trapKey{addr: addr, op: op}]
	return e, ok
}

// TryExecute looks up a trap for (addr, op), checks its eligibility gates,
// and invokes its handler if eligible. It returns (zero, false) whenever
// the original bus/CPU access should proceed unmodified — no trap
// registered, the trap/category is disabled, or a context gate fails.
func (r *TrapRegistry) TryExecute(addr Addr, op TrapOperation, context MemoryContext, cpu *CPU, bus *Bus, cycle Cycle) (TrapResult, bool) {
	entry, ok := r.entries[trapKey{addr: addr, op: op}]
	if !ok || !entry.IsEnabled {
		return TrapResult{}, false
	}
	if r.disabled[entry.Category] {
		return TrapResult{}, false
	}

	if entry.SlotNumber != nil {
		if r.slots == nil || !r.slots.Occupied(*entry.SlotNumber) {
			return TrapResult{}, false
		}
		if entry.RequiresExpansionROM {
			active, ok := r.slots.ActiveExpansionSlot()
			if !ok || active != *entry.SlotNumber {
				return TrapResult{}, false
			}
		}
	}

	if addr >= 0xD000 && r.lc != nil && r.lc.RAMReadEnabled() {
		return TrapResult{}, false
	}

	result := entry.Handler(cpu, bus, TrapContext{Address: addr, Operation: op, Cycle: cycle})
	if result.Outcome != Handled {
		return TrapResult{}, false
	}
	return result, true
}
