// Package machine implements the emulator core for an Apple II-class
// machine: the layered memory bus, the 65C02 CPU, the slot/expansion-ROM
// dispatch machinery, the Language Card bank-switching controller, and the
// trap registry that lets native routines stand in for ROM addresses.
package machine

import "fmt"

// PageSize is the unit of alignment for every region and layer range.
const PageSize = 4096

// Addr is a 32-bit virtual address inside the machine's address space.
//
// 65C02 programs only ever see the low 16 bits of it, but the type is wider
// so that profiles describing more than 64KiB of physical backing (aux
// banks, expansion ROM images) can still be addressed uniformly by the
// region table.
type Addr uint32

// Page returns the page number a is in (Addr / PageSize).
func (a Addr) Page() Addr { return a / PageSize }

// Aligned reports whether a falls on a page boundary.
func (a Addr) Aligned() bool { return a%PageSize == 0 }

func (a Addr) String() string { return fmt.Sprintf("$%04X", uint32(a)) }

// Cycle is a 64-bit monotonically increasing cycle counter.
type Cycle uint64

// PagePerms is a bitmask of the permissions a region or layer grants.
type PagePerms uint8

const (
	PermRead PagePerms = 1 << iota
	PermWrite
	PermExecute
)

func (p PagePerms) Can(intent AccessIntent) bool {
	switch intent {
	case IntentRead, IntentDebugRead:
		return p&PermRead != 0
	case IntentWrite, IntentDebugWrite:
		return p&PermWrite != 0
	case IntentExecute:
		return p&PermExecute != 0 || p&PermRead != 0
	default:
		return false
	}
}

func (p PagePerms) String() string {
	r, w, x := '-', '-', '-'
	if p&PermRead != 0 {
		r = 'r'
	}
	if p&PermWrite != 0 {
		w = 'w'
	}
	if p&PermExecute != 0 {
		x = 'x'
	}
	return string([]rune{r, w, x})
}

// AccessIntent describes why the bus is being touched. Debug intents never
// trigger soft-switch side effects or trap invocation; everything else in
// the core assumes they're free to call at any time.
type AccessIntent uint8

const (
	IntentRead AccessIntent = iota
	IntentWrite
	IntentExecute
	IntentDebugRead
	IntentDebugWrite
)

func (i AccessIntent) IsDebug() bool {
	return i == IntentDebugRead || i == IntentDebugWrite
}

func (i AccessIntent) String() string {
	switch i {
	case IntentRead:
		return "read"
	case IntentWrite:
		return "write"
	case IntentExecute:
		return "execute"
	case IntentDebugRead:
		return "debug-read"
	case IntentDebugWrite:
		return "debug-write"
	default:
		return "unknown"
	}
}

// AccessFlags carries side-channel markers about a bus access that don't
// change where it resolves to, only how the caller should be treated by a
// consumer that cares (e.g. a trap that only fires on a "real" read).
type AccessFlags uint8

const (
	// FlagDummy marks a read performed only to reproduce the extra bus
	// cycle of a read-modify-write or indexed-addressing "oops" access;
	// its value is discarded by the CPU and must not fire soft switches
	// that key off "real" reads when a dummy suffices to do so anyway
	// (6502/65C02 hardware can't tell the difference either, so this flag
	// exists purely for trace/debug output, not behavior).
	FlagDummy AccessFlags = 1 << iota
)

// MemoryContext identifies which overlay is currently resolving an address,
// so traps can be scoped to "only fire when ROM is visible" etc.
type MemoryContext string

const (
	ContextROM     MemoryContext = "rom"
	ContextLCRAM   MemoryContext = "lc-ram"
	ContextMainRAM MemoryContext = "main-ram"
	ContextAuxRAM  MemoryContext = "aux-ram"
	ContextIO      MemoryContext = "io"
)

// RegionTag loosely classifies a base region for tooling/debugging.
type RegionTag string

const (
	TagRAM       RegionTag = "ram"
	TagROM       RegionTag = "rom"
	TagComposite RegionTag = "composite"
	TagNull      RegionTag = "null"
)

// OpenBus is the conventional value returned when nothing answers a read.
const OpenBus byte = 0xFF
