package machine

// LanguageCard models the built-in 16KiB RAM card banked in over
// $D000-$FFFF (§4.7). Its 16KiB of backing storage is laid out as two
// 4KiB banks for $D000-$DFFF plus one 8KiB region shared by both banks
// for $E000-$FFFF, exactly mirroring the physical card.
type LanguageCard struct {
	mem *PhysicalMemory

	bank            uint8 // 1 or 2, selects the $D000-$DFFF bank
	ramReadEnabled  bool  // false => $D000-$FFFF reads fall through to ROM
	ramWriteEnabled bool
	prewriteCount   uint8 // consecutive same-parity reads seen so far (caps at 2)
}

// LC memory layout inside the 16KiB backing store.
const (
	lcBank1Offset = 0x0000 // $D000-$DFFF, bank 1
	lcBank2Offset = 0x1000 // $D000-$DFFF, bank 2
	lcHighOffset  = 0x2000 // $E000-$FFFF, shared by both banks
	lcBankSize    = 0x1000
	lcHighSize    = 0x2000
	lcTotalSize   = 0x4000
)

// NewLanguageCard builds a Language Card controller with freshly zeroed
// RAM and the power-on soft-switch state: ROM visible for reads, writes
// disabled, bank 2 selected (§4.7).
func NewLanguageCard() *LanguageCard {
	mem, err := NewPhysicalMemory("language-card-ram", lcTotalSize, nil)
	if err != nil {
		// lcTotalSize is a positive constant with no initial image; this
		// can only fail if that invariant is broken by a future edit.
		panic(err)
	}
	return &LanguageCard{
		mem:  mem,
		bank: 2,
	}
}

// RAMReadEnabled reports whether $D000-$FFFF currently resolves to LC RAM
// (true) or the base ROM region (false). Used by TrapRegistry.TryExecute
// to gate ROM-routine traps: a trap at a ROM address must not fire while
// the card has swapped its own RAM in over that address (§4.8).
func (lc *LanguageCard) RAMReadEnabled() bool { return lc.ramReadEnabled }

// RAMWriteEnabled reports whether $D000-$FFFF currently accepts writes
// into LC RAM.
func (lc *LanguageCard) RAMWriteEnabled() bool { return lc.ramWriteEnabled }

// Bank reports the currently selected $D000-$DFFF bank (1 or 2).
func (lc *LanguageCard) Bank() uint8 { return lc.bank }

// touch runs the soft-switch decode table for an access to $C08k
// (k = 0..15) (§4.7):
//
//	bit3 (k&8)      selects bank 1 (set) or bank 2 (clear)
//	bits0-1 (k&3)   0 or 3 => this access makes $D000-$FFFF reads resolve to RAM
//	                1 or 2 => this access makes $D000-$FFFF reads resolve to ROM
//	bit2 (k&4)      ignored, so k=4..7 and k=12..15 act as k=0..3 and k=8..11
//
// Write-enable only latches after two consecutive *read* accesses to a
// bit0=1 ("odd") address with no intervening bit0=0 ("even") read; a
// write access updates bank/read-visibility but never by itself
// completes or interrupts that sequence.
func (lc *LanguageCard) touch(k uint8, intent AccessIntent) {
	if intent.IsDebug() {
		return
	}

	if k&0x08 != 0 {
		lc.bank = 1
	} else {
		lc.bank = 2
	}
	lc.ramReadEnabled = k&0x01 == (k>>1)&0x01

	if intent == IntentWrite {
		return
	}

	if k&0x01 == 1 {
		if lc.prewriteCount < 2 {
			lc.prewriteCount++
		}
		if lc.prewriteCount >= 2 {
			lc.ramWriteEnabled = true
		}
	} else {
		lc.prewriteCount = 0
		lc.ramWriteEnabled = false
	}
}

// lcSwitchTarget is the BusTarget installed at $C080-$C08F: every access,
// regardless of direction, just runs the decode table and answers with
// open bus (§4.7 — the soft switches carry no readable data of their own).
type lcSwitchTarget struct{ lc *LanguageCard }

func (t *lcSwitchTarget) Read8(offset Addr, intent AccessIntent) byte {
	t.lc.touch(uint8(offset), intent)
	return OpenBus
}

func (t *lcSwitchTarget) Write8(offset Addr, intent AccessIntent, v byte) WriteResult {
	t.lc.touch(uint8(offset), intent)
	return Written
}

// SwitchTarget returns the BusTarget the $C080-$C08F composite I/O window
// should dispatch to, with offset equal to k (0..15).
func (lc *LanguageCard) SwitchTarget() BusTarget {
	return &lcSwitchTarget{lc: lc}
}

// lcRAMTarget is the BusTarget for the LC's own banked RAM, addressed with
// offset relative to $D000 (0x0000-0x2FFF).
type lcRAMTarget struct{ lc *LanguageCard }

func (t *lcRAMTarget) physOffset(offset Addr) Addr {
	if offset < lcBankSize {
		if t.lc.bank == 1 {
			return lcBank1Offset + offset
		}
		return lcBank2Offset + offset
	}
	return lcHighOffset + (offset - lcBankSize)
}

func (t *lcRAMTarget) Read8(offset Addr, intent AccessIntent) byte {
	return t.lc.mem.Read(t.physOffset(offset))
}

func (t *lcRAMTarget) Write8(offset Addr, intent AccessIntent, v byte) WriteResult {
	t.lc.mem.Write(t.physOffset(offset), v)
	return Written
}

// resolve is the Layer Resolver for the $D000-$FFFF overlay (§4.4, §4.7).
// It claims the access only when the current soft-switch state makes LC
// RAM visible for that direction; otherwise it declines and the base ROM
// region answers instead. Debug accesses see the same effective state a
// real access would, just without mutating anything — touch() already
// refuses to run for debug intents, so inspecting state here is safe.
func (lc *LanguageCard) resolve(a Addr, intent AccessIntent) (LayerResolution, bool) {
	offset := a - 0xD000
	target := &lcRAMTarget{lc: lc}

	switch intent {
	case IntentWrite, IntentDebugWrite:
		if !lc.ramWriteEnabled {
			return LayerResolution{}, false
		}
		return LayerResolution{Target: target, PhysicalBase: offset, Perms: PermRead | PermWrite, Context: ContextLCRAM}, true
	case IntentRead, IntentDebugRead:
		if !lc.ramReadEnabled {
			return LayerResolution{}, false
		}
		return LayerResolution{Target: target, PhysicalBase: offset, Perms: PermRead, Context: ContextLCRAM}, true
	case IntentExecute:
		if !lc.ramReadEnabled {
			return LayerResolution{}, false
		}
		return LayerResolution{Target: target, PhysicalBase: offset, Perms: PermRead | PermExecute, Context: ContextLCRAM}, true
	default:
		return LayerResolution{}, false
	}
}

// Layer builds the $D000-$FFFF overlay layer to register with a Bus's
// LayerStack. Priority 100 puts it above everything a profile is likely
// to add on top of the base map; it starts active, matching the power-on
// state of a real Language Card (ROM visible for reads, RAM writable only
// after the switch sequence above runs) since ramReadEnabled/ramWriteEnabled
// start false and the Resolver itself declines until they're set.
func (lc *LanguageCard) Layer() *Layer {
	return &Layer{
		Name:     "language-card",
		Priority: 100,
		Active:   true,
		Start:    0xD000,
		Size:     0x3000,
		Resolve:  lc.resolve,
	}
}
