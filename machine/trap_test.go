package machine

import "testing"

func handled(cycles Cycle) TrapHandler {
	return func(cpu *CPU, bus *Bus, ctx TrapContext) TrapResult {
		return TrapResult{Outcome: Handled, CyclesConsumed: cycles}
	}
}

func TestTrapRegisterConflict(t *testing.T) {
	traps := NewTrapRegistry()
	entry := TrapEntry{Address: 0xFBE4, Operation: TrapCall, Handler: handled(6), IsEnabled: true}
	if err := traps.Register(entry); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := traps.Register(entry); err == nil {
		t.Fatal("expected an error re-registering the same (address, operation)")
	}
}

func TestTrapUnregister(t *testing.T) {
	traps := NewTrapRegistry()
	entry := TrapEntry{Address: 0xFBE4, Operation: TrapCall, Handler: handled(6), IsEnabled: true}
	traps.Register(entry)

	if err := traps.Unregister(0xFBE4, TrapCall); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if _, ok := traps.Lookup(0xFBE4, TrapCall); ok {
		t.Fatal("expected the trap to be gone after Unregister")
	}
	if err := traps.Unregister(0xFBE4, TrapCall); err == nil {
		t.Fatal("expected an error unregistering a trap that no longer exists")
	}
}

func TestTrapUnregisterSlot(t *testing.T) {
	traps := NewTrapRegistry()
	slot := uint8(3)
	traps.Register(TrapEntry{Address: 0xC300, Operation: TrapReadByte, Handler: handled(0), IsEnabled: true, SlotNumber: &slot})
	traps.Register(TrapEntry{Address: 0xFBE4, Operation: TrapCall, Handler: handled(0), IsEnabled: true})

	traps.UnregisterSlot(3)
	if _, ok := traps.Lookup(0xC300, TrapReadByte); ok {
		t.Fatal("expected the slot-scoped trap to be removed")
	}
	if _, ok := traps.Lookup(0xFBE4, TrapCall); !ok {
		t.Fatal("expected the unscoped trap to survive UnregisterSlot")
	}
}

func TestTrapCategoryDisable(t *testing.T) {
	traps := NewTrapRegistry()
	traps.Register(TrapEntry{Address: 0xFBE4, Operation: TrapCall, Handler: handled(6), IsEnabled: true, Category: "rom"})

	traps.SetCategoryEnabled("rom", false)
	if _, ok := traps.TryExecute(0xFBE4, TrapCall, ContextROM, nil, nil, 0); ok {
		t.Fatal("expected a disabled category's trap not to fire")
	}

	traps.SetCategoryEnabled("rom", true)
	if _, ok := traps.TryExecute(0xFBE4, TrapCall, ContextROM, nil, nil, 0); !ok {
		t.Fatal("expected the trap to fire once its category is re-enabled")
	}
}

func TestTrapLanguageCardGate(t *testing.T) {
	// property 8: a trap at $FD0C, tried with the rom context, does not
	// fire while Language Card RAM read is enabled, since the ROM it stands
	// in for isn't actually visible.
	traps := NewTrapRegistry()
	lc := NewLanguageCard()
	traps.SetLanguageCard(lc)
	traps.Register(TrapEntry{Address: 0xFD0C, Operation: TrapCall, Handler: handled(0), IsEnabled: true})

	if _, ok := traps.TryExecute(0xFD0C, TrapCall, ContextROM, nil, nil, 0); !ok {
		t.Fatal("expected the trap to fire with ROM visible (LC RAM read disabled)")
	}

	touchSwitch(lc, 0x03, false, 0)
	touchSwitch(lc, 0x03, false, 0)
	if !lc.RAMReadEnabled() {
		t.Fatal("test setup: expected LC RAM read enabled")
	}

	if _, ok := traps.TryExecute(0xFD0C, TrapCall, ContextROM, nil, nil, 0); ok {
		t.Fatal("expected the trap to be gated off once LC RAM shadows the ROM")
	}
}

func TestTrapSlotGating(t *testing.T) {
	slots := NewSlotManager(nil)
	traps := NewTrapRegistry()
	traps.SetSlotManager(slots)

	slot := uint8(6)
	traps.Register(TrapEntry{
		Address: 0xC600, Operation: TrapReadByte, Handler: handled(0),
		IsEnabled: true, SlotNumber: &slot, RequiresExpansionROM: true,
	})

	if _, ok := traps.TryExecute(0xC600, TrapReadByte, ContextIO, nil, nil, 0); ok {
		t.Fatal("expected the trap not to fire: slot 6 is unoccupied")
	}

	slots.Install(6, &fakeCard{rom: constByte(1), expRom: constByte(1)})
	if _, ok := traps.TryExecute(0xC600, TrapReadByte, ContextIO, nil, nil, 0); ok {
		t.Fatal("expected the trap not to fire: slot 6's expansion ROM isn't elected yet")
	}

	slots.NoteSlotROMAccess(6)
	if _, ok := traps.TryExecute(0xC600, TrapReadByte, ContextIO, nil, nil, 0); !ok {
		t.Fatal("expected the trap to fire once slot 6 holds the expansion-ROM election")
	}
}

func TestTrapDisabledEntryNeverFires(t *testing.T) {
	traps := NewTrapRegistry()
	traps.Register(TrapEntry{Address: 0x1000, Operation: TrapCall, Handler: handled(0), IsEnabled: false})
	if _, ok := traps.TryExecute(0x1000, TrapCall, ContextMainRAM, nil, nil, 0); ok {
		t.Fatal("expected a disabled trap entry not to fire")
	}
}
