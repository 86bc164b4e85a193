package machine

import "testing"

func TestSlotManagerActiveExpansionSlot(t *testing.T) {
	slots := NewSlotManager(nil)
	if _, ok := slots.ActiveExpansionSlot(); ok {
		t.Fatal("expected no active expansion slot initially")
	}

	slots.NoteSlotROMAccess(6)
	slot, ok := slots.ActiveExpansionSlot()
	if !ok || slot != 6 {
		t.Fatalf("ActiveExpansionSlot() = %d, %v; want 6, true", slot, ok)
	}

	slots.NoteExpansionDeselect()
	if _, ok := slots.ActiveExpansionSlot(); ok {
		t.Fatal("expected no active expansion slot after deselect")
	}
}

func TestSlotManagerRemoveDeselectsActiveCard(t *testing.T) {
	slots := NewSlotManager(nil)
	card := &fakeCard{rom: constByte(1), expRom: constByte(1)}
	if err := slots.Install(5, card); err != nil {
		t.Fatalf("Install: %v", err)
	}

	slots.NoteSlotROMAccess(5)
	if card.selected != 1 {
		t.Fatalf("selected = %d, want 1", card.selected)
	}

	if err := slots.Remove(5); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if card.deselected != 1 {
		t.Fatalf("deselected = %d, want 1", card.deselected)
	}
	if _, ok := slots.ActiveExpansionSlot(); ok {
		t.Fatal("expected no active expansion slot after removing the elected card")
	}
	if slots.Occupied(5) {
		t.Fatal("expected slot 5 to be unoccupied after Remove")
	}
}

func TestSlotManagerRemoveRejectsEmptySlot(t *testing.T) {
	slots := NewSlotManager(nil)
	if err := slots.Remove(2); err == nil {
		t.Fatal("expected an error removing an empty slot")
	}
}

func TestSlotManagerVisibleExpansionROMFallsBackToDefault(t *testing.T) {
	def := constByte(0xEE)
	slots := NewSlotManager(def)
	if slots.VisibleExpansionROM() != def {
		t.Fatal("expected the default expansion ROM when no card is elected")
	}

	card := &fakeCard{rom: constByte(1), expRom: constByte(0xAB)}
	slots.Install(4, card)
	slots.NoteSlotROMAccess(4)
	if slots.VisibleExpansionROM() != card.expRom {
		t.Fatal("expected the elected card's expansion ROM")
	}
}

func TestSlotManagerIOWindowDispatch(t *testing.T) {
	slots := NewSlotManager(nil)
	card := &fakeCard{io: constByte(0x5A)}
	slots.Install(2, card)

	// slot 2's window is $C0A0-$C0AF.
	if got := slots.IOWindow(0xC0A5); got == nil {
		t.Fatal("expected slot 2's I/O target to answer $C0A5")
	}
	if got := slots.IOWindow(0xC0B0); got != nil {
		t.Fatal("expected nil for slot 3's unoccupied I/O window")
	}
}

func TestSlotManagerIOWindowOutOfRange(t *testing.T) {
	slots := NewSlotManager(nil)
	if got := slots.IOWindow(0xC07F); got != nil {
		t.Fatal("expected nil below the I/O window range")
	}
	if got := slots.IOWindow(0xC100); got != nil {
		t.Fatal("expected nil above the I/O window range")
	}
}
