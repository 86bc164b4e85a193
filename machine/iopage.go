package machine

// IOPage builds the single Composite BusTarget that answers the entire
// $C000-$CFFF soft-switch page (§4.3, §4.5, §4.6):
//
//	$C000-$C07F  built-in peripheral soft switches (keyboard, speaker, ...)
//	$C080-$C08F  Language Card soft switches
//	$C090-$C0FF  per-slot 16-byte I/O windows
//	$C100-$C7FF  per-slot 256-byte ROM windows (triggers ROM election)
//	$C800-$CFFF  shared expansion-ROM window ($CFFF triggers deselection)
//
// peripherals answers $C000-$C07F; pass NewNull() for a profile that
// doesn't model the built-in I/O soft switches.
func IOPage(peripherals BusTarget, lc *LanguageCard, slots *SlotManager) BusTarget {
	if peripherals == nil {
		peripherals = NewNull()
	}
	dispatch := func(offset Addr, intent AccessIntent) (BusTarget, Addr) {
		a := 0xC000 + offset

		switch {
		case a <= 0xC07F:
			return peripherals, offset

		case a <= 0xC08F:
			return lc.SwitchTarget(), offset - 0x0080

		case a <= 0xC0FF:
			if t := slots.IOWindow(a); t != nil {
				return t, (a - 0xC090) % 16
			}
			return nil, 0

		case a <= 0xC7FF:
			// A debug access must not run the election protocol (§4.1/§9:
			// debug reads are side-effect-free) — peek the slot's ROM
			// target directly instead of calling SlotROMWindow, which
			// mutates active_expansion_slot and fires OnSelect/OnDeselect.
			if intent.IsDebug() {
				if card, ok := slots.Card(uint8((a>>8)&7)); ok {
					if rom := card.ROMTarget(); rom != nil {
						return rom, a & 0xFF
					}
				}
				return nil, 0
			}
			if t := slots.SlotROMWindow(a); t != nil {
				return t, a & 0xFF
			}
			return nil, 0

		case a == 0xCFFF:
			if !intent.IsDebug() {
				slots.NoteExpansionDeselect()
			}
			return slots.VisibleExpansionROM(), a - 0xC800

		default: // 0xC800-0xCFFE
			return slots.VisibleExpansionROM(), a - 0xC800
		}
	}

	return NewComposite(dispatch)
}
