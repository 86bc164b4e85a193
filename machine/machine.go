package machine

import (
	"fmt"
	"os"

	"github.com/flga/a2e/config"
)

// Machine wires a Bus, CPU, SlotManager, LanguageCard and Scheduler into a
// single runnable unit (§4.4-§4.10). It owns every PhysicalMemory the
// profile declared and every region/layer built from it.
type Machine struct {
	Bus       *Bus
	CPU       *CPU
	Slots     *SlotManager
	LC        *LanguageCard
	Scheduler *Scheduler

	physicals map[string]*PhysicalMemory
}

// Build turns a validated config.Profile into a running Machine (§6.1).
// It is the entire "profile loading" surface named in the spec; the
// broader JSON-driven DI/wiring system the spec's Non-goals exclude is not
// built here.
func Build(p *config.Profile) (*Machine, error) {
	romImages, err := loadRomImages(p.RomImages)
	if err != nil {
		return nil, err
	}

	physicals, err := buildPhysicals(p.Physical, romImages)
	if err != nil {
		return nil, err
	}

	defaultExpansionROM := NewROM(NewNullROM("default-expansion-rom", 0x0800, OpenBus), 0)
	slots := NewSlotManager(defaultExpansionROM)
	lc := NewLanguageCard()
	traps := NewTrapRegistry()
	traps.SetSlotManager(slots)
	traps.SetLanguageCard(lc)

	regions, err := buildRegions(p.Regions, physicals, slots, lc)
	if err != nil {
		return nil, err
	}

	spaceSize := Addr(0x10000)
	regionTable, err := NewRegionTable(spaceSize, regions)
	if err != nil {
		return nil, err
	}

	layers := NewLayerStack(spaceSize)
	if err := layers.Add(lc.Layer()); err != nil {
		return nil, err
	}

	if err := installSlotCards(p.Slots, slots); err != nil {
		return nil, err
	}

	bus := NewBus(regionTable, layers, traps)
	cpu := NewCPU(bus)
	scheduler := NewScheduler()
	cpu.SetScheduler(scheduler)

	return &Machine{
		Bus:       bus,
		CPU:       cpu,
		Slots:     slots,
		LC:        lc,
		Scheduler: scheduler,
		physicals: physicals,
	}, nil
}

func loadRomImages(specs []config.RomImageSpec) (map[string][]byte, error) {
	images := make(map[string][]byte, len(specs))
	for _, spec := range specs {
		data, err := os.ReadFile(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("machine: load rom image %q: %w", spec.Name, err)
		}
		if len(data) > int(spec.Size) {
			return nil, fmt.Errorf("machine: rom image %q is %d bytes, profile declares %d", spec.Name, len(data), spec.Size)
		}
		images[spec.Name] = data
	}
	return images, nil
}

func buildPhysicals(specs []config.PhysicalSpec, romImages map[string][]byte) (map[string]*PhysicalMemory, error) {
	physicals := make(map[string]*PhysicalMemory, len(specs))
	for _, spec := range specs {
		if _, exists := physicals[spec.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePhysical, spec.Name)
		}

		mem, err := NewPhysicalMemory(spec.Name, int(spec.Size), nil)
		if err != nil {
			return nil, err
		}

		for _, src := range spec.Sources {
			data, ok := romImages[src.RomImage]
			if !ok {
				return nil, fmt.Errorf("machine: physical %q references undefined rom image %q", spec.Name, src.RomImage)
			}
			for i, b := range data {
				mem.Write(Addr(src.Offset)+Addr(i), b)
			}
		}

		physicals[spec.Name] = mem
	}
	return physicals, nil
}

func buildRegions(specs []config.RegionSpec, physicals map[string]*PhysicalMemory, slots *SlotManager, lc *LanguageCard) ([]RegionMapping, error) {
	mappings := make([]RegionMapping, 0, len(specs))
	for _, spec := range specs {
		var target BusTarget
		var tag RegionTag
		var context MemoryContext

		switch spec.Type {
		case "ram":
			mem, ok := physicals[spec.Source]
			if !ok {
				return nil, fmt.Errorf("%w: region %q references %q", ErrMissingPhysical, spec.Name, spec.Source)
			}
			target = NewRAM(mem, Addr(spec.SourceOffset))
			tag = TagRAM
			context = ContextMainRAM

		case "rom":
			mem, ok := physicals[spec.Source]
			if !ok {
				return nil, fmt.Errorf("%w: region %q references %q", ErrMissingPhysical, spec.Name, spec.Source)
			}
			target = NewROM(mem, Addr(spec.SourceOffset))
			tag = TagROM
			context = ContextROM

		case "composite":
			if spec.Handler == "io-page" {
				target = IOPage(NewNull(), lc, slots)
			} else {
				target = NewNull()
			}
			tag = TagComposite
			context = ContextIO

		default:
			target = NewNull()
			tag = TagNull
			context = ContextMainRAM
		}

		// PhysicalBase is 0, not spec.SourceOffset: NewRAM/NewROM already
		// captured the source offset as the target's own base_offset
		// (§3's Ram/Rom variant shape), so Bus.resolve's
		// physical_base+(a-start) only needs to add the in-region offset.
		mappings = append(mappings, RegionMapping{
			Name:    spec.Name,
			Start:   Addr(spec.Start),
			Size:    Addr(spec.Size),
			Target:  target,
			Perms:   parsePerms(spec.Permissions),
			Context: context,
			Tag:     tag,
		})
	}
	return mappings, nil
}

func parsePerms(s string) PagePerms {
	var p PagePerms
	for _, c := range s {
		switch c {
		case 'r':
			p |= PermRead
		case 'w':
			p |= PermWrite
		case 'x':
			p |= PermExecute
		}
	}
	return p
}

// installSlotCards is a placeholder wiring point: spec.md's card types
// (disk-controller firmware, 80-column cards) live outside this core's
// scope, so there is nothing built-in to instantiate yet. A profile with
// slots.cards populated currently produces no cards; callers that need a
// real card install it directly via Machine.Slots.Install after Build.
func installSlotCards(spec config.SlotsSpec, slots *SlotManager) error {
	for _, card := range spec.Cards {
		if card.Slot < 1 || card.Slot > 7 {
			return fmt.Errorf("%w: slot %d", ErrSlotOutOfRange, card.Slot)
		}
	}
	return nil
}

// Reset brings the CPU back to its post-reset state, reading the reset
// vector from whatever is currently mapped at $FFFC/$FFFD (§4.9, mirroring
// the teacher's Console.Reset -> cpu.reset(bus) shape one-for-one).
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// Peek is a side-effect-free debug read (§6).
func (m *Machine) Peek(a Addr) byte { return m.Bus.Peek(a) }

// Poke is a write-intent access honoring ROM protection and soft switches
// (§6).
func (m *Machine) Poke(a Addr, v byte) { m.Bus.Poke(a, v) }

// ReadWord reads a little-endian 16-bit value through a debug-intent read
// (§6 read_word).
func (m *Machine) ReadWord(a Addr) uint16 {
	return m.Bus.Read16(nil, a, IntentDebugRead, m.CPU.Cycles)
}

// WriteWord writes a little-endian 16-bit value through a write-intent
// access (§6 write_word).
func (m *Machine) WriteWord(a Addr, v uint16) {
	m.Bus.Write16(nil, a, IntentWrite, v, m.CPU.Cycles)
}

// sentinelReturn is an address that can never hold real code (the top of
// the address space minus one, a region every profile's $FFFF page backs
// with ROM or open bus either way) — Call pushes it as a synthetic return
// address so it can recognize the matching RTS.
const sentinelReturn = Addr(0xFFFF)

// Call pushes a synthetic return address, sets PC to addr, and runs until
// control returns through that sentinel or a BRK halts progress (§6 call).
// It mirrors the teacher's execute(start_addr) convenience but drives the
// full Step loop so traps and interrupts remain live during the call.
func (m *Machine) Call(addr Addr) {
	c := m.CPU
	c.pushWord(uint16(sentinelReturn - 1))
	c.PC = uint16(addr)

	for {
		brk := m.Bus.Peek(Addr(c.PC)) == 0x00
		c.Step()
		if c.halted || brk {
			return
		}
		if c.PC == uint16(sentinelReturn) {
			return
		}
	}
}

// Snapshot is a value-copy of CPU registers plus the names of currently
// active layers, safe for a renderer or debugger to read without racing
// the execution loop (§5: "any future parallel video renderer must
// snapshot state rather than reading live").
type Snapshot struct {
	A, X, Y byte
	S       byte
	PC      uint16
	P       Flag
	Cycles  Cycle
	Halted  bool

	ActiveLayers []string
}

// Snapshot takes a value-copy snapshot of the machine's current state.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		A:      m.CPU.A,
		X:      m.CPU.X,
		Y:      m.CPU.Y,
		S:      m.CPU.S,
		PC:     m.CPU.PC,
		P:      m.CPU.P,
		Cycles: m.CPU.Cycles,
		Halted: m.CPU.halted,
	}
	for _, l := range m.Bus.Layers.Layers() {
		if l.Active {
			s.ActiveLayers = append(s.ActiveLayers, l.Name)
		}
	}
	return s
}
