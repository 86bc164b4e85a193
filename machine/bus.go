package machine

// Bus is the resolver described in §4.4/§2 as "MainBus": it combines the
// base region table, the active layer stack, and the trap registry into a
// single 8/16-bit read/write. It knows nothing about CPUs, slots, or
// Language Cards directly — those compose into it through BusTargets and
// Layers, which is what keeps this type small despite sitting on the
// hottest path in the emulator.
type Bus struct {
	Regions *RegionTable
	Layers  *LayerStack
	Traps   *TrapRegistry
}

// NewBus wires a region table, layer stack and trap registry into a Bus.
func NewBus(regions *RegionTable, layers *LayerStack, traps *TrapRegistry) *Bus {
	if traps == nil {
		traps = NewTrapRegistry()
	}
	return &Bus{Regions: regions, Layers: layers, Traps: traps}
}

// resolution is the effective mapping chosen for one access, after layers
// have had a chance to override the base region (§4.4 steps 1-2).
type resolution struct {
	Target       BusTarget
	PhysicalBase Addr
	Start        Addr
	Perms        PagePerms
	Context      MemoryContext
}

func (b *Bus) resolve(a Addr, intent AccessIntent) resolution {
	if res, ok := b.Layers.Resolve(a, intent); ok {
		return resolution{
			Target:       res.Target,
			PhysicalBase: res.PhysicalBase,
			Start:        a, // layer resolutions are per-address, not range-based
			Perms:        res.Perms,
			Context:      res.Context,
		}
	}

	base := b.Regions.At(a)
	return resolution{
		Target:       base.Target,
		PhysicalBase: base.PhysicalBase,
		Start:        base.Start,
		Perms:        base.Perms,
		Context:      base.Context,
	}
}

// Read8 performs a single-byte bus access carrying cpu (for trap handler
// context) and the current cycle stamp (for trap/event bookkeeping).
// cpu may be nil for accesses with no CPU behind them (tooling); a trap
// handler reached by such an access is called with that nil cpu.
func (b *Bus) Read8(cpu *CPU, a Addr, intent AccessIntent, cycle Cycle) byte {
	res := b.resolve(a, intent)

	if !intent.IsDebug() {
		op := opForRead(intent)
		if result, handled := b.Traps.TryExecute(a, op, res.Context, cpu, b, cycle); handled {
			return result.Value
		}
	}

	if !res.Perms.Can(intent) {
		return OpenBus
	}

	return res.Target.Read8(res.PhysicalBase+(a-res.Start), intent)
}

// Write8 performs a single-byte bus write; see Read8 for the cpu/cycle
// parameters.
func (b *Bus) Write8(cpu *CPU, a Addr, intent AccessIntent, v byte, cycle Cycle) {
	res := b.resolve(a, intent)

	if !intent.IsDebug() {
		if _, handled := b.Traps.TryExecute(a, TrapWriteByte, res.Context, cpu, b, cycle); handled {
			return
		}
	}

	if !res.Perms.Can(intent) {
		return
	}

	res.Target.Write8(res.PhysicalBase+(a-res.Start), intent, v)
}

func opForRead(intent AccessIntent) TrapOperation {
	if intent == IntentExecute {
		return TrapExecute
	}
	return TrapReadByte
}

// Read16 reads a little-endian 16-bit value at a, a+1 (§6 read_word).
func (b *Bus) Read16(cpu *CPU, a Addr, intent AccessIntent, cycle Cycle) uint16 {
	lo := b.Read8(cpu, a, intent, cycle)
	hi := b.Read8(cpu, a+1, intent, cycle)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a little-endian 16-bit value at a, a+1 (§6 write_word).
func (b *Bus) Write16(cpu *CPU, a Addr, intent AccessIntent, v uint16, cycle Cycle) {
	b.Write8(cpu, a, intent, byte(v), cycle)
	b.Write8(cpu, a+1, intent, byte(v>>8), cycle)
}

// Peek is the debug-intent read exposed to the BASIC interpreter and
// tooling (§6): side-effect free and never trap-gated. It is still subject
// to PagePerms like any read: a page without PermRead answers open bus.
func (b *Bus) Peek(a Addr) byte {
	return b.Read8(nil, a, IntentDebugRead, 0)
}

// Poke is the write-intent access exposed to the BASIC interpreter and
// tooling (§6). Unlike Peek, it is a normal write: it honors ROM
// protection (a ROM region still rejects it) and soft switches (a poke to
// $C081 still flips the Language Card bank, a poke to $C0n0 can still
// drive a slot card's I/O), and it can still trigger a WriteByte trap.
func (b *Bus) Poke(a Addr, v byte) {
	b.Write8(nil, a, IntentWrite, v, 0)
}
