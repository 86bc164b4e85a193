package machine

import "testing"

// buildCPU wires a CPU to 64KiB of plain RAM, for instruction-level tests
// that don't care about regions/layers/traps.
func buildCPU(t *testing.T) (*CPU, *PhysicalMemory) {
	t.Helper()
	mem, err := NewPhysicalMemory("ram", 0x10000, nil)
	if err != nil {
		t.Fatalf("NewPhysicalMemory: %v", err)
	}
	table, err := NewRegionTable(0x10000, []RegionMapping{
		{Name: "ram", Start: 0, Size: 0x10000, Target: NewRAM(mem, 0), Perms: PermRead | PermWrite},
	})
	if err != nil {
		t.Fatalf("NewRegionTable: %v", err)
	}
	bus := NewBus(table, NewLayerStack(0x10000), NewTrapRegistry())
	return NewCPU(bus), mem
}

func load(mem *PhysicalMemory, addr uint16, bytes ...byte) {
	for i, b := range bytes {
		mem.Write(Addr(addr)+Addr(i), b)
	}
}

func TestCPUResetVector(t *testing.T) {
	// S1: ROM holds $00,$10 at $FFFC/$FFFD -> PC==$1000, I==1, D==0.
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	cpu.P |= FlagDecimal // prove Reset clears D rather than it starting clear

	cpu.Reset()

	if cpu.PC != 0x1000 {
		t.Fatalf("PC = %#04x, want $1000", cpu.PC)
	}
	if !cpu.flag(FlagInterruptDisable) {
		t.Fatal("expected the interrupt-disable flag set after Reset")
	}
	if cpu.flag(FlagDecimal) {
		t.Fatal("expected the decimal flag cleared after Reset")
	}
}

func TestCPUJSRRTS(t *testing.T) {
	// S2: JSR $2000 at $1000, RTS at $2000 -> PC==$1003, stack restored.
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000, 0x20, 0x00, 0x20) // JSR $2000
	load(mem, 0x2000, 0x60)             // RTS

	cpu.Reset()
	sBefore := cpu.S

	jsrCycles := cpu.Step() // JSR
	if cpu.PC != 0x2000 {
		t.Fatalf("after JSR: PC = %#04x, want $2000", cpu.PC)
	}
	if jsrCycles != 6 {
		t.Fatalf("JSR consumed %d cycles, want 6", jsrCycles)
	}

	rtsCycles := cpu.Step() // RTS
	if cpu.PC != 0x1003 {
		t.Fatalf("after RTS: PC = %#04x, want $1003", cpu.PC)
	}
	if rtsCycles != 6 {
		t.Fatalf("RTS consumed %d cycles, want 6", rtsCycles)
	}
	if cpu.S != sBefore {
		t.Fatalf("S = %#02x, want %#02x (restored)", cpu.S, sBefore)
	}
}

func TestCPUPullInstructionCycleCounts(t *testing.T) {
	// property 9: PLA/PLP/PLX/PLY each cost 4 cycles, RTI costs 6 — the
	// stack pointer's increment is a distinct bus-timed step from the
	// byte-pull that follows it (§4.9).
	cases := []struct {
		name   string
		opcode byte
		want   Cycle
	}{
		{"PLA", 0x68, 4},
		{"PLP", 0x28, 4},
		{"PLX", 0xFA, 4},
		{"PLY", 0x7A, 4},
		{"RTI", 0x40, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cpu, mem := buildCPU(t)
			load(mem, 0xFFFC, 0x00, 0x10)
			load(mem, 0x1000, tc.opcode)
			cpu.Reset()
			got := cpu.Step()
			if got != tc.want {
				t.Fatalf("%s consumed %d cycles, want %d", tc.name, got, tc.want)
			}
		})
	}
}

func TestCPULDAImmediate(t *testing.T) {
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000, 0xA9, 0x00) // LDA #$00

	cpu.Reset()
	cpu.Step()

	if cpu.A != 0 {
		t.Fatalf("A = %#02x, want 0", cpu.A)
	}
	if !cpu.flag(FlagZero) {
		t.Fatal("expected Z set after loading 0")
	}
	if cpu.flag(FlagNegative) {
		t.Fatal("expected N clear after loading 0")
	}
}

func TestCPULDANegative(t *testing.T) {
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000, 0xA9, 0x80) // LDA #$80

	cpu.Reset()
	cpu.Step()

	if !cpu.flag(FlagNegative) {
		t.Fatal("expected N set after loading 0x80")
	}
}

func TestCPUADCBinary(t *testing.T) {
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000, 0xA9, 0x50, 0x69, 0x50) // LDA #$50; ADC #$50

	cpu.Reset()
	cpu.Step()
	cpu.Step()

	if cpu.A != 0xA0 {
		t.Fatalf("A = %#02x, want 0xA0", cpu.A)
	}
	if !cpu.flag(FlagOverflow) {
		t.Fatal("expected V set: two positives summing to a negative result")
	}
	if cpu.flag(FlagCarry) {
		t.Fatal("expected C clear: 0x50+0x50 doesn't carry out of a byte")
	}
}

func TestCPUADCDecimal(t *testing.T) {
	// property 10, first example: decimal 9 + 1 = 10 (BCD $10), no carry.
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000,
		0xF8,             // SED
		0xA9, 0x09,       // LDA #$09
		0x69, 0x01,       // ADC #$01
	)

	cpu.Reset()
	cpu.Step()
	cpu.Step()
	cpu.Step()

	if cpu.A != 0x10 {
		t.Fatalf("A = %#02x, want 0x10 (decimal 10)", cpu.A)
	}
	if cpu.flag(FlagCarry) {
		t.Fatal("expected C clear: decimal 9+1 doesn't carry")
	}
}

func TestCPUADCDecimalCarry(t *testing.T) {
	// property 10, second example: decimal 99 + 1 = 100 -> A=$00, C=1.
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000,
		0xF8,       // SED
		0xA9, 0x99, // LDA #$99
		0x69, 0x01, // ADC #$01
	)

	cpu.Reset()
	cpu.Step()
	cpu.Step()
	cpu.Step()

	if cpu.A != 0x00 {
		t.Fatalf("A = %#02x, want 0x00", cpu.A)
	}
	if !cpu.flag(FlagCarry) {
		t.Fatal("expected C set: decimal 99+1 carries to 100")
	}
}

func TestCPUBranchTaken(t *testing.T) {
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000, 0xA9, 0x00, 0xF0, 0x02) // LDA #$00; BEQ +2

	cpu.Reset()
	cpu.Step()
	cpu.Step()

	if cpu.PC != 0x1006 {
		t.Fatalf("PC = %#04x, want $1006", cpu.PC)
	}
}

func TestCPUStackPushPull(t *testing.T) {
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000, 0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68) // LDA #$42; PHA; LDA #$00; PLA

	cpu.Reset()
	for i := 0; i < 4; i++ {
		cpu.Step()
	}

	if cpu.A != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", cpu.A)
	}
}

func TestCPUNMIClearsDecimal(t *testing.T) {
	// 65C02-specific: servicing an interrupt always clears D.
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0xFFFA, 0x00, 0x30) // NMI vector -> $3000
	load(mem, 0x1000, 0xF8)       // SED
	load(mem, 0x3000, 0xEA)       // NOP, so the post-vector fetch doesn't wander

	cpu.Reset()
	cpu.Step()
	if !cpu.flag(FlagDecimal) {
		t.Fatal("test setup: expected D set after SED")
	}

	cpu.RequestNMI()
	cpu.Step()

	if cpu.flag(FlagDecimal) {
		t.Fatal("expected D cleared after servicing NMI")
	}
	if cpu.PC != 0x3001 {
		t.Fatalf("PC = %#04x, want $3001 (NMI vector, then one NOP)", cpu.PC)
	}
}

func TestCPUSTPHalts(t *testing.T) {
	cpu, mem := buildCPU(t)
	load(mem, 0xFFFC, 0x00, 0x10)
	load(mem, 0x1000, 0xDB) // STP

	cpu.Reset()
	cpu.Step()
	if !cpu.Halted() {
		t.Fatal("expected STP to halt the CPU")
	}

	pcBefore := cpu.PC
	cpu.Step()
	if cpu.PC != pcBefore {
		t.Fatal("expected a halted CPU not to advance PC")
	}

	cpu.Reset()
	if cpu.Halted() {
		t.Fatal("expected Reset to clear the halted state")
	}
}
