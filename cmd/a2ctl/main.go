// Command a2ctl is a headless front-end for the emulator core: it loads a
// machine profile, runs it to a cycle budget or a call-sentinel return, and
// prints the resulting registers and active layers. It carries no window — video
// and audio rendering are out of scope for the core this wraps — but it
// exercises exactly the surface a BASIC interpreter or a debugger shell
// would sit on top of.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/flga/a2e/config"
	"github.com/flga/a2e/machine"
)

func loadProfile(path string) (*config.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open profile: %s", err)
	}
	defer f.Close()

	return config.Load(f)
}

func run(profilePath string, trace bool, cycles uint64, callAddr uint, cpuprof, memprof string) error {
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}

	m, err := machine.Build(profile)
	if err != nil {
		return err
	}

	if trace {
		m.CPU.Trace = os.Stderr
	}

	if cpuprof != "" {
		cpuf, err := os.Create(cpuprof)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %s", err)
		}
		defer cpuf.Close()
		if err := pprof.StartCPUProfile(cpuf); err != nil {
			return fmt.Errorf("could not start CPU profile: %s", err)
		}
		defer pprof.StopCPUProfile()
	}
	if memprof != "" {
		memf, err := os.Create(memprof)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %s", err)
		}
		defer memf.Close()
		defer func() {
			runtime.GC()
			if err := pprof.WriteHeapProfile(memf); err != nil {
				panic("could not write memory profile: " + err.Error())
			}
		}()
	}

	m.Reset()

	if callAddr != 0 {
		m.Call(machine.Addr(callAddr))
	} else {
		for uint64(m.CPU.Cycles) < cycles && !m.CPU.Halted() {
			m.CPU.Step()
		}
	}

	snap := m.Snapshot()
	fmt.Printf("A=%02X X=%02X Y=%02X S=%02X PC=%04X P=%08b cycles=%d halted=%v\n",
		snap.A, snap.X, snap.Y, snap.S, snap.PC, snap.P, snap.Cycles, snap.Halted)
	fmt.Printf("active layers: %v\n", snap.ActiveLayers)

	return nil
}

func main() {
	trace := flag.Bool("trace", false, "print a disassembly trace of executed instructions to stderr")
	cycles := flag.Uint64("cycles", 1_000_000, "run for at most this many cycles (ignored if -call is set)")
	callAddr := flag.Uint("call", 0, "call this address (per the machine's call() convention) instead of free-running")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")

	flag.Parse()

	if err := run(flag.Arg(0), *trace, *cycles, *callAddr, *cpuprofile, *memprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
