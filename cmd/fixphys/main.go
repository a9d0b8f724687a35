// Command fixphys runs levels headlessly and compares determinism traces.
//
//	fixphys run -level L [-config C] [-ticks N] [-out trace.csv]
//	fixphys diff a.csv b.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/lixenwraith/fixphys/config"
	"github.com/lixenwraith/fixphys/level"
	"github.com/lixenwraith/fixphys/logging"
	"github.com/lixenwraith/fixphys/physics"
	"github.com/lixenwraith/fixphys/sim"
	"github.com/lixenwraith/fixphys/trace"
)

// errDiverged maps to exit status 1 without an error message
var errDiverged = errors.New("traces diverge")

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFIXPHYS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(2)
		}
	}()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCommand(os.Args[2:], os.Stdout)
	case "diff":
		err = diffCommand(os.Args[2:], os.Stdout)
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	switch {
	case errors.Is(err, errDiverged):
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "fixphys: %v\n", err)
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  fixphys run -level L [-config C] [-ticks N] [-out trace.csv]")
	fmt.Fprintln(os.Stderr, "  fixphys diff a.csv b.csv")
}

func runCommand(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	levelPath := fs.String("level", "", "Level file (.toml, .yaml)")
	configPath := fs.String("config", "", "Config file (empty = embedded defaults)")
	ticks := fs.Int("ticks", 0, "Ticks to run (0 = sim.ticks from config)")
	outPath := fs.String("out", "", "Trace CSV path (empty = trace.dir from config, or no trace)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *levelPath == "" {
		return errors.New("run: -level is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if logFile := logging.Setup(cfg.Engine.Debug, "fixphys"); logFile != nil {
		defer logFile.Close()
	}

	n := *ticks
	if n == 0 {
		n = cfg.Sim.Ticks
	}
	if n < 0 {
		return fmt.Errorf("run: negative tick count %d", n)
	}

	world, lvl, err := buildWorld(*levelPath, cfg)
	if err != nil {
		return err
	}

	out := *outPath
	if out == "" && cfg.Trace.Dir != "" {
		name := strings.TrimSuffix(filepath.Base(*levelPath), filepath.Ext(*levelPath))
		out = filepath.Join(cfg.Trace.Dir, name+".csv")
	}

	var tw *trace.Writer
	if out != "" {
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("creating trace directory: %w", err)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating trace: %w", err)
		}
		defer f.Close()
		tw = trace.NewWriter(f)
	}

	log.Printf("run: level=%q movers=%d ticks=%d tick=%v", lvl.Name, world.Len(), n, cfg.Engine.TickDuration())

	all := make([]trace.Record, 0, n*world.Len())
	for i := 0; i < n; i++ {
		records := trace.FromSamples(world.Step())
		if tw != nil {
			if err := tw.Write(records); err != nil {
				return err
			}
		}
		all = append(all, records...)
	}
	if tw != nil {
		if err := tw.Finish(); err != nil {
			return err
		}
	}

	summary := trace.Summarize(all)
	log.Printf("run: done %v", summary)
	fmt.Fprintf(stdout, "%s: %v\n", lvl.Name, summary)
	if out != "" {
		fmt.Fprintf(stdout, "trace written to %s\n", out)
	}
	return nil
}

// buildWorld loads a level and spawns its movers into a fresh world
func buildWorld(path string, cfg *config.Config) (*sim.World, *level.Level, error) {
	lvl, err := level.Load(path)
	if err != nil {
		return nil, nil, err
	}
	statics, err := lvl.Statics()
	if err != nil {
		return nil, nil, fmt.Errorf("level %s: %w", path, err)
	}
	spawns, err := lvl.SpawnStates()
	if err != nil {
		return nil, nil, fmt.Errorf("level %s: %w", path, err)
	}

	resolver := physics.NewResolver(cfg.Engine.TickDuration())
	resolver.Debug = cfg.Engine.Debug

	world := sim.NewWorld(statics, resolver)
	for _, s := range spawns {
		world.Spawn(s.Position, s.Radius, s.Velocity)
	}
	return world, lvl, nil
}

func diffCommand(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return errors.New("diff: expected two trace files")
	}
	a, err := readTrace(args[0])
	if err != nil {
		return err
	}
	b, err := readTrace(args[1])
	if err != nil {
		return err
	}

	if d, diverged := trace.Compare(a, b); diverged {
		fmt.Fprintf(stdout, "diverged at %v\n", d)
		return errDiverged
	}
	fmt.Fprintf(stdout, "identical: %d rows\n", len(a))
	return nil
}

func readTrace(path string) ([]trace.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace: %w", err)
	}
	defer f.Close()
	records, err := trace.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
