package wrapperrun

import (
	"flag"
	"fmt"
	"io"
)

// ExitCode is the §6 process-exit-code convention.
type ExitCode int

const (
	ExitSuccess      ExitCode = 0
	ExitConfigError  ExitCode = 1
	ExitDeviceError  ExitCode = 2
	ExitRuntimeError ExitCode = 3
)

// Flags holds the §6 CLI surface common to every wrapper driver.
type Flags struct {
	Help             bool
	Verbose          bool
	List             bool
	Calibration      bool
	Target           string
	Device           string
	OutputTrace      string
	DisableTransform bool
	ReplayDelay      float64
	NoPID            bool
	ConfigPath       string
}

// ParseFlags parses args (excluding the program name) against a fresh
// FlagSet so callers (and tests) never touch the global flag.CommandLine.
func ParseFlags(progName string, args []string, out io.Writer) (*Flags, error) {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(out)

	f := &Flags{}
	fs.BoolVar(&f.Help, "help", false, "show usage and exit")
	fs.BoolVar(&f.Help, "h", false, "show usage and exit (shorthand)")
	fs.BoolVar(&f.Verbose, "verbose", false, "enable verbose logging")
	fs.BoolVar(&f.Verbose, "v", false, "enable verbose logging (shorthand)")
	fs.BoolVar(&f.List, "list", false, "list available devices and exit")
	fs.BoolVar(&f.List, "l", false, "list available devices and exit (shorthand)")
	fs.BoolVar(&f.Calibration, "calibration", false, "run in calibration mode")
	fs.BoolVar(&f.Calibration, "c", false, "run in calibration mode (shorthand)")
	fs.StringVar(&f.Target, "t", "127.0.0.1:3333", "wire protocol target host:port")
	fs.StringVar(&f.Device, "D", "", "device path or serial port")
	fs.StringVar(&f.OutputTrace, "o", "", "write a §6 trace file of every raw event")
	fs.BoolVar(&f.DisableTransform, "T", false, "disable coordinate transforms")
	fs.Float64Var(&f.ReplayDelay, "d", 0, "replay delay in seconds between trace records")
	fs.BoolVar(&f.NoPID, "no-pid", false, "disable the single-instance PID-file lock")
	fs.BoolVar(&f.NoPID, "p", false, "disable the single-instance PID-file lock (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	// The muse_config.xml path is a positional argument, mirroring the
	// original wrapper's getopt_long non-option-argument handling.
	if fs.NArg() > 0 {
		f.ConfigPath = fs.Arg(0)
	}
	return f, nil
}

func (f *Flags) String() string {
	return fmt.Sprintf("target=%s device=%s transform=%v", f.Target, f.Device, !f.DisableTransform)
}
